// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lexer

// mustProgress is a helper for ensuring that the lexer makes progress
// on every token it produces. This turns would-be infinite loops in the
// parser into panics.
type mustProgress struct {
	l    *Lexer
	prev int
}

func (l *Lexer) mustProgress() mustProgress {
	return mustProgress{l, l.cursor}
}

// check panics if the lexer has not advanced since mustProgress was called.
func (mp *mustProgress) check() {
	if mp.prev == mp.l.cursor {
		panic("lexer failed to make progress; this is a bug in tmonkey")
	}
	mp.prev = mp.l.cursor
}
