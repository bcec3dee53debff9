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

package token

import "maps"

var keywords = map[string]Kind{
	"let":    Let,
	"fn":     Fn,
	"return": Return,
	"if":     If,
	"else":   Else,
	"while":  While,
	"puts":   Puts,
	"true":   True,
	"false":  False,
	"null":   Null,
	"import": Import,
}

// Lookup returns the keyword kind spelled by word, or [Identifier] if word is
// not reserved.
func Lookup(word string) Kind {
	if kw, ok := keywords[word]; ok {
		return kw
	}
	return Identifier
}

// Keywords returns every reserved word, mapped to its kind. The returned map
// is a copy.
func Keywords() map[string]Kind {
	return maps.Clone(keywords)
}
