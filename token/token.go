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

import "fmt"

// Token is a single lexeme.
//
// Text is a substring of the lexed source and shares its memory; a Token
// never owns a copy of its text. For [String] tokens it is the contents
// between the quotes. The zero Token is an [EOF] token with no text.
type Token struct {
	Kind Kind
	Text string
}

// New returns a new token.
func New(kind Kind, text string) Token {
	return Token{Kind: kind, Text: text}
}

// IsEOF returns whether this token ends the stream.
func (t Token) IsEOF() bool {
	return t.Kind == EOF
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	return fmt.Sprintf("%v(%q)", t.Kind, t.Text)
}
