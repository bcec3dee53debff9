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

// Package token defines the lexical vocabulary of tmonkey: the [Kind] of each
// token, and the [Token] value the lexer hands to the parser.
package token

import "fmt"

const (
	EOF Kind = iota // End of input, or an unrecognized character.

	Plus      // +
	Minus     // -
	Star      // *
	Slash     // /
	Bang      // !
	NotEq     // !=
	Eq        // =
	EqEq      // ==
	Lt        // <
	LtEq      // <=
	Gt        // >
	GtEq      // >=
	LBrace    // {
	RBrace    // }
	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	Colon     // :
	Semicolon // ;
	Comma     // ,
	Dot       // .

	String     // A string literal. The token text excludes the quotes.
	Integer    // A run of digits.
	Float      // A run of digits containing one dot.
	Identifier // A name that is not a keyword.

	Let
	Fn
	Return
	If
	Else
	While
	Puts
	True
	False
	Null
	Import

	kindCount
)

// Kind identifies what kind of token a particular [Token] is.
//
// The zero value is [EOF].
type Kind byte

// IsKeyword returns whether this is one of the reserved words.
func (k Kind) IsKeyword() bool {
	return k >= Let && k <= Import
}

// IsLiteral returns whether this is a string or number literal.
func (k Kind) IsLiteral() bool {
	return k == String || k == Integer || k == Float
}

// String implements [fmt.Stringer].
//
// Punctuation is rendered as the punctuation itself; every other kind as its
// capitalized name.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("token.Kind(%d)", int(k))
}

var kindNames = [...]string{
	EOF:        "Eof",
	Plus:       "+",
	Minus:      "-",
	Star:       "*",
	Slash:      "/",
	Bang:       "!",
	NotEq:      "!=",
	Eq:         "=",
	EqEq:       "==",
	Lt:         "<",
	LtEq:       "<=",
	Gt:         ">",
	GtEq:       ">=",
	LBrace:     "{",
	RBrace:     "}",
	LParen:     "(",
	RParen:     ")",
	LBracket:   "[",
	RBracket:   "]",
	Colon:      ":",
	Semicolon:  ";",
	Comma:      ",",
	Dot:        ".",
	String:     "String",
	Integer:    "Integer",
	Float:      "Float",
	Identifier: "Identifier",
	Let:        "Let",
	Fn:         "Fn",
	Return:     "Return",
	If:         "If",
	Else:       "Else",
	While:      "While",
	Puts:       "Puts",
	True:       "True",
	False:      "False",
	Null:       "Null",
	Import:     "Import",
}
