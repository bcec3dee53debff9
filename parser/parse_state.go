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

package parser

import (
	"github.com/tmonkey-lang/tmonkey/ast"
	"github.com/tmonkey-lang/tmonkey/internal/intern"
	"github.com/tmonkey-lang/tmonkey/lexer"
	"github.com/tmonkey-lang/tmonkey/report"
	"github.com/tmonkey-lang/tmonkey/token"
)

// parser is the state of a single call to [Parse].
type parser struct {
	*report.Report

	file     *ast.File
	lex      *lexer.Lexer
	interner *intern.Table // May be nil.

	// The token being parsed, and the one after it.
	cur, peek token.Token
}

// advance shifts the lookahead window one token forward.
func (p *parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.Next()
}

// expectPeek advances onto the lookahead token if it is of the wanted kind.
//
// Otherwise, it records a diagnostic against the given production and leaves
// the window where it is.
func (p *parser) expectPeek(want token.Kind, where string) bool {
	if p.peek.Kind == want {
		p.advance()
		return true
	}
	p.Error(ErrUnexpectedToken{Want: want, Got: p.peek.Kind}).With(report.Where(where))
	return false
}

// skipSemicolon consumes an optional trailing ;.
func (p *parser) skipSemicolon() {
	if p.peek.Kind == token.Semicolon {
		p.advance()
	}
}
