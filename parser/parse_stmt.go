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
	"github.com/tmonkey-lang/tmonkey/report"
	"github.com/tmonkey-lang/tmonkey/token"
)

// parseStmt parses a single statement starting at the current token.
//
// On return, the current token is the last one of the statement, including
// its optional ;.
func (p *parser) parseStmt() (ast.Node, bool) {
	switch p.cur.Kind {
	case token.Let:
		return p.parseLet()
	case token.Return:
		return p.parseReturn()
	default:
		return p.parseExprStmt()
	}
}

// parseLet parses let name = value;.
func (p *parser) parseLet() (ast.Node, bool) {
	const where = "let statement"
	if !p.expectPeek(token.Identifier, where) {
		return ast.Node{}, false
	}
	name := p.parseIdentifier()
	if !p.expectPeek(token.Eq, where) {
		return ast.Node{}, false
	}

	p.advance()
	value, ok := p.parseExpr(precLowest)
	if !ok {
		return ast.Node{}, false
	}
	p.skipSemicolon()
	return p.file.NewLetStmt(name, value), true
}

// parseReturn parses return value;.
func (p *parser) parseReturn() (ast.Node, bool) {
	p.advance()
	value, ok := p.parseExpr(precLowest)
	if !ok {
		return ast.Node{}, false
	}
	p.skipSemicolon()
	return p.file.NewRetStmt(value), true
}

func (p *parser) parseExprStmt() (ast.Node, bool) {
	expr, ok := p.parseExpr(precLowest)
	if !ok {
		return ast.Node{}, false
	}
	p.skipSemicolon()
	return p.file.NewExprStmt(expr), true
}

// parseBlock parses the statements of a { ... } block. The current token is
// the {; on success, it is the matching }.
//
// A block fails as a whole if any statement within it fails.
func (p *parser) parseBlock() (ast.Node, bool) {
	var body []ast.Node
	p.advance()
	for p.cur.Kind != token.RBrace {
		if p.cur.Kind == token.EOF {
			p.Error(ErrUnexpectedToken{Want: token.RBrace, Got: token.EOF}).With(report.Where("block"))
			return ast.Node{}, false
		}

		stmt, ok := p.parseStmt()
		if !ok {
			return ast.Node{}, false
		}
		body = append(body, stmt)
		p.advance()
	}
	return p.file.NewBlockStmt(body), true
}
