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
	"strconv"

	"github.com/tmonkey-lang/tmonkey/ast"
	"github.com/tmonkey-lang/tmonkey/report"
	"github.com/tmonkey-lang/tmonkey/token"
)

// parseExpr parses an expression starting at the current token, extending it
// with every following operator that binds tighter than min.
//
// On return, the current token is the last one of the expression.
func (p *parser) parseExpr(min prec) (ast.Node, bool) {
	lhs, ok := p.parsePrefix()
	if !ok {
		return ast.Node{}, false
	}

	for p.peek.Kind != token.Semicolon && precedence(p.peek.Kind) > min {
		p.advance()
		if lhs, ok = p.parseInfix(lhs); !ok {
			return ast.Node{}, false
		}
	}
	return lhs, true
}

// parsePrefix parses whatever may begin an expression.
func (p *parser) parsePrefix() (ast.Node, bool) {
	switch p.cur.Kind {
	case token.Identifier, token.Puts:
		return p.parseIdentifier(), true
	case token.Integer:
		return p.parseInteger()
	case token.Float:
		return p.parseFloat()
	case token.String:
		return p.file.NewStrExpr(p.cur.Text), true
	case token.True, token.False:
		return p.file.NewBoolExpr(p.cur.Kind == token.True), true
	case token.Null:
		return p.file.NewNullExpr(), true
	case token.Minus, token.Bang:
		return p.parseUnary()
	case token.LParen:
		return p.parseGroup()
	case token.If:
		return p.parseIf()
	case token.While:
		return p.parseWhile()
	case token.Fn:
		return p.parseFn()
	case token.LBracket:
		return p.parseArray()
	case token.LBrace:
		return p.parseHashMap()
	case token.Import:
		p.Error(ErrUnsupported{What: "import expressions"}).With(report.Where("import expression"))
		return ast.Node{}, false
	default:
		p.Error(ErrUnknownToken{Kind: p.cur.Kind}).With(report.Where("prefix expression"))
		return ast.Node{}, false
	}
}

// parseInfix parses whatever may follow lhs. The current token is the
// operator.
func (p *parser) parseInfix(lhs ast.Node) (ast.Node, bool) {
	switch p.cur.Kind {
	case token.Plus, token.Minus, token.Star, token.Slash,
		token.EqEq, token.NotEq,
		token.Lt, token.LtEq, token.Gt, token.GtEq:
		return p.parseBinary(lhs)
	case token.Eq:
		return p.parseAssign(lhs)
	case token.LParen:
		return p.parseCall(lhs)
	case token.LBracket:
		return p.parseIndex(lhs)
	default:
		p.Error(ErrUnknownToken{Kind: p.cur.Kind}).With(report.Where("infix expression"))
		return ast.Node{}, false
	}
}

func (p *parser) parseIdentifier() ast.Node {
	name := p.cur.Text
	if p.interner != nil {
		return p.file.NewInternedIdentifierExpr(name, p.interner.Intern(name))
	}
	return p.file.NewIdentifierExpr(name)
}

func (p *parser) parseInteger() (ast.Node, bool) {
	v, err := strconv.ParseInt(p.cur.Text, 10, 64)
	if err != nil {
		p.Error(ErrBadLiteral{Text: p.cur.Text, As: "integer", Err: err}).With(report.Where("integer literal"))
		return ast.Node{}, false
	}
	return p.file.NewIntegerExpr(v), true
}

func (p *parser) parseFloat() (ast.Node, bool) {
	v, err := strconv.ParseFloat(p.cur.Text, 64)
	if err != nil {
		p.Error(ErrBadLiteral{Text: p.cur.Text, As: "float", Err: err}).With(report.Where("float literal"))
		return ast.Node{}, false
	}
	return p.file.NewFloatExpr(v), true
}

// parseUnary parses - or ! and its operand, which binds tighter than any
// binary operator.
func (p *parser) parseUnary() (ast.Node, bool) {
	op := p.cur
	p.advance()
	rhs, ok := p.parseExpr(precPrefix)
	if !ok {
		return ast.Node{}, false
	}
	return p.file.NewPrefixExpr(op, rhs), true
}

// parseBinary parses the right operand of a binary operator at the
// operator's own precedence.
func (p *parser) parseBinary(lhs ast.Node) (ast.Node, bool) {
	op := p.cur
	p.advance()
	rhs, ok := p.parseExpr(precedence(op.Kind))
	if !ok {
		return ast.Node{}, false
	}
	return p.file.NewInfixExpr(op, lhs, rhs), true
}

// parseGroup parses a parenthesized expression. No node is built for the
// parentheses themselves.
func (p *parser) parseGroup() (ast.Node, bool) {
	p.advance()
	expr, ok := p.parseExpr(precLowest)
	if !ok || !p.expectPeek(token.RParen, "parenthesized expression") {
		return ast.Node{}, false
	}
	return expr, true
}

// parseIf parses if (cond) { ... } else { ... }.
//
// The condition is parsed as an expression starting at the (, so it is
// the parentheses that delimit it.
func (p *parser) parseIf() (ast.Node, bool) {
	const where = "if expression"
	if !p.expectPeek(token.LParen, where) {
		return ast.Node{}, false
	}
	cond, ok := p.parseExpr(precLowest)
	if !ok || !p.expectPeek(token.LBrace, where) {
		return ast.Node{}, false
	}
	conseq, ok := p.parseBlock()
	if !ok {
		return ast.Node{}, false
	}

	var alt ast.Node
	if p.peek.Kind == token.Else {
		p.advance()
		if !p.expectPeek(token.LBrace, "else branch") {
			return ast.Node{}, false
		}
		if alt, ok = p.parseBlock(); !ok {
			return ast.Node{}, false
		}
	}
	return p.file.NewIfExpr(cond, conseq, alt), true
}

// parseWhile parses while (cond) { ... }.
func (p *parser) parseWhile() (ast.Node, bool) {
	const where = "while expression"
	if !p.expectPeek(token.LParen, where) {
		return ast.Node{}, false
	}
	cond, ok := p.parseExpr(precLowest)
	if !ok || !p.expectPeek(token.LBrace, where) {
		return ast.Node{}, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return ast.Node{}, false
	}
	return p.file.NewWhileExpr(cond, body), true
}

// parseFn parses fn (params) { ... }.
//
// Parameters are arbitrary expressions; nothing restricts them to names.
func (p *parser) parseFn() (ast.Node, bool) {
	const where = "fn expression"
	if !p.expectPeek(token.LParen, where) {
		return ast.Node{}, false
	}
	params, ok := p.parseExprList(token.RParen, "parameter list")
	if !ok || !p.expectPeek(token.LBrace, where) {
		return ast.Node{}, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return ast.Node{}, false
	}
	return p.file.NewFnExpr(params, body), true
}

func (p *parser) parseCall(callee ast.Node) (ast.Node, bool) {
	args, ok := p.parseExprList(token.RParen, "argument list")
	if !ok {
		return ast.Node{}, false
	}
	return p.file.NewCallExpr(callee, args), true
}

func (p *parser) parseArray() (ast.Node, bool) {
	elems, ok := p.parseExprList(token.RBracket, "array literal")
	if !ok {
		return ast.Node{}, false
	}
	return p.file.NewArrayExpr(elems), true
}

// parseExprList parses a comma-separated list of expressions. The current
// token is the opening delimiter; on success, it is end.
//
// A trailing comma is not accepted.
func (p *parser) parseExprList(end token.Kind, where string) ([]ast.Node, bool) {
	var elems []ast.Node
	if p.peek.Kind == end {
		p.advance()
		return elems, true
	}

	for {
		p.advance()
		elem, ok := p.parseExpr(precLowest)
		if !ok {
			return nil, false
		}
		elems = append(elems, elem)

		if p.peek.Kind == end {
			p.advance()
			return elems, true
		}
		if !p.expectPeek(token.Comma, where) {
			return nil, false
		}
	}
}

// parseAssign parses lhs = rhs. Assignment is right-associative.
func (p *parser) parseAssign(lhs ast.Node) (ast.Node, bool) {
	switch lhs.Kind() {
	case ast.KindIdentifierExpr, ast.KindIndexExpr:
	default:
		p.Error(ErrInvalidAssignTarget{Got: lhs.Kind()}).With(report.Where("assignment"))
		return ast.Node{}, false
	}

	p.advance()
	rhs, ok := p.parseExpr(precLowest)
	if !ok {
		return ast.Node{}, false
	}
	return p.file.NewAssignExpr(lhs, rhs), true
}

func (p *parser) parseIndex(lhs ast.Node) (ast.Node, bool) {
	p.advance()
	idx, ok := p.parseExpr(precLowest)
	if !ok || !p.expectPeek(token.RBracket, "index expression") {
		return ast.Node{}, false
	}
	return p.file.NewIndexExpr(lhs, idx), true
}

// parseHashMap parses { key: value, ... }. The current token is the {.
func (p *parser) parseHashMap() (ast.Node, bool) {
	const where = "hash map literal"

	var pairs []ast.Pair
	if p.peek.Kind == token.RBrace {
		p.advance()
		return p.file.NewHashMapExpr(pairs), true
	}

	for {
		p.advance()
		key, ok := p.parseExpr(precLowest)
		if !ok || !p.expectPeek(token.Colon, where) {
			return ast.Node{}, false
		}

		p.advance()
		value, ok := p.parseExpr(precLowest)
		if !ok {
			return ast.Node{}, false
		}
		pairs = append(pairs, ast.Pair{Key: key, Value: value})

		if p.peek.Kind == token.RBrace {
			p.advance()
			return p.file.NewHashMapExpr(pairs), true
		}
		if !p.expectPeek(token.Comma, where) {
			return ast.Node{}, false
		}
	}
}
