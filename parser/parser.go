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

// Package parser turns tmonkey source text into a syntax tree.
//
// The parser is a Pratt parser with exactly one token of lookahead and no
// backtracking. It never stops on a syntax error: each problem is recorded
// in a [report.Report], the statement it occurred in is left out of the
// resulting [ast.File], and parsing carries on with the next token. There is
// no resynchronization, so one mistake may produce several diagnostics.
package parser

import (
	"github.com/tmonkey-lang/tmonkey/ast"
	"github.com/tmonkey-lang/tmonkey/lexer"
	"github.com/tmonkey-lang/tmonkey/report"
	"github.com/tmonkey-lang/tmonkey/token"
)

// Parse parses text and returns the resulting file.
//
// Diagnostics are appended to errs, which may be nil if the caller does not
// care about them. The returned file contains every top-level statement that
// parsed successfully, in source order.
func Parse(text string, errs *report.Report, opts ...Option) *ast.File {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	if errs == nil {
		errs = new(report.Report)
	}
	if c.maxDiagnostics > 0 {
		defer func(limit int) { errs.Limit = limit }(errs.Limit)
		errs.Limit = errs.Len() + c.maxDiagnostics
	}

	p := &parser{
		Report:   errs,
		file:     ast.New(text),
		lex:      lexer.New(text),
		interner: c.interner,
	}
	p.parse()
	return p.file
}

func (p *parser) parse() {
	// Fill in cur and peek.
	p.advance()
	p.advance()

	for p.cur.Kind != token.EOF {
		if stmt, ok := p.parseStmt(); ok {
			p.file.AddDecl(stmt)
		}
		p.advance()
	}

	if offset, char, ok := p.lex.Stopped(); ok {
		p.Warn(ErrUnrecognizedChar{Offset: offset, Char: char})
	}
}
