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

// Package printer renders a syntax tree as indented text.
//
// The format lists one node per line, followed by its fields. Nesting is
// shown by a run of dots whose length is the depth. For example, "-1"
// prints as
//
//	Ast {
//	.ExprStmt {
//	..InfixExpr {
//	...Op: -
//	...Rhs: IntegerExpr {
//	....Value: 1
//	...}
//	..}
//	.}
//	}
//
// Note that prefix expressions are printed under the name InfixExpr, with no
// Lhs field. The format is stable; tests compare it byte for byte.
package printer

import (
	"strconv"
	"strings"

	"github.com/tmonkey-lang/tmonkey/ast"
)

// Print renders every top-level statement of f.
func Print(f *ast.File) string {
	p := &printer{file: f}
	p.WriteString("Ast {\n")
	p.indent++
	for _, n := range f.Decls() {
		p.dots(p.indent)
		p.visit(n)
	}
	p.indent--
	p.WriteString("}\n")
	return p.String()
}

// PrintNode renders a single node of f.
func PrintNode(f *ast.File, n ast.Node) string {
	p := &printer{file: f}
	p.visit(n)
	return p.String()
}

// printer is an [ast.Visitor] that accumulates text.
//
// Each visit writes the node's name on the current line, its fields on the
// lines after, and a closing brace one level out.
type printer struct {
	strings.Builder
	file   *ast.File
	indent int
}

func (p *printer) visit(n ast.Node) {
	p.indent++
	ast.Walk(p.file, n, p)
	p.indent--
}

func (p *printer) dots(n int) {
	for range n {
		p.WriteByte('.')
	}
}

func (p *printer) open(name string) {
	p.WriteString(name)
	p.WriteString(" {\n")
}

func (p *printer) close() {
	p.dots(p.indent - 1)
	p.WriteString("}\n")
}

// field writes a label and then the node it labels.
func (p *printer) field(label string, n ast.Node) {
	p.dots(p.indent)
	p.WriteString(label)
	p.WriteString(": ")
	p.visit(n)
}

// scalar writes a label and a value on one line.
func (p *printer) scalar(label, value string) {
	p.dots(p.indent)
	p.WriteString(label)
	p.WriteString(": ")
	p.WriteString(value)
	p.WriteByte('\n')
}

// list writes a bracketed list of nodes, one per line. If compact is set, an
// empty list is written as [] on the label's line.
func (p *printer) list(label string, ns []ast.Node, compact bool) {
	if compact && len(ns) == 0 {
		p.scalar(label, "[]")
		return
	}

	p.scalar(label, "[")
	p.indent++
	for _, n := range ns {
		p.dots(p.indent)
		p.visit(n)
	}
	p.indent--
	p.dots(p.indent)
	p.WriteString("]\n")
}

func (p *printer) VisitInfixExpr(_ ast.Node, e *ast.InfixExpr) {
	p.open("InfixExpr")
	p.scalar("Op", e.Op.Kind.String())
	p.field("Lhs", e.Lhs)
	p.field("Rhs", e.Rhs)
	p.close()
}

func (p *printer) VisitPrefixExpr(_ ast.Node, e *ast.PrefixExpr) {
	p.open("InfixExpr")
	p.scalar("Op", e.Op.Kind.String())
	p.field("Rhs", e.Rhs)
	p.close()
}

func (p *printer) VisitIfExpr(_ ast.Node, e *ast.IfExpr) {
	p.open("IfExpr")
	p.field("Cnd", e.Cond)
	p.field("Coseq", e.Conseq)
	if e.HasAlt() {
		p.field("Alt", e.Alt)
	}
	p.close()
}

func (p *printer) VisitWhileExpr(_ ast.Node, e *ast.WhileExpr) {
	p.open("WhileExpr")
	p.field("Cnd", e.Cond)
	p.field("Coseq", e.Body)
	p.close()
}

func (p *printer) VisitImportExpr(_ ast.Node, e *ast.ImportExpr) {
	p.open("ImportExpr")
	p.field("Name", e.Name)
	p.close()
}

func (p *printer) VisitFnExpr(_ ast.Node, e *ast.FnExpr) {
	p.open("FnExpr")
	p.list("Params", e.Params, true)
	p.field("Body", e.Body)
	p.close()
}

func (p *printer) VisitCallExpr(_ ast.Node, e *ast.CallExpr) {
	p.open("CallExpr")
	p.field("Callable", e.Callee)
	p.list("Arguments", e.Args, false)
	p.close()
}

func (p *printer) VisitArrayExpr(_ ast.Node, e *ast.ArrayExpr) {
	p.open("ArrayExpr")
	p.list("Elements", e.Elements, false)
	p.close()
}

func (p *printer) VisitAssignExpr(_ ast.Node, e *ast.AssignExpr) {
	p.open("AssignExpr")
	p.field("Lhs", e.Lhs)
	p.field("Rhs", e.Rhs)
	p.close()
}

func (p *printer) VisitIndexExpr(_ ast.Node, e *ast.IndexExpr) {
	p.open("IndexExpr")
	p.field("Lhs", e.Lhs)
	p.field("Idx", e.Idx)
	p.close()
}

func (p *printer) VisitHashMapExpr(_ ast.Node, e *ast.HashMapExpr) {
	p.open("HashMapExpr")
	p.scalar("Pairs", "[")
	for _, pair := range e.Pairs {
		p.indent++
		p.dots(p.indent)
		p.WriteString("{\n")

		p.indent++
		p.field("Key", pair.Key)
		p.field("Val", pair.Value)
		p.indent--

		p.dots(p.indent)
		p.WriteString("}\n")
		p.indent--
	}
	p.dots(p.indent)
	p.WriteString("]\n")
	p.close()
}

func (p *printer) VisitIdentifierExpr(_ ast.Node, e *ast.IdentifierExpr) {
	p.open("IdentifierExpr")
	p.scalar("Value", e.Name)
	p.close()
}

func (p *printer) VisitNullExpr(ast.Node, *ast.NullExpr) {
	p.WriteString("NullExpr {}\n")
}

func (p *printer) VisitBoolExpr(_ ast.Node, e *ast.BoolExpr) {
	p.open("BoolExpr")
	p.scalar("Value", strconv.FormatBool(e.Value))
	p.close()
}

func (p *printer) VisitIntegerExpr(_ ast.Node, e *ast.IntegerExpr) {
	p.open("IntegerExpr")
	p.scalar("Value", strconv.FormatInt(e.Value, 10))
	p.close()
}

func (p *printer) VisitFloatExpr(_ ast.Node, e *ast.FloatExpr) {
	p.open("FloatExpr")
	p.scalar("Value", formatFloat(e.Value))
	p.close()
}

func (p *printer) VisitStrExpr(_ ast.Node, e *ast.StrExpr) {
	p.open("StrExpr")
	p.scalar("Value", "'"+e.Value+"'")
	p.close()
}

func (p *printer) VisitLetStmt(_ ast.Node, s *ast.LetStmt) {
	p.open("LetStmt")
	p.field("Identifier", s.Name)
	p.field("Expr", s.Value)
	p.close()
}

func (p *printer) VisitRetStmt(_ ast.Node, s *ast.RetStmt) {
	p.open("RetStmt")
	p.field("Expr", s.Value)
	p.close()
}

func (p *printer) VisitBlockStmt(_ ast.Node, s *ast.BlockStmt) {
	p.open("BlockStmt")
	p.list("Body", s.Body, true)
	p.close()
}

func (p *printer) VisitExprStmt(_ ast.Node, s *ast.ExprStmt) {
	p.open("ExprStmt")
	p.dots(p.indent)
	p.visit(s.Expr)
	p.close()
}

// formatFloat writes v in the shortest form that round-trips, choosing
// between fixed and scientific notation by length. Ties go to fixed.
func formatFloat(v float64) string {
	fixed := strconv.FormatFloat(v, 'f', -1, 64)
	sci := strconv.FormatFloat(v, 'e', -1, 64)
	if len(sci) < len(fixed) {
		return sci
	}
	return fixed
}
