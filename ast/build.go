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

package ast

import (
	"fmt"

	"github.com/tmonkey-lang/tmonkey/internal/intern"
	"github.com/tmonkey-lang/tmonkey/token"
)

// NewInfixExpr builds lhs op rhs.
func (f *File) NewInfixExpr(op token.Token, lhs, rhs Node) Node {
	f.mustExpr("infix lhs", lhs)
	f.mustExpr("infix rhs", rhs)
	return newNode(f, InfixExpr{Op: op, Lhs: lhs, Rhs: rhs})
}

// NewPrefixExpr builds op rhs.
func (f *File) NewPrefixExpr(op token.Token, rhs Node) Node {
	if op.Kind != token.Minus && op.Kind != token.Bang {
		panic(fmt.Sprintf("tmonkey/ast: %v is not a prefix operator", op))
	}
	f.mustExpr("prefix operand", rhs)
	return newNode(f, PrefixExpr{Op: op, Rhs: rhs})
}

// NewIfExpr builds an if expression. alt may be zero.
func (f *File) NewIfExpr(cond, conseq, alt Node) Node {
	f.mustExpr("if condition", cond)
	f.mustKind("if consequence", conseq, KindBlockStmt)
	if !alt.IsZero() {
		f.mustKind("else branch", alt, KindBlockStmt)
	}
	return newNode(f, IfExpr{Cond: cond, Conseq: conseq, Alt: alt})
}

// NewWhileExpr builds a while loop.
func (f *File) NewWhileExpr(cond, body Node) Node {
	f.mustExpr("while condition", cond)
	f.mustKind("while body", body, KindBlockStmt)
	return newNode(f, WhileExpr{Cond: cond, Body: body})
}

// NewImportExpr builds an import expression.
func (f *File) NewImportExpr(name Node) Node {
	f.mustExpr("import name", name)
	return newNode(f, ImportExpr{Name: name})
}

// NewFnExpr builds a function literal.
func (f *File) NewFnExpr(params []Node, body Node) Node {
	for _, p := range params {
		f.mustExpr("fn parameter", p)
	}
	f.mustKind("fn body", body, KindBlockStmt)
	return newNode(f, FnExpr{Params: params, Body: body})
}

// NewCallExpr builds callee(args...).
func (f *File) NewCallExpr(callee Node, args []Node) Node {
	f.mustExpr("callee", callee)
	for _, a := range args {
		f.mustExpr("call argument", a)
	}
	return newNode(f, CallExpr{Callee: callee, Args: args})
}

// NewArrayExpr builds an array literal.
func (f *File) NewArrayExpr(elements []Node) Node {
	for _, e := range elements {
		f.mustExpr("array element", e)
	}
	return newNode(f, ArrayExpr{Elements: elements})
}

// NewAssignExpr builds lhs = rhs. lhs must be an identifier or an index
// expression.
func (f *File) NewAssignExpr(lhs, rhs Node) Node {
	f.mustKind("assignment target", lhs, KindIdentifierExpr, KindIndexExpr)
	f.mustExpr("assigned value", rhs)
	return newNode(f, AssignExpr{Lhs: lhs, Rhs: rhs})
}

// SetLhs replaces the left-hand side of an [AssignExpr] or [IndexExpr],
// checking the same constraints as the constructor.
func (f *File) SetLhs(n, lhs Node) {
	switch n.Kind() {
	case KindAssignExpr:
		f.mustKind("assignment target", lhs, KindIdentifierExpr, KindIndexExpr)
		Get[AssignExpr](f, n).Lhs = lhs
	case KindIndexExpr:
		f.mustExpr("indexed expression", lhs)
		Get[IndexExpr](f, n).Lhs = lhs
	default:
		panic(fmt.Sprintf("tmonkey/ast: SetLhs called on %v", n))
	}
}

// SetRhs replaces the assigned value of an [AssignExpr].
func (f *File) SetRhs(n, rhs Node) {
	f.mustExpr("assigned value", rhs)
	Get[AssignExpr](f, n).Rhs = rhs
}

// SetIdx replaces the index of an [IndexExpr].
func (f *File) SetIdx(n, idx Node) {
	f.mustExpr("index", idx)
	Get[IndexExpr](f, n).Idx = idx
}

// NewIndexExpr builds lhs[idx].
func (f *File) NewIndexExpr(lhs, idx Node) Node {
	f.mustExpr("indexed expression", lhs)
	f.mustExpr("index", idx)
	return newNode(f, IndexExpr{Lhs: lhs, Idx: idx})
}

// NewHashMapExpr builds a hash map literal.
func (f *File) NewHashMapExpr(pairs []Pair) Node {
	for _, p := range pairs {
		f.mustExpr("hash map key", p.Key)
		f.mustExpr("hash map value", p.Value)
	}
	return newNode(f, HashMapExpr{Pairs: pairs})
}

// NewIdentifierExpr builds a name that has not been interned.
func (f *File) NewIdentifierExpr(name string) Node {
	return newNode(f, IdentifierExpr{Name: name})
}

// NewInternedIdentifierExpr builds a name along with its intern ID.
func (f *File) NewInternedIdentifierExpr(name string, id intern.ID) Node {
	return newNode(f, IdentifierExpr{Name: name, ID: id, Interned: true})
}

// NewNullExpr builds null.
func (f *File) NewNullExpr() Node {
	return newNode(f, NullExpr{})
}

// NewBoolExpr builds true or false.
func (f *File) NewBoolExpr(v bool) Node {
	return newNode(f, BoolExpr{Value: v})
}

// NewIntegerExpr builds an integer literal.
func (f *File) NewIntegerExpr(v int64) Node {
	return newNode(f, IntegerExpr{Value: v})
}

// NewFloatExpr builds a float literal.
func (f *File) NewFloatExpr(v float64) Node {
	return newNode(f, FloatExpr{Value: v})
}

// NewStrExpr builds a string literal.
func (f *File) NewStrExpr(v string) Node {
	return newNode(f, StrExpr{Value: v})
}

// NewLetStmt builds let name = value.
func (f *File) NewLetStmt(name, value Node) Node {
	f.mustKind("let name", name, KindIdentifierExpr)
	f.mustExpr("let value", value)
	return newNode(f, LetStmt{Name: name, Value: value})
}

// NewRetStmt builds return value.
func (f *File) NewRetStmt(value Node) Node {
	f.mustExpr("returned value", value)
	return newNode(f, RetStmt{Value: value})
}

// NewBlockStmt builds a block.
func (f *File) NewBlockStmt(body []Node) Node {
	for _, s := range body {
		f.mustStmt("block statement", s)
	}
	return newNode(f, BlockStmt{Body: body})
}

// NewExprStmt builds an expression statement.
func (f *File) NewExprStmt(expr Node) Node {
	f.mustExpr("expression statement", expr)
	return newNode(f, ExprStmt{Expr: expr})
}
