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
	"github.com/tmonkey-lang/tmonkey/internal/intern"
	"github.com/tmonkey-lang/tmonkey/token"
)

// InfixExpr is a binary operator expression, such as a + b.
type InfixExpr struct {
	Op       token.Token
	Lhs, Rhs Node
}

// PrefixExpr is a unary operator expression: -x or !x.
type PrefixExpr struct {
	Op  token.Token
	Rhs Node
}

// IfExpr is if (Cond) { ... } else { ... }.
type IfExpr struct {
	Cond   Node
	Conseq Node // A BlockStmt.
	Alt    Node // A BlockStmt, or zero if there is no else branch.
}

// HasAlt returns whether this if has an else branch.
func (e *IfExpr) HasAlt() bool {
	return !e.Alt.IsZero()
}

// WhileExpr is while (Cond) { ... }.
type WhileExpr struct {
	Cond Node
	Body Node // A BlockStmt.
}

// ImportExpr is import <name>.
//
// The parser does not produce these yet.
type ImportExpr struct {
	Name Node
}

// FnExpr is a function literal: fn(params) { ... }.
type FnExpr struct {
	Params []Node
	Body   Node // A BlockStmt.
}

// CallExpr is Callee(Args...).
type CallExpr struct {
	Callee Node
	Args   []Node
}

// ArrayExpr is [Elements...].
type ArrayExpr struct {
	Elements []Node
}

// AssignExpr is Lhs = Rhs, where Lhs is an IdentifierExpr or an IndexExpr.
type AssignExpr struct {
	Lhs, Rhs Node
}

// IndexExpr is Lhs[Idx].
type IndexExpr struct {
	Lhs, Idx Node
}

// HashMapExpr is {key: value, ...}.
type HashMapExpr struct {
	Pairs []Pair
}

// Pair is one entry of a [HashMapExpr].
type Pair struct {
	Key, Value Node
}

// IdentifierExpr is a name.
type IdentifierExpr struct {
	Name string

	// The interned form of Name. Only meaningful if Interned is set.
	ID       intern.ID
	Interned bool
}

// NullExpr is null.
type NullExpr struct{}

// BoolExpr is true or false.
type BoolExpr struct {
	Value bool
}

// IntegerExpr is an integer literal.
type IntegerExpr struct {
	Value int64
}

// FloatExpr is a floating-point literal.
type FloatExpr struct {
	Value float64
}

// StrExpr is a string literal. Value excludes the quotes; there are no
// escape sequences.
type StrExpr struct {
	Value string
}

// LetStmt is let Name = Value.
type LetStmt struct {
	Name  Node // An IdentifierExpr.
	Value Node
}

// RetStmt is return Value.
type RetStmt struct {
	Value Node
}

// BlockStmt is { Body... }.
type BlockStmt struct {
	Body []Node
}

// ExprStmt is an expression used as a statement.
type ExprStmt struct {
	Expr Node
}
