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
	"iter"
)

// Visitor has one method per node kind. [Walk] calls the method matching a
// node's kind.
//
// Adding a node kind adds a method here, so every Visitor implementation
// stops compiling until it handles the new kind.
type Visitor interface {
	VisitInfixExpr(n Node, e *InfixExpr)
	VisitPrefixExpr(n Node, e *PrefixExpr)
	VisitIfExpr(n Node, e *IfExpr)
	VisitWhileExpr(n Node, e *WhileExpr)
	VisitImportExpr(n Node, e *ImportExpr)
	VisitFnExpr(n Node, e *FnExpr)
	VisitCallExpr(n Node, e *CallExpr)
	VisitArrayExpr(n Node, e *ArrayExpr)
	VisitAssignExpr(n Node, e *AssignExpr)
	VisitIndexExpr(n Node, e *IndexExpr)
	VisitHashMapExpr(n Node, e *HashMapExpr)
	VisitIdentifierExpr(n Node, e *IdentifierExpr)
	VisitNullExpr(n Node, e *NullExpr)
	VisitBoolExpr(n Node, e *BoolExpr)
	VisitIntegerExpr(n Node, e *IntegerExpr)
	VisitFloatExpr(n Node, e *FloatExpr)
	VisitStrExpr(n Node, e *StrExpr)

	VisitLetStmt(n Node, s *LetStmt)
	VisitRetStmt(n Node, s *RetStmt)
	VisitBlockStmt(n Node, s *BlockStmt)
	VisitExprStmt(n Node, s *ExprStmt)
}

// Walk calls the method of v that corresponds to n's kind.
//
// Walk does not recurse; visitors decide which children to walk into.
// Panics if n is zero.
func Walk(f *File, n Node, v Visitor) {
	switch n.Kind() {
	case KindInfixExpr:
		v.VisitInfixExpr(n, Get[InfixExpr](f, n))
	case KindPrefixExpr:
		v.VisitPrefixExpr(n, Get[PrefixExpr](f, n))
	case KindIfExpr:
		v.VisitIfExpr(n, Get[IfExpr](f, n))
	case KindWhileExpr:
		v.VisitWhileExpr(n, Get[WhileExpr](f, n))
	case KindImportExpr:
		v.VisitImportExpr(n, Get[ImportExpr](f, n))
	case KindFnExpr:
		v.VisitFnExpr(n, Get[FnExpr](f, n))
	case KindCallExpr:
		v.VisitCallExpr(n, Get[CallExpr](f, n))
	case KindArrayExpr:
		v.VisitArrayExpr(n, Get[ArrayExpr](f, n))
	case KindAssignExpr:
		v.VisitAssignExpr(n, Get[AssignExpr](f, n))
	case KindIndexExpr:
		v.VisitIndexExpr(n, Get[IndexExpr](f, n))
	case KindHashMapExpr:
		v.VisitHashMapExpr(n, Get[HashMapExpr](f, n))
	case KindIdentifierExpr:
		v.VisitIdentifierExpr(n, Get[IdentifierExpr](f, n))
	case KindNullExpr:
		v.VisitNullExpr(n, Get[NullExpr](f, n))
	case KindBoolExpr:
		v.VisitBoolExpr(n, Get[BoolExpr](f, n))
	case KindIntegerExpr:
		v.VisitIntegerExpr(n, Get[IntegerExpr](f, n))
	case KindFloatExpr:
		v.VisitFloatExpr(n, Get[FloatExpr](f, n))
	case KindStrExpr:
		v.VisitStrExpr(n, Get[StrExpr](f, n))
	case KindLetStmt:
		v.VisitLetStmt(n, Get[LetStmt](f, n))
	case KindRetStmt:
		v.VisitRetStmt(n, Get[RetStmt](f, n))
	case KindBlockStmt:
		v.VisitBlockStmt(n, Get[BlockStmt](f, n))
	case KindExprStmt:
		v.VisitExprStmt(n, Get[ExprStmt](f, n))
	default:
		panic(fmt.Sprintf("tmonkey/ast: cannot walk %v", n))
	}
}

// Children iterates over the direct children of n, in source order. Absent
// optional children are skipped.
func Children(f *File, n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, c := range children(f, n) {
			if !c.IsZero() && !yield(c) {
				return
			}
		}
	}
}

// Inspect traverses the tree rooted at n in depth-first pre-order, calling
// fn for each node. If fn returns false, the children of that node are
// skipped.
func Inspect(f *File, n Node, fn func(Node) bool) {
	if n.IsZero() || !fn(n) {
		return
	}
	for c := range Children(f, n) {
		Inspect(f, c, fn)
	}
}

func children(f *File, n Node) []Node {
	switch n.Kind() {
	case KindInfixExpr:
		e := Get[InfixExpr](f, n)
		return []Node{e.Lhs, e.Rhs}
	case KindPrefixExpr:
		return []Node{Get[PrefixExpr](f, n).Rhs}
	case KindIfExpr:
		e := Get[IfExpr](f, n)
		return []Node{e.Cond, e.Conseq, e.Alt}
	case KindWhileExpr:
		e := Get[WhileExpr](f, n)
		return []Node{e.Cond, e.Body}
	case KindImportExpr:
		return []Node{Get[ImportExpr](f, n).Name}
	case KindFnExpr:
		e := Get[FnExpr](f, n)
		return append(append([]Node(nil), e.Params...), e.Body)
	case KindCallExpr:
		e := Get[CallExpr](f, n)
		return append([]Node{e.Callee}, e.Args...)
	case KindArrayExpr:
		return Get[ArrayExpr](f, n).Elements
	case KindAssignExpr:
		e := Get[AssignExpr](f, n)
		return []Node{e.Lhs, e.Rhs}
	case KindIndexExpr:
		e := Get[IndexExpr](f, n)
		return []Node{e.Lhs, e.Idx}
	case KindHashMapExpr:
		e := Get[HashMapExpr](f, n)
		out := make([]Node, 0, 2*len(e.Pairs))
		for _, p := range e.Pairs {
			out = append(out, p.Key, p.Value)
		}
		return out
	case KindLetStmt:
		s := Get[LetStmt](f, n)
		return []Node{s.Name, s.Value}
	case KindRetStmt:
		return []Node{Get[RetStmt](f, n).Value}
	case KindBlockStmt:
		return Get[BlockStmt](f, n).Body
	case KindExprStmt:
		return []Node{Get[ExprStmt](f, n).Expr}
	default:
		return nil
	}
}
