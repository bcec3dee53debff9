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
	"reflect"

	"github.com/tmonkey-lang/tmonkey/internal/arena"
)

// Node is a handle to a node in a [File].
//
// A Node is only meaningful together with the File that created it. The zero
// Node refers to nothing; it is used for absent optional children.
type Node struct {
	kind Kind
	ptr  arena.Untyped
}

// Kind returns the kind of node this handle refers to, or [KindInvalid] for
// the zero Node.
func (n Node) Kind() Kind {
	return n.kind
}

// IsZero returns whether this is the zero Node.
func (n Node) IsZero() bool {
	return n.ptr.Nil()
}

// IsExpr returns whether this is an expression.
func (n Node) IsExpr() bool {
	return n.kind.IsExpr()
}

// IsStmt returns whether this is a statement.
func (n Node) IsStmt() bool {
	return n.kind.IsStmt()
}

// String implements [fmt.Stringer].
func (n Node) String() string {
	if n.IsZero() {
		return "ast.Node(nil)"
	}
	return fmt.Sprintf("%v#%d", n.kind, n.ptr)
}

// File is a parsed source file: the top-level statements, and storage for
// every node reachable from them.
//
// A File is not safe for concurrent mutation.
type File struct {
	text  string
	decls []Node
	nodes nodes
}

// New returns an empty File for the given source text.
//
// Nodes built from this text share memory with it; keeping the File alive
// keeps the text alive.
func New(text string) *File {
	return &File{text: text}
}

// Text returns the source text this File was created for.
func (f *File) Text() string {
	return f.text
}

// Decls returns the top-level statements of this file, in source order.
func (f *File) Decls() []Node {
	return f.decls
}

// AddDecl appends a top-level statement.
func (f *File) AddDecl(stmt Node) {
	f.mustStmt("top-level declaration", stmt)
	f.decls = append(f.decls, stmt)
}

// Len returns the number of nodes allocated in this file, reachable or not.
func (f *File) Len() int {
	n := &f.nodes
	return n.infix.Len() + n.prefix.Len() + n.ifs.Len() + n.whiles.Len() +
		n.imports.Len() + n.fns.Len() + n.calls.Len() + n.arrays.Len() +
		n.assigns.Len() + n.indexes.Len() + n.hashMaps.Len() + n.idents.Len() +
		n.nulls.Len() + n.bools.Len() + n.ints.Len() + n.floats.Len() +
		n.strs.Len() + n.lets.Len() + n.rets.Len() + n.blocks.Len() +
		n.exprStmts.Len()
}

// Get returns the node n refers to, as a T.
//
// Panics if n is zero or does not hold a T. If n was created by a different
// File, the result is unspecified, including potentially a panic.
func Get[T any](f *File, n Node) *T {
	kind, a := nodeArena[T](&f.nodes)
	if n.kind != kind {
		panic(fmt.Sprintf("tmonkey/ast: Get[%s] called on %v", kind, n))
	}
	return a.At(n.ptr)
}

// As is like [Get], but returns false instead of panicking if n does not hold
// a T.
func As[T any](f *File, n Node) (*T, bool) {
	kind, a := nodeArena[T](&f.nodes)
	if n.IsZero() || n.kind != kind {
		return nil, false
	}
	return a.At(n.ptr), true
}

// nodes is storage for every kind of node in a File.
type nodes struct {
	infix     arena.Arena[InfixExpr]
	prefix    arena.Arena[PrefixExpr]
	ifs       arena.Arena[IfExpr]
	whiles    arena.Arena[WhileExpr]
	imports   arena.Arena[ImportExpr]
	fns       arena.Arena[FnExpr]
	calls     arena.Arena[CallExpr]
	arrays    arena.Arena[ArrayExpr]
	assigns   arena.Arena[AssignExpr]
	indexes   arena.Arena[IndexExpr]
	hashMaps  arena.Arena[HashMapExpr]
	idents    arena.Arena[IdentifierExpr]
	nulls     arena.Arena[NullExpr]
	bools     arena.Arena[BoolExpr]
	ints      arena.Arena[IntegerExpr]
	floats    arena.Arena[FloatExpr]
	strs      arena.Arena[StrExpr]
	lets      arena.Arena[LetStmt]
	rets      arena.Arena[RetStmt]
	blocks    arena.Arena[BlockStmt]
	exprStmts arena.Arena[ExprStmt]
}

func nodeArena[T any](n *nodes) (Kind, *arena.Arena[T]) {
	var (
		kind Kind
		raw  T
		// Needs to be an any because Go doesn't know that only the case below
		// with the correct type for arena_ will be evaluated.
		arena_ any //nolint:revive // Named arena_ to avoid clashing with package arena.
	)

	switch any(raw).(type) {
	case InfixExpr:
		kind, arena_ = KindInfixExpr, &n.infix
	case PrefixExpr:
		kind, arena_ = KindPrefixExpr, &n.prefix
	case IfExpr:
		kind, arena_ = KindIfExpr, &n.ifs
	case WhileExpr:
		kind, arena_ = KindWhileExpr, &n.whiles
	case ImportExpr:
		kind, arena_ = KindImportExpr, &n.imports
	case FnExpr:
		kind, arena_ = KindFnExpr, &n.fns
	case CallExpr:
		kind, arena_ = KindCallExpr, &n.calls
	case ArrayExpr:
		kind, arena_ = KindArrayExpr, &n.arrays
	case AssignExpr:
		kind, arena_ = KindAssignExpr, &n.assigns
	case IndexExpr:
		kind, arena_ = KindIndexExpr, &n.indexes
	case HashMapExpr:
		kind, arena_ = KindHashMapExpr, &n.hashMaps
	case IdentifierExpr:
		kind, arena_ = KindIdentifierExpr, &n.idents
	case NullExpr:
		kind, arena_ = KindNullExpr, &n.nulls
	case BoolExpr:
		kind, arena_ = KindBoolExpr, &n.bools
	case IntegerExpr:
		kind, arena_ = KindIntegerExpr, &n.ints
	case FloatExpr:
		kind, arena_ = KindFloatExpr, &n.floats
	case StrExpr:
		kind, arena_ = KindStrExpr, &n.strs
	case LetStmt:
		kind, arena_ = KindLetStmt, &n.lets
	case RetStmt:
		kind, arena_ = KindRetStmt, &n.rets
	case BlockStmt:
		kind, arena_ = KindBlockStmt, &n.blocks
	case ExprStmt:
		kind, arena_ = KindExprStmt, &n.exprStmts
	default:
		panic("tmonkey/ast: unknown node type " + reflect.TypeOf(raw).Name())
	}

	return kind, arena_.(*arena.Arena[T]) //nolint:errcheck
}

// newNode allocates v in f and returns a handle to it.
func newNode[T any](f *File, v T) Node {
	kind, a := nodeArena[T](&f.nodes)
	return Node{kind: kind, ptr: arena.Untyped(a.New(v))}
}

func (f *File) mustExpr(what string, n Node) {
	if n.IsZero() {
		panic(fmt.Sprintf("tmonkey/ast: missing %s", what))
	}
	if !n.IsExpr() {
		panic(fmt.Sprintf("tmonkey/ast: %s must be an expression, got %v", what, n))
	}
}

func (f *File) mustStmt(what string, n Node) {
	if n.IsZero() {
		panic(fmt.Sprintf("tmonkey/ast: missing %s", what))
	}
	if !n.IsStmt() {
		panic(fmt.Sprintf("tmonkey/ast: %s must be a statement, got %v", what, n))
	}
}

func (f *File) mustKind(what string, n Node, kinds ...Kind) {
	if n.IsZero() {
		panic(fmt.Sprintf("tmonkey/ast: missing %s", what))
	}
	for _, k := range kinds {
		if n.kind == k {
			return
		}
	}
	panic(fmt.Sprintf("tmonkey/ast: %s must be one of %v, got %v", what, kinds, n))
}
