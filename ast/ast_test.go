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

package ast_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmonkey-lang/tmonkey/ast"
	"github.com/tmonkey-lang/tmonkey/token"
)

func TestKinds(t *testing.T) {
	t.Parallel()

	kinds := ast.Kinds()
	assert.Len(t, kinds, 21)
	for _, k := range kinds {
		assert.NotEqual(t, k.IsExpr(), k.IsStmt(), "%v", k)
	}
	assert.Equal(t, "InfixExpr", ast.KindInfixExpr.String())
	assert.Equal(t, "ExprStmt", ast.KindExprStmt.String())
	assert.Equal(t, "ast.Kind(0)", ast.KindInvalid.String())
	assert.False(t, ast.KindInvalid.IsExpr())
	assert.False(t, ast.KindInvalid.IsStmt())
}

func TestBuild(t *testing.T) {
	t.Parallel()

	f := ast.New("a + 1")
	assert.Equal(t, "a + 1", f.Text())

	a := f.NewIdentifierExpr("a")
	one := f.NewIntegerExpr(1)
	sum := f.NewInfixExpr(token.New(token.Plus, "+"), a, one)
	stmt := f.NewExprStmt(sum)
	f.AddDecl(stmt)

	assert.Equal(t, []ast.Node{stmt}, f.Decls())
	assert.Equal(t, 4, f.Len())
	assert.Equal(t, ast.KindInfixExpr, sum.Kind())
	assert.True(t, sum.IsExpr())
	assert.True(t, stmt.IsStmt())
	assert.Equal(t, "InfixExpr#1", sum.String())
	assert.Equal(t, "ast.Node(nil)", ast.Node{}.String())

	infix := ast.Get[ast.InfixExpr](f, sum)
	assert.Equal(t, a, infix.Lhs)
	assert.Equal(t, one, infix.Rhs)
	assert.Equal(t, "a", ast.Get[ast.IdentifierExpr](f, a).Name)

	_, ok := ast.As[ast.IntegerExpr](f, sum)
	assert.False(t, ok)
	_, ok = ast.As[ast.IntegerExpr](f, ast.Node{})
	assert.False(t, ok)
	v, ok := ast.As[ast.IntegerExpr](f, one)
	require.True(t, ok)
	assert.Equal(t, int64(1), v.Value)

	// Handles stay valid as the arenas grow.
	for i := range 1000 {
		f.NewIntegerExpr(int64(i))
	}
	assert.Equal(t, int64(1), ast.Get[ast.IntegerExpr](f, one).Value)
}

func TestContracts(t *testing.T) {
	t.Parallel()

	f := ast.New("")
	x := f.NewIdentifierExpr("x")
	one := f.NewIntegerExpr(1)
	block := f.NewBlockStmt(nil)
	stmt := f.NewExprStmt(x)

	assert.Panics(t, func() { f.NewInfixExpr(token.New(token.Plus, "+"), x, ast.Node{}) })
	assert.Panics(t, func() { f.NewPrefixExpr(token.New(token.Plus, "+"), x) })
	assert.Panics(t, func() { f.NewIfExpr(x, x, ast.Node{}) })
	assert.Panics(t, func() { f.NewIfExpr(x, block, x) })
	assert.Panics(t, func() { f.NewAssignExpr(one, x) })
	assert.Panics(t, func() { f.NewLetStmt(one, x) })
	assert.Panics(t, func() { f.NewBlockStmt([]ast.Node{x}) })
	assert.Panics(t, func() { f.NewExprStmt(stmt) })
	assert.Panics(t, func() { f.AddDecl(x) })
	assert.Panics(t, func() { ast.Get[ast.StrExpr](f, x) })
	assert.Panics(t, func() { ast.Walk(f, ast.Node{}, nil) })

	assert.NotPanics(t, func() {
		f.NewIfExpr(x, block, ast.Node{})
		f.NewAssignExpr(f.NewIndexExpr(x, one), one)
		f.NewLetStmt(x, one)
	})
}

func TestSetChildren(t *testing.T) {
	t.Parallel()

	f := ast.New("")
	x := f.NewIdentifierExpr("x")
	y := f.NewIdentifierExpr("y")
	one := f.NewIntegerExpr(1)
	two := f.NewIntegerExpr(2)

	index := f.NewIndexExpr(x, one)
	f.SetLhs(index, y)
	f.SetIdx(index, two)
	got := ast.Get[ast.IndexExpr](f, index)
	assert.Equal(t, y, got.Lhs)
	assert.Equal(t, two, got.Idx)

	assign := f.NewAssignExpr(x, one)
	f.SetLhs(assign, index)
	f.SetRhs(assign, two)
	set := ast.Get[ast.AssignExpr](f, assign)
	assert.Equal(t, index, set.Lhs)
	assert.Equal(t, two, set.Rhs)

	assert.Panics(t, func() { f.SetLhs(assign, one) })
	assert.Panics(t, func() { f.SetLhs(index, ast.Node{}) })
	assert.Panics(t, func() { f.SetLhs(one, x) })
	assert.Panics(t, func() { f.SetRhs(assign, f.NewExprStmt(x)) })
	assert.Panics(t, func() { f.SetRhs(index, one) })
	assert.Panics(t, func() { f.SetIdx(assign, one) })
	assert.Equal(t, index, ast.Get[ast.AssignExpr](f, assign).Lhs)
}

func TestInspect(t *testing.T) {
	t.Parallel()

	f := ast.New("")
	cond := f.NewInfixExpr(token.New(token.Lt, "<"), f.NewIdentifierExpr("i"), f.NewIntegerExpr(10))
	body := f.NewBlockStmt([]ast.Node{
		f.NewExprStmt(f.NewCallExpr(f.NewIdentifierExpr("puts"), []ast.Node{f.NewStrExpr("hi")})),
	})
	loop := f.NewExprStmt(f.NewIfExpr(cond, body, ast.Node{}))

	var kinds []ast.Kind
	ast.Inspect(f, loop, func(n ast.Node) bool {
		kinds = append(kinds, n.Kind())
		return true
	})
	assert.Equal(t, []ast.Kind{
		ast.KindExprStmt,
		ast.KindIfExpr,
		ast.KindInfixExpr,
		ast.KindIdentifierExpr,
		ast.KindIntegerExpr,
		ast.KindBlockStmt,
		ast.KindExprStmt,
		ast.KindCallExpr,
		ast.KindIdentifierExpr,
		ast.KindStrExpr,
	}, kinds)

	// Pruning skips the whole subtree.
	kinds = kinds[:0]
	ast.Inspect(f, loop, func(n ast.Node) bool {
		kinds = append(kinds, n.Kind())
		return n.Kind() != ast.KindInfixExpr && n.Kind() != ast.KindBlockStmt
	})
	assert.Equal(t, []ast.Kind{
		ast.KindExprStmt,
		ast.KindIfExpr,
		ast.KindInfixExpr,
		ast.KindBlockStmt,
	}, kinds)

	// The absent else branch is not a child.
	children := slices.Collect(ast.Children(f, ast.Get[ast.ExprStmt](f, loop).Expr))
	assert.Equal(t, []ast.Node{cond, body}, children)
}

func TestHashMapChildren(t *testing.T) {
	t.Parallel()

	f := ast.New("")
	k1, v1 := f.NewStrExpr("a"), f.NewIntegerExpr(1)
	k2, v2 := f.NewStrExpr("b"), f.NewNullExpr()
	m := f.NewHashMapExpr([]ast.Pair{{Key: k1, Value: v1}, {Key: k2, Value: v2}})

	assert.Equal(t, []ast.Node{k1, v1, k2, v2}, slices.Collect(ast.Children(f, m)))
}
