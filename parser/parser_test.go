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

package parser_test

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmonkey-lang/tmonkey/ast"
	"github.com/tmonkey-lang/tmonkey/internal/intern"
	"github.com/tmonkey-lang/tmonkey/parser"
	"github.com/tmonkey-lang/tmonkey/printer"
	"github.com/tmonkey-lang/tmonkey/report"
	"github.com/tmonkey-lang/tmonkey/token"
)

const fibo = `
let fibo = fn(x) {
  if (x <= 1) {
    return x;
  }
  return fibo(x - 1) + fibo(x - 2);
};

puts(fibo(20));
`

// parse parses text and requires that it produced no diagnostics and
// exactly one top-level expression statement, whose expression it returns.
func parse(t *testing.T, text string) (*ast.File, ast.Node) {
	t.Helper()

	errs := new(report.Report)
	file := parser.Parse(text, errs)
	require.Zero(t, errs.Len(), errs.String())
	require.Len(t, file.Decls(), 1)
	return file, ast.Get[ast.ExprStmt](file, file.Decls()[0]).Expr
}

func TestPrecedence(t *testing.T) {
	t.Parallel()

	file, expr := parse(t, "1 + 2 * 3")
	add := ast.Get[ast.InfixExpr](file, expr)
	assert.Equal(t, token.Plus, add.Op.Kind)
	assert.Equal(t, int64(1), ast.Get[ast.IntegerExpr](file, add.Lhs).Value)

	mul := ast.Get[ast.InfixExpr](file, add.Rhs)
	assert.Equal(t, token.Star, mul.Op.Kind)
	assert.Equal(t, int64(2), ast.Get[ast.IntegerExpr](file, mul.Lhs).Value)
	assert.Equal(t, int64(3), ast.Get[ast.IntegerExpr](file, mul.Rhs).Value)

	file, expr = parse(t, "(1 + 2) * 3")
	mul = ast.Get[ast.InfixExpr](file, expr)
	assert.Equal(t, token.Star, mul.Op.Kind)
	assert.Equal(t, ast.KindInfixExpr, mul.Lhs.Kind())
	assert.Equal(t, ast.KindIntegerExpr, mul.Rhs.Kind())

	file, expr = parse(t, "a == b < c + d * e(f)[g]")
	eq := ast.Get[ast.InfixExpr](file, expr)
	assert.Equal(t, token.EqEq, eq.Op.Kind)
	lt := ast.Get[ast.InfixExpr](file, eq.Rhs)
	assert.Equal(t, token.Lt, lt.Op.Kind)
	add = ast.Get[ast.InfixExpr](file, lt.Rhs)
	assert.Equal(t, token.Plus, add.Op.Kind)
	mul = ast.Get[ast.InfixExpr](file, add.Rhs)
	assert.Equal(t, token.Star, mul.Op.Kind)
	idx := ast.Get[ast.IndexExpr](file, mul.Rhs)
	assert.Equal(t, ast.KindCallExpr, idx.Lhs.Kind())
}

func TestUnary(t *testing.T) {
	t.Parallel()

	file, expr := parse(t, "-1")
	neg := ast.Get[ast.PrefixExpr](file, expr)
	assert.Equal(t, token.Minus, neg.Op.Kind)
	assert.Equal(t, int64(1), ast.Get[ast.IntegerExpr](file, neg.Rhs).Value)

	// Unary binds tighter than any binary operator.
	file, expr = parse(t, "-a * b")
	mul := ast.Get[ast.InfixExpr](file, expr)
	assert.Equal(t, ast.KindPrefixExpr, mul.Lhs.Kind())

	// But looser than calls.
	file, expr = parse(t, "!f(x)")
	not := ast.Get[ast.PrefixExpr](file, expr)
	assert.Equal(t, ast.KindCallExpr, not.Rhs.Kind())
}

func TestAssignTarget(t *testing.T) {
	t.Parallel()

	errs := new(report.Report)
	file := parser.Parse("1 = 2;", errs)
	assert.Equal(t, 1, errs.Errors())
	for _, decl := range file.Decls() {
		ast.Inspect(file, decl, func(n ast.Node) bool {
			assert.NotEqual(t, ast.KindAssignExpr, n.Kind())
			return true
		})
	}

	var target parser.ErrInvalidAssignTarget
	require.ErrorAs(t, errs.Err(), &target)
	assert.Equal(t, ast.KindIntegerExpr, target.Got)

	for _, text := range []string{"a = 1;", "a[0] = 1;"} {
		file, expr := parse(t, text)
		assign := ast.Get[ast.AssignExpr](file, expr)
		assert.Equal(t, int64(1), ast.Get[ast.IntegerExpr](file, assign.Rhs).Value, text)
	}
}

func TestFibo(t *testing.T) {
	t.Parallel()

	errs := new(report.Report)
	file := parser.Parse(fibo, errs)
	require.Zero(t, errs.Len(), errs.String())
	require.Len(t, file.Decls(), 2)

	let := ast.Get[ast.LetStmt](file, file.Decls()[0])
	assert.Equal(t, "fibo", ast.Get[ast.IdentifierExpr](file, let.Name).Name)
	fn := ast.Get[ast.FnExpr](file, let.Value)
	require.Len(t, fn.Params, 1)
	body := ast.Get[ast.BlockStmt](file, fn.Body).Body
	require.Len(t, body, 2)

	ifExpr := ast.Get[ast.IfExpr](file, ast.Get[ast.ExprStmt](file, body[0]).Expr)
	assert.False(t, ifExpr.HasAlt())
	conseq := ast.Get[ast.BlockStmt](file, ifExpr.Conseq).Body
	require.Len(t, conseq, 1)
	assert.Equal(t, ast.KindRetStmt, conseq[0].Kind())

	sum := ast.Get[ast.InfixExpr](file, ast.Get[ast.RetStmt](file, body[1]).Value)
	assert.Equal(t, token.Plus, sum.Op.Kind)
	assert.Equal(t, ast.KindCallExpr, sum.Lhs.Kind())
	assert.Equal(t, ast.KindCallExpr, sum.Rhs.Kind())

	puts := ast.Get[ast.CallExpr](file, ast.Get[ast.ExprStmt](file, file.Decls()[1]).Expr)
	assert.Equal(t, "puts", ast.Get[ast.IdentifierExpr](file, puts.Callee).Name)
	require.Len(t, puts.Args, 1)
	inner := ast.Get[ast.CallExpr](file, puts.Args[0])
	assert.Equal(t, "fibo", ast.Get[ast.IdentifierExpr](file, inner.Callee).Name)
	require.Len(t, inner.Args, 1)
	assert.Equal(t, int64(20), ast.Get[ast.IntegerExpr](file, inner.Args[0]).Value)
}

func TestDeterministic(t *testing.T) {
	t.Parallel()

	a := printer.Print(parser.Parse(fibo, nil))
	b := printer.Print(parser.Parse(fibo, nil))
	assert.Equal(t, a, b)
}

func TestFailedStatementsAreSkipped(t *testing.T) {
	t.Parallel()

	errs := new(report.Report)
	file := parser.Parse("let = 1;\nlet a = 2;\nif (a { }\nb;", errs)
	assert.Positive(t, errs.Errors())

	var kinds []ast.Kind
	for _, decl := range file.Decls() {
		kinds = append(kinds, decl.Kind())
	}
	assert.Contains(t, kinds, ast.KindLetStmt)
	assert.Equal(t, ast.KindExprStmt, kinds[len(kinds)-1])

	var want parser.ErrUnexpectedToken
	require.ErrorAs(t, errs.Err(), &want)
	assert.Equal(t, token.Identifier, want.Want)
	assert.Equal(t, token.Eq, want.Got)
}

func TestTrailingComma(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"[1,]", "f(1,)", "fn(a,){ 1 }", `{1: 2,}`} {
		errs := new(report.Report)
		file := parser.Parse(text, errs)
		assert.Positive(t, errs.Errors(), text)
		assert.Empty(t, file.Decls(), text)
	}
}

func TestImport(t *testing.T) {
	t.Parallel()

	errs := new(report.Report)
	file := parser.Parse(`let m = import("m");`, errs)

	// The parenthesized argument is all that survives.
	require.Len(t, file.Decls(), 1)
	assert.Equal(t, ast.KindExprStmt, file.Decls()[0].Kind())

	var unsupported parser.ErrUnsupported
	require.ErrorAs(t, errs.Err(), &unsupported)
}

func TestBadLiteral(t *testing.T) {
	t.Parallel()

	errs := new(report.Report)
	parser.Parse("let big = 9223372036854775808;", errs)

	var bad parser.ErrBadLiteral
	require.ErrorAs(t, errs.Err(), &bad)
	assert.Equal(t, "9223372036854775808", bad.Text)
	assert.Equal(t, "integer", bad.As)
	assert.ErrorIs(t, errs.Err(), strconv.ErrRange)

	_, expr := parse(t, "9223372036854775807")
	assert.Equal(t, ast.KindIntegerExpr, expr.Kind())
}

func TestFloatOverflow(t *testing.T) {
	t.Parallel()

	errs := new(report.Report)
	text := strings.Repeat("9", 400) + ".0"
	file := parser.Parse(text, errs)
	assert.Empty(t, file.Decls())

	var bad parser.ErrBadLiteral
	require.ErrorAs(t, errs.Err(), &bad)
	assert.Equal(t, text, bad.Text)
	assert.Equal(t, "float", bad.As)
	assert.ErrorIs(t, errs.Err(), strconv.ErrRange)
	assert.Contains(t, errs.String(), "value does not fit in a 64-bit float")
}

func TestUnrecognizedChar(t *testing.T) {
	t.Parallel()

	errs := new(report.Report)
	file := parser.Parse("a; b; 🇺🇸 c;", errs)
	assert.Len(t, file.Decls(), 2)
	assert.Zero(t, errs.Errors())
	require.Equal(t, 1, errs.Len())

	d := errs.Diagnostics[0]
	assert.Equal(t, report.Warning, d.Level)
	var stop parser.ErrUnrecognizedChar
	require.True(t, errors.As(d.Err, &stop))
	assert.Equal(t, 6, stop.Offset)
	assert.Equal(t, "🇺🇸", stop.Char)
}

func TestMaxDiagnostics(t *testing.T) {
	t.Parallel()

	errs := &report.Report{Limit: 100}
	parser.Parse(") ) ) ) )", errs, parser.WithMaxDiagnostics(2))
	assert.Equal(t, 2, errs.Len())
	assert.Equal(t, 3, errs.Dropped())
	assert.Equal(t, 100, errs.Limit)
}

func TestInterner(t *testing.T) {
	t.Parallel()

	table := new(intern.Table)
	texts := []string{"let a = b;", "b = a + c;", "puts(a);"}
	files := make([]*ast.File, len(texts))

	var wg sync.WaitGroup
	for i, text := range texts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			files[i] = parser.Parse(text, nil, parser.WithInterner(table))
		}()
	}
	wg.Wait()

	assert.Equal(t, 4, table.Len()) // a, b, c, puts
	for _, file := range files {
		for _, decl := range file.Decls() {
			ast.Inspect(file, decl, func(n ast.Node) bool {
				if id, ok := ast.As[ast.IdentifierExpr](file, n); ok {
					assert.True(t, id.Interned)
					name, ok := table.Value(id.ID)
					assert.True(t, ok)
					assert.Equal(t, id.Name, name)
				}
				return true
			})
		}
	}

	file := parser.Parse("a", nil)
	expr := ast.Get[ast.ExprStmt](file, file.Decls()[0]).Expr
	assert.False(t, ast.Get[ast.IdentifierExpr](file, expr).Interned)
}
