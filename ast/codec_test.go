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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/testing/protocmp"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/tmonkey-lang/tmonkey/ast"
	"github.com/tmonkey-lang/tmonkey/token"
)

func codecFile() *ast.File {
	f := ast.New("")
	x := f.NewInternedIdentifierExpr("x", 7)
	elems := []ast.Node{f.NewIntegerExpr(math.MaxInt64), f.NewFloatExpr(2.5), f.NewNullExpr()}
	f.AddDecl(f.NewLetStmt(x, f.NewArrayExpr(elems)))

	cond := f.NewPrefixExpr(token.New(token.Bang, "!"), f.NewBoolExpr(true))
	f.AddDecl(f.NewExprStmt(f.NewIfExpr(cond, f.NewBlockStmt(nil), ast.Node{})))
	return f
}

func TestEncode(t *testing.T) {
	t.Parallel()

	got, err := ast.Encode(codecFile())
	require.NoError(t, err)

	want, err := structpb.NewList([]any{
		map[string]any{
			"kind": "LetStmt",
			"name": map[string]any{"kind": "IdentifierExpr", "name": "x", "id": 7},
			"value": map[string]any{
				"kind": "ArrayExpr",
				"elements": []any{
					map[string]any{"kind": "IntegerExpr", "value": "9223372036854775807"},
					map[string]any{"kind": "FloatExpr", "value": 2.5},
					map[string]any{"kind": "NullExpr"},
				},
			},
		},
		map[string]any{
			"kind": "ExprStmt",
			"expr": map[string]any{
				"kind": "IfExpr",
				"cond": map[string]any{
					"kind": "PrefixExpr",
					"op":   "!",
					"rhs":  map[string]any{"kind": "BoolExpr", "value": true},
				},
				"conseq": map[string]any{"kind": "BlockStmt", "body": []any{}},
			},
		},
	})
	require.NoError(t, err)

	if diff := cmp.Diff(want, got, protocmp.Transform()); diff != "" {
		t.Errorf("Encode() mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeNode(t *testing.T) {
	t.Parallel()

	f := ast.New("")
	id := f.NewIdentifierExpr("y")
	got, err := ast.EncodeNode(f, id)
	require.NoError(t, err)

	fields := got.GetStructValue().GetFields()
	assert.Equal(t, "IdentifierExpr", fields["kind"].GetStringValue())
	assert.Equal(t, "y", fields["name"].GetStringValue())
	assert.NotContains(t, fields, "id")
}

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	f := codecFile()
	want, err := ast.Encode(f)
	require.NoError(t, err)

	for range 2 {
		data, err := ast.MarshalJSON(f)
		require.NoError(t, err)

		got := new(structpb.ListValue)
		require.NoError(t, protojson.Unmarshal(data, got))
		if diff := cmp.Diff(want, got, protocmp.Transform()); diff != "" {
			t.Errorf("MarshalJSON() round trip mismatch (-want +got):\n%s", diff)
		}
	}
}
