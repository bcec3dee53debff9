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
	"strconv"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Encode converts the top-level statements of f into a protobuf list of
// structs, one per statement.
//
// Each node becomes a struct with a "kind" field naming its [Kind], plus one
// field per child or attribute. Integer literals are encoded as decimal
// strings so that no int64 loses precision.
func Encode(f *File) (*structpb.ListValue, error) {
	decls := make([]any, 0, len(f.Decls()))
	for _, n := range f.Decls() {
		decls = append(decls, encode(f, n))
	}
	return structpb.NewList(decls)
}

// EncodeNode is like [Encode], but for a single node.
func EncodeNode(f *File, n Node) (*structpb.Value, error) {
	return structpb.NewValue(encode(f, n))
}

// MarshalJSON renders [Encode]'s output as JSON.
//
// The exact whitespace of the output is not stable; compare decoded values,
// not bytes.
func MarshalJSON(f *File) ([]byte, error) {
	list, err := Encode(f)
	if err != nil {
		return nil, err
	}
	return protojson.Marshal(list)
}

func encode(f *File, n Node) map[string]any {
	if n.IsZero() {
		return nil
	}
	e := &encoder{f: f}
	Walk(f, n, e)
	e.out["kind"] = n.Kind().String()
	return e.out
}

// encoder is a [Visitor] that builds the structpb-compatible form of one
// node.
type encoder struct {
	f   *File
	out map[string]any
}

func (e *encoder) node(n Node) any {
	if n.IsZero() {
		return nil
	}
	return encode(e.f, n)
}

func (e *encoder) list(ns []Node) []any {
	out := make([]any, 0, len(ns))
	for _, n := range ns {
		out = append(out, e.node(n))
	}
	return out
}

func (e *encoder) VisitInfixExpr(_ Node, x *InfixExpr) {
	e.out = map[string]any{"op": x.Op.Kind.String(), "lhs": e.node(x.Lhs), "rhs": e.node(x.Rhs)}
}

func (e *encoder) VisitPrefixExpr(_ Node, x *PrefixExpr) {
	e.out = map[string]any{"op": x.Op.Kind.String(), "rhs": e.node(x.Rhs)}
}

func (e *encoder) VisitIfExpr(_ Node, x *IfExpr) {
	e.out = map[string]any{"cond": e.node(x.Cond), "conseq": e.node(x.Conseq)}
	if x.HasAlt() {
		e.out["alt"] = e.node(x.Alt)
	}
}

func (e *encoder) VisitWhileExpr(_ Node, x *WhileExpr) {
	e.out = map[string]any{"cond": e.node(x.Cond), "body": e.node(x.Body)}
}

func (e *encoder) VisitImportExpr(_ Node, x *ImportExpr) {
	e.out = map[string]any{"name": e.node(x.Name)}
}

func (e *encoder) VisitFnExpr(_ Node, x *FnExpr) {
	e.out = map[string]any{"params": e.list(x.Params), "body": e.node(x.Body)}
}

func (e *encoder) VisitCallExpr(_ Node, x *CallExpr) {
	e.out = map[string]any{"callee": e.node(x.Callee), "args": e.list(x.Args)}
}

func (e *encoder) VisitArrayExpr(_ Node, x *ArrayExpr) {
	e.out = map[string]any{"elements": e.list(x.Elements)}
}

func (e *encoder) VisitAssignExpr(_ Node, x *AssignExpr) {
	e.out = map[string]any{"lhs": e.node(x.Lhs), "rhs": e.node(x.Rhs)}
}

func (e *encoder) VisitIndexExpr(_ Node, x *IndexExpr) {
	e.out = map[string]any{"lhs": e.node(x.Lhs), "idx": e.node(x.Idx)}
}

func (e *encoder) VisitHashMapExpr(_ Node, x *HashMapExpr) {
	pairs := make([]any, 0, len(x.Pairs))
	for _, p := range x.Pairs {
		pairs = append(pairs, map[string]any{"key": e.node(p.Key), "value": e.node(p.Value)})
	}
	e.out = map[string]any{"pairs": pairs}
}

func (e *encoder) VisitIdentifierExpr(_ Node, x *IdentifierExpr) {
	e.out = map[string]any{"name": x.Name}
	if x.Interned {
		e.out["id"] = int64(x.ID)
	}
}

func (e *encoder) VisitNullExpr(Node, *NullExpr) {
	e.out = map[string]any{}
}

func (e *encoder) VisitBoolExpr(_ Node, x *BoolExpr) {
	e.out = map[string]any{"value": x.Value}
}

func (e *encoder) VisitIntegerExpr(_ Node, x *IntegerExpr) {
	e.out = map[string]any{"value": strconv.FormatInt(x.Value, 10)}
}

func (e *encoder) VisitFloatExpr(_ Node, x *FloatExpr) {
	e.out = map[string]any{"value": x.Value}
}

func (e *encoder) VisitStrExpr(_ Node, x *StrExpr) {
	e.out = map[string]any{"value": x.Value}
}

func (e *encoder) VisitLetStmt(_ Node, s *LetStmt) {
	e.out = map[string]any{"name": e.node(s.Name), "value": e.node(s.Value)}
}

func (e *encoder) VisitRetStmt(_ Node, s *RetStmt) {
	e.out = map[string]any{"value": e.node(s.Value)}
}

func (e *encoder) VisitBlockStmt(_ Node, s *BlockStmt) {
	e.out = map[string]any{"body": e.list(s.Body)}
}

func (e *encoder) VisitExprStmt(_ Node, s *ExprStmt) {
	e.out = map[string]any{"expr": e.node(s.Expr)}
}
