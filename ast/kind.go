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

import "fmt"

const (
	KindInvalid Kind = iota

	KindInfixExpr
	KindPrefixExpr
	KindIfExpr
	KindWhileExpr
	KindImportExpr
	KindFnExpr
	KindCallExpr
	KindArrayExpr
	KindAssignExpr
	KindIndexExpr
	KindHashMapExpr
	KindIdentifierExpr
	KindNullExpr
	KindBoolExpr
	KindIntegerExpr
	KindFloatExpr
	KindStrExpr

	KindLetStmt
	KindRetStmt
	KindBlockStmt
	KindExprStmt

	kindCount
)

// Kind is the tag of a [Node]: which of the concrete node types it refers to.
type Kind int8

// IsExpr returns whether this is an expression kind.
func (k Kind) IsExpr() bool {
	return k >= KindInfixExpr && k <= KindStrExpr
}

// IsStmt returns whether this is a statement kind.
func (k Kind) IsStmt() bool {
	return k >= KindLetStmt && k <= KindExprStmt
}

// String implements [fmt.Stringer]. This is the name of the corresponding
// node type, such as "InfixExpr".
func (k Kind) String() string {
	if k > KindInvalid && k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("ast.Kind(%d)", int(k))
}

// Kinds returns every valid kind, in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindInvalid + 1; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

var kindNames = [...]string{
	KindInfixExpr:      "InfixExpr",
	KindPrefixExpr:     "PrefixExpr",
	KindIfExpr:         "IfExpr",
	KindWhileExpr:      "WhileExpr",
	KindImportExpr:     "ImportExpr",
	KindFnExpr:         "FnExpr",
	KindCallExpr:       "CallExpr",
	KindArrayExpr:      "ArrayExpr",
	KindAssignExpr:     "AssignExpr",
	KindIndexExpr:      "IndexExpr",
	KindHashMapExpr:    "HashMapExpr",
	KindIdentifierExpr: "IdentifierExpr",
	KindNullExpr:       "NullExpr",
	KindBoolExpr:       "BoolExpr",
	KindIntegerExpr:    "IntegerExpr",
	KindFloatExpr:      "FloatExpr",
	KindStrExpr:        "StrExpr",
	KindLetStmt:        "LetStmt",
	KindRetStmt:        "RetStmt",
	KindBlockStmt:      "BlockStmt",
	KindExprStmt:       "ExprStmt",
}
