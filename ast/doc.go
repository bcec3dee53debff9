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

// Package ast defines the syntax tree produced by the tmonkey parser.
//
// Every node lives in a [File], which owns one arena per node kind. Nodes
// refer to each other through [Node] handles, a kind tag plus an arena
// index, rather than through Go pointers. A File is the unit of ownership:
// all of its nodes are released together when it is dropped.
//
// The node types come in two families. Expressions:
//
//	InfixExpr PrefixExpr IfExpr WhileExpr ImportExpr FnExpr CallExpr
//	ArrayExpr AssignExpr IndexExpr HashMapExpr IdentifierExpr NullExpr
//	BoolExpr IntegerExpr FloatExpr StrExpr
//
// and statements:
//
//	LetStmt RetStmt BlockStmt ExprStmt
//
// if, while and fn are expressions, not statements.
//
// The New* methods on File are the only way to build nodes. They check that
// every required child is present and of the right family, and panic if it
// is not: a bad child is a bug in whoever is building the tree, never a
// property of the input.
//
// To dispatch on node kinds, implement [Visitor] and call [Walk].
package ast
