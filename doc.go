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

// Package tmonkey is the front end of the tmonkey scripting language: it
// turns source text into a syntax tree.
//
// The work is split across several packages:
//
//   - [github.com/tmonkey-lang/tmonkey/lexer] splits text into tokens.
//   - [github.com/tmonkey-lang/tmonkey/parser] builds an [ast.File] from
//     those tokens, recording problems in a [report.Report].
//   - [github.com/tmonkey-lang/tmonkey/printer] renders a tree as text.
//   - [github.com/tmonkey-lang/tmonkey/ast] also encodes a tree as protobuf
//     or JSON.
//
// This package provides [Frontend], which parses many sources in parallel
// and interns all of their identifiers into one shared table.
package tmonkey
