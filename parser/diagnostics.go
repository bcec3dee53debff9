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

package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/tmonkey-lang/tmonkey/ast"
	"github.com/tmonkey-lang/tmonkey/report"
	"github.com/tmonkey-lang/tmonkey/token"
)

// ErrUnexpectedToken diagnoses a production that required a particular token
// next and found something else.
type ErrUnexpectedToken struct {
	Want, Got token.Kind
}

func (e ErrUnexpectedToken) Error() string {
	return fmt.Sprintf("expected next token to be: %v got: %v", e.Want, e.Got)
}

func (e ErrUnexpectedToken) Diagnose(d *report.Diagnostic) {
	if e.Got == token.EOF {
		d.With(report.Note("reached the end of the input"))
	}
}

// ErrUnknownToken diagnoses a token that cannot begin or continue an
// expression.
type ErrUnknownToken struct {
	Kind token.Kind
}

func (e ErrUnknownToken) Error() string {
	return fmt.Sprintf("unknown token: %v", e.Kind)
}

func (e ErrUnknownToken) Diagnose(d *report.Diagnostic) {
	if e.Kind == token.Dot {
		d.With(report.Note("member selection with `.` is not supported"))
	}
}

// ErrInvalidAssignTarget diagnoses an assignment to something other than a
// name or an index expression.
type ErrInvalidAssignTarget struct {
	Got ast.Kind
}

func (e ErrInvalidAssignTarget) Error() string {
	return fmt.Sprintf("expected identifier or index expr on left but got %v", e.Got)
}

func (e ErrInvalidAssignTarget) Diagnose(d *report.Diagnostic) {
	d.With(report.Note("only names and index expressions can be assigned to"))
}

// ErrBadLiteral diagnoses a number literal whose text cannot be converted to
// a value.
type ErrBadLiteral struct {
	Text string
	As   string // "integer" or "float".
	Err  error  // The underlying conversion error.
}

func (e ErrBadLiteral) Error() string {
	return fmt.Sprintf("can't parse %s as %s", e.Text, e.As)
}

func (e ErrBadLiteral) Unwrap() error {
	return e.Err
}

func (e ErrBadLiteral) Diagnose(d *report.Diagnostic) {
	if errors.Is(e.Err, strconv.ErrRange) {
		d.With(report.Note("value does not fit in a 64-bit %s", e.As))
	}
}

// ErrUnsupported diagnoses syntax that is recognized but not implemented.
type ErrUnsupported struct {
	What string
}

func (e ErrUnsupported) Error() string {
	return e.What + " are not supported"
}

func (e ErrUnsupported) Diagnose(*report.Diagnostic) {}

// ErrUnrecognizedChar diagnoses a character the lexer does not recognize.
// Lexing stops there, so everything from it onwards is not parsed.
type ErrUnrecognizedChar struct {
	Offset int
	Char   string
}

func (e ErrUnrecognizedChar) Error() string {
	return fmt.Sprintf("unrecognized character %q; remaining input ignored", e.Char)
}

func (e ErrUnrecognizedChar) Diagnose(d *report.Diagnostic) {
	d.With(report.Note("found at byte offset %d", e.Offset))
}
