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

// Package report provides a sink for the diagnostics produced while parsing.
//
// Parsing never aborts on a syntax error. Each problem is appended to a
// [Report] as a [Diagnostic], and the parser carries on.
package report

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Error indicates malformed input; the offending construct is missing
	// from the tree.
	Error Level = 1 + iota
	// Warning indicates something that probably should not be ignored, but
	// did not stop any construct from being built.
	Warning
	// Remark is the diagnostics version of "info".
	Remark
)

// Level represents the severity of a diagnostic message.
type Level int8

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Remark:
		return "remark"
	default:
		return fmt.Sprintf("report.Level(%d)", int(l))
	}
}

// Diagnose is an error that can fill in the details of a [Diagnostic].
type Diagnose interface {
	error

	// Diagnose writes out this error to the given diagnostic.
	//
	// This function should not set Level nor Err; those are set by the
	// diagnostics framework.
	Diagnose(*Diagnostic)
}

// Diagnostic is a single recorded problem.
type Diagnostic struct {
	// The error that prompted this diagnostic. Its Error() return is used
	// as the diagnostic message.
	Err error

	// The severity of this diagnostic.
	Level Level

	// The grammar production that recorded this diagnostic, such as
	// "if expression". May be empty.
	Where string

	// Extra context, rendered after the message.
	Notes []string
}

// DiagnosticOption is an option that can be applied to a [Diagnostic].
type DiagnosticOption func(*Diagnostic)

// With applies the given options to this diagnostic.
func (d *Diagnostic) With(options ...DiagnosticOption) *Diagnostic {
	for _, option := range options {
		option(d)
	}
	return d
}

// String renders this diagnostic as a single line.
func (d *Diagnostic) String() string {
	var b strings.Builder
	b.WriteString("parser ")
	b.WriteString(d.Level.String())
	b.WriteString(": ")
	if d.Where != "" {
		b.WriteString(d.Where)
		b.WriteString(": ")
	}
	b.WriteString(d.Err.Error())
	for _, note := range d.Notes {
		b.WriteString("; note: ")
		b.WriteString(note)
	}
	return b.String()
}

// Where returns a DiagnosticOption that records which production the
// diagnostic came from.
func Where(production string) DiagnosticOption {
	return func(d *Diagnostic) { d.Where = production }
}

// Note returns a DiagnosticOption that provides the user with context about
// the diagnostic.
func Note(format string, args ...any) DiagnosticOption {
	return func(d *Diagnostic) {
		d.Notes = append(d.Notes, fmt.Sprintf(format, args...))
	}
}

// Report is a collection of diagnostics, in the order they were recorded.
//
// The zero value is empty and ready to use.
type Report struct {
	Diagnostics []Diagnostic

	// If positive, diagnostics past this many are silently dropped.
	Limit int

	dropped int
}

// Error pushes an error diagnostic onto this report.
func (r *Report) Error(err Diagnose) *Diagnostic {
	d := r.push(err, Error)
	err.Diagnose(d)
	return d
}

// Warn pushes a warning diagnostic onto this report.
func (r *Report) Warn(err Diagnose) *Diagnostic {
	d := r.push(err, Warning)
	err.Diagnose(d)
	return d
}

// Errorf creates a new error diagnostic with an unspecified error type;
// analogous to [fmt.Errorf].
func (r *Report) Errorf(format string, args ...any) *Diagnostic {
	return r.push(fmt.Errorf(format, args...), Error)
}

// Warnf creates a new warning diagnostic with an unspecified error type;
// analogous to [fmt.Errorf].
func (r *Report) Warnf(format string, args ...any) *Diagnostic {
	return r.push(fmt.Errorf(format, args...), Warning)
}

// Remarkf creates a new remark diagnostic with an unspecified error type;
// analogous to [fmt.Errorf].
func (r *Report) Remarkf(format string, args ...any) *Diagnostic {
	return r.push(fmt.Errorf(format, args...), Remark)
}

// Len returns the number of diagnostics recorded.
func (r *Report) Len() int {
	return len(r.Diagnostics)
}

// Errors returns the number of error-level diagnostics recorded.
func (r *Report) Errors() int {
	var n int
	for i := range r.Diagnostics {
		if r.Diagnostics[i].Level == Error {
			n++
		}
	}
	return n
}

// Dropped returns how many diagnostics were discarded because of Limit.
func (r *Report) Dropped() int {
	return r.dropped
}

// Err returns all error-level diagnostics joined into one error, or nil if
// there are none.
//
// The result wraps each diagnostic's Err, so it can be inspected with
// [errors.As].
func (r *Report) Err() error {
	var errs []error
	for i := range r.Diagnostics {
		d := &r.Diagnostics[i]
		if d.Level == Error {
			errs = append(errs, &diagnosticError{d})
		}
	}
	return errors.Join(errs...)
}

// String renders every diagnostic, one per line.
func (r *Report) String() string {
	var b strings.Builder
	for i := range r.Diagnostics {
		b.WriteString(r.Diagnostics[i].String())
		b.WriteByte('\n')
	}
	if r.dropped > 0 {
		fmt.Fprintf(&b, "parser remark: %d more diagnostics not shown\n", r.dropped)
	}
	return b.String()
}

// push is the core "make me a diagnostic" function.
//
// When the report is full, it returns a scratch diagnostic that is not
// recorded, so callers can apply options unconditionally.
func (r *Report) push(err error, level Level) *Diagnostic {
	if r.Limit > 0 && len(r.Diagnostics) >= r.Limit {
		r.dropped++
		return &Diagnostic{Err: err, Level: level}
	}

	r.Diagnostics = append(r.Diagnostics, Diagnostic{Err: err, Level: level})
	return &r.Diagnostics[len(r.Diagnostics)-1]
}

// diagnosticError adapts a [Diagnostic] to [error] for [Report.Err].
type diagnosticError struct {
	d *Diagnostic
}

func (e *diagnosticError) Error() string {
	return e.d.String()
}

func (e *diagnosticError) Unwrap() error {
	return e.d.Err
}
