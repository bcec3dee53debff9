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

package tmonkey

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/tmonkey-lang/tmonkey/ast"
	"github.com/tmonkey-lang/tmonkey/internal/intern"
	"github.com/tmonkey-lang/tmonkey/parser"
	"github.com/tmonkey-lang/tmonkey/report"
)

// Frontend parses batches of sources.
//
// A zero Frontend is ready to use. A Frontend may be used by several
// goroutines at once.
type Frontend struct {
	// The maximum number of sources to parse at once. If unspecified or set
	// to a non-positive value, then min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// will be used.
	Parallelism int

	// If set, every identifier in every source is interned into this table,
	// so equal names in different sources get equal IDs.
	Interner *intern.Table

	// If positive, the maximum number of diagnostics recorded per source.
	MaxDiagnostics int

	// If set, called with progress messages, in the manner of [fmt.Printf].
	// May be called from several goroutines at once.
	Trace func(format string, args ...any)
}

// Source is a named piece of source text.
type Source struct {
	Name string
	Text string
}

// Result is the outcome of parsing one [Source].
type Result struct {
	Name   string
	File   *ast.File
	Report report.Report
}

// Err returns every error-level diagnostic for this source joined together,
// or nil if the source parsed cleanly.
func (r *Result) Err() error {
	if err := r.Report.Err(); err != nil {
		return fmt.Errorf("%s: %w", r.Name, err)
	}
	return nil
}

// Parse parses each of sources, in parallel, and returns one result per
// source, in the same order.
//
// Syntax errors do not cause Parse to fail; they are recorded in each
// result's Report. The returned error is non-nil only if ctx is done before
// every source has been parsed, in which case no results are returned.
func (fe *Frontend) Parse(ctx context.Context, sources ...Source) ([]Result, error) {
	if len(sources) == 0 {
		return nil, nil
	}

	par := fe.Parallelism
	if par <= 0 {
		par = min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	}

	var opts []parser.Option
	if fe.Interner != nil {
		opts = append(opts, parser.WithInterner(fe.Interner))
	}
	if fe.MaxDiagnostics > 0 {
		opts = append(opts, parser.WithMaxDiagnostics(fe.MaxDiagnostics))
	}

	fe.trace("tmonkey: parsing %d sources, %d at a time", len(sources), par)

	results := make([]Result, len(sources))
	sem := semaphore.NewWeighted(int64(par))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		if err := sem.Acquire(gctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			if err := gctx.Err(); err != nil {
				return err
			}

			r := &results[i]
			r.Name = src.Name
			r.File = parser.Parse(src.Text, &r.Report, opts...)
			fe.trace("tmonkey: parsed %s: %d statements, %d diagnostics",
				src.Name, len(r.File.Decls()), r.Report.Len())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (fe *Frontend) trace(format string, args ...any) {
	if fe.Trace != nil {
		fe.Trace(format, args...)
	}
}
