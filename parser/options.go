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

import "github.com/tmonkey-lang/tmonkey/internal/intern"

// Option configures a call to [Parse].
type Option func(*config)

type config struct {
	interner       *intern.Table
	maxDiagnostics int
}

// WithInterner interns the name of every identifier into t, and records the
// resulting ID on the identifier's node.
//
// The same table may be shared by concurrent calls to [Parse].
func WithInterner(t *intern.Table) Option {
	return func(c *config) { c.interner = t }
}

// WithMaxDiagnostics caps how many diagnostics a single call to [Parse]
// records. Parsing itself is unaffected; anything past the cap is only
// counted, see [report.Report.Dropped].
//
// n <= 0 means no cap.
func WithMaxDiagnostics(n int) Option {
	return func(c *config) { c.maxDiagnostics = n }
}
