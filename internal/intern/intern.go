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

// Package intern provides an interning table, which gives each distinct
// string a small, stable integer handle.
package intern

import (
	"fmt"
	"sync"

	"github.com/tmonkey-lang/tmonkey/internal/arena"
	"github.com/tmonkey-lang/tmonkey/internal/ext/unsafex"
)

// ID is an interned string in a particular [Table].
//
// IDs are dense: the n-th distinct string interned into a table receives ID
// n-1. IDs from different tables must not be mixed.
type ID int32

// String implements [fmt.Stringer].
//
// Note that this will not convert the ID back into a string; to do that, you
// must call [Table.Value].
func (id ID) String() string {
	return fmt.Sprintf("intern.ID(%d)", int(id))
}

// Table is an interning table.
//
// Entries are append-only and are never evicted. The text of each entry is
// copied into storage owned by the table, so the table never keeps a
// caller's buffer alive.
//
// The zero value of Table is empty and ready to use. A Table may be used by
// multiple goroutines concurrently.
type Table struct {
	mu    sync.RWMutex
	index map[string]ID
	table []string
	text  arena.Bump
}

// Intern interns the given string into this table.
func (t *Table) Intern(s string) ID {
	// Fast path for strings that have already been interned.
	if id, ok := t.Query(s); ok {
		return id
	}
	return t.internSlow(s)
}

// InternBytes interns the given byte string into this table.
//
// bytes must not be modified until this function returns.
func (t *Table) InternBytes(bytes []byte) ID {
	// Intern only holds onto its argument after copying it, so aliasing
	// bytes for the duration of the call is fine.
	return t.Intern(unsafex.StringAlias(bytes))
}

// Query returns the ID of s, if s has already been interned.
func (t *Table) Query(s string) (ID, bool) {
	t.mu.RLock()
	id, ok := t.index[s]
	t.mu.RUnlock()
	return id, ok
}

// Value converts an [ID] back into its string.
//
// Returns false if id is not a valid ID for this table.
func (t *Table) Value(id ID) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if id < 0 || int(id) >= len(t.table) {
		return "", false
	}
	return t.table[id], true
}

// Len returns the number of distinct strings in this table.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.table)
}

func (t *Table) internSlow(s string) ID {
	t.mu.Lock()
	defer t.mu.Unlock()

	// Someone may have raced us between RUnlock and Lock.
	if id, ok := t.index[s]; ok {
		return id
	}

	if len(t.table) == 1<<31-1 {
		panic(fmt.Sprintf("intern: %d interning IDs exhausted", len(t.table)))
	}

	s = t.text.String(s)
	id := ID(len(t.table))
	t.table = append(t.table, s)
	if t.index == nil {
		t.index = make(map[string]ID)
	}
	t.index[s] = id

	return id
}
