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

package intern_test

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmonkey-lang/tmonkey/internal/intern"
)

func TestIntern(t *testing.T) {
	t.Parallel()

	data := []string{
		"",
		"a",
		"abc",
		"?",
		"xy.z",
		"a_b_c",
		"very long",
		" ",
		"q",
		strings.Repeat("q", 36),
	}

	var table intern.Table
	for i := range 3 {
		for j, s := range data {
			id := table.Intern(s)
			assert.Equal(t, intern.ID(j), id, "round %d: %q", i, s)

			v, ok := table.Value(id)
			require.True(t, ok)
			assert.Equal(t, s, v)
		}
	}
	assert.Equal(t, len(data), table.Len())
}

func TestValueOutOfRange(t *testing.T) {
	t.Parallel()

	var table intern.Table
	_, ok := table.Value(0)
	assert.False(t, ok)

	id := table.Intern("x")
	_, ok = table.Value(id + 1)
	assert.False(t, ok)
	_, ok = table.Value(-1)
	assert.False(t, ok)
}

func TestInternBytesCopies(t *testing.T) {
	t.Parallel()

	var table intern.Table
	buf := []byte("fibo")
	id := table.InternBytes(buf)
	buf[0] = 'l'

	v, _ := table.Value(id)
	assert.Equal(t, "fibo", v)
	assert.Equal(t, id, table.Intern("fibo"))

	_, ok := table.Query("libo")
	assert.False(t, ok)
}

func TestConcurrentIntern(t *testing.T) {
	t.Parallel()

	var table intern.Table
	var wg sync.WaitGroup
	ids := make([][]intern.ID, 8)
	for g := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				ids[g] = append(ids[g], table.Intern(fmt.Sprint("name", i)))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, table.Len())
	for _, got := range ids[1:] {
		assert.Equal(t, ids[0], got)
	}
}
