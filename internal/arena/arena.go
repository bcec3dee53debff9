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

// Package arena provides the two allocation strategies used by the front end.
//
// [Arena] is a typed store addressed by small integer handles. Syntax nodes
// live in one of these per node kind, and refer to each other by [Pointer]
// rather than by Go pointer.
//
// [Bump] is a byte-oriented bump allocator. It hands out aligned chunks of
// large blocks, and only ever releases memory all at once.
package arena

import (
	"fmt"
	"iter"
	"math/bits"
	"strings"
)

const (
	minSliceShift = 4
	minSliceLen   = 1 << minSliceShift
)

// Untyped is an arena handle whose element type has been erased.
//
// The value of a handle is one plus the number of elements allocated before
// it, so the zero value is nil.
type Untyped uint32

// Nil returns whether this handle is nil.
func (p Untyped) Nil() bool {
	return p == 0
}

// Pointer is a handle to a T allocated in an [Arena].
//
// The zero value is nil.
type Pointer[T any] Untyped

// Nil returns whether this handle is nil.
func (p Pointer[T]) Nil() bool {
	return Untyped(p).Nil()
}

// In looks up this handle in the arena that allocated it.
func (p Pointer[T]) In(a *Arena[T]) *T {
	return a.At(Untyped(p))
}

// Arena is a store of Ts that never moves a value once it has been added.
//
// It keeps a table of slices whose capacities double, the same way an
// ordinary slice grows, except that full slices are retained instead of
// copied. Lookup is O(1).
//
// A zero Arena is empty and ready to use.
type Arena[T any] struct {
	// table[0] has capacity minSliceLen, and every later slice twice the
	// capacity of the one before it. Every slice but the last is full.
	table [][]T
}

// New adds value to the arena and returns a handle to it.
func (a *Arena[T]) New(value T) Pointer[T] {
	if a.table == nil {
		a.table = [][]T{make([]T, 0, minSliceLen)}
	}

	last := &a.table[len(a.table)-1]
	if len(*last) == cap(*last) {
		a.table = append(a.table, make([]T, 0, 2*cap(*last)))
		last = &a.table[len(a.table)-1]
	}

	*last = append(*last, value)
	return Pointer[T](a.Len())
}

// Deref returns the value p refers to. Panics if p is nil or was not
// allocated by a.
func (a *Arena[T]) Deref(p Pointer[T]) *T {
	return a.At(Untyped(p))
}

// At is like [Arena.Deref], but takes an untyped handle.
func (a *Arena[T]) At(p Untyped) *T {
	if p.Nil() {
		panic("arena: dereferenced nil pointer")
	}
	slice, idx := a.coordinates(int(p) - 1)
	return &a.table[slice][idx]
}

// Len returns the number of values allocated so far.
func (a *Arena[T]) Len() int {
	if len(a.table) == 0 {
		return 0
	}
	n := len(a.table) - 1
	return lenOfFirst(n) + len(a.table[n])
}

// All iterates over every value in allocation order, along with its handle.
func (a *Arena[T]) All() iter.Seq2[Pointer[T], *T] {
	return func(yield func(Pointer[T], *T) bool) {
		var n Pointer[T]
		for _, slice := range a.table {
			for i := range slice {
				n++
				if !yield(n, &slice[i]) {
					return
				}
			}
		}
	}
}

// String implements [fmt.Stringer]. Slice boundaries are shown with a |.
func (a *Arena[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, slice := range a.table {
		if i != 0 {
			b.WriteByte('|')
		}
		for j, v := range slice {
			if j != 0 {
				b.WriteByte(' ')
			}
			fmt.Fprint(&b, v)
		}
	}
	b.WriteByte(']')
	return b.String()
}

// lenOfFirst returns the total capacity of the first n slices of the table.
//
// This is minSliceLen * (2^0 + ... + 2^(n-1)) = (minSliceLen << n) - minSliceLen.
func lenOfFirst(n int) int {
	return (minSliceLen << n) - minSliceLen
}

// coordinates maps a zero-based index onto a slice of the table and an offset
// into it.
func (a *Arena[T]) coordinates(idx int) (int, int) {
	if idx < 0 || idx >= a.Len() {
		panic(fmt.Sprintf("arena: pointer out of range: %#x", idx+1))
	}

	// Slice n starts at index lenOfFirst(n), so idx+minSliceLen lies in
	// [minSliceLen << n, minSliceLen << (n+1)). Its bit length is therefore
	// n + minSliceShift + 1.
	slice := bits.Len(uint(idx+minSliceLen)) - minSliceShift - 1
	return slice, idx - lenOfFirst(slice)
}
