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

package arena

import "github.com/tmonkey-lang/tmonkey/internal/ext/unsafex"

const (
	// BlockSize is the minimum size of a block allocated by a [Bump].
	BlockSize = 4096

	// Align is the alignment of every offset returned by [Bump.Alloc],
	// relative to the start of its block.
	Align = 16
)

// Bump is a bump allocator for raw bytes.
//
// Allocation takes the next aligned chunk of the current block. When the
// current block runs out, a new one of at least [BlockSize] bytes is started
// and the old one is kept as-is; blocks are never compacted or reused. There
// is no way to free an individual allocation: all of a Bump's memory is
// released together when the Bump becomes unreachable.
//
// A zero Bump is empty and ready to use. Bump is not safe for concurrent use.
type Bump struct {
	blocks [][]byte
	used   int // Bytes handed out from the last block.
	total  int
}

// Alloc returns n bytes of zeroed storage that is not shared with any other
// allocation. The result has capacity n, so appending to it cannot clobber a
// neighbour.
func (b *Bump) Alloc(n int) []byte {
	if n < 0 {
		panic("arena: negative allocation size")
	}
	if n == 0 {
		return nil
	}

	size := (n + Align - 1) &^ (Align - 1)
	if len(b.blocks) == 0 || size > len(b.blocks[len(b.blocks)-1])-b.used {
		b.blocks = append(b.blocks, make([]byte, max(size, BlockSize)))
		b.used = 0
	}

	block := b.blocks[len(b.blocks)-1]
	start := b.used
	b.used += size
	b.total += size
	return block[start : start+n : start+n]
}

// String copies s into the allocator and returns a string aliasing the copy.
//
// The result does not keep whatever buffer s pointed into alive.
func (b *Bump) String(s string) string {
	buf := b.Alloc(len(s))
	copy(buf, s)
	return unsafex.StringAlias(buf)
}

// Blocks returns the number of blocks allocated so far.
func (b *Bump) Blocks() int {
	return len(b.blocks)
}

// Allocated returns the number of bytes handed out so far, including
// alignment padding.
func (b *Bump) Allocated() int {
	return b.total
}
