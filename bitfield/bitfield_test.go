// Copyright 2025 wordpack Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bitfield

import (
	"fmt"
	"math/rand"
	"testing"
)

func TestWriteRead(t *testing.T) {
	tests := []struct {
		name     string
		startBit int
		width    int
		value    uint32
	}{
		{
			name:     "word start",
			startBit: 0,
			width:    8,
			value:    0xAB,
		},
		{
			name:     "mid word",
			startBit: 5,
			width:    11,
			value:    0x5F3,
		},
		{
			name:     "exact word end",
			startBit: 24,
			width:    8,
			value:    0xCD,
		},
		{
			name:     "straddles boundary",
			startBit: 28,
			width:    8,
			value:    0xAB,
		},
		{
			name:     "straddles with wide field",
			startBit: 17,
			width:    32,
			value:    0xDEADBEEF,
		},
		{
			name:     "full word aligned",
			startBit: 32,
			width:    32,
			value:    0xFFFFFFFF,
		},
		{
			name:     "single bit at boundary",
			startBit: 31,
			width:    1,
			value:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words := make([]uint32, 4)
			Write(words, tt.startBit, tt.width, tt.value)
			got := Read(words, tt.startBit, tt.width)
			if got != tt.value {
				t.Errorf("Read() = %#x, want %#x", got, tt.value)
			}
		})
	}
}

func TestWriteReadAllOffsets(t *testing.T) {
	// Every width at every sub-word offset, with neighbors on both sides to
	// catch bleed into adjacent fields.
	rng := rand.New(rand.NewSource(42))

	for width := 1; width <= 32; width++ {
		mask := uint32(0xFFFFFFFF)
		if width < 32 {
			mask = (1 << width) - 1
		}
		for off := 0; off < 64; off++ {
			words := make([]uint32, 4)
			before := rng.Uint32() & 1
			value := rng.Uint32() & mask

			if off > 0 {
				Write(words, off-1, 1, before)
			}
			Write(words, off, width, value)
			Write(words, off+width, 1, 1)

			if got := Read(words, off, width); got != value {
				t.Fatalf("width=%d off=%d: got %#x, want %#x", width, off, got, value)
			}
			if off > 0 {
				if got := Read(words, off-1, 1); got != before {
					t.Fatalf("width=%d off=%d: leading neighbor clobbered", width, off)
				}
			}
			if got := Read(words, off+width, 1); got != 1 {
				t.Fatalf("width=%d off=%d: trailing neighbor clobbered", width, off)
			}
		}
	}
}

func TestWriteValueMasking(t *testing.T) {
	// Bits above the field width must not leak into the buffer.
	words := make([]uint32, 2)
	Write(words, 4, 4, 0xFFFF)
	if words[0] != 0xF0 {
		t.Errorf("words[0] = %#x, want 0xf0", words[0])
	}
	if got := Read(words, 4, 4); got != 0xF {
		t.Errorf("Read() = %#x, want 0xf", got)
	}
}

func TestWritePastEnd(t *testing.T) {
	tests := []struct {
		name     string
		words    int
		startBit int
		width    int
		value    uint32
		wantBack uint32
	}{
		{
			name:     "entirely past end",
			words:    1,
			startBit: 32,
			width:    4,
			value:    0xF,
			wantBack: 0,
		},
		{
			name:     "tail dropped at last word",
			words:    1,
			startBit: 28,
			width:    8,
			value:    0xFF,
			wantBack: 0x0F, // high nibble had no word to land in
		},
		{
			name:     "empty buffer",
			words:    0,
			startBit: 0,
			width:    8,
			value:    0xAB,
			wantBack: 0,
		},
		{
			name:     "negative offset",
			words:    2,
			startBit: -1,
			width:    4,
			value:    0xF,
			wantBack: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words := make([]uint32, tt.words)
			Write(words, tt.startBit, tt.width, tt.value)
			if got := Read(words, tt.startBit, tt.width); got != tt.wantBack {
				t.Errorf("Read() = %#x, want %#x", got, tt.wantBack)
			}
		})
	}
}

func TestReadPastEnd(t *testing.T) {
	words := []uint32{0xFFFFFFFF}
	if got := Read(words, 32, 8); got != 0 {
		t.Errorf("Read past end = %#x, want 0", got)
	}
	if got := Read(words, 1000, 1); got != 0 {
		t.Errorf("Read far past end = %#x, want 0", got)
	}
	if got := Read(nil, 0, 8); got != 0 {
		t.Errorf("Read from nil = %#x, want 0", got)
	}
}

func TestZeroWidth(t *testing.T) {
	words := make([]uint32, 2)
	Write(words, 0, 0, 0xFFFFFFFF)
	if words[0] != 0 || words[1] != 0 {
		t.Errorf("zero-width write modified buffer: %#x %#x", words[0], words[1])
	}
	if got := Read([]uint32{0xFFFFFFFF}, 0, 0); got != 0 {
		t.Errorf("zero-width read = %#x, want 0", got)
	}
}

func TestMinWidth(t *testing.T) {
	tests := []struct {
		name   string
		values []uint32
		want   int
	}{
		{
			name:   "empty slice",
			values: []uint32{},
			want:   0,
		},
		{
			name:   "all zeros",
			values: []uint32{0, 0, 0, 0},
			want:   1,
		},
		{
			name:   "max 1 (1 bit)",
			values: []uint32{0, 1, 0, 1},
			want:   1,
		},
		{
			name:   "max 15 (4 bits)",
			values: []uint32{5, 12, 3, 15, 7},
			want:   4,
		},
		{
			name:   "max 100 (7 bits)",
			values: []uint32{100, 50, 25},
			want:   7,
		},
		{
			name:   "power of two needs extra bit",
			values: []uint32{2048},
			want:   12,
		},
		{
			name:   "single element",
			values: []uint32{42},
			want:   6, // 42 = 0b101010
		},
		{
			name:   "full width",
			values: []uint32{1 << 31, 100},
			want:   32,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MinWidth(tt.values)
			if got != tt.want {
				t.Errorf("MinWidth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		count int
		width int
		want  int
	}{
		{0, 4, 0},
		{8, 0, 0},
		{8, 4, 1},    // 32 bits exactly
		{8, 5, 2},    // 40 bits
		{1000, 3, 94}, // 3000 bits
		{8, 12, 3},   // 96 bits exactly
		{1, 1, 1},
		{3, 32, 3},
	}

	for _, tt := range tests {
		got := WordCount(tt.count, tt.width)
		if got != tt.want {
			t.Errorf("WordCount(%d, %d) = %d, want %d", tt.count, tt.width, got, tt.want)
		}
	}
}

// Benchmarks

func BenchmarkWrite(b *testing.B) {
	widths := []int{3, 11, 17}
	for _, width := range widths {
		n := 1024
		words := make([]uint32, WordCount(n, width))
		b.Run(fmt.Sprintf("width=%d", width), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 4))
			for i := 0; i < b.N; i++ {
				for j := range words {
					words[j] = 0
				}
				for j := 0; j < n; j++ {
					Write(words, j*width, width, uint32(j))
				}
			}
		})
	}
}

func BenchmarkRead(b *testing.B) {
	widths := []int{3, 11, 17}
	for _, width := range widths {
		n := 1024
		words := make([]uint32, WordCount(n, width))
		for j := 0; j < n; j++ {
			Write(words, j*width, width, uint32(j))
		}
		b.Run(fmt.Sprintf("width=%d", width), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 4))
			var sink uint32
			for i := 0; i < b.N; i++ {
				for j := 0; j < n; j++ {
					sink += Read(words, j*width, width)
				}
			}
			_ = sink
		})
	}
}
