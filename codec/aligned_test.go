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

package codec

import (
	"math"
	"testing"

	"github.com/pkg/errors"

	"github.com/wordpack/wordpack/bitfield"
)

func TestAlignedNoStraddle(t *testing.T) {
	// Every field must sit wholly inside one word, whatever the width.
	for width := 1; width <= 32; width++ {
		per := bitfield.WordBits / width
		for i := 0; i < 100; i++ {
			pos := alignedPos(i, width, per)
			if pos%bitfield.WordBits+width > bitfield.WordBits {
				t.Fatalf("width=%d: element %d straddles at bit %d", width, i, pos)
			}
		}
	}
}

func TestAlignedLayout(t *testing.T) {
	// 3-bit fields, 10 to a word: 12 elements need the offset word plus two
	// data words.
	values := make([]int64, 12)
	for i := range values {
		values[i] = int64(i % 8)
	}
	enc, err := Aligned{}.Compress(values)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if enc.State.Bits != 3 {
		t.Errorf("Bits = %d, want 3", enc.State.Bits)
	}
	if len(enc.Words) != 3 {
		t.Errorf("words = %d, want 3", len(enc.Words))
	}
	if enc.State.MinOffset != 0 {
		t.Errorf("MinOffset = %d, want 0", enc.State.MinOffset)
	}
}

func TestAlignedNegative(t *testing.T) {
	values := []int64{-10, -5, 0, 5, 10, 15, -20, 100}

	enc, err := Aligned{}.Compress(values)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if enc.State.MinOffset != -20 {
		t.Errorf("MinOffset = %d, want -20", enc.State.MinOffset)
	}
	if got := int64(int32(enc.Words[0])); got != -20 {
		t.Errorf("offset word = %d, want -20", got)
	}
	// Shifted range is [0, 120], 7 bits.
	if enc.State.Bits != 7 {
		t.Errorf("Bits = %d, want 7", enc.State.Bits)
	}

	got, err := Aligned{}.Decompress(enc)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	for i := range values {
		if got[i] != values[i] {
			t.Errorf("value[%d] = %d, want %d", i, got[i], values[i])
		}
	}
	for i := range values {
		v, err := Aligned{}.Get(enc, i)
		if err != nil {
			t.Fatalf("Get(%d): %v", i, err)
		}
		if v != values[i] {
			t.Errorf("Get(%d) = %d, want %d", i, v, values[i])
		}
	}
}

func TestAlignedAllNegative(t *testing.T) {
	values := []int64{-100, -50, -75, -100, -1}
	enc, err := Aligned{}.Compress(values)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	got, err := Aligned{}.Decompress(enc)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	for i := range values {
		if got[i] != values[i] {
			t.Errorf("value[%d] = %d, want %d", i, got[i], values[i])
		}
	}
}

func TestAlignedEmptyHasNoOffsetWord(t *testing.T) {
	enc, err := Aligned{}.Compress(nil)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if len(enc.Words) != 0 {
		t.Errorf("empty input produced %d words, want 0", len(enc.Words))
	}
	out, err := Aligned{}.Decompress(enc)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("Decompress returned %d values, want 0", len(out))
	}
}

func TestAlignedDomain(t *testing.T) {
	tests := []struct {
		name   string
		values []int64
	}{
		{
			name:   "minimum below int32",
			values: []int64{math.MinInt32 - 1, 5},
		},
		{
			name:   "minimum above int32",
			values: []int64{math.MaxInt32 + 1, math.MaxInt32 + 2},
		},
		{
			name:   "span wider than 32 bits",
			values: []int64{-1, math.MaxUint32},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := (Aligned{}).Compress(tt.values); !errors.Is(err, ErrValueTooWide) {
				t.Errorf("Compress error = %v, want ErrValueTooWide", err)
			}
		})
	}

	// The full uint32 span with minimum 0 still fits.
	if _, err := (Aligned{}).Compress([]int64{0, math.MaxUint32}); err != nil {
		t.Errorf("Compress([0, MaxUint32]) error = %v, want nil", err)
	}
}
