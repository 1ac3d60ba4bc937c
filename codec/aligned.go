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

	"github.com/pkg/errors"

	"github.com/wordpack/wordpack/bitfield"
)

// Aligned trades space for access speed: fields never straddle a word
// boundary, so reading an element touches exactly one word. The minimum
// value is subtracted from every element before width analysis, which
// extends the strategy to negative input; it is stored two's-complement in
// a single prefix word ahead of the data.
type Aligned struct{}

func (Aligned) Name() string { return NameAligned }

func (Aligned) Compress(values []int64) (*Encoded, error) {
	if len(values) == 0 {
		return &Encoded{State: State{Kind: KindAligned}}, nil
	}

	minVal := values[0]
	for _, v := range values[1:] {
		minVal = min(minVal, v)
	}
	if minVal < math.MinInt32 || minVal > math.MaxInt32 {
		return nil, errors.Wrapf(ErrValueTooWide, "minimum %d does not fit the offset word", minVal)
	}

	shifted := make([]uint32, len(values))
	for i, v := range values {
		// Exact in uint64: the true difference is always in [0, 2^64).
		d := uint64(v) - uint64(minVal)
		if d > math.MaxUint32 {
			return nil, errors.Wrapf(ErrValueTooWide, "value %d at index %d is more than 32 bits above minimum %d", v, i, minVal)
		}
		shifted[i] = uint32(d)
	}

	width := bitfield.MinWidth(shifted)
	per := bitfield.WordBits / width
	words := make([]uint32, 1+(len(values)+per-1)/per)
	words[0] = uint32(int32(minVal))
	for i, v := range shifted {
		bitfield.Write(words, alignedPos(i, width, per), width, v)
	}

	return &Encoded{
		Words: words,
		State: State{Kind: KindAligned, Count: len(values), Bits: width, MinOffset: minVal},
	}, nil
}

// alignedPos returns the absolute bit offset of element i. Data words start
// after the offset word; with per fields to a word, a field never crosses
// into the next word.
func alignedPos(i, width, per int) int {
	return (1+i/per)*bitfield.WordBits + (i%per)*width
}

// alignedBase reads the offset word back out of the buffer. The buffer is
// authoritative; State.MinOffset mirrors it for inspection.
func alignedBase(enc *Encoded) int64 {
	if len(enc.Words) == 0 {
		return 0
	}
	return int64(int32(enc.Words[0]))
}

func (Aligned) Decompress(enc *Encoded) ([]int64, error) {
	if err := checkKind(enc, KindAligned); err != nil {
		return nil, err
	}
	st := enc.State
	out := make([]int64, st.Count)
	if st.Count == 0 {
		return out, nil
	}
	base := alignedBase(enc)
	per := bitfield.WordBits / st.Bits
	for i := range out {
		out[i] = base + int64(bitfield.Read(enc.Words, alignedPos(i, st.Bits, per), st.Bits))
	}
	return out, nil
}

// Get reads element index from the single word that holds it.
func (Aligned) Get(enc *Encoded, index int) (int64, error) {
	if err := checkKind(enc, KindAligned); err != nil {
		return 0, err
	}
	if err := checkIndex(index, enc.State.Count); err != nil {
		return 0, err
	}
	st := enc.State
	per := bitfield.WordBits / st.Bits
	raw := bitfield.Read(enc.Words, alignedPos(index, st.Bits, per), st.Bits)
	return alignedBase(enc) + int64(raw), nil
}
