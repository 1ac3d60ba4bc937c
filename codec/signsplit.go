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

// SignSplit stores signs apart from magnitudes: one sign bit per element up
// front, then the magnitudes packed with the simple straddling layout.
// Unlike ZigZag it accepts the full 32-bit magnitude range on both sides of
// zero, at the cost of one extra bit per element even for all-positive
// input. Negative zero cannot occur: the sign bit is only set for values
// strictly below zero.
type SignSplit struct{}

func (SignSplit) Name() string { return "signsplit" }

func (SignSplit) Compress(values []int64) (*Encoded, error) {
	if len(values) == 0 {
		return &Encoded{State: State{Kind: KindSignSplit}}, nil
	}

	mags := make([]uint32, len(values))
	for i, v := range values {
		m := uint64(v)
		if v < 0 {
			m = -m
		}
		if m > math.MaxUint32 {
			return nil, errors.Wrapf(ErrValueTooWide, "magnitude of %d at index %d", v, i)
		}
		mags[i] = uint32(m)
	}

	width := bitfield.MinWidth(mags)
	signWords := bitfield.WordCount(len(values), 1)
	words := make([]uint32, signWords+bitfield.WordCount(len(values), width))
	magBase := signWords * bitfield.WordBits
	for i, v := range values {
		if v < 0 {
			bitfield.Write(words, i, 1, 1)
		}
		bitfield.Write(words, magBase+i*width, width, mags[i])
	}

	return &Encoded{
		Words: words,
		State: State{Kind: KindSignSplit, Count: len(values), Bits: width},
	}, nil
}

// signSplitValue combines one sign bit with its magnitude field.
func signSplitValue(words []uint32, magBase, width, i int) int64 {
	v := int64(bitfield.Read(words, magBase+i*width, width))
	if bitfield.Read(words, i, 1) == 1 {
		v = -v
	}
	return v
}

func (SignSplit) Decompress(enc *Encoded) ([]int64, error) {
	if err := checkKind(enc, KindSignSplit); err != nil {
		return nil, err
	}
	st := enc.State
	out := make([]int64, st.Count)
	if st.Count == 0 {
		return out, nil
	}
	magBase := bitfield.WordCount(st.Count, 1) * bitfield.WordBits
	for i := range out {
		out[i] = signSplitValue(enc.Words, magBase, st.Bits, i)
	}
	return out, nil
}

func (SignSplit) Get(enc *Encoded, index int) (int64, error) {
	if err := checkKind(enc, KindSignSplit); err != nil {
		return 0, err
	}
	if err := checkIndex(index, enc.State.Count); err != nil {
		return 0, err
	}
	magBase := bitfield.WordCount(enc.State.Count, 1) * bitfield.WordBits
	return signSplitValue(enc.Words, magBase, enc.State.Bits, index), nil
}
