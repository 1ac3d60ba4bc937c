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
	"math/bits"
	"slices"
	"sort"

	"github.com/pkg/errors"

	"github.com/wordpack/wordpack/bitfield"
)

// Overflow splits the stream into a narrow main region and a side table of
// outliers. Analysis derives a threshold from the width of the maximum;
// when few distinct values exceed it, each one is stored once, verbatim, in
// a word of its own after the main region and referenced inline by a
// flagged table index. Input without that profile degrades to plain simple
// packing at full width.
type Overflow struct{}

const (
	// The threshold field keeps 60% of the maximum's width, never below 3 bits.
	overflowThresholdShare   = 0.6
	overflowMinThresholdBits = 3

	// The side table only pays while outliers stay rare: under 30% of the
	// distinct values.
	overflowMaxTableShare = 0.3
)

func (Overflow) Name() string { return NameOverflow }

// analyzeOverflow picks the field layout for one input. The returned State
// still lacks Table, which the encode pass fills in first-occurrence order.
func analyzeOverflow(values []uint32) State {
	st := State{Kind: KindOverflow, Count: len(values), Bits: 1}
	if len(values) == 0 {
		return st
	}

	distinct := slices.Clone(values)
	slices.Sort(distinct)
	distinct = slices.Compact(distinct)
	if len(distinct) == 1 {
		st.Bits = bitfield.MinWidth(distinct)
		return st
	}

	maxBits := bits.Len32(distinct[len(distinct)-1])
	thrBits := max(overflowMinThresholdBits, int(float64(maxBits)*overflowThresholdShare))
	threshold := uint32(1)<<thrBits - 1

	cut := sort.Search(len(distinct), func(i int) bool { return distinct[i] > threshold })
	outliers := len(distinct) - cut

	if outliers > 0 && float64(outliers) < float64(len(distinct))*overflowMaxTableShare {
		st.HasOverflow = true
		st.Bits = thrBits
		st.Threshold = threshold
		st.IndexBits = bits.Len(uint(outliers)) // == ceil(log2(outliers+1))
	} else {
		st.Bits = maxBits
	}
	return st
}

// fieldWidth is the stored width of one element: the main width plus the
// flag bit when a side table is present.
func fieldWidth(st State) int {
	if st.HasOverflow {
		return st.Bits + 1
	}
	return st.Bits
}

func (Overflow) Compress(values []int64) (*Encoded, error) {
	u, err := toUint32(values)
	if err != nil {
		return nil, err
	}

	st := analyzeOverflow(u)
	if st.Count == 0 {
		return &Encoded{State: st}, nil
	}
	// A table index must fit the main field alongside the flag bit.
	if st.HasOverflow && st.IndexBits > st.Bits {
		return nil, errors.Wrapf(ErrOverflowTable, "%d index bits against %d main bits", st.IndexBits, st.Bits)
	}

	field := fieldWidth(st)
	main := make([]uint32, bitfield.WordCount(st.Count, field))
	var table []uint32
	var index map[uint32]int
	if st.HasOverflow {
		index = make(map[uint32]int)
	}

	for i, v := range u {
		f := v
		if st.HasOverflow && v > st.Threshold {
			pos, ok := index[v]
			if !ok {
				pos = len(table)
				index[v] = pos
				table = append(table, v)
			}
			f = uint32(1)<<st.Bits | uint32(pos)
		}
		bitfield.Write(main, i*field, field, f)
	}

	st.Table = table
	return &Encoded{Words: append(main, table...), State: st}, nil
}

// sideTable slices the overflow region off the end of the buffer.
func sideTable(enc *Encoded, field int) []uint32 {
	mainWords := bitfield.WordCount(enc.State.Count, field)
	if mainWords > len(enc.Words) {
		return nil
	}
	return enc.Words[mainWords:]
}

// resolveField maps one raw field to its value. A set flag bit redirects to
// the side table; an index past the table resolves to 0 rather than
// failing, matching the primitive's out-of-range policy.
func resolveField(st State, side []uint32, raw uint32) uint32 {
	if !st.HasOverflow {
		return raw
	}
	mask := uint32(1)<<st.Bits - 1
	if raw&(uint32(1)<<st.Bits) != 0 {
		idx := int(raw & mask)
		if idx < len(side) {
			return side[idx]
		}
		return 0
	}
	return raw & mask
}

func (Overflow) Decompress(enc *Encoded) ([]int64, error) {
	if err := checkKind(enc, KindOverflow); err != nil {
		return nil, err
	}
	st := enc.State
	out := make([]int64, st.Count)
	if st.Count == 0 {
		return out, nil
	}
	field := fieldWidth(st)
	side := sideTable(enc, field)
	for i := range out {
		raw := bitfield.Read(enc.Words, i*field, field)
		out[i] = int64(resolveField(st, side, raw))
	}
	return out, nil
}

// Get resolves element index with at most one extra word read for an
// outlier reference.
func (Overflow) Get(enc *Encoded, index int) (int64, error) {
	if err := checkKind(enc, KindOverflow); err != nil {
		return 0, err
	}
	if err := checkIndex(index, enc.State.Count); err != nil {
		return 0, err
	}
	st := enc.State
	field := fieldWidth(st)
	raw := bitfield.Read(enc.Words, index*field, field)
	return int64(resolveField(st, sideTable(enc, field), raw)), nil
}
