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

// ZigZag packs signed values through the zigzag mapping, which interleaves
// the two signs so small magnitudes become small codes (0→0, -1→1, 1→2,
// -2→3, ...). The codes then pack densely with the simple layout. Natural
// domain is int32: a value whose code needs more than 32 bits is rejected.
type ZigZag struct{}

func (ZigZag) Name() string { return "zigzag" }

// zigzagEncode maps a signed value to its interleaved unsigned code.
func zigzagEncode(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63)
}

// zigzagDecode is the exact inverse of zigzagEncode.
func zigzagDecode(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

func (ZigZag) Compress(values []int64) (*Encoded, error) {
	codes := make([]uint32, len(values))
	for i, v := range values {
		c := zigzagEncode(v)
		if c > math.MaxUint32 {
			return nil, errors.Wrapf(ErrValueTooWide, "value %d at index %d after zigzag mapping", v, i)
		}
		codes[i] = uint32(c)
	}
	words, width := packFields(codes)
	return &Encoded{
		Words: words,
		State: State{Kind: KindZigZag, Count: len(codes), Bits: width},
	}, nil
}

func (ZigZag) Decompress(enc *Encoded) ([]int64, error) {
	if err := checkKind(enc, KindZigZag); err != nil {
		return nil, err
	}
	st := enc.State
	out := make([]int64, st.Count)
	for i := range out {
		out[i] = zigzagDecode(uint64(bitfield.Read(enc.Words, i*st.Bits, st.Bits)))
	}
	return out, nil
}

func (ZigZag) Get(enc *Encoded, index int) (int64, error) {
	if err := checkKind(enc, KindZigZag); err != nil {
		return 0, err
	}
	if err := checkIndex(index, enc.State.Count); err != nil {
		return 0, err
	}
	raw := bitfield.Read(enc.Words, index*enc.State.Bits, enc.State.Bits)
	return zigzagDecode(uint64(raw)), nil
}
