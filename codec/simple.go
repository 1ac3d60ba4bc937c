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

import "github.com/wordpack/wordpack/bitfield"

// Simple is the densest strategy: every element is stored at the same
// minimal width and fields run back to back across word boundaries. Domain
// is unsigned 32-bit values.
type Simple struct{}

func (Simple) Name() string { return NameSimple }

// Compress packs values at the narrowest width that holds the maximum.
//
// Example:
//
//	enc, _ := codec.Simple{}.Compress([]int64{5, 12, 3, 15})
//	// 4-bit fields, one word instead of four
func (Simple) Compress(values []int64) (*Encoded, error) {
	u, err := toUint32(values)
	if err != nil {
		return nil, err
	}
	words, width := packFields(u)
	return &Encoded{
		Words: words,
		State: State{Kind: KindSimple, Count: len(u), Bits: width},
	}, nil
}

func (Simple) Decompress(enc *Encoded) ([]int64, error) {
	if err := checkKind(enc, KindSimple); err != nil {
		return nil, err
	}
	st := enc.State
	out := make([]int64, st.Count)
	for i := range out {
		out[i] = int64(bitfield.Read(enc.Words, i*st.Bits, st.Bits))
	}
	return out, nil
}

// Get reads element index straight from its bit offset, touching at most
// two words.
func (Simple) Get(enc *Encoded, index int) (int64, error) {
	if err := checkKind(enc, KindSimple); err != nil {
		return 0, err
	}
	if err := checkIndex(index, enc.State.Count); err != nil {
		return 0, err
	}
	return int64(bitfield.Read(enc.Words, index*enc.State.Bits, enc.State.Bits)), nil
}
