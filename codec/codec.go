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

// Kind identifies which packing strategy produced a buffer.
type Kind uint8

const (
	KindSimple Kind = iota
	KindAligned
	KindOverflow
	KindZigZag
	KindSignSplit
)

var kindNames = [...]string{"simple", "aligned", "overflow", "zigzag", "signsplit"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

var (
	// ErrIndexOutOfRange reports a Get index outside [0, Count).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNegativeValue reports negative input to an unsigned-only strategy.
	ErrNegativeValue = errors.New("negative value")

	// ErrValueTooWide reports input that cannot be expressed in a 32-bit field.
	ErrValueTooWide = errors.New("value too wide")

	// ErrKindMismatch reports an Encoded value handed to a strategy other
	// than the one that produced it.
	ErrKindMismatch = errors.New("strategy mismatch")

	// ErrUnknownStrategy reports a registry lookup with a name that is not
	// one of the canonical identifiers.
	ErrUnknownStrategy = errors.New("unknown strategy")

	// ErrOverflowTable reports an encode-time side table whose index field
	// would be wider than the main field.
	ErrOverflowTable = errors.New("overflow table wider than main field")
)

// State describes how to interpret a packed buffer. Compress fills it in and
// it is never modified afterwards. Apart from the aligned strategy's leading
// offset word, a buffer does not self-describe its layout; without the
// matching State it is opaque.
type State struct {
	// Kind records the strategy that produced the buffer.
	Kind Kind

	// Count is the number of packed elements.
	Count int

	// Bits is the main field width. For the overflow strategy this excludes
	// the flag bit.
	Bits int

	// MinOffset is the value subtracted from every element before packing.
	// Only the aligned strategy sets it.
	MinOffset int64

	// HasOverflow reports whether a side table is in use.
	HasOverflow bool

	// Threshold is the largest value stored inline when HasOverflow is set.
	Threshold uint32

	// IndexBits is the width of a side table index. Compress guarantees
	// IndexBits <= Bits.
	IndexBits int

	// Table holds the deduplicated outliers in first-occurrence order. The
	// same values sit at the end of the buffer, one per word; Table is kept
	// for inspection and reporting.
	Table []uint32
}

// Encoded is the result of a Compress call: the packed words plus the State
// required to read them. Both halves are immutable once returned, so an
// Encoded value is safe to share across goroutines.
type Encoded struct {
	Words []uint32
	State State
}

// SizeBits returns the compressed size in bits, counting every buffer word
// including the aligned offset word and overflow side table.
func (e *Encoded) SizeBits() int {
	return len(e.Words) * bitfield.WordBits
}

// Codec is the contract shared by every packing strategy.
//
// Compress packs values and returns the buffer with its interpretation
// state; empty input yields an Encoded with no words and Count 0. Decompress
// reconstructs the full sequence in input order, duplicates preserved. Get
// returns the element at index without decoding the rest; it fails with
// ErrIndexOutOfRange when index is outside [0, Count), the one error every
// strategy guarantees.
type Codec interface {
	Name() string
	Compress(values []int64) (*Encoded, error)
	Decompress(enc *Encoded) ([]int64, error)
	Get(enc *Encoded, index int) (int64, error)
}

// checkKind guards Decompress and Get against a buffer produced by a
// different strategy, which would otherwise decode to garbage.
func checkKind(enc *Encoded, want Kind) error {
	if enc == nil {
		return errors.Wrap(ErrKindMismatch, "nil encoded value")
	}
	if enc.State.Kind != want {
		return errors.Wrapf(ErrKindMismatch, "buffer packed by %s, want %s", enc.State.Kind, want)
	}
	return nil
}

func checkIndex(index, count int) error {
	if index < 0 || index >= count {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d with %d elements", index, count)
	}
	return nil
}

// toUint32 validates the unsigned 32-bit domain shared by the simple and
// overflow strategies.
func toUint32(values []int64) ([]uint32, error) {
	out := make([]uint32, len(values))
	for i, v := range values {
		if v < 0 {
			return nil, errors.Wrapf(ErrNegativeValue, "value %d at index %d", v, i)
		}
		if v > math.MaxUint32 {
			return nil, errors.Wrapf(ErrValueTooWide, "value %d at index %d", v, i)
		}
		out[i] = uint32(v)
	}
	return out, nil
}

// packFields lays fixed-width fields back to back, straddling word
// boundaries, and returns the buffer with the chosen width.
func packFields(values []uint32) ([]uint32, int) {
	width := bitfield.MinWidth(values)
	words := make([]uint32, bitfield.WordCount(len(values), width))
	for i, v := range values {
		bitfield.Write(words, i*width, width, v)
	}
	return words, width
}
