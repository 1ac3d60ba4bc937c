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

package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/wordpack/wordpack/codec"
)

// runDemo walks three characteristic inputs through every registered
// strategy, showing sizes, ratios, and round-trip plus random access checks.
func runDemo(w io.Writer) {
	fmt.Fprintln(w, "=== BIT PACKING STRATEGY DEMONSTRATION ===")
	fmt.Fprintln(w)

	examples := []struct {
		name   string
		values []int64
	}{
		{"Small values", []int64{1, 2, 3, 4, 5, 6, 7, 8}},
		{"Mixed values", []int64{1, 2, 3, 1024, 4, 5, 2048, 6}},
		{"Powers of two", []int64{1, 2, 4, 8, 16, 32, 64, 128}},
	}

	for _, ex := range examples {
		n := len(ex.values)
		fmt.Fprintf(w, "Example: %s\n", ex.name)
		fmt.Fprintf(w, "Original data: %v\n", ex.values)
		fmt.Fprintf(w, "Data size: %d integers = %d bits = %d bytes\n\n", n, n*32, n*4)

		for _, name := range codec.Names() {
			c, err := codec.New(name)
			if err != nil {
				fail(err)
			}
			demoStrategy(w, c, ex.values)
		}

		fmt.Fprintln(w, strings.Repeat("-", 60))
		fmt.Fprintln(w)
	}
}

func demoStrategy(w io.Writer, c codec.Codec, values []int64) {
	enc, err := c.Compress(values)
	if err != nil {
		fail(err)
	}
	decoded, err := c.Decompress(enc)
	if err != nil {
		fail(err)
	}

	testIndex := len(values) / 2
	direct, err := c.Get(enc, testIndex)
	if err != nil {
		fail(err)
	}

	bits := enc.SizeBits()
	ratio := 0.0
	if bits > 0 {
		ratio = float64(len(values)*32) / float64(bits)
	}

	fmt.Fprintf(w, "  %s compression:\n", titleCase(c.Name()))
	fmt.Fprintf(w, "    Compressed size: %d words = %d bits = %d bytes\n", len(enc.Words), bits, bits/8)
	fmt.Fprintf(w, "    Compression ratio: %.2fx\n", ratio)
	fmt.Fprintf(w, "    Verification: %s\n", checkmark(slices.Equal(decoded, values)))
	fmt.Fprintf(w, "    Random access (index %d): %d %s\n", testIndex, direct, checkmark(direct == values[testIndex]))
	if len(enc.State.Table) > 0 {
		fmt.Fprintf(w, "    Overflow values: %v\n", enc.State.Table)
	}
	fmt.Fprintln(w)
}
