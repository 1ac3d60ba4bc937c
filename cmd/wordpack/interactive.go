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
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/wordpack/wordpack/codec"
)

// runInteractive packs integers typed on in, one dataset per line, letting
// the user pick a strategy each round. Exits on "quit" or end of input.
func runInteractive(in io.Reader, w io.Writer) error {
	fmt.Fprintln(w, "=== INTERACTIVE MODE ===")
	fmt.Fprintln(w, "Enter integers separated by spaces ('quit' to exit):")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(w, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "q" {
			break
		}
		if line == "" {
			continue
		}

		values, err := parseInts(line)
		if err != nil {
			fmt.Fprintln(w, "Please enter valid integers.")
			continue
		}

		fmt.Fprintf(w, "\nTesting with data: %v\n\n", values)
		names := codec.Names()
		fmt.Fprintln(w, "Available strategies:")
		for i, name := range names {
			desc, err := codec.Describe(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%d. %s: %s\n", i+1, titleCase(name), truncate(desc, 80))
		}

		fmt.Fprintf(w, "Choose a strategy (1-%d): ", len(names))
		name := names[0]
		if !scanner.Scan() {
			break
		}
		if idx, err := strconv.Atoi(strings.TrimSpace(scanner.Text())); err == nil && idx >= 1 && idx <= len(names) {
			name = names[idx-1]
		} else {
			fmt.Fprintln(w, "Invalid choice, using simple packing.")
		}

		c, err := codec.New(name)
		if err != nil {
			return err
		}
		enc, err := c.Compress(values)
		if err != nil {
			fmt.Fprintf(w, "Compression failed: %v\n", err)
			continue
		}
		decoded, err := c.Decompress(enc)
		if err != nil {
			return err
		}

		originalBits := len(values) * 32
		compressedBits := enc.SizeBits()
		fmt.Fprintf(w, "\nResults for %s packing:\n", name)
		fmt.Fprintf(w, "Original: %v\n", values)
		fmt.Fprintf(w, "Compressed size: %d words\n", len(enc.Words))
		fmt.Fprintf(w, "Decompressed: %v\n", decoded)
		fmt.Fprintf(w, "Verification: %s\n", checkmark(slices.Equal(decoded, values)))
		if compressedBits > 0 {
			fmt.Fprintf(w, "Compression ratio: %.2fx\n", float64(originalBits)/float64(compressedBits))
		}
		saved := originalBits - compressedBits
		fmt.Fprintf(w, "Space saved: %d bits (%.1f bytes)\n", saved, float64(saved)/8)
	}

	fmt.Fprintln(w, "\nLeaving interactive mode.")
	return scanner.Err()
}

func parseInts(line string) ([]int64, error) {
	fields := strings.Fields(line)
	values := make([]int64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
