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

package benchmark

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"
)

// DefaultRates are the link speeds, in Mbps, the report computes break-even
// latencies for.
var DefaultRates = []float64{1, 10, 100, 1000}

// Report renders measurement results as a plain-text report with one section
// per dataset. Strategies appear sorted by compression ratio and each one
// lists its break-even latency at the given link speeds. Nil rates means
// DefaultRates.
func Report(results []DatasetResult, rates []float64) string {
	if rates == nil {
		rates = DefaultRates
	}

	var b strings.Builder
	b.WriteString("=== BIT PACKING COMPRESSION BENCHMARK REPORT ===\n")
	fmt.Fprintf(&b, "Host: %s\n\n", Host())

	for _, dr := range results {
		fmt.Fprintf(&b, "Dataset: %s (%d values)\n", dr.Dataset, dr.Size)
		b.WriteString(strings.Repeat("-", 50) + "\n")
		if dr.Baseline != nil {
			fmt.Fprintf(&b, "Snappy baseline: %.2fx (%d -> %d bytes)\n",
				dr.Baseline.Ratio, dr.Baseline.RawBytes, dr.Baseline.CompressedBytes)
		}

		sorted := slices.Clone(dr.Results)
		slices.SortStableFunc(sorted, func(a, b Result) int {
			switch {
			case a.Ratio > b.Ratio:
				return -1
			case a.Ratio < b.Ratio:
				return 1
			}
			return 0
		})

		for _, r := range sorted {
			fmt.Fprintf(&b, "\nAlgorithm: %s\n", r.Strategy)
			fmt.Fprintf(&b, "  Compression Ratio: %.3fx\n", r.Ratio)
			fmt.Fprintf(&b, "  Compression Time: %.3f ms\n", ms(r.CompressTime))
			fmt.Fprintf(&b, "  Decompression Time: %.3f ms\n", ms(r.DecompressTime))
			fmt.Fprintf(&b, "  Random Access Time: %.3f µs\n", us(r.GetTime))
			fmt.Fprintf(&b, "  Original Size: %d bytes\n", r.OriginalBits/8)
			fmt.Fprintf(&b, "  Compressed Size: %d bytes\n", r.CompressedBits/8)
			for _, rate := range rates {
				threshold := r.BreakEven(rate)
				if math.IsInf(threshold, 1) {
					fmt.Fprintf(&b, "  Threshold at %g Mbps: Never beneficial\n", rate)
				} else {
					fmt.Fprintf(&b, "  Threshold at %g Mbps: %.3f ms latency\n", rate, threshold*1000)
				}
			}
		}

		b.WriteString("\n" + strings.Repeat("=", 70) + "\n\n")
	}

	return b.String()
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func us(d time.Duration) float64 {
	return float64(d) / float64(time.Microsecond)
}
