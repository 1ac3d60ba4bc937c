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
	"math"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/wordpack/wordpack/codec"
)

// DefaultIterations is the number of timed Compress and Decompress calls per
// measurement when the Suite does not specify one.
const DefaultIterations = 100

// maxSampledIndices bounds how many random positions the Get timing touches
// per round, so huge datasets do not turn the access measurement into a
// second decompression measurement.
const maxSampledIndices = 100

// Result holds one strategy's measurements on one dataset. Times are means
// over the Suite's iterations; GetTime is per element access.
type Result struct {
	Strategy       string
	CompressTime   time.Duration
	DecompressTime time.Duration
	GetTime        time.Duration
	OriginalBits   int
	CompressedBits int

	// Ratio is OriginalBits over CompressedBits, taking every value as a
	// 32-bit word on the wire. Zero for an empty dataset.
	Ratio float64
}

// BreakEven returns the one-way latency in seconds above which compressing
// before transmission at the given link speed is a net win, or +Inf when the
// processing overhead exceeds the transmission time saved at any latency.
func (r Result) BreakEven(mbps float64) float64 {
	bps := mbps * 1e6
	saved := float64(r.OriginalBits)/bps - float64(r.CompressedBits)/bps
	overhead := (r.CompressTime + r.DecompressTime).Seconds()
	if saved <= overhead {
		return math.Inf(1)
	}
	return overhead / (saved - overhead)
}

// Suite times codecs. The zero value uses DefaultIterations.
type Suite struct {
	// Iterations is the number of timed Compress and Decompress calls per
	// measurement. Get timing runs a tenth as many rounds.
	Iterations int
}

// NewSuite returns a Suite running the given number of iterations per
// measurement, or DefaultIterations when iterations <= 0.
func NewSuite(iterations int) *Suite {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	return &Suite{Iterations: iterations}
}

func (s *Suite) iterations() int {
	if s == nil || s.Iterations <= 0 {
		return DefaultIterations
	}
	return s.Iterations
}

// Measure benchmarks one codec on one dataset: Compress and Decompress over
// the Suite's iterations, then random access over sampled positions. The
// returned Result carries mean times and the size metrics.
func (s *Suite) Measure(c codec.Codec, values []int64) (Result, error) {
	iters := s.iterations()
	res := Result{Strategy: c.Name(), OriginalBits: len(values) * 32}

	var enc *codec.Encoded
	var compressTotal time.Duration
	for i := 0; i < iters; i++ {
		start := time.Now()
		e, err := c.Compress(values)
		compressTotal += time.Since(start)
		if err != nil {
			return Result{}, errors.Wrapf(err, "compress with %s", c.Name())
		}
		enc = e
	}
	res.CompressTime = compressTotal / time.Duration(iters)
	res.CompressedBits = enc.SizeBits()
	if res.CompressedBits > 0 {
		res.Ratio = float64(res.OriginalBits) / float64(res.CompressedBits)
	}

	var decompressTotal time.Duration
	for i := 0; i < iters; i++ {
		start := time.Now()
		if _, err := c.Decompress(enc); err != nil {
			return Result{}, errors.Wrapf(err, "decompress with %s", c.Name())
		}
		decompressTotal += time.Since(start)
	}
	res.DecompressTime = decompressTotal / time.Duration(iters)

	if len(values) > 0 {
		indices := sampleIndices(len(values))
		rounds := max(1, iters/10)
		var getTotal time.Duration
		for i := 0; i < rounds; i++ {
			start := time.Now()
			for _, idx := range indices {
				if _, err := c.Get(enc, idx); err != nil {
					return Result{}, errors.Wrapf(err, "get index %d with %s", idx, c.Name())
				}
			}
			getTotal += time.Since(start)
		}
		res.GetTime = getTotal / time.Duration(rounds*len(indices))
	}

	return res, nil
}

// sampleIndices picks up to maxSampledIndices random positions in [0, n).
// Duplicates are fine; access timing does not care which cells it hits.
func sampleIndices(n int) []int {
	count := min(maxSampledIndices, n)
	indices := make([]int, count)
	for i := range indices {
		indices[i] = rand.Intn(n)
	}
	return indices
}
