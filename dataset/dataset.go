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

// Package dataset generates synthetic integer datasets with the value
// distributions that matter for bit packing: uniform noise, power-law tails,
// mostly-small values with rare outliers, and sequential runs.
//
// Generators are pure functions of their arguments. Pass a seeded *rand.Rand
// to reproduce a dataset exactly:
//
//	rng := rand.New(rand.NewSource(42))
//	values := dataset.Uniform(rng, 1000, 1000)
package dataset

import (
	"math"
	"math/rand"
)

// Uniform returns size values drawn uniformly from [0, max], inclusive on
// both ends. Returns nil when size <= 0.
func Uniform(rng *rand.Rand, size int, max int64) []int64 {
	if size <= 0 {
		return nil
	}
	out := make([]int64, size)
	for i := range out {
		out[i] = rng.Int63n(max + 1)
	}
	return out
}

// PowerLaw returns size values from an inverse-transform power law with the
// given exponent: many small values, an unbounded tail truncated at max.
// The smallest possible value is 10 (the distribution scale). alpha must be
// greater than 1.
func PowerLaw(rng *rand.Rand, size int, max int64, alpha float64) []int64 {
	if size <= 0 {
		return nil
	}
	out := make([]int64, size)
	for i := range out {
		u := rng.Float64()
		// Capping in float space keeps the int64 conversion in range even
		// when the tail sample is astronomically large.
		v := math.Pow(1-u, -1/(alpha-1)) * 10
		if v > float64(max) {
			v = float64(max)
		}
		out[i] = int64(v)
	}
	return out
}

// WithOutliers returns size values where a ratio share are exactly
// outlierValue and the rest are uniform in [0, normalMax]. Positions are
// shuffled so outliers land anywhere in the slice.
func WithOutliers(rng *rand.Rand, size int, normalMax, outlierValue int64, ratio float64) []int64 {
	if size <= 0 {
		return nil
	}
	out := make([]int64, size)
	outliers := int(float64(size) * ratio)
	for i := range out {
		if i < outliers {
			out[i] = outlierValue
		} else {
			out[i] = rng.Int63n(normalMax + 1)
		}
	}
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Sequential returns the size consecutive integers beginning at start.
func Sequential(size int, start int64) []int64 {
	if size <= 0 {
		return nil
	}
	out := make([]int64, size)
	for i := range out {
		out[i] = start + int64(i)
	}
	return out
}
