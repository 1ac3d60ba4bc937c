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
	"encoding/binary"

	"github.com/golang/snappy"
)

// BaselineResult is the outcome of compressing a dataset's 32-bit image
// with a general-purpose byte compressor.
type BaselineResult struct {
	RawBytes        int
	CompressedBytes int
	Ratio           float64
}

// Baseline snappy-compresses the little-endian 32-bit image of values, the
// same wire shape the Ratio column assumes. It gives the report a reference
// point from byte-level compression; low 32 bits only, matching the size
// model.
func Baseline(values []int64) BaselineResult {
	raw := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(raw[4*i:], uint32(v))
	}
	compressed := snappy.Encode(nil, raw)
	res := BaselineResult{RawBytes: len(raw), CompressedBytes: len(compressed)}
	if res.CompressedBytes > 0 {
		res.Ratio = float64(res.RawBytes) / float64(res.CompressedBytes)
	}
	return res
}
