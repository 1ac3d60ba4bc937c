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
	"github.com/pkg/errors"

	"github.com/wordpack/wordpack/codec"
	"github.com/wordpack/wordpack/workerpool"
)

// Dataset is a named input for the measurement matrix.
type Dataset struct {
	Name   string
	Values []int64
}

// DatasetResult collects one dataset's row of the matrix: one Result per
// codec, in the codec argument order. Baseline is filled only on request.
type DatasetResult struct {
	Dataset  string
	Size     int
	Results  []Result
	Baseline *BaselineResult
}

// RunMatrix measures every codec against every dataset, fanning the cells
// out over a pool of the given size (0 means GOMAXPROCS). Codecs and
// *Encoded values are safe to share, so cells only write their own Result
// slot. Returns the first measurement error, if any.
func RunMatrix(s *Suite, datasets []Dataset, codecs []codec.Codec, workers int) ([]DatasetResult, error) {
	results := make([]DatasetResult, len(datasets))
	for i, d := range datasets {
		results[i] = DatasetResult{
			Dataset: d.Name,
			Size:    len(d.Values),
			Results: make([]Result, len(codecs)),
		}
	}

	cells := len(datasets) * len(codecs)
	errs := make([]error, cells)

	pool := workerpool.New(workers)
	defer pool.Close()
	pool.ParallelForAtomic(cells, func(i int) {
		di, ci := i/len(codecs), i%len(codecs)
		res, err := s.Measure(codecs[ci], datasets[di].Values)
		if err != nil {
			errs[i] = errors.Wrapf(err, "dataset %q", datasets[di].Name)
			return
		}
		results[di].Results[ci] = res
	})

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
