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
	"math/rand"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/wordpack/wordpack/dataset"
)

// SuiteConfig describes a whole benchmark run: which datasets to generate,
// how many timing iterations, which link speeds to evaluate, and the pool
// size for the matrix fan-out.
type SuiteConfig struct {
	Iterations int             `toml:"iterations"`
	Workers    int             `toml:"workers"`
	RatesMbps  []float64       `toml:"rates_mbps"`
	Datasets   []DatasetConfig `toml:"datasets"`
}

// DatasetConfig describes one generated dataset. Kind selects the generator;
// the remaining fields feed the matching one and are ignored by the others.
type DatasetConfig struct {
	Name string `toml:"name"`
	Kind string `toml:"kind"` // uniform | power-law | outliers | sequential
	Size int    `toml:"size"`
	Seed int64  `toml:"seed"`

	Max          int64   `toml:"max"`           // uniform, power-law
	Alpha        float64 `toml:"alpha"`         // power-law; values <= 1 fall back to 2
	NormalMax    int64   `toml:"normal_max"`    // outliers
	OutlierValue int64   `toml:"outlier_value"` // outliers
	OutlierRatio float64 `toml:"outlier_ratio"` // outliers
	Start        int64   `toml:"start"`         // sequential
}

// LoadConfig reads a TOML suite configuration from path.
func LoadConfig(path string) (*SuiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	var cfg SuiteConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return &cfg, nil
}

// DefaultConfig returns the standard suite: uniform noise at two sizes, a
// power-law tail, outlier-heavy data, a sequential run, and small values
// that pack many to a word.
func DefaultConfig() *SuiteConfig {
	return &SuiteConfig{
		Iterations: 50,
		RatesMbps:  DefaultRates,
		Datasets: []DatasetConfig{
			{Name: "Small Uniform (1K)", Kind: "uniform", Size: 1000, Max: 1000, Seed: 42},
			{Name: "Large Uniform (10K)", Kind: "uniform", Size: 10000, Max: 1000, Seed: 42},
			{Name: "Power Law", Kind: "power-law", Size: 5000, Max: 10000, Alpha: 2.0, Seed: 42},
			{Name: "With Outliers", Kind: "outliers", Size: 5000, NormalMax: 100, OutlierValue: 100000, OutlierRatio: 0.05, Seed: 42},
			{Name: "Sequential", Kind: "sequential", Size: 5000},
			{Name: "Mixed Small", Kind: "uniform", Size: 10000, Max: 15, Seed: 42},
		},
	}
}

// Build materializes the configured datasets. Each dataset gets its own
// generator seeded from its Seed field, so rows are reproducible
// independently of each other.
func (c *SuiteConfig) Build() ([]Dataset, error) {
	out := make([]Dataset, 0, len(c.Datasets))
	for _, dc := range c.Datasets {
		values, err := dc.generate()
		if err != nil {
			return nil, err
		}
		name := dc.Name
		if name == "" {
			name = dc.Kind
		}
		out = append(out, Dataset{Name: name, Values: values})
	}
	return out, nil
}

func (dc DatasetConfig) generate() ([]int64, error) {
	rng := rand.New(rand.NewSource(dc.Seed))
	switch dc.Kind {
	case "uniform":
		return dataset.Uniform(rng, dc.Size, dc.Max), nil
	case "power-law":
		alpha := dc.Alpha
		if alpha <= 1 {
			alpha = 2
		}
		return dataset.PowerLaw(rng, dc.Size, dc.Max, alpha), nil
	case "outliers":
		return dataset.WithOutliers(rng, dc.Size, dc.NormalMax, dc.OutlierValue, dc.OutlierRatio), nil
	case "sequential":
		return dataset.Sequential(dc.Size, dc.Start), nil
	}
	return nil, errors.Errorf("unknown dataset kind %q in %q", dc.Kind, dc.Name)
}
