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
	"os"

	"github.com/pkg/errors"

	"github.com/wordpack/wordpack/benchmark"
	"github.com/wordpack/wordpack/codec"
)

// runBench executes the benchmark matrix described by the configuration,
// prints the report, and optionally writes it and the charts to files.
func runBench() error {
	fmt.Println("=== RUNNING FULL BENCHMARK SUITE ===")
	fmt.Println("This can take a few minutes...")
	fmt.Println()

	cfg := benchmark.DefaultConfig()
	if *configPath != "" {
		loaded, err := benchmark.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	datasets, err := cfg.Build()
	if err != nil {
		return err
	}

	codecs := make([]codec.Codec, 0, len(codec.Names()))
	for _, name := range codec.Names() {
		c, err := codec.New(name)
		if err != nil {
			return err
		}
		codecs = append(codecs, c)
	}

	poolSize := cfg.Workers
	if *workers > 0 {
		poolSize = *workers
	}

	suite := benchmark.NewSuite(cfg.Iterations)
	results, err := benchmark.RunMatrix(suite, datasets, codecs, poolSize)
	if err != nil {
		return err
	}

	if *baseline {
		for i := range results {
			b := benchmark.Baseline(datasets[i].Values)
			results[i].Baseline = &b
		}
	}

	report := benchmark.Report(results, cfg.RatesMbps)
	fmt.Print(report)

	if *reportOut != "" {
		if err := os.WriteFile(*reportOut, []byte(report), 0o644); err != nil {
			return errors.Wrap(err, "write report")
		}
		fmt.Printf("Report saved to %s\n", *reportOut)
	}
	if *htmlOut != "" {
		f, err := os.Create(*htmlOut)
		if err != nil {
			return errors.Wrap(err, "create chart file")
		}
		defer f.Close()
		if err := benchmark.Chart(results, f); err != nil {
			return errors.Wrap(err, "render charts")
		}
		fmt.Printf("Charts saved to %s\n", *htmlOut)
	}
	return nil
}
