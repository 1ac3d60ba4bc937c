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

// Command wordpack demonstrates and benchmarks the integer packing
// strategies.
//
// Usage:
//
//	wordpack -demo                       # worked examples for each strategy
//	wordpack -list                       # strategy names and descriptions
//	wordpack -interactive                # pack integers typed on stdin
//	wordpack -bench -baseline -html benchmarks.html
//	wordpack -bench -config suite.toml -out report.txt
//
// Without arguments, prints usage and runs the demonstration.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wordpack/wordpack/codec"
)

var (
	demo        = flag.Bool("demo", false, "Run a worked demonstration of every packing strategy")
	interactive = flag.Bool("interactive", false, "Read integers from stdin and pack them interactively")
	bench       = flag.Bool("bench", false, "Run the benchmark suite and print the report")
	configPath  = flag.String("config", "", "TOML benchmark configuration (default: built-in suite)")
	reportOut   = flag.String("out", "", "Also write the benchmark report to this file")
	htmlOut     = flag.String("html", "", "Write benchmark bar charts to this HTML file")
	baseline    = flag.Bool("baseline", false, "Add a snappy baseline to each benchmark dataset")
	workers     = flag.Int("workers", 0, "Worker count for the benchmark matrix (0 = GOMAXPROCS)")
	list        = flag.Bool("list", false, "List the available strategies")
)

func main() {
	flag.Parse()

	if flag.NFlag() == 0 && flag.NArg() == 0 {
		flag.Usage()
		fmt.Println("\n" + strings.Repeat("=", 60))
		fmt.Println("No arguments given, running the demonstration...")
		fmt.Println(strings.Repeat("=", 60) + "\n")
		runDemo(os.Stdout)
		return
	}

	if *list {
		listStrategies(os.Stdout)
	}
	if *demo {
		runDemo(os.Stdout)
	}
	if *interactive {
		if err := runInteractive(os.Stdin, os.Stdout); err != nil {
			fail(err)
		}
	}
	if *bench {
		if err := runBench(); err != nil {
			fail(err)
		}
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func listStrategies(w io.Writer) {
	fmt.Fprintln(w, "Available compression strategies:")
	for _, name := range codec.Names() {
		desc, err := codec.Describe(name)
		if err != nil {
			fail(err)
		}
		fmt.Fprintf(w, "\n%s:\n  %s\n", strings.ToUpper(name), desc)
	}
}

// titleCase uppercases the first letter of an ASCII strategy name.
func titleCase(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func checkmark(ok bool) string {
	if ok {
		return "✓ OK"
	}
	return "✗ FAILED"
}
