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
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Chart renders results as a single HTML page of bar charts: compression
// ratio, compression and decompression times, and random access time, one
// series per strategy across all datasets.
func Chart(results []DatasetResult, w io.Writer) error {
	page := components.NewPage().SetPageTitle("Bit packing benchmarks")
	page.AddCharts(
		resultBar(results, "Compression ratio", "higher is better", func(r Result) float64 {
			return r.Ratio
		}),
		resultBar(results, "Compression time (ms)", "lower is better", func(r Result) float64 {
			return ms(r.CompressTime)
		}),
		resultBar(results, "Decompression time (ms)", "lower is better", func(r Result) float64 {
			return ms(r.DecompressTime)
		}),
		resultBar(results, "Random access time (µs per Get)", "lower is better", func(r Result) float64 {
			return us(r.GetTime)
		}),
	)
	return page.Render(w)
}

// resultBar builds one bar chart with datasets on the X axis and one series
// per strategy, extracting the plotted value with f.
func resultBar(results []DatasetResult, title, subtitle string, f func(Result) float64) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "500px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "30px"}),
	)

	names := make([]string, len(results))
	for i, dr := range results {
		names[i] = dr.Dataset
	}
	bar.SetXAxis(names)

	for _, strategy := range strategies(results) {
		items := make([]opts.BarData, len(results))
		for i, dr := range results {
			for _, r := range dr.Results {
				if r.Strategy == strategy {
					items[i] = opts.BarData{Value: f(r)}
					break
				}
			}
		}
		bar.AddSeries(strategy, items)
	}
	bar.SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

// strategies lists the strategy names present in the results, first-seen
// order.
func strategies(results []DatasetResult) []string {
	var names []string
	seen := make(map[string]bool)
	for _, dr := range results {
		for _, r := range dr.Results {
			if !seen[r.Strategy] {
				seen[r.Strategy] = true
				names = append(names, r.Strategy)
			}
		}
	}
	return names
}
