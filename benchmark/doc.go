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

// Package benchmark measures the packing strategies against synthetic
// datasets: wall times for Compress, Decompress and random access, the
// compression ratio, and the network latency above which compressing before
// transmission pays off.
//
// # Measuring
//
// A Suite times one codec on one dataset:
//
//	suite := benchmark.NewSuite(50)
//	res, err := suite.Measure(codec.Simple{}, values)
//
// RunMatrix fans a whole dataset x strategy grid out over a worker pool and
// collects one Result per cell. Report renders the collected results as
// text, Chart as an HTML page of bar charts.
//
// # Break-even latency
//
// For a link of a given speed, compression saves transmission time but costs
// processing time. Result.BreakEven returns the latency above which the
// saving wins, or +Inf when the processing overhead exceeds the saving at
// any latency.
//
// # Baselines
//
// Baseline runs snappy over the 32-bit image of a dataset. It is a point of
// reference for the ratio column only; the packing strategies deliberately
// do no entropy coding.
package benchmark
