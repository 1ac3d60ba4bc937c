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
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/wordpack/wordpack/codec"
	"github.com/wordpack/wordpack/dataset"
)

func TestMeasure(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	values := dataset.Uniform(rng, 1000, 100)
	suite := NewSuite(5)

	res, err := suite.Measure(codec.Simple{}, values)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if res.Strategy != "simple" {
		t.Errorf("Strategy = %q, want %q", res.Strategy, "simple")
	}
	if res.OriginalBits != 1000*32 {
		t.Errorf("OriginalBits = %d, want %d", res.OriginalBits, 1000*32)
	}
	if res.CompressedBits <= 0 || res.CompressedBits%32 != 0 {
		t.Errorf("CompressedBits = %d, want a positive multiple of 32", res.CompressedBits)
	}
	// Values fit in 7 bits, so the ratio must be well above 1.
	if res.Ratio <= 1 {
		t.Errorf("Ratio = %f, want > 1", res.Ratio)
	}
	if res.CompressTime < 0 || res.DecompressTime < 0 || res.GetTime < 0 {
		t.Errorf("negative timing in %+v", res)
	}
}

func TestMeasureEmpty(t *testing.T) {
	res, err := NewSuite(5).Measure(codec.Simple{}, nil)
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if res.OriginalBits != 0 || res.CompressedBits != 0 {
		t.Errorf("sizes = %d/%d, want 0/0", res.OriginalBits, res.CompressedBits)
	}
	if res.Ratio != 0 {
		t.Errorf("Ratio = %f, want 0", res.Ratio)
	}
	if res.GetTime != 0 {
		t.Errorf("GetTime = %v, want 0 for empty input", res.GetTime)
	}
}

func TestMeasureCompressError(t *testing.T) {
	_, err := NewSuite(2).Measure(codec.Simple{}, []int64{1, -5, 3})
	if !errors.Is(err, codec.ErrNegativeValue) {
		t.Errorf("error = %v, want ErrNegativeValue", err)
	}
}

func TestSuiteDefaults(t *testing.T) {
	if got := NewSuite(0).Iterations; got != DefaultIterations {
		t.Errorf("NewSuite(0).Iterations = %d, want %d", got, DefaultIterations)
	}
	var s *Suite
	if got := s.iterations(); got != DefaultIterations {
		t.Errorf("nil suite iterations() = %d, want %d", got, DefaultIterations)
	}
}

func TestBreakEven(t *testing.T) {
	res := Result{
		OriginalBits:   1_000_000,
		CompressedBits: 500_000,
		CompressTime:   time.Millisecond,
		DecompressTime: time.Millisecond,
	}

	// At 1 Mbps the transfer saves 0.5 s against 2 ms of processing.
	got := res.BreakEven(1)
	want := 0.002 / (0.5 - 0.002)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("BreakEven(1) = %v, want %v", got, want)
	}

	// At 1000 Mbps the saving is 0.5 ms, less than the overhead.
	if got := res.BreakEven(1000); !math.IsInf(got, 1) {
		t.Errorf("BreakEven(1000) = %v, want +Inf", got)
	}
}

func TestBreakEvenIncompressible(t *testing.T) {
	res := Result{
		OriginalBits:   1000,
		CompressedBits: 1000,
		CompressTime:   time.Microsecond,
		DecompressTime: time.Microsecond,
	}
	for _, rate := range DefaultRates {
		if got := res.BreakEven(rate); !math.IsInf(got, 1) {
			t.Errorf("BreakEven(%g) = %v with no size saving, want +Inf", rate, got)
		}
	}
}

func TestBaseline(t *testing.T) {
	values := make([]int64, 1000)
	for i := range values {
		values[i] = 7
	}
	res := Baseline(values)
	if res.RawBytes != 4000 {
		t.Errorf("RawBytes = %d, want 4000", res.RawBytes)
	}
	if res.CompressedBytes <= 0 {
		t.Errorf("CompressedBytes = %d, want > 0", res.CompressedBytes)
	}
	// A constant run is the easiest possible input for snappy.
	if res.Ratio <= 1 {
		t.Errorf("Ratio = %f, want > 1 for constant input", res.Ratio)
	}
}

func TestBaselineEmpty(t *testing.T) {
	res := Baseline(nil)
	if res.RawBytes != 0 {
		t.Errorf("RawBytes = %d, want 0", res.RawBytes)
	}
	if res.Ratio != 0 {
		t.Errorf("Ratio = %f, want 0", res.Ratio)
	}
}

func TestHost(t *testing.T) {
	h := Host()
	if h.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", h.OS, runtime.GOOS)
	}
	if h.Arch != runtime.GOARCH {
		t.Errorf("Arch = %q, want %q", h.Arch, runtime.GOARCH)
	}
	if h.CPUs < 1 {
		t.Errorf("CPUs = %d, want >= 1", h.CPUs)
	}
	if s := h.String(); !strings.Contains(s, runtime.GOOS) || !strings.Contains(s, runtime.GOARCH) {
		t.Errorf("String() = %q, missing platform", s)
	}
}
