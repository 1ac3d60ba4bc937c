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
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// HostInfo identifies the machine a report was produced on.
type HostInfo struct {
	OS   string
	Arch string
	CPUs int

	// Features lists the CPU capabilities that matter for shift-heavy
	// packing loops, lowercase, detection order.
	Features []string
}

// Host probes the running machine. The feature bits come from the kernel or
// CPUID via x/sys/cpu; on architectures it does not cover, Features is empty.
func Host() HostInfo {
	h := HostInfo{OS: runtime.GOOS, Arch: runtime.GOARCH, CPUs: runtime.NumCPU()}
	add := func(name string, on bool) {
		if on {
			h.Features = append(h.Features, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add("popcnt", cpu.X86.HasPOPCNT)
		add("bmi1", cpu.X86.HasBMI1)
		add("bmi2", cpu.X86.HasBMI2)
		add("avx2", cpu.X86.HasAVX2)
		add("avx512", cpu.X86.HasAVX512)
	case "arm64":
		add("asimd", cpu.ARM64.HasASIMD)
		add("sve", cpu.ARM64.HasSVE)
		add("atomics", cpu.ARM64.HasATOMICS)
	}
	return h
}

// String renders the host line used in report headers, e.g.
// "linux/amd64, 16 CPUs (popcnt bmi1 bmi2 avx2)".
func (h HostInfo) String() string {
	s := fmt.Sprintf("%s/%s, %d CPUs", h.OS, h.Arch, h.CPUs)
	if len(h.Features) > 0 {
		s += " (" + strings.Join(h.Features, " ") + ")"
	}
	return s
}
