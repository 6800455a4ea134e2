// Copyright 2025 go-parsort Authors
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

//go:build amd64

package psort

import "golang.org/x/sys/cpu"

func init() {
	currentName = "amd64"
	detectCPUFeatures()
}

func detectCPUFeatures() {
	// x86-64 baseline always carries SSE2.
	currentFeatures = append(currentFeatures, "sse2")
	if cpu.X86.HasSSE41 {
		currentFeatures = append(currentFeatures, "sse4.1")
	}
	if cpu.X86.HasAVX {
		currentFeatures = append(currentFeatures, "avx")
	}
	if cpu.X86.HasAVX2 {
		currentFeatures = append(currentFeatures, "avx2")
	}
	if cpu.X86.HasAVX512 {
		currentFeatures = append(currentFeatures, "avx512")
	}
	if cpu.X86.HasERMS {
		// Enhanced REP MOVSB makes the chunk copy-in/copy-back cheap.
		currentFeatures = append(currentFeatures, "erms")
	}
}
