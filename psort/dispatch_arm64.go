//go:build arm64

package psort

import "golang.org/x/sys/cpu"

func init() {
	currentName = "arm64"

	// ARM64 (AArch64) always has ASIMD (NEON) available.
	// We still check the cpu package for consistency.
	if cpu.ARM64.HasASIMD {
		currentFeatures = append(currentFeatures, "asimd")
	}
	if cpu.ARM64.HasATOMICS {
		currentFeatures = append(currentFeatures, "atomics")
	}
	if cpu.ARM64.HasSVE {
		currentFeatures = append(currentFeatures, "sve")
	}
}
