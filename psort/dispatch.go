package psort

import (
	"os"
	"runtime"
	"strconv"
	"strings"
)

// MaxWorkers is the upper bound on concurrent workers any sort will use,
// regardless of what the caller asks for.
const MaxWorkers = 16

// currentName is the human-readable name of the detected CPU family.
// Set by init() in dispatch_*.go files.
var currentName string

// currentFeatures lists the CPU features relevant to bulk memory traffic
// (copies and merges). Set by init() in dispatch_*.go files.
var currentFeatures []string

// CurrentName returns a human-readable name for the detected CPU family.
// For example: "amd64", "arm64", "generic".
func CurrentName() string {
	return currentName
}

// CurrentFeatures returns the detected CPU features, e.g. "avx2", "asimd".
func CurrentFeatures() []string {
	return append([]string(nil), currentFeatures...)
}

// HardwareWorkers returns the number of workers the current process can
// actually run in parallel, capped to MaxWorkers.
func HardwareWorkers() int {
	return min(max(runtime.GOMAXPROCS(0), 1), MaxWorkers)
}

// DefaultWorkers returns the worker count used when the caller expresses no
// preference. PARSORT_SEQUENTIAL wins over PARSORT_WORKERS, which wins over
// HardwareWorkers.
func DefaultWorkers() int {
	if SequentialEnv() {
		return 1
	}
	if n, ok := WorkersEnv(); ok {
		return n
	}
	return HardwareWorkers()
}

// WorkersEnv parses the PARSORT_WORKERS environment variable.
// Values outside [1, MaxWorkers] are clamped; unparseable values are ignored.
func WorkersEnv() (int, bool) {
	val := strings.TrimSpace(os.Getenv("PARSORT_WORKERS"))
	if val == "" {
		return 0, false
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return min(max(n, 1), MaxWorkers), true
}

// SequentialEnv checks if the PARSORT_SEQUENTIAL environment variable is set.
// When set, DefaultWorkers returns 1 and sorts run on the calling goroutine.
// This is useful for testing and debugging.
func SequentialEnv() bool {
	val := os.Getenv("PARSORT_SEQUENTIAL")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
