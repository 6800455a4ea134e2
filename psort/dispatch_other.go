//go:build !amd64 && !arm64

package psort

func init() {
	// Other architectures report no features; sorting is pure Go everywhere.
	currentName = "generic"
}
