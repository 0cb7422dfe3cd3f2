//go:build !amd64 && !arm64

package native

import "runtime"

// cpuFeatures summarizes the SIMD capabilities relevant to the kernels.
// Informational only; resolution does not depend on it.
func cpuFeatures() string {
	return runtime.GOARCH
}
