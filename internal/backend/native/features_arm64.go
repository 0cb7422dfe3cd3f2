//go:build arm64

package native

import (
	"fmt"

	"golang.org/x/sys/cpu"
)

// cpuFeatures summarizes the SIMD capabilities relevant to the kernels.
// Informational only; resolution does not depend on it.
func cpuFeatures() string {
	return fmt.Sprintf("arm64 neon=%t sve=%t fp=%t",
		cpu.ARM64.HasASIMD, cpu.ARM64.HasSVE, cpu.ARM64.HasFP)
}
