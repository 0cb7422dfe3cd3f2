//go:build amd64

package native

import (
	"fmt"

	"golang.org/x/sys/cpu"
)

// cpuFeatures summarizes the SIMD capabilities relevant to the kernels.
// Informational only; resolution does not depend on it.
func cpuFeatures() string {
	return fmt.Sprintf("amd64 sse2=%t avx=%t avx2=%t avx512f=%t fma=%t",
		cpu.X86.HasSSE2, cpu.X86.HasAVX, cpu.X86.HasAVX2, cpu.X86.HasAVX512F, cpu.X86.HasFMA)
}
