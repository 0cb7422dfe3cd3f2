//go:build !(linux || darwin)

package native

import "github.com/cockroachdb/errors"

// loaderSupported reports whether this platform can load kernel libraries
// at runtime.
const loaderSupported = false

func loadKernelLibrary(path string) (kernelTable, error) {
	return kernelTable{}, errors.Newf("native: runtime library loading unsupported on this platform (%s)", path)
}
