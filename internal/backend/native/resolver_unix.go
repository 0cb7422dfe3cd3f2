//go:build linux || darwin

package native

import (
	"github.com/cockroachdb/errors"
	"github.com/ebitengine/purego"
)

// loaderSupported reports whether this platform can load kernel libraries
// at runtime.
const loaderSupported = true

// loadKernelLibrary opens the shared library at path and resolves the four
// kernel entry points. A missing symbol fails the whole load; a partially
// resolved table never escapes.
func loadKernelLibrary(path string) (table kernelTable, err error) {
	// RegisterLibFunc panics on a missing or mismatched symbol; absorb it
	// into the strategy's error so resolution can move on.
	defer func() {
		if r := recover(); r != nil {
			table = kernelTable{}
			err = errors.Newf("native: symbol resolution failed in %s: %v", path, r)
		}
	}()

	lib, dlErr := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if dlErr != nil {
		return kernelTable{}, errors.Wrapf(dlErr, "native: cannot load %s", path)
	}

	purego.RegisterLibFunc(&table.add, lib, "mk_add")
	purego.RegisterLibFunc(&table.sub, lib, "mk_sub")
	purego.RegisterLibFunc(&table.matmul, lib, "mk_matmul")
	purego.RegisterLibFunc(&table.pow, lib, "mk_pow")
	return table, nil
}
