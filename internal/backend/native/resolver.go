package native

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/matlite-ml/matlite/internal/backend/generic"
	"github.com/matlite-ml/matlite/internal/matrix"
)

// Environment overrides consumed by Resolve.
const (
	// EnvLibraryPath points at a pre-built kernel library.
	EnvLibraryPath = "MATLITE_KERNEL_LIB"
	// EnvSourceDir points at a kernel source tree with a Makefile.
	EnvSourceDir = "MATLITE_KERNEL_SRC"
)

// Options configures kernel resolution. The zero value resolves with
// environment defaults and discards status output.
type Options struct {
	// LibraryPath is an explicit path to a pre-built kernel library.
	// Overrides EnvLibraryPath.
	LibraryPath string

	// SourceDir is a kernel source tree for the toolchain-build strategy.
	// Overrides EnvSourceDir.
	SourceDir string

	// StatusWriter receives informational resolution progress. Never
	// affects the outcome; nil discards.
	StatusWriter io.Writer

	// Disable skips every strategy and reports fallback mode. Used by the
	// benchmark harness to time the generic path on its own.
	Disable bool
}

// Status describes the resolution outcome. Resolution failure is a
// supported steady state, not an error: Available is simply false.
type Status struct {
	Available bool   // True when all four kernels resolved.
	Strategy  string // Which strategy succeeded ("prebuilt", "jit", "build"), or "fallback".
	Library   string // Path of the loaded library, if any.
	CPU       string // CPU feature summary for reporting.
}

// Resolve attempts, in order: loading a pre-built kernel library, jit
// compilation of the embedded kernel source, and a full toolchain build of
// a kernel source tree. Each strategy's failure is absorbed and reported
// through opts.StatusWriter; nothing escapes as an error. On success all
// four kernel entry points come from the single loaded library.
func Resolve(opts Options) (*Backend, Status) {
	w := opts.StatusWriter
	if w == nil {
		w = io.Discard
	}
	status := Status{Strategy: "fallback", CPU: cpuFeatures()}

	if opts.Disable {
		fmt.Fprintln(w, "native: resolution disabled, generic kernels in effect")
		return nil, status
	}
	if !loaderSupported {
		fmt.Fprintf(w, "native: runtime loading unsupported on %s/%s, generic kernels in effect\n", runtime.GOOS, runtime.GOARCH)
		return nil, status
	}

	type strategy struct {
		name string
		run  func() (kernelTable, string, error)
	}
	strategies := []strategy{
		{"prebuilt", func() (kernelTable, string, error) { return resolvePrebuilt(opts) }},
		{"jit", resolveJIT},
		{"build", func() (kernelTable, string, error) { return resolveBuild(opts) }},
	}

	for _, s := range strategies {
		table, lib, err := s.run()
		if err != nil {
			fmt.Fprintf(w, "native: %s strategy failed: %v\n", s.name, err)
			continue
		}
		if !table.complete() {
			// All-or-none: a partial table never leaves the resolver.
			fmt.Fprintf(w, "native: %s strategy produced incomplete kernel table, skipping\n", s.name)
			continue
		}
		fmt.Fprintf(w, "native: accelerated kernels loaded from %s (%s strategy)\n", lib, s.name)
		status.Available = true
		status.Strategy = s.name
		status.Library = lib
		return &Backend{table: table, fallback: generic.New(), library: lib}, status
	}

	fmt.Fprintln(w, "native: no accelerated kernels available, generic kernels in effect")
	return nil, status
}

// resolvePrebuilt tries to load an already-built kernel library.
func resolvePrebuilt(opts Options) (kernelTable, string, error) {
	var lastErr error
	for _, path := range libraryCandidates(opts) {
		table, err := loadKernelLibrary(path)
		if err != nil {
			lastErr = err
			continue
		}
		return table, path, nil
	}
	if lastErr == nil {
		lastErr = errors.New("native: no kernel library candidates found")
	}
	return kernelTable{}, "", lastErr
}

// resolveJIT writes the embedded kernel source to a scratch dir, compiles
// it with the system C compiler, and loads the result.
func resolveJIT() (kernelTable, string, error) {
	cc, err := findCompiler()
	if err != nil {
		return kernelTable{}, "", err
	}

	dir, err := os.MkdirTemp("", "matkern-jit-*")
	if err != nil {
		return kernelTable{}, "", errors.Wrap(err, "native: scratch dir")
	}
	src := filepath.Join(dir, "matkern.c")
	if err := os.WriteFile(src, kernelSource, 0o644); err != nil {
		return kernelTable{}, "", errors.Wrap(err, "native: write kernel source")
	}
	lib := filepath.Join(dir, libraryName())
	if out, err := compileShared(cc, src, lib); err != nil {
		return kernelTable{}, "", errors.Wrapf(err, "native: compile failed: %s", out)
	}

	table, err := loadKernelLibrary(lib)
	if err != nil {
		return kernelTable{}, "", err
	}
	return table, lib, nil
}

// resolveBuild runs the external build toolchain in a kernel source tree
// and loads whatever library it produces.
func resolveBuild(opts Options) (kernelTable, string, error) {
	dir := opts.SourceDir
	if dir == "" {
		dir = os.Getenv(EnvSourceDir)
	}
	if dir == "" {
		return kernelTable{}, "", errors.New("native: no kernel source tree configured")
	}
	if _, err := os.Stat(filepath.Join(dir, "Makefile")); err != nil {
		return kernelTable{}, "", errors.Wrapf(err, "native: no Makefile in %s", dir)
	}

	makeBin, err := exec.LookPath("make")
	if err != nil {
		return kernelTable{}, "", errors.Wrap(err, "native: build toolchain unavailable")
	}
	cmd := exec.Command(makeBin)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		return kernelTable{}, "", errors.Wrapf(err, "native: build failed: %s", out)
	}

	lib := filepath.Join(dir, libraryName())
	table, err := loadKernelLibrary(lib)
	if err != nil {
		return kernelTable{}, "", err
	}
	return table, lib, nil
}

// libraryCandidates lists paths to probe for a pre-built library, most
// specific first.
func libraryCandidates(opts Options) []string {
	var candidates []string
	if opts.LibraryPath != "" {
		candidates = append(candidates, opts.LibraryPath)
	}
	if env := os.Getenv(EnvLibraryPath); env != "" {
		candidates = append(candidates, env)
	}
	name := libraryName()
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), name))
	}
	candidates = append(candidates,
		name, // current directory and system loader path
	)
	return candidates
}

// libraryName returns the platform's shared library name for the kernels.
func libraryName() string {
	if runtime.GOOS == "darwin" {
		return "libmatkern.dylib"
	}
	return "libmatkern.so"
}

// findCompiler locates a C compiler for the jit strategy.
func findCompiler() (string, error) {
	for _, name := range []string{"cc", "gcc", "clang"} {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", errors.New("native: no C compiler found")
}

// compileShared builds src into a shared library at lib.
func compileShared(cc, src, lib string) (string, error) {
	cmd := exec.Command(cc, "-O2", "-fPIC", "-shared", "-o", lib, src, "-lm")
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// Process-wide resolution state, set once and read-only afterward.
var (
	resolveOnce   sync.Once
	defaultKern   matrix.Kernels
	defaultStatus Status
)

// Default resolves the accelerated kernels at most once per process and
// returns the kernel strategy to use for all arithmetic: the native backend
// when resolution succeeded, the generic backend otherwise. Resolution
// honors the environment overrides and writes no status output.
func Default() (matrix.Kernels, Status) {
	resolveOnce.Do(func() {
		backend, status := Resolve(Options{})
		defaultStatus = status
		if backend != nil {
			defaultKern = backend
		} else {
			defaultKern = generic.New()
		}
	})
	return defaultKern, defaultStatus
}

// Active reports whether the accelerated backend resolved for this process.
// Collaborators use it to decide whether comparison benchmarks make sense.
func Active() bool {
	_, status := Default()
	return status.Available
}
