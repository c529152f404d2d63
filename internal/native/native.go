// Package native loads the Z3 shared library at runtime and registers the
// C entry points used by the z3 package.
//
// No cgo is involved: libz3 is located with a platform-specific search and
// opened with purego. Every wrapped C function is a package-level function
// variable wired up by Load via purego.RegisterLibFunc. All opaque Z3
// pointers (contexts, ASTs, vectors, solvers, ...) are passed as uintptr.
package native

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
)

// ErrNotLoaded is returned when Z3 functions are called before Load.
var ErrNotLoaded = errors.New("z3go: libz3 not loaded; call z3.Init() first")

// ErrLibraryNotFound is returned when libz3 cannot be located.
var ErrLibraryNotFound = errors.New("z3go: libz3 not found")

var (
	libZ3 uintptr

	loaded   bool
	loadOnce sync.Once
	loadErr  error
)

// IsLoaded reports whether libz3 has been successfully loaded.
func IsLoaded() bool {
	return loaded
}

// Load locates libz3, opens it and registers all function bindings.
// It is safe to call multiple times; subsequent calls return the first result.
func Load() error {
	loadOnce.Do(func() {
		loadErr = doLoad()
		if loadErr == nil {
			loaded = true
		}
	})
	return loadErr
}

// LibZ3 returns the dlopen handle of libz3, or 0 if it is not loaded.
func LibZ3() uintptr {
	return libZ3
}

func doLoad() error {
	lib, err := findAndOpen()
	if err != nil {
		return err
	}
	libZ3 = lib

	registerCore(lib)
	registerTheories(lib)
	registerSolver(lib)
	return nil
}

func findAndOpen() (uintptr, error) {
	for _, name := range libraryNames() {
		for _, searchPath := range LibrarySearchPaths() {
			lib, err := tryOpen(filepath.Join(searchPath, name))
			if err == nil {
				return lib, nil
			}
		}
		// Bare name: let the dynamic loader search on its own.
		if lib, err := tryOpen(name); err == nil {
			return lib, nil
		}
	}
	return 0, fmt.Errorf("%w (searched %d paths)", ErrLibraryNotFound, len(LibrarySearchPaths()))
}

func tryOpen(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

// libraryNames returns candidate file names for libz3 on this platform.
func libraryNames() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{"libz3.dylib", "libz3.4.dylib"}
	case "windows":
		return []string{"z3.dll", "libz3.dll"}
	default:
		return []string{"libz3.so", "libz3.so.4", "libz3.so.4.8"}
	}
}

// LibrarySearchPaths returns the directories searched for libz3, in order.
func LibrarySearchPaths() []string {
	var paths []string

	if dir := os.Getenv("Z3_LIBRARY_PATH"); dir != "" {
		paths = append(paths, filepath.SplitList(dir)...)
	}

	switch runtime.GOOS {
	case "linux", "freebsd":
		if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
			paths = append(paths, filepath.SplitList(ldPath)...)
		}
		paths = append(paths,
			"/usr/lib/x86_64-linux-gnu",
			"/usr/lib/aarch64-linux-gnu",
			"/usr/local/lib",
			"/usr/lib",
			"/lib",
		)

	case "darwin":
		if dyldPath := os.Getenv("DYLD_LIBRARY_PATH"); dyldPath != "" {
			paths = append(paths, filepath.SplitList(dyldPath)...)
		}
		paths = append(paths,
			"/opt/homebrew/lib",
			"/usr/local/lib",
			"/opt/homebrew/opt/z3/lib",
			"/usr/local/opt/z3/lib",
		)

	case "windows":
		if winPath := os.Getenv("PATH"); winPath != "" {
			paths = append(paths, filepath.SplitList(winPath)...)
		}
		if exe, err := os.Executable(); err == nil {
			paths = append(paths, filepath.Dir(exe))
		}
	}

	return paths
}
