package native

import (
	"path/filepath"
	"runtime"
	"slices"
	"testing"
)

func TestLibraryNamesPerPlatform(t *testing.T) {
	names := libraryNames()
	if len(names) == 0 {
		t.Fatal("no candidate library names")
	}
	switch runtime.GOOS {
	case "darwin":
		if !slices.Contains(names, "libz3.dylib") {
			t.Fatalf("darwin candidates %v missing libz3.dylib", names)
		}
	case "windows":
		if !slices.Contains(names, "z3.dll") {
			t.Fatalf("windows candidates %v missing z3.dll", names)
		}
	default:
		if !slices.Contains(names, "libz3.so") {
			t.Fatalf("candidates %v missing libz3.so", names)
		}
	}
}

func TestSearchPathsHonorOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("Z3_LIBRARY_PATH", dir)

	paths := LibrarySearchPaths()
	if len(paths) == 0 || paths[0] != dir {
		t.Fatalf("Z3_LIBRARY_PATH %q not first in search order: %v", dir, paths)
	}
}

func TestSearchPathsSplitList(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	t.Setenv("Z3_LIBRARY_PATH", a+string(filepath.ListSeparator)+b)

	paths := LibrarySearchPaths()
	if len(paths) < 2 || paths[0] != a || paths[1] != b {
		t.Fatalf("list entries not split in order: %v", paths)
	}
}

func TestTryOpenMissingFile(t *testing.T) {
	if _, err := tryOpen(filepath.Join(t.TempDir(), "libz3.so")); err == nil {
		t.Fatal("tryOpen succeeded on a nonexistent file")
	}
}
