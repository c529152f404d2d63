package z3

import (
	"fmt"
	"sync"

	"github.com/NikolajBjorner/z3go/internal/native"
)

// The interaction log is a single global resource in the native layer.
var (
	logMu   sync.Mutex
	logOpen bool
)

// OpenLog starts logging every native API call to the named file. Only one
// log can be open at a time.
func OpenLog(filename string) error {
	if err := Init(); err != nil {
		return err
	}
	logMu.Lock()
	defer logMu.Unlock()
	if logOpen {
		return fmt.Errorf("z3: interaction log already open")
	}
	if !native.OpenLog(filename) {
		return fmt.Errorf("z3: cannot open interaction log %q", filename)
	}
	logOpen = true
	return nil
}

// AppendLog writes a comment line into the open interaction log.
func AppendLog(s string) error {
	logMu.Lock()
	defer logMu.Unlock()
	if !logOpen {
		return fmt.Errorf("z3: interaction log is not open")
	}
	native.AppendLog(s)
	return nil
}

// CloseLog closes the interaction log. Closing an unopened log is a no-op.
func CloseLog() {
	logMu.Lock()
	defer logMu.Unlock()
	if logOpen {
		native.CloseLog()
		logOpen = false
	}
}

// IsLogOpen reports whether an interaction log is currently open.
func IsLogOpen() bool {
	logMu.Lock()
	defer logMu.Unlock()
	return logOpen
}
