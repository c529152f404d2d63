package z3

import (
	"errors"
	"fmt"

	"github.com/NikolajBjorner/z3go/internal/native"
)

// Failure conditions detected by the wrapper before any native call is made.
var (
	// ErrInvalidHandle means an operation produced or received a null native
	// pointer where a valid handle was required.
	ErrInvalidHandle = errors.New("z3: invalid native handle")

	// ErrIndexOutOfRange means a container index was at or beyond the current
	// native length.
	ErrIndexOutOfRange = errors.New("z3: index out of range")

	// ErrSortMismatch means an operand's sort is incompatible with the
	// requested operation.
	ErrSortMismatch = errors.New("z3: sort mismatch")

	// ErrCrossContext means an operation mixed handles from different
	// contexts without an explicit translation step.
	ErrCrossContext = errors.New("z3: handles belong to different contexts")
)

// ErrLibraryNotFound is returned by Init when libz3 cannot be located.
var ErrLibraryNotFound = native.ErrLibraryNotFound

// ErrorCode mirrors the native Z3_error_code values.
type ErrorCode uint32

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeSortError
	ErrCodeIndexOutOfBounds
	ErrCodeInvalidArg
	ErrCodeParserError
	ErrCodeNoParser
	ErrCodeInvalidPattern
	ErrCodeMemoutFail
	ErrCodeFileAccess
	ErrCodeInternalFatal
	ErrCodeInvalidUsage
	ErrCodeDecRefError
	ErrCodeException
)

// NativeError reports a failure signalled by the native layer. Msg preserves
// the native diagnostic verbatim.
type NativeError struct {
	Code ErrorCode
	Msg  string
	Op   string
}

// Error implements the error interface.
func (e *NativeError) Error() string {
	return fmt.Sprintf("z3 %s: %s (code %d)", e.Op, e.Msg, e.Code)
}

// Is maps the native sort and index-out-of-bounds error codes onto the
// wrapper sentinels, so errors.Is(err, ErrSortMismatch) matches regardless of
// whether the wrapper or the native layer detected the condition.
func (e *NativeError) Is(target error) bool {
	switch target {
	case ErrSortMismatch:
		return e.Code == ErrCodeSortError
	case ErrIndexOutOfRange:
		return e.Code == ErrCodeIndexOutOfBounds
	}
	return false
}

// check polls the native error code after a call into libz3 and converts a
// pending error into a typed Go error. The native diagnostic is preserved
// verbatim. Returns nil when no error is pending.
func (c *Context) check(op string) error {
	code := ErrorCode(native.GetErrorCode(c.ptr))
	if code == ErrCodeOK {
		return nil
	}
	return &NativeError{
		Code: code,
		Msg:  native.GetErrorMsg(c.ptr, uint32(code)),
		Op:   op,
	}
}
