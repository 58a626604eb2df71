package gen

import (
	"errors"
	"fmt"
)

// StubError reports that the stub template could not be loaded. It is
// fatal and surfaces before any table is processed.
type StubError struct {
	Path string
	err  error
}

// Error returns the error string.
func (e *StubError) Error() string {
	return fmt.Sprintf("gen: load stub %q: %v", e.Path, e.err)
}

// Unwrap returns the underlying error.
func (e *StubError) Unwrap() error { return e.err }

// IsStubError returns true if the error is a StubError.
func IsStubError(err error) bool {
	var e *StubError
	return errors.As(err, &e)
}

// DirError reports that the output directory could not be created.
type DirError struct {
	Path string
	err  error
}

// Error returns the error string.
func (e *DirError) Error() string {
	return fmt.Sprintf("gen: create output directory %q: %v", e.Path, e.err)
}

// Unwrap returns the underlying error.
func (e *DirError) Unwrap() error { return e.err }

// IsDirError returns true if the error is a DirError.
func IsDirError(err error) bool {
	var e *DirError
	return errors.As(err, &e)
}

// WriteError reports a failed model file write. A single failed write
// aborts the remaining tables.
type WriteError struct {
	Path string
	err  error
}

// Error returns the error string.
func (e *WriteError) Error() string {
	return fmt.Sprintf("gen: write model %q: %v", e.Path, e.err)
}

// Unwrap returns the underlying error.
func (e *WriteError) Unwrap() error { return e.err }

// IsWriteError returns true if the error is a WriteError.
func IsWriteError(err error) bool {
	var e *WriteError
	return errors.As(err, &e)
}
