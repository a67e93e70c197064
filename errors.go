package id3strip

import "fmt"

// IOError is returned when a file operation fails during a scan or strip.
//
// A strip that fails with an IOError before the replace step leaves the
// file exactly as it was.
type IOError struct {
	Op   string // "open", "read", "create temp", "copy", "replace", "truncate", ...
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// AttributeRestoreError reports that content was rewritten but the original
// permission bits or timestamps could not be put back.
//
// It is a warning: the content change is already committed and is not
// rolled back. Err joins one error per failed step.
type AttributeRestoreError struct {
	Path string
	Err  error
}

func (e *AttributeRestoreError) Error() string {
	return fmt.Sprintf("%s: content stripped but attributes not restored: %v", e.Path, e.Err)
}

func (e *AttributeRestoreError) Unwrap() error {
	return e.Err
}

func ioErr(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}
