// Package attrs captures and restores the attributes a content rewrite
// would otherwise reset: permission bits and access/modification times.
package attrs

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Snapshot holds a file's attributes at one point in time.
type Snapshot struct {
	// Mode holds permission bits only (os.ModePerm plus setuid, setgid, sticky).
	Mode  os.FileMode
	Atime time.Time
	Mtime time.Time
}

// Step names one part of a restore.
type Step string

const (
	StepMode  Step = "permissions"
	StepTimes Step = "timestamps"
)

// StepError reports a single failed restore step.
type StepError struct {
	Step Step
	Path string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: restore %s: %v", e.Path, e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

const modeMask = os.ModePerm | os.ModeSetuid | os.ModeSetgid | os.ModeSticky

// ErrNotRegular is returned by Take for symbolic links, directories, and
// other non-regular files.
var ErrNotRegular = errors.New("not a regular file")

// Take snapshots path without following a final symbolic link.
//
// Only regular files can be snapshotted. A rewrite through a symbolic link
// would change the target while the snapshot describes the link.
func Take(path string) (Snapshot, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return Snapshot{}, err
	}
	if !info.Mode().IsRegular() {
		return Snapshot{}, &os.PathError{Op: "lstat", Path: path, Err: ErrNotRegular}
	}
	return Snapshot{
		Mode:  info.Mode() & modeMask,
		Atime: accessTime(path, info),
		Mtime: info.ModTime(),
	}, nil
}

// Restore applies the permission bits and then the timestamps to path.
//
// The two steps are independent: a timestamp failure does not undo a
// permission change that already succeeded. Failures come back as
// *StepError values joined with errors.Join.
func (s Snapshot) Restore(path string) error {
	var errs []error
	if err := os.Chmod(path, s.Mode); err != nil {
		errs = append(errs, &StepError{Step: StepMode, Path: path, Err: err})
	}
	if err := setTimes(path, s.Atime, s.Mtime); err != nil {
		errs = append(errs, &StepError{Step: StepTimes, Path: path, Err: err})
	}
	return errors.Join(errs...)
}
