//go:build linux

package id3strip

import (
	"os"
	"syscall"
	"testing"
	"time"
)

// accessTimeOf reads the access time of path. ok is false where the
// platform does not expose it.
func accessTimeOf(t *testing.T, path string) (atime time.Time, ok bool) {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	st := info.Sys().(*syscall.Stat_t)
	return time.Unix(st.Atim.Unix()), true
}
