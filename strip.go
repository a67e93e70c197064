package id3strip

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"go.uber.org/zap"

	"github.com/simonhull/id3strip/internal/attrs"
)

// Strip removes the tags described by info from the file at path and
// reports whether any bytes were removed.
//
// The ID3v2 tag is removed first by copying everything after it into a
// temporary file in the same directory and renaming that file over path.
// If any step before the rename fails, path is left untouched and the
// temporary file is deleted. The ID3v1 tag is then removed by truncating
// the last 128 bytes. Finally the original permission bits and access and
// modification times are restored.
//
// Results:
//
//	false, nil                      nothing to remove
//	false, *IOError                 nothing changed
//	true,  nil                      stripped
//	true,  *IOError                 ID3v2 removed, ID3v1 truncation failed
//	true,  *AttributeRestoreError   stripped, attributes not fully restored
//
// info should come from a Scan of the same file with no writes in between.
// Strip does no locking; callers must not strip the same path concurrently.
func Strip(path string, info TagInfo, opts ...Option) (bool, error) {
	return StripContext(context.Background(), path, info, opts...)
}

// StripContext is Strip with cancellation.
//
// The context is checked before each chunk of the ID3v2 copy and once more
// before the rename. Cancellation before the rename is reported as an
// *IOError wrapping ctx.Err() and leaves path untouched.
func StripContext(ctx context.Context, path string, info TagInfo, opts ...Option) (bool, error) {
	o := resolveOptions(opts)
	return strip(ctx, path, info, o)
}

// StripFile scans path and strips whatever it finds.
func StripFile(ctx context.Context, path string, opts ...Option) (TagInfo, bool, error) {
	info, err := Scan(path)
	if err != nil {
		return TagInfo{}, false, err
	}
	o := resolveOptions(opts)
	changed, err := strip(ctx, path, info, o)
	return info, changed, err
}

func strip(ctx context.Context, path string, info TagInfo, o *options) (bool, error) {
	if info.Empty() {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, ioErr("strip", path, err)
	}

	log := o.logger.With(zap.String("path", path))

	snap, err := attrs.Take(path)
	if err != nil {
		return false, ioErr("snapshot", path, err)
	}

	changed := false
	if info.HasLeading {
		if err := stripLeading(ctx, path, int64(info.LeadingSize), o); err != nil {
			return false, err
		}
		changed = true
		log.Debug("removed ID3v2 tag", zap.Uint32("bytes", info.LeadingSize))
	}

	var truncErr error
	if info.HasTrailing {
		truncated, err := stripTrailing(path)
		switch {
		case err != nil && !changed:
			return false, err
		case err != nil:
			truncErr = err
			log.Warn("ID3v1 truncation failed after ID3v2 removal", zap.Error(err))
		case truncated:
			changed = true
			log.Debug("removed ID3v1 tag")
		}
	}

	if !changed {
		return false, nil
	}

	if err := snap.Restore(path); err != nil {
		log.Warn("attributes not restored", zap.Error(err))
		attrErr := &AttributeRestoreError{Path: path, Err: err}
		if truncErr != nil {
			return true, errors.Join(truncErr, attrErr)
		}
		return true, attrErr
	}

	return true, truncErr
}

// stripLeading rewrites path without its first offset bytes.
func stripLeading(ctx context.Context, path string, offset int64, o *options) error {
	src, err := os.Open(path)
	if err != nil {
		return ioErr("open", path, err)
	}
	defer src.Close() //nolint:errcheck // Read-only handle

	if _, err := src.Seek(offset, io.SeekStart); err != nil {
		return ioErr("seek", path, err)
	}

	// Same directory as the target so the rename never crosses filesystems
	tempFile, err := os.CreateTemp(filepath.Dir(path), ".id3strip-*.tmp")
	if err != nil {
		return ioErr("create temp", path, err)
	}
	tempPath := tempFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()    //nolint:errcheck // Best effort cleanup
			_ = os.Remove(tempPath) //nolint:errcheck // Best effort cleanup
		}
	}()

	n, err := io.Copy(tempFile, &contextReader{ctx: ctx, r: src})
	if err != nil {
		return ioErr("copy", path, err)
	}

	if err := tempFile.Sync(); err != nil {
		return ioErr("sync", path, err)
	}

	if err := tempFile.Close(); err != nil {
		return ioErr("close", path, err)
	}

	if o.backupSuffix != "" {
		if err := backup(path, path+o.backupSuffix); err != nil {
			return ioErr("backup", path, err)
		}
	}

	if err := ctx.Err(); err != nil {
		return ioErr("replace", path, err)
	}

	if err := atomic.ReplaceFile(tempPath, path); err != nil {
		return ioErr("replace", path, err)
	}
	success = true

	o.logger.Debug("replaced file",
		zap.String("path", path),
		zap.String("temp", tempPath),
		zap.Int64("bytes", n))

	return nil
}

// stripTrailing truncates the last 128 bytes of path. It reports false
// without error when the file has become too short.
func stripTrailing(path string) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return false, ioErr("open", path, err)
	}

	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		_ = f.Close() //nolint:errcheck // Already failing
		return false, ioErr("seek", path, err)
	}

	if size < TrailerSize {
		if err := f.Close(); err != nil {
			return false, ioErr("close", path, err)
		}
		return false, nil
	}

	if err := f.Truncate(size - TrailerSize); err != nil {
		_ = f.Close() //nolint:errcheck // Already failing
		return false, ioErr("truncate", path, err)
	}

	if err := f.Close(); err != nil {
		return true, ioErr("close", path, err)
	}
	return true, nil
}

// backup saves the current content of path as dst, replacing dst.
func backup(path, dst string) error {
	if err := os.Remove(dst); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	// The original inode is about to be unlinked by the rename, so a hard
	// link preserves it without copying.
	if err := os.Link(path, dst); err == nil {
		return nil
	}

	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close() //nolint:errcheck // Read-only handle

	return atomic.WriteFile(dst, src)
}

// contextReader stops a copy once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *contextReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}
	return cr.r.Read(p)
}
