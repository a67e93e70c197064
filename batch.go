package id3strip

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome for one file of StripMany or ScanMany.
type Result struct {
	Path    string
	Info    TagInfo
	Scanned bool // Scan succeeded and Info is valid
	Changed bool

	// Err is nil on success. For StripMany it may be an
	// *AttributeRestoreError alongside Changed == true.
	Err error
}

// StripMany scans and strips many files concurrently.
//
// Files are processed by up to WithWorkers goroutines (default
// runtime.NumCPU()), one worker per file. Results are returned in the same
// order as paths. A failure on one file never stops the others; it is
// recorded in that file's Result.
//
// Once ctx is cancelled no new file is started, and files that were never
// started get ctx.Err() as their error. A file whose copy is interrupted is
// left untouched.
//
// paths must not contain duplicates.
func StripMany(ctx context.Context, paths []string, opts ...Option) []Result {
	o := resolveOptions(opts)
	return run(ctx, paths, o, func(ctx context.Context, r *Result) {
		info, err := Scan(r.Path)
		if err != nil {
			r.Err = err
			return
		}
		r.Info = info
		r.Scanned = true
		r.Changed, r.Err = strip(ctx, r.Path, info, o)
	})
}

// ScanMany scans many files concurrently without modifying them.
//
// It follows the same scheduling and ordering rules as StripMany.
func ScanMany(ctx context.Context, paths []string, opts ...Option) []Result {
	o := resolveOptions(opts)
	return run(ctx, paths, o, func(_ context.Context, r *Result) {
		r.Info, r.Err = Scan(r.Path)
		r.Scanned = r.Err == nil
	})
}

func run(ctx context.Context, paths []string, o *options, work func(context.Context, *Result)) []Result {
	if len(paths) == 0 {
		return nil
	}

	results := make([]Result, len(paths))

	var g errgroup.Group
	g.SetLimit(o.workers)

	for i, path := range paths {
		results[i].Path = path

		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}

		r := &results[i]
		g.Go(func() error {
			// Check for cancellation while queued
			if err := ctx.Err(); err != nil {
				r.Err = err
				return nil
			}

			work(ctx, r)
			if r.Err != nil {
				o.logger.Debug("file failed", zap.String("path", r.Path), zap.Error(r.Err))
			}
			return nil
		})
	}

	_ = g.Wait() //nolint:errcheck // Workers never return errors

	return results
}
