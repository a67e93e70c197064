package id3strip

import (
	"runtime"

	"go.uber.org/zap"
)

// Option configures Strip, StripFile, StripMany, and ScanMany.
//
// Options use the functional options pattern:
//
//	changed, err := id3strip.Strip(path, info,
//	    id3strip.WithBackup(".orig"),
//	    id3strip.WithLogger(logger),
//	)
type Option func(*options)

// options holds the resolved configuration for one call.
type options struct {
	logger       *zap.Logger
	backupSuffix string // Suffix for a copy of the original (e.g. ".orig")
	workers      int    // Concurrent files for StripMany/ScanMany
}

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger:  zap.NewNop(),
		workers: runtime.NumCPU(),
	}
}

func resolveOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sends debug and warning output to logger.
//
// By default nothing is logged. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithBackup keeps the original file next to the stripped one.
//
// Before the stripped content replaces the original, the original is saved
// as path+suffix. For example, WithBackup(".orig") keeps "song.mp3.orig".
// An existing backup with that name is overwritten. If the backup cannot be
// written the strip is abandoned and the original stays in place.
//
// Only the ID3v2 rewrite takes a backup; truncating an ID3v1 tag alone
// does not.
func WithBackup(suffix string) Option {
	return func(o *options) {
		o.backupSuffix = suffix
	}
}

// WithWorkers bounds how many files StripMany and ScanMany process at once.
// Values below 1 are ignored; the default is runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}
