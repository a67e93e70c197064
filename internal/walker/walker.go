// Package walker finds the audio files a run should process.
package walker

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/simonhull/id3strip/internal/config"
)

// Walker walks the filesystem and finds files to strip
type Walker struct {
	config  *config.Config
	logger  *zap.Logger
	exclude map[string]bool
}

// NewWalker creates a new filesystem walker
func NewWalker(cfg *config.Config, logger *zap.Logger) *Walker {
	exclude := make(map[string]bool)
	for _, dir := range cfg.Exclude {
		exclude[dir] = true
	}

	return &Walker{
		config:  cfg,
		logger:  logger,
		exclude: exclude,
	}
}

// Find returns the matching regular files under root in lexical order.
//
// Without Recursive only root's direct children are considered. Symbolic
// links are skipped: replacing one would turn it into a regular file.
// Entries that cannot be read are logged and skipped.
func (w *Walker) Find(root string) ([]string, error) {
	var paths []string

	if !w.config.Recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if w.accept(filepath.Join(root, entry.Name()), entry) {
				paths = append(paths, filepath.Join(root, entry.Name()))
			}
		}
		return paths, nil
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			w.logger.Warn("Error accessing path", zap.String("path", path), zap.Error(err))
			return nil // Continue walking
		}

		if d.IsDir() {
			if path != root && w.exclude[d.Name()] {
				w.logger.Debug("Skipping excluded directory", zap.String("path", path))
				return filepath.SkipDir
			}
			return nil
		}

		if w.accept(path, d) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}

// accept reports whether a directory entry is a file to process.
func (w *Walker) accept(path string, d fs.DirEntry) bool {
	if !w.config.MatchesExtension(d.Name()) {
		return false
	}
	if d.Type()&fs.ModeSymlink != 0 {
		w.logger.Debug("Skipping symlink", zap.String("path", path))
		return false
	}
	return d.Type().IsRegular()
}
