package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/simonhull/id3strip"
	"github.com/simonhull/id3strip/internal/config"
	"github.com/simonhull/id3strip/internal/report"
	"github.com/simonhull/id3strip/internal/walker"
)

var (
	logger  *zap.Logger
	verbose bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// rootCmd creates the id3strip command
func rootCmd() *cobra.Command {
	var (
		recursive    bool
		dryRun       bool
		workers      int
		backupSuffix string
	)

	cmd := &cobra.Command{
		Use:   "id3strip [path]",
		Short: "Remove ID3 metadata from MP3 files",
		Long: `Remove ID3v2 and ID3v1 tags from the MP3 files in a folder.

Audio data, permission bits, and timestamps are left as they were. Files
are rewritten through a temporary file and an atomic rename, so an
interrupted run never leaves a half-written track behind.`,
		Version:       id3strip.GetVersionInfo().String(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = newLogger(verbose)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
				return err
			}
			defer logger.Sync() //nolint:errcheck // stderr sync errors are expected

			cfg, err := config.LoadConfig()
			if err != nil {
				logger.Error("Failed to load config", zap.Error(err))
				return err
			}

			// Override config with CLI flags
			flags := cmd.Flags()
			if flags.Changed("recursive") {
				cfg.Recursive = recursive
			}
			if flags.Changed("dry-run") {
				cfg.DryRun = dryRun
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if flags.Changed("backup") {
				cfg.BackupSuffix = backupSuffix
			}
			if err := cfg.Validate(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Invalid configuration: %v\n", err)
				return err
			}

			path := "."
			if len(args) == 1 {
				path = args[0]
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, cmd, cfg, path)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Walk folders recursively")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would change without modifying files")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Files to process at once (default: number of CPUs)")
	cmd.Flags().StringVar(&backupSuffix, "backup", "", "Keep each original as <file><suffix> before rewriting")

	return cmd
}

// run strips or reports every matching file under path. Per-file failures
// are reported but never fail the command.
func run(ctx context.Context, cmd *cobra.Command, cfg *config.Config, path string) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if info, err := os.Stat(target); err != nil || !info.IsDir() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Not a directory: %s\n", target)
		return fmt.Errorf("not a directory: %s", target)
	}

	paths, err := walker.NewWalker(cfg, logger).Find(target)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Cannot read %s: %v\n", target, err)
		return err
	}

	rep := report.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if len(paths) == 0 {
		fmt.Fprintln(rep.Out, "No MP3 files found.")
		return nil
	}

	logger.Debug("Found files",
		zap.String("root", target),
		zap.Int("count", len(paths)),
		zap.Bool("dry_run", cfg.DryRun))

	opts := []id3strip.Option{
		id3strip.WithWorkers(cfg.Workers),
		id3strip.WithLogger(logger),
	}

	if cfg.DryRun {
		rep.DryRun(id3strip.ScanMany(ctx, paths, opts...))
		return nil
	}

	if cfg.BackupSuffix != "" {
		opts = append(opts, id3strip.WithBackup(cfg.BackupSuffix))
	}

	sum := rep.Stripped(id3strip.StripMany(ctx, paths, opts...))
	logger.Debug("Run complete",
		zap.Int("found", sum.Found),
		zap.Int("processed", sum.Processed),
		zap.Int("skipped", sum.Skipped),
		zap.Int("warnings", sum.Warnings))

	return nil
}

// newLogger builds a development logger for --verbose and an error-only
// JSON logger otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.ErrorLevel),
		Encoding:         "json",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}
	return cfg.Build()
}
