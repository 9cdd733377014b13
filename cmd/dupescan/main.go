package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	dupescan "dupescan/pkg"
)

const version = "0.1.0"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dupescan: %v\n", err)
		os.Exit(1)
	}
}

// scanFlags carries the root command's flag values into runScan.
type scanFlags struct {
	ignore     []string
	ignoreFile string
	minSize    string
	algorithm  string
	workers    int
	chunkSize  string
	symlinks   string
	configPath string
	jsonOut    bool
	quiet      bool
	verbose    bool
}

func newRootCommand() *cobra.Command {
	flags := &scanFlags{}

	rootCmd := &cobra.Command{
		Use:           "dupescan DIRECTORY",
		Short:         "Find duplicate files by content hash",
		Long: `dupescan walks a directory tree, hashes every file that passes the
name and size filters, and reports groups of files with identical content.`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args[0], flags)
		},
	}

	rootCmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "Filename substring(s) to skip (repeatable)")
	rootCmd.Flags().StringVar(&flags.ignoreFile, "ignore-file", "", "File of ignore patterns, one per line")
	rootCmd.Flags().StringVar(&flags.minSize, "min-size", "", "Minimum file size to consider, e.g. 1K, 10M (default \"1K\")")
	rootCmd.Flags().StringVar(&flags.algorithm, "algorithm", "", "Hash algorithm: sha1, sha256, sha512 (default \"sha256\")")
	rootCmd.Flags().IntVar(&flags.workers, "workers", 0, "Concurrent hash workers (default: one per CPU)")
	rootCmd.Flags().StringVar(&flags.chunkSize, "chunk-size", "", "Hash read buffer size, e.g. 8K (default \"8K\")")
	rootCmd.Flags().StringVar(&flags.symlinks, "symlinks", "", "Directory symlink mode: none, contained, all (default \"contained\")")
	rootCmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Configuration file path")
	rootCmd.Flags().BoolVar(&flags.jsonOut, "json", false, "Emit machine-readable JSON")
	rootCmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "Only log errors")
	rootCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log scan progress")

	rootCmd.AddCommand(newConfigInitCommand())

	return rootCmd
}

func newConfigInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config-init PATH",
		Short: "Write a config file populated with defaults",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := dupescan.WriteDefaultConfig(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}
}

func runScan(cmd *cobra.Command, root string, flags *scanFlags) error {
	logger := newLogger(cmd.ErrOrStderr(), flags.quiet, flags.verbose)

	cfg, err := dupescan.LoadConfig(flags.configPath)
	if err != nil {
		return err
	}

	// Flag beats config, config beats default
	minSizeStr := flags.minSize
	if minSizeStr == "" {
		minSizeStr = cfg.GetScanConfig().MinSize
	}
	minSize, err := dupescan.ParseHumanSize(minSizeStr)
	if err != nil {
		return fmt.Errorf("invalid --min-size: %w", err)
	}

	chunkSize := 0
	if flags.chunkSize != "" {
		chunkSize, err = dupescan.ParseHumanSize(flags.chunkSize)
		if err != nil {
			return fmt.Errorf("invalid --chunk-size: %w", err)
		}
	}

	ignoreFile := flags.ignoreFile
	if ignoreFile == "" {
		ignoreFile = cfg.GetScanConfig().IgnoreFile
	}

	finder, err := dupescan.NewFinder(dupescan.Options{
		Root:           root,
		IgnorePatterns: flags.ignore,
		IgnoreFile:     ignoreFile,
		MinFileSize:    int64(minSize),
		Algorithm:      flags.algorithm,
		ChunkSize:      chunkSize,
		HashWorkers:    flags.workers,
		SymlinkMode:    flags.symlinks,
		Config:         cfg,
	}, logger)
	if err != nil {
		return err
	}

	shutdownChan := setupSignalHandler(cmd.ErrOrStderr())

	groups, err := finder.FindDuplicates(shutdownChan)
	if err != nil {
		return err
	}

	jsonOut := flags.jsonOut || cfg.GetOutputConfig().Format == "json"
	if jsonOut {
		return renderJSON(cmd.OutOrStdout(), groups)
	}
	return renderReport(cmd.OutOrStdout(), groups)
}

func newLogger(w io.Writer, quiet, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
