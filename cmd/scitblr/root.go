package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"scitblr/internal/config"
	"scitblr/internal/excel"
	"scitblr/internal/logger"
	"scitblr/internal/preview"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type options struct {
	configPath  string
	writeConfig string
	suffix      string
	logDir      string
	preview     bool
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "scitblr <path> [header_row]",
		Short: "Format spreadsheet tables as scientific three-line tables",
		Long: `Format a spreadsheet as a scientific three-line table.

The first worksheet of the input is copied into a new workbook next to it,
named <name>_formatted.<ext>. Every cell is centered. The first row gets a
medium top border, the header row a thin bottom border and the last row a
medium bottom border.

header_row is the 1-based row holding the column titles (default 1).

Inputs: .xlsx, .xlsm, .xls, .ods. .xls and .ods inputs are written as .xlsx.
A directory formats every workbook below it.

--write-config saves the effective settings (config file, flags and
header_row) as TOML. Without a path nothing is formatted.`,
		Example: `  scitblr results.xlsx
  scitblr results.xlsx 2
  scitblr ./tables --preview
  scitblr --write-config scitblr.toml --suffix _3line`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:          validateArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && opts.writeConfig == "" {
				return cmd.Help()
			}
			return run(cmd, opts, args)
		},
	}

	bindFlags(cmd.Flags(), opts)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})
	return cmd
}

func bindFlags(fs *pflag.FlagSet, opts *options) {
	fs.StringVar(&opts.configPath, "config", "", "TOML config file")
	fs.StringVar(&opts.writeConfig, "write-config", "", "save the effective settings to this TOML file")
	fs.StringVar(&opts.suffix, "suffix", config.DefaultSuffix, "suffix appended to the output file name")
	fs.StringVar(&opts.logDir, "log-dir", "", "write a log file to this directory")
	fs.BoolVar(&opts.preview, "preview", false, "show the row styles and ask before writing")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging to stderr")
}

func validateArgs(_ *cobra.Command, args []string) error {
	if len(args) > 2 {
		return &usageError{err: fmt.Errorf("expected at most 2 arguments, got %d", len(args))}
	}
	return nil
}

// parseHeaderRow accepts a 1-based row number
func parseHeaderRow(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, &usageError{err: fmt.Errorf("header row must be an integer >= 1, got %q", arg)}
	}
	return n, nil
}

func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.LoadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("suffix") {
		cfg.Format.Suffix = opts.suffix
	}
	if cmd.Flags().Changed("log-dir") {
		cfg.Log.Directory = opts.logDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, &usageError{err: err}
	}
	return cfg, nil
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	if len(args) == 2 {
		if cfg.Format.HeaderRow, err = parseHeaderRow(args[1]); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if opts.writeConfig != "" {
		if err := config.SaveConfig(opts.writeConfig, cfg); err != nil {
			return err
		}
		printConfigSaved(out, opts.writeConfig)
		if len(args) == 0 {
			return nil
		}
	}

	headerRow := cfg.Format.HeaderRow

	closer, err := logger.Init(logger.Options{
		Dir:    cfg.Log.Directory,
		Level:  cfg.Log.Level,
		Stderr: opts.verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to initialise logging: %w", err)
	}
	defer closer.Close()

	formatOpts := excel.Options{Suffix: cfg.Format.Suffix}
	if opts.preview {
		formatOpts.Confirm = preview.Confirm
	}

	path := args[0]
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", excel.ErrNotFound, path)
	}
	if err != nil {
		return err
	}

	if info.IsDir() {
		return runFormatAll(out, path, headerRow, formatOpts)
	}
	return runFormat(out, path, headerRow, formatOpts)
}

func runFormat(out io.Writer, path string, headerRow int, opts excel.Options) error {
	logger.Info("Starting format operation", "input_file", path, "header_row", headerRow)

	result, err := excel.FormatFile(path, headerRow, opts)
	if errors.Is(err, excel.ErrSkipped) {
		printSkipped(out, path)
		return nil
	}
	if err != nil {
		logger.Error("Format operation failed", "input_file", path, "error", err)
		return err
	}

	printResult(out, result)
	return nil
}

func runFormatAll(out io.Writer, dir string, headerRow int, opts excel.Options) error {
	logger.Info("Starting format-all operation", "input_directory", dir, "header_row", headerRow)

	batch, err := excel.FormatDirectory(dir, headerRow, opts, func(i, n int, path string) {
		printProgress(out, i, n, path)
	})
	if err != nil {
		return err
	}

	printBatchSummary(out, dir, batch)
	if len(batch.Failures) > 0 {
		return &ExitError{Code: 1}
	}
	return nil
}
