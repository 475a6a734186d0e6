package excel

import (
	"errors"
	"fmt"
	"os"

	"scitblr/internal/config"
	"scitblr/internal/logger"
	"scitblr/internal/table"
)

// Options tune a format run.
type Options struct {
	// Suffix is appended to the source stem; empty means "_formatted".
	Suffix string
	// Confirm, when set, is shown the table before anything is written.
	// Returning false skips the file with ErrSkipped.
	Confirm func(t *table.Table) (bool, error)
}

func (o Options) suffix() string {
	if o.Suffix == "" {
		return config.DefaultSuffix
	}
	return o.Suffix
}

// Result describes one formatted workbook
type Result struct {
	Input   string
	Output  string
	Rows    int
	Columns int
}

// Failure records a file that could not be formatted in a batch
type Failure struct {
	Input string
	Err   error
}

// BatchResult collects the outcome of FormatDirectory
type BatchResult struct {
	Results  []Result
	Skipped  []string
	Failures []Failure
}

// FormatFile reads the first worksheet of inputFilePath and writes the
// bordered copy next to it.
func FormatFile(inputFilePath string, headerRow int, opts Options) (*Result, error) {
	if err := validateInputFile(inputFilePath); err != nil {
		return nil, err
	}

	t, err := ReadTable(inputFilePath, headerRow)
	if err != nil {
		return nil, err
	}

	if opts.Confirm != nil {
		ok, err := opts.Confirm(t)
		if err != nil {
			return nil, err
		}
		if !ok {
			logger.Info("Write declined", "input_file", inputFilePath)
			return nil, ErrSkipped
		}
	}

	outputFilePath := t.OutputPath(opts.suffix())
	if err := WriteTable(t, outputFilePath); err != nil {
		return nil, err
	}

	return &Result{
		Input:   inputFilePath,
		Output:  outputFilePath,
		Rows:    t.RowCount + 1,
		Columns: t.ColumnCount + 1,
	}, nil
}

// FormatDirectory formats every supported workbook below dir. A failing
// file does not stop the batch.
func FormatDirectory(dir string, headerRow int, opts Options, progress func(i, n int, path string)) (*BatchResult, error) {
	files, err := findWorkbooks(dir, opts.suffix())
	if err != nil {
		return nil, fmt.Errorf("failed to scan directory %s: %w", dir, err)
	}

	logger.Info("Found files to format", "directory", dir, "file_count", len(files))

	batch := &BatchResult{}
	for i, inputFile := range files {
		if progress != nil {
			progress(i+1, len(files), inputFile)
		}

		result, err := FormatFile(inputFile, headerRow, opts)
		switch {
		case errors.Is(err, ErrSkipped):
			batch.Skipped = append(batch.Skipped, inputFile)
		case err != nil:
			logger.Error("Failed to format file", "file", inputFile, "error", err)
			batch.Failures = append(batch.Failures, Failure{Input: inputFile, Err: err})
		default:
			batch.Results = append(batch.Results, *result)
		}
	}

	logger.Info("Format-all operation completed",
		"success_count", len(batch.Results),
		"skipped_count", len(batch.Skipped),
		"error_count", len(batch.Failures))
	return batch, nil
}

// validateInputFile checks the extension before touching the file system so
// an unsupported input never produces output.
func validateInputFile(inputFilePath string) error {
	if !IsSupported(inputFilePath) {
		return fmt.Errorf("%w: %q", ErrUnsupportedExtension, Extension(inputFilePath))
	}

	info, err := os.Stat(inputFilePath)
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, inputFilePath)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOpen, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrOpen, inputFilePath)
	}
	return nil
}
