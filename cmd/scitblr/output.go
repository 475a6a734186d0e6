package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"scitblr/internal/excel"

	"github.com/charmbracelet/lipgloss"
)

// ExitError signals a non-zero exit code without printing an error message.
type ExitError struct{ Code int }

func (e *ExitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }

// usageError marks bad invocations, which exit with code 2
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func exitCode(err error) int {
	var usage *usageError
	if errors.As(err, &usage) {
		return 2
	}
	return 1
}

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB84D")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4757")).
			Bold(true)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

func printError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("Error: ")+err.Error())
	if exitCode(err) == 2 {
		fmt.Fprintln(w, subtleStyle.Render("Run 'scitblr --help' for usage."))
	}
}

func printResult(w io.Writer, result *excel.Result) {
	fmt.Fprintf(w, "%s %s\n", successStyle.Render("✓ Formatted"), result.Output)
	fmt.Fprintln(w, subtleStyle.Render(fmt.Sprintf("  %d rows × %d columns from %s",
		result.Rows, result.Columns, filepath.Base(result.Input))))
}

func printConfigSaved(w io.Writer, path string) {
	fmt.Fprintf(w, "%s %s\n", successStyle.Render("✓ Saved config"), path)
}

func printSkipped(w io.Writer, path string) {
	fmt.Fprintln(w, subtleStyle.Render("Skipped "+path))
}

func printProgress(w io.Writer, i, n int, path string) {
	fmt.Fprintln(w, subtleStyle.Render(fmt.Sprintf("[%d/%d] %s", i, n, path)))
}

func printBatchSummary(w io.Writer, dir string, batch *excel.BatchResult) {
	total := len(batch.Results) + len(batch.Skipped) + len(batch.Failures)
	if total == 0 {
		fmt.Fprintf(w, "No workbooks found in %s\n", dir)
		return
	}

	for _, result := range batch.Results {
		printResult(w, &result)
	}
	for _, failure := range batch.Failures {
		fmt.Fprintf(w, "%s %s: %v\n", errorStyle.Render("✗ Failed"), failure.Input, failure.Err)
	}

	fmt.Fprintf(w, "\nFormatted %d of %d workbooks", len(batch.Results), total)
	if len(batch.Skipped) > 0 {
		fmt.Fprintf(w, ", skipped %d", len(batch.Skipped))
	}
	if len(batch.Failures) > 0 {
		fmt.Fprintf(w, ", %s", errorStyle.Render(fmt.Sprintf("%d failed", len(batch.Failures))))
	}
	fmt.Fprintln(w)
}
