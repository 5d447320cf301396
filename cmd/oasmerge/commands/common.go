// Package commands provides CLI command handlers for oasmerge.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	slogctx "github.com/veqryn/slog-context"

	"github.com/erraggy/oasmerge/converter"
	"github.com/erraggy/oasmerge/internal/cliutil"
)

// NewLogger returns a text logger on w whose records carry the attributes
// appended to their context with slogctx.Append. Quiet loggers only report
// errors.
func NewLogger(w io.Writer, quiet bool) *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelError
	}
	return slog.New(slogctx.NewHandler(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}), nil))
}

// ValidateOutputPath rejects an output path that would overwrite one of the
// inputs. URL inputs are compared verbatim.
func ValidateOutputPath(outputPath string, inputPaths []string) error {
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	for _, inputPath := range inputPaths {
		if strings.Contains(inputPath, "://") {
			if inputPath == outputPath {
				return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
			}
			continue
		}
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}
		if absOutputPath == absInputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}

	return nil
}

// printConversionSummary writes the conversion issues and a one-line verdict.
func printConversionSummary(w io.Writer, result *converter.ConversionResult) {
	if len(result.Issues) > 0 {
		cliutil.Writef(w, "Conversion Issues (%d):\n", len(result.Issues))
		for _, issue := range result.Issues {
			cliutil.Writef(w, "  %s\n", issue.String())
		}
		cliutil.Writef(w, "\n")
	}

	if result.Success {
		cliutil.Writef(w, "✓ Conversion successful")
		if result.InfoCount > 0 || result.WarningCount > 0 {
			cliutil.Writef(w, " (%d info, %d warnings)", result.InfoCount, result.WarningCount)
		}
		cliutil.Writef(w, "\n")
		return
	}

	cliutil.Writef(w, "✗ Conversion completed with %d critical issue(s)", result.CriticalCount)
	if result.WarningCount > 0 {
		cliutil.Writef(w, ", %d warning(s)", result.WarningCount)
	}
	cliutil.Writef(w, "\n")
}
