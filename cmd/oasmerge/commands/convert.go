package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/oasmerge/converter"
	"github.com/erraggy/oasmerge/internal/cliutil"
	"github.com/erraggy/oasmerge/internal/fileutil"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Output            string
	ServerURL         string
	ServerDescription string
	Target            string
	NoInfo            bool
	Quiet             bool
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.ServerURL, "server-url", converter.DefaultServerURL, "URL of the servers entry")
	fs.StringVar(&flags.ServerDescription, "server-description", converter.DefaultServerDescription, "description of the servers entry")
	fs.StringVar(&flags.Target, "t", converter.DefaultTargetVersion, "openapi version written to the output")
	fs.StringVar(&flags.Target, "target", converter.DefaultTargetVersion, "openapi version written to the output")
	fs.BoolVar(&flags.NoInfo, "no-info", false, "suppress info messages")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oasmerge convert [flags] <file|url>\n\n")
		cliutil.Writef(fs.Output(), "Convert a Swagger 2.0 JSON document to OpenAPI 3.0.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oasmerge convert swagger/merged.swagger.json\n")
		cliutil.Writef(fs.Output(), "  oasmerge convert -o openapi.json -server-url https://api.example.com merged.swagger.json\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Only paths, operations, parameters, responses and definitions are converted\n")
		cliutil.Writef(fs.Output(), "  - The first body parameter becomes the request body; others are dropped\n")
		cliutil.Writef(fs.Output(), "  - #/definitions/ references are rewritten to #/components/schemas/\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	return runConvert(context.Background(), args, os.Stdout, os.Stderr)
}

func runConvert(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs, flags := SetupConvertFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("convert command requires exactly one file path or URL")
	}
	specPath := fs.Arg(0)

	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, []string{specPath}); err != nil {
			return err
		}
	}

	c := converter.New()
	c.TargetVersion = flags.Target
	c.ServerURL = flags.ServerURL
	c.ServerDescription = flags.ServerDescription
	c.IncludeInfo = !flags.NoInfo

	result, err := c.Convert(ctx, specPath)
	if err != nil {
		return fmt.Errorf("converting file: %w", err)
	}

	if !flags.Quiet {
		cliutil.Writef(stderr, "Specification: %s\n", specPath)
		cliutil.Writef(stderr, "Source Version: %s\n", result.SourceVersion)
		cliutil.Writef(stderr, "Target Version: %s\n\n", result.TargetVersion)
		printConversionSummary(stderr, result)
	}

	if flags.Output == "" {
		data, err := fileutil.MarshalDocument("", result.Document)
		if err != nil {
			return fmt.Errorf("marshaling converted document: %w", err)
		}
		cliutil.Writef(stdout, "%s\n", data)
		return nil
	}

	if err := c.WriteResult(result, flags.Output); err != nil {
		return err
	}
	if !flags.Quiet {
		cliutil.Writef(stderr, "\nOutput written to: %s\n", flags.Output)
	}
	return nil
}
