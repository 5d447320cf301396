package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/oasmerge/assembler"
	"github.com/erraggy/oasmerge/config"
	"github.com/erraggy/oasmerge/converter"
	"github.com/erraggy/oasmerge/internal/cliutil"
)

// MergeFlags contains flags for the merge command
type MergeFlags struct {
	Config  string
	Profile string
	Output  string
	Quiet   bool
}

// SetupMergeFlags creates and configures a FlagSet for the merge command.
// Returns the FlagSet and a MergeFlags struct with bound flag variables.
func SetupMergeFlags() (*flag.FlagSet, *MergeFlags) {
	fs := flag.NewFlagSet("merge", flag.ContinueOnError)
	flags := &MergeFlags{}

	fs.StringVar(&flags.Config, "config", "", "YAML file defining merge profiles (default: built-in profiles)")
	fs.StringVar(&flags.Profile, "profile", config.ProfileOpenAPI, "profile to run")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: the profile's output)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: the profile's output)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only report errors")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only report errors")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oasmerge merge [flags] [file1 file2 ...]\n\n")
		cliutil.Writef(fs.Output(), "Merge OpenAPI or Swagger JSON documents into a single document.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nProfiles:\n")
		cliutil.Writef(fs.Output(), "  openapi    swagger/*.openapi.json -> swagger/merged.openapi.json\n")
		cliutil.Writef(fs.Output(), "  swagger    swagger/*.swagger.json -> swagger/merged.swagger.json,\n")
		cliutil.Writef(fs.Output(), "             converted to swagger/merged.openapi3.json\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  oasmerge merge\n")
		cliutil.Writef(fs.Output(), "  oasmerge merge -profile swagger\n")
		cliutil.Writef(fs.Output(), "  oasmerge merge -config oasmerge.yaml -profile public\n")
		cliutil.Writef(fs.Output(), "  oasmerge merge -o merged.yaml types.json service.json\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - The first input that exists is the base document\n")
		cliutil.Writef(fs.Output(), "  - Missing inputs are skipped with a warning\n")
		cliutil.Writef(fs.Output(), "  - Files given on the command line replace the profile's inputs\n")
		cliutil.Writef(fs.Output(), "  - Output ending in .yaml or .yml is written as YAML\n")
	}

	return fs, flags
}

// HandleMerge executes the merge command
func HandleMerge(args []string) error {
	return runMerge(context.Background(), args, os.Stderr)
}

func runMerge(ctx context.Context, args []string, stderr io.Writer) error {
	fs, flags := SetupMergeFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg := config.Default()
	if flags.Config != "" {
		loaded, err := config.LoadFile(flags.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	profile, err := cfg.Profile(flags.Profile)
	if err != nil {
		return err
	}

	inputs := profile.InputPaths()
	if fs.NArg() > 0 {
		inputs = fs.Args()
	}
	output := profile.OutputPath()
	if flags.Output != "" {
		output = flags.Output
	}
	if err := ValidateOutputPath(output, inputs); err != nil {
		return err
	}

	logger := NewLogger(stderr, flags.Quiet)
	a := assembler.New(assembler.Config{Inputs: inputs, Info: profile.Info, Logger: logger})

	result, err := a.Assemble(ctx)
	if err != nil {
		return fmt.Errorf("merging documents: %w", err)
	}
	if err := a.WriteResult(result, output); err != nil {
		return err
	}

	if !flags.Quiet {
		cliutil.Writef(stderr, "Successfully merged %d document(s) into %s\n", len(result.Sources), output)
		cliutil.Writef(stderr, "Paths: %d\n", result.Stats.PathCount)
		cliutil.Writef(stderr, "Operations: %d\n", result.Stats.OperationCount)
		cliutil.Writef(stderr, "Schemas: %d\n", result.Stats.SchemaCount)
		if len(result.Skipped) > 0 {
			cliutil.Writef(stderr, "Skipped (not found): %d\n", len(result.Skipped))
		}
	}

	convertOutput := profile.ConvertOutputPath()
	if convertOutput == "" {
		return nil
	}
	if result.Document.IsNull() {
		logger.WarnContext(ctx, "nothing was merged, skipping conversion", "output", convertOutput)
		return nil
	}

	c := converter.New()
	c.TargetVersion = profile.OpenAPIVersion
	c.ServerURL = profile.Server.URL
	c.ServerDescription = profile.Server.Description

	converted, err := c.ConvertDocument(result.Document)
	if err != nil {
		return fmt.Errorf("converting merged document: %w", err)
	}
	if err := c.WriteResult(converted, convertOutput); err != nil {
		return err
	}

	if !flags.Quiet {
		printConversionSummary(stderr, converted)
		cliutil.Writef(stderr, "Converted to OpenAPI %s at %s\n", converted.TargetVersion, convertOutput)
	}
	return nil
}
