package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oasmerge/internal/cliutil"
	"github.com/erraggy/oasmerge/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oasmerge mcp\n\n")
		cliutil.Writef(fs.Output(), "Start an MCP (Model Context Protocol) server over stdio.\n\n")
		cliutil.Writef(fs.Output(), "Tools:\n")
		cliutil.Writef(fs.Output(), "  merge       Merge documents given inline, by file or URL, or by profile\n")
		cliutil.Writef(fs.Output(), "  convert     Convert a Swagger 2.0 document to OpenAPI 3.0\n")
		cliutil.Writef(fs.Output(), "  profiles    List the configured merge profiles\n")
		cliutil.Writef(fs.Output(), "\nEnvironment:\n")
		cliutil.Writef(fs.Output(), "  OASMERGE_CONFIG                 YAML profile file (default: built-in profiles)\n")
		cliutil.Writef(fs.Output(), "  OASMERGE_MAX_INLINE_SIZE        maximum inline content size in bytes\n")
		cliutil.Writef(fs.Output(), "  OASMERGE_MAX_MERGE_SPECS        maximum specs per merge call\n")
		cliutil.Writef(fs.Output(), "  OASMERGE_CONVERT_INCLUDE_INFO   report info-level conversion issues\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
