// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the oasmerge merge and convert operations as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasmerge"
)

const serverInstructions = `oasmerge MCP server: merges OpenAPI 3.0 or Swagger 2.0 JSON documents and converts Swagger 2.0 to OpenAPI 3.0.

Merge rules: the first document found is the base and gets a fresh info block. tags, paths, components.schemas, definitions and servers from later documents are deep-merged into it. Objects merge key by key, arrays are unioned without duplicates, later scalars win.

Configuration via OASMERGE_* environment variables:
- OASMERGE_CONFIG: YAML profile file for the merge tool (default: built-in profiles "openapi" and "swagger")
- OASMERGE_MAX_INLINE_SIZE (default: 10485760): maximum inline content size in bytes
- OASMERGE_MAX_MERGE_SPECS (default: 20): maximum specs per merge call
- OASMERGE_CONVERT_INCLUDE_INFO (default: true): report info-level conversion issues`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasmerge", Version: oasmerge.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "merge",
		Description: "Merge OpenAPI or Swagger JSON documents into one. Provide the documents via the specs array (file, url or inline content, in order), or name a profile to merge its configured inputs. Missing files are skipped with a warning. Use output to write the merged document to a file instead of returning it inline.",
	}, handleMerge)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert a Swagger 2.0 JSON document to OpenAPI 3.0. Body parameters become request bodies, response schemas are wrapped in application/json content, and #/definitions/ references are rewritten to #/components/schemas/. Returns conversion issues and the converted document.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "profiles",
		Description: "List the configured merge profiles with their inputs and outputs.",
	}, handleProfiles)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// pathPattern matches absolute filesystem paths in error messages.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

// sanitizeError strips absolute filesystem paths from error messages
// so MCP clients do not see the server's directory layout.
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
