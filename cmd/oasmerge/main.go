package main

import (
	"fmt"
	"os"

	"github.com/erraggy/oasmerge"
	"github.com/erraggy/oasmerge/cmd/oasmerge/commands"
)

// commandNames lists the commands offered as did-you-mean suggestions.
var commandNames = []string{"merge", "convert", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oasmerge %s\n", oasmerge.Version())
		fmt.Println(oasmerge.BuildInfo())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "merge":
		err = commands.HandleMerge(os.Args[2:])
	case "convert":
		err = commands.HandleConvert(os.Args[2:])
	case "mcp":
		err = commands.HandleMCP(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the known command closest to input, or "" when none
// is within an edit distance of 2.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`oasmerge - OpenAPI Specification Merger

Usage:
  oasmerge <command> [options]

Commands:
  merge       Merge OpenAPI or Swagger documents into one
  convert     Convert a Swagger 2.0 document to OpenAPI 3.0
  mcp         Start the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  oasmerge merge
  oasmerge merge -profile swagger
  oasmerge merge -o merged.json types.json service.json
  oasmerge convert -o openapi.json merged.swagger.json

Run 'oasmerge <command> --help' for more information on a command.`)
}
