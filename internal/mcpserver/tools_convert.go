package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/viant/afs"

	"github.com/erraggy/oasmerge/converter"
)

type convertInput struct {
	Spec              specInput `json:"spec"                         jsonschema:"The Swagger 2.0 document to convert"`
	Target            string    `json:"target,omitempty"             jsonschema:"openapi version of the result (default 3.0.0)"`
	ServerURL         string    `json:"server_url,omitempty"         jsonschema:"URL of the servers entry (default http://localhost:8080)"`
	ServerDescription string    `json:"server_description,omitempty" jsonschema:"Description of the servers entry"`
	Output            string    `json:"output,omitempty"             jsonschema:"File path to write converted document. If omitted the document is returned inline."`
}

type convertIssue struct {
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Message  string `json:"message"`
}

type convertOutput struct {
	SourceVersion string         `json:"source_version"`
	TargetVersion string         `json:"target_version"`
	Success       bool           `json:"success"`
	IssueCount    int            `json:"issue_count"`
	Issues        []convertIssue `json:"issues,omitempty"`
	WrittenTo     string         `json:"written_to,omitempty"`
	Document      string         `json:"document,omitempty"`
}

func handleConvert(ctx context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	doc, err := input.Spec.resolve(ctx, afs.New())
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	opts := []converter.Option{
		converter.WithDocument(doc),
		converter.WithIncludeInfo(cfg.IncludeInfo),
	}
	if input.Target != "" {
		opts = append(opts, converter.WithTargetVersion(input.Target))
	}
	url, description := input.ServerURL, input.ServerDescription
	if url == "" {
		url = converter.DefaultServerURL
	}
	if description == "" {
		description = converter.DefaultServerDescription
	}
	opts = append(opts, converter.WithServer(url, description))

	result, err := converter.ConvertWithOptions(ctx, opts...)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{
		SourceVersion: result.SourceVersion,
		TargetVersion: result.TargetVersion,
		Success:       result.Success,
		IssueCount:    len(result.Issues),
	}

	output.Issues = makeSlice[convertIssue](len(result.Issues))
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, convertIssue{
			Severity: issue.Severity.String(),
			Path:     issue.Path,
			Message:  issue.Message,
		})
	}

	if input.Output != "" {
		if err := converter.New().WriteResult(result, input.Output); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), convertOutput{}, nil
		}
		output.WrittenTo = input.Output
		return nil, output, nil
	}

	data, err := result.Document.MarshalIndent("", "  ")
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}
	output.Document = string(data)
	return nil, output, nil
}
