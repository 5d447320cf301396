package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/viant/afs"

	"github.com/erraggy/oasmerge/assembler"
	"github.com/erraggy/oasmerge/jsonvalue"
	"github.com/erraggy/oasmerge/oaserrors"
)

type mergeInput struct {
	Specs       []specInput `json:"specs,omitempty"       jsonschema:"Documents to merge in order. The first one found is the base."`
	Profile     string      `json:"profile,omitempty"     jsonschema:"Merge the inputs of this profile instead of specs"`
	Title       string      `json:"title,omitempty"       jsonschema:"info.title of the merged document"`
	Version     string      `json:"version,omitempty"     jsonschema:"info.version of the merged document"`
	Description string      `json:"description,omitempty" jsonschema:"info.description of the merged document"`
	Output      string      `json:"output,omitempty"      jsonschema:"File path to write the merged document. If omitted the document is returned inline."`
}

type mergeWarning struct {
	Category string `json:"category"`
	Source   string `json:"source,omitempty"`
	Path     string `json:"path,omitempty"`
	Message  string `json:"message"`
}

type mergeOutput struct {
	Sources        []string       `json:"sources"`
	Skipped        []string       `json:"skipped,omitempty"`
	Warnings       []mergeWarning `json:"warnings,omitempty"`
	PathCount      int            `json:"path_count"`
	OperationCount int            `json:"operation_count"`
	SchemaCount    int            `json:"schema_count"`
	WrittenTo      string         `json:"written_to,omitempty"`
	Document       string         `json:"document,omitempty"`
}

func handleMerge(ctx context.Context, _ *mcp.CallToolRequest, input mergeInput) (*mcp.CallToolResult, mergeOutput, error) {
	switch {
	case len(input.Specs) == 0 && input.Profile == "":
		return errResult(fmt.Errorf("either specs or profile must be provided")), mergeOutput{}, nil
	case len(input.Specs) > 0 && input.Profile != "":
		return errResult(fmt.Errorf("specs and profile cannot be combined")), mergeOutput{}, nil
	case len(input.Specs) > cfg.MaxMergeSpecs:
		return errResult(fmt.Errorf("too many specs: %d exceeds maximum %d; set OASMERGE_MAX_MERGE_SPECS to increase",
			len(input.Specs), cfg.MaxMergeSpecs)), mergeOutput{}, nil
	}

	var (
		result *assembler.Result
		err    error
	)
	if input.Profile != "" {
		result, err = mergeProfile(ctx, input)
	} else {
		result, err = mergeSpecs(ctx, input)
	}
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}

	output := mergeOutput{
		Sources:        result.Sources,
		Skipped:        result.Skipped,
		PathCount:      result.Stats.PathCount,
		OperationCount: result.Stats.OperationCount,
		SchemaCount:    result.Stats.SchemaCount,
	}
	output.Warnings = makeSlice[mergeWarning](len(result.Warnings))
	for _, w := range result.Warnings {
		output.Warnings = append(output.Warnings, mergeWarning{
			Category: string(w.Category),
			Source:   w.SourceFile,
			Path:     w.Path,
			Message:  w.Message,
		})
	}

	if input.Output != "" {
		if err := assembler.New(assembler.DefaultConfig()).WriteResult(result, input.Output); err != nil {
			return errResult(err), mergeOutput{}, nil
		}
		output.WrittenTo = input.Output
		return nil, output, nil
	}

	data, err := result.Document.MarshalIndent("", "  ")
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}
	output.Document = string(data)
	return nil, output, nil
}

// mergeInfo returns the info fields given in input, with unset fields taken
// from base.
func mergeInfo(input mergeInput, base assembler.Info) (assembler.Info, error) {
	info := assembler.Info{Title: input.Title, Version: input.Version, Description: input.Description}
	if err := mergo.Merge(&info, base); err != nil {
		return assembler.Info{}, fmt.Errorf("merging info defaults: %w", err)
	}
	return info, nil
}

func mergeProfile(ctx context.Context, input mergeInput) (*assembler.Result, error) {
	profiles, err := cfg.profiles()
	if err != nil {
		return nil, err
	}
	profile, err := profiles.Profile(input.Profile)
	if err != nil {
		return nil, err
	}
	info, err := mergeInfo(input, profile.Info)
	if err != nil {
		return nil, err
	}
	return assembler.New(assembler.Config{Inputs: profile.InputPaths(), Info: info}).Assemble(ctx)
}

func mergeSpecs(ctx context.Context, input mergeInput) (*assembler.Result, error) {
	info, err := mergeInfo(input, assembler.DefaultInfo())
	if err != nil {
		return nil, err
	}

	fs := afs.New()
	var (
		sources  []assembler.Source
		skipped  []string
		warnings assembler.Warnings
	)
	for i, spec := range input.Specs {
		doc, err := spec.resolve(ctx, fs)
		if errors.Is(err, oaserrors.ErrSourceNotFound) {
			skipped = append(skipped, spec.name())
			warnings = append(warnings, assembler.NewSourceNotFoundWarning(spec.name()))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("specs[%d]: %w", i, err)
		}
		sources = append(sources, assembler.Source{Name: spec.name(), Document: doc})
	}

	if len(sources) == 0 {
		return &assembler.Result{
			Document: jsonvalue.Null(),
			Skipped:  skipped,
			Warnings: append(warnings, assembler.NewNoDocumentsWarning(len(skipped))),
		}, nil
	}

	result, err := assembler.New(assembler.Config{Info: info}).AssembleDocuments(ctx, sources)
	if err != nil {
		return nil, err
	}
	result.Skipped = skipped
	result.Warnings = append(warnings, result.Warnings...)
	return result, nil
}
