package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type profilesInput struct{}

type profileSummary struct {
	Name          string   `json:"name"`
	Inputs        []string `json:"inputs"`
	Output        string   `json:"output"`
	ConvertOutput string   `json:"convert_output,omitempty"`
	Title         string   `json:"title,omitempty"`
	Version       string   `json:"version,omitempty"`
}

type profilesOutput struct {
	Profiles []profileSummary `json:"profiles"`
}

func handleProfiles(_ context.Context, _ *mcp.CallToolRequest, _ profilesInput) (*mcp.CallToolResult, profilesOutput, error) {
	profiles, err := cfg.profiles()
	if err != nil {
		return errResult(err), profilesOutput{}, nil
	}

	output := profilesOutput{Profiles: make([]profileSummary, 0, len(profiles.Profiles))}
	for _, p := range profiles.Profiles {
		output.Profiles = append(output.Profiles, profileSummary{
			Name:          p.Name,
			Inputs:        p.InputPaths(),
			Output:        p.OutputPath(),
			ConvertOutput: p.ConvertOutputPath(),
			Title:         p.Info.Title,
			Version:       p.Info.Version,
		})
	}
	return nil, output, nil
}
