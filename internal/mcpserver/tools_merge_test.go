package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasmerge/jsonvalue"
)

const serviceSpec = `{
  "openapi": "3.0.0",
  "info": {"title": "Service", "version": "0.1.0"},
  "tags": [{"name": "service"}],
  "paths": {
    "/v1/info": {"get": {"summary": "service info"}}
  },
  "components": {"schemas": {"Info": {"type": "object"}}}
}`

const indexerSpec = `{
  "openapi": "3.0.0",
  "info": {"title": "Indexer", "version": "0.2.0"},
  "tags": [{"name": "service"}, {"name": "indexer"}],
  "paths": {
    "/v1/info": {"get": {"summary": "indexer info"}},
    "/v1/vtxos": {"get": {"summary": "list vtxos"}, "post": {"summary": "add vtxo"}}
  },
  "components": {"schemas": {"Vtxo": {"type": "object"}}}
}`

func parseOutputDocument(t *testing.T, data string) *jsonvalue.Value {
	t.Helper()
	doc, err := jsonvalue.Parse([]byte(data))
	require.NoError(t, err)
	return doc
}

func TestMergeTool_InlineSpecs(t *testing.T) {
	input := mergeInput{
		Specs: []specInput{{Content: serviceSpec}, {Content: indexerSpec}},
	}
	result, output, err := handleMerge(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, []string{"<inline>", "<inline>"}, output.Sources)
	assert.Empty(t, output.Skipped)
	assert.Empty(t, output.Warnings)
	assert.Equal(t, 2, output.PathCount)
	assert.Equal(t, 3, output.OperationCount)
	assert.Equal(t, 2, output.SchemaCount)
	assert.Empty(t, output.WrittenTo)

	doc := parseOutputDocument(t, output.Document)
	assert.Equal(t, "indexer info", doc.Lookup("paths", "/v1/info", "get", "summary").Str())
	assert.Equal(t, "Ark API", doc.Lookup("info", "title").Str())
	assert.Equal(t, 2, doc.Lookup("tags").Len())
	assert.Equal(t, []string{"Info", "Vtxo"}, doc.Lookup("components", "schemas").Object().Keys())
}

func TestMergeTool_InfoOverride(t *testing.T) {
	input := mergeInput{
		Specs: []specInput{{Content: serviceSpec}},
		Title: "Custom API",
	}
	_, output, err := handleMerge(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	doc := parseOutputDocument(t, output.Document)
	assert.Equal(t, "Custom API", doc.Lookup("info", "title").Str())
	assert.Equal(t, "1.0.0", doc.Lookup("info", "version").Str())
	assert.NotEmpty(t, doc.Lookup("info", "description").Str())
}

func TestMergeTool_MissingFileSkipped(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.openapi.json")
	present := filepath.Join(dir, "service.openapi.json")
	require.NoError(t, os.WriteFile(present, []byte(serviceSpec), 0o600))

	input := mergeInput{
		Specs: []specInput{{File: missing}, {File: present}, {Content: indexerSpec}},
	}
	result, output, err := handleMerge(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, []string{missing}, output.Skipped)
	assert.Equal(t, []string{present, "<inline>"}, output.Sources)
	require.Len(t, output.Warnings, 1)
	assert.Equal(t, "source_not_found", output.Warnings[0].Category)
	assert.Equal(t, missing, output.Warnings[0].Source)
}

func TestMergeTool_OutputFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "merged.openapi.json")

	input := mergeInput{
		Specs:  []specInput{{Content: serviceSpec}, {Content: indexerSpec}},
		Output: outPath,
	}
	_, output, err := handleMerge(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, outPath, output.WrittenTo)
	assert.Empty(t, output.Document, "document should not be inline when written to file")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	doc := parseOutputDocument(t, string(data))
	assert.Equal(t, 2, doc.Lookup("paths").Len())
}

func TestMergeTool_Profile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "service.json"), []byte(serviceSpec), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "indexer.json"), []byte(indexerSpec), 0o600))

	configPath := filepath.Join(dir, "oasmerge.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`profiles:
  - name: local
    base_dir: `+dir+`
    inputs: [service.json, absent.json, indexer.json]
    info:
      title: Local API
`), 0o600))
	withConfigFile(t, configPath)

	_, output, err := handleMerge(context.Background(), &mcp.CallToolRequest{}, mergeInput{Profile: "local"})
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "service.json"), filepath.Join(dir, "indexer.json")}, output.Sources)
	assert.Equal(t, []string{filepath.Join(dir, "absent.json")}, output.Skipped)

	doc := parseOutputDocument(t, output.Document)
	assert.Equal(t, "Local API", doc.Lookup("info", "title").Str())
	assert.Equal(t, "1.0.0", doc.Lookup("info", "version").Str())
}

func TestMergeTool_AllMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")

	result, output, err := handleMerge(context.Background(), &mcp.CallToolRequest{}, mergeInput{
		Specs: []specInput{{File: missing}},
	})
	require.NoError(t, err)
	assert.Nil(t, result)

	assert.Empty(t, output.Sources)
	assert.Equal(t, []string{missing}, output.Skipped)
	assert.Equal(t, "null", output.Document)
	require.Len(t, output.Warnings, 2)
	assert.Equal(t, "source_not_found", output.Warnings[0].Category)
	assert.Equal(t, "no_documents", output.Warnings[1].Category)
}

func TestMergeTool_Errors(t *testing.T) {
	tooMany := make([]specInput, cfg.MaxMergeSpecs+1)
	for i := range tooMany {
		tooMany[i] = specInput{Content: serviceSpec}
	}

	tests := []struct {
		name  string
		input mergeInput
	}{
		{"nothing to merge", mergeInput{}},
		{"specs and profile", mergeInput{Specs: []specInput{{Content: serviceSpec}}, Profile: "openapi"}},
		{"too many specs", mergeInput{Specs: tooMany}},
		{"unknown profile", mergeInput{Profile: "nope"}},
		{"malformed content", mergeInput{Specs: []specInput{{Content: `{"openapi": }`}}}},
		{"non-object content", mergeInput{Specs: []specInput{{Content: `[]`}}}},
		{"empty spec input", mergeInput{Specs: []specInput{{}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, output, err := handleMerge(context.Background(), &mcp.CallToolRequest{}, tt.input)
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.True(t, result.IsError)
			assert.Empty(t, output.Sources)
		})
	}
}

func withConfigFile(t *testing.T, path string) {
	t.Helper()
	prev := cfg.ConfigFile
	cfg.ConfigFile = path
	t.Cleanup(func() { cfg.ConfigFile = prev })
}
