package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasmerge/jsonvalue"
	"github.com/erraggy/oasmerge/oaserrors"
)

func TestIsYAMLPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"merged.yaml", true},
		{"merged.YML", true},
		{"dir.yaml/merged.json", false},
		{"merged.json", false},
		{"merged", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsYAMLPath(tt.path))
		})
	}
}

func TestWriteDocument_JSON(t *testing.T) {
	doc, err := jsonvalue.Parse([]byte(`{"openapi": "3.0.0", "info": {"title": "<API>"}, "tags": []}`))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "merged.json")
	require.NoError(t, WriteDocument(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "{\n  \"openapi\": \"3.0.0\",\n  \"info\": {\n    \"title\": \"<API>\"\n  },\n  \"tags\": []\n}"
	assert.Equal(t, want, string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, OwnerReadWrite, info.Mode().Perm())
}

func TestWriteDocument_YAML(t *testing.T) {
	doc, err := jsonvalue.Parse([]byte(`{"openapi": "3.0.0", "paths": {"/b": {}, "/a": {}}}`))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "merged.yaml")
	require.NoError(t, WriteDocument(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, "openapi:"), "got:\n%s", text)
	assert.Less(t, strings.Index(text, "/b:"), strings.Index(text, "/a:"), "key order lost:\n%s", text)
}

func TestWriteDocument_ResetsPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "merged.json")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	require.NoError(t, WriteDocument(path, jsonvalue.NewObject()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, OwnerReadWrite, info.Mode().Perm())
}

func TestWriteDocument_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "merged.json")

	err := WriteDocument(path, jsonvalue.NewObject())
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrWrite)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
