package mcpserver

import (
	"context"
	"fmt"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAllTools(t *testing.T) {
	server := mcp.NewServer(&mcp.Implementation{Name: "oasmerge-test", Version: "dev"}, nil)
	assert.NotPanics(t, func() { registerAllTools(server) })
}

func TestMakeSlice(t *testing.T) {
	assert.Nil(t, makeSlice[string](0))

	s := makeSlice[string](3)
	require.NotNil(t, s)
	assert.Empty(t, s)
	assert.Equal(t, 3, cap(s))
}

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error returns empty string",
			err:  nil,
			want: "",
		},
		{
			name: "strips absolute path",
			err:  fmt.Errorf("source not found: /home/user/swagger/service.openapi.json"),
			want: "source not found: <path>",
		},
		{
			name: "preserves non-path content",
			err:  fmt.Errorf("parse error at line 5, column 3"),
			want: "parse error at line 5, column 3",
		},
		{
			name: "strips multiple paths",
			err:  fmt.Errorf("output file /tmp/a.json would overwrite input file /tmp/a.json"),
			want: "output file <path> would overwrite input file <path>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeError(tt.err))
		})
	}
}

func TestErrResult(t *testing.T) {
	result := errResult(fmt.Errorf("failed to read /root/secret.json"))
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	require.Len(t, result.Content, 1)

	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "failed to read <path>", text.Text)
}

func TestProfilesTool(t *testing.T) {
	result, output, err := handleProfiles(context.Background(), &mcp.CallToolRequest{}, profilesInput{})
	require.NoError(t, err)
	require.Nil(t, result)

	require.Len(t, output.Profiles, 2)
	assert.Equal(t, "openapi", output.Profiles[0].Name)
	assert.Len(t, output.Profiles[0].Inputs, 6)
	assert.Empty(t, output.Profiles[0].ConvertOutput)
	assert.Equal(t, "swagger", output.Profiles[1].Name)
	assert.NotEmpty(t, output.Profiles[1].ConvertOutput)
	assert.Equal(t, "Ark API", output.Profiles[1].Title)
}
