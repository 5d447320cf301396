package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/oasmerge/internal/severity"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name  string
		issue Issue
		want  string
	}{
		{
			name:  "critical",
			issue: Issue{Path: "paths./pets.post.parameters[1]", Message: "extra body parameter dropped", Severity: severity.SeverityCritical},
			want:  "✗ paths./pets.post.parameters[1]: extra body parameter dropped",
		},
		{
			name:  "warning",
			issue: Issue{Path: "paths./pets", Message: "path item is not an object", Severity: severity.SeverityWarning},
			want:  "⚠ paths./pets: path item is not an object",
		},
		{
			name:  "info with context",
			issue: Issue{Path: "servers", Message: "placeholder server added", Severity: severity.SeverityInfo, Context: "http://localhost:8080"},
			want:  "ℹ servers: placeholder server added\n    Context: http://localhost:8080",
		},
		{
			name:  "unknown severity",
			issue: Issue{Path: "x", Message: "y", Severity: severity.Severity(42)},
			want:  "? x: y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.issue.String())
		})
	}
}

func TestCount(t *testing.T) {
	list := []Issue{
		{Severity: severity.SeverityInfo},
		{Severity: severity.SeverityWarning},
		{Severity: severity.SeverityCritical},
	}

	assert.Equal(t, 1, Count(list, severity.SeverityInfo))
	assert.Equal(t, 1, Count(list, severity.SeverityWarning))
	assert.Equal(t, 0, Count(list, severity.SeverityError))
	assert.Equal(t, 1, Count(list, severity.SeverityCritical))
	assert.Equal(t, 0, Count(nil, severity.SeverityInfo))
}
