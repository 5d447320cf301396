// Package issues provides the issue type shared by conversion reports.
package issues

import (
	"fmt"

	"github.com/erraggy/oasmerge/internal/severity"
)

// Issue represents a single problem found while converting a document.
type Issue struct {
	// Path is the JSON path to the affected element (e.g., "paths./pets.post.parameters[1]")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Context provides additional information about the issue (optional)
	Context string
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error or Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	result := fmt.Sprintf("%s %s: %s", symbol, i.Path, i.Message)
	if i.Context != "" {
		result += fmt.Sprintf("\n    Context: %s", i.Context)
	}
	return result
}

// Count returns how many issues in list have severity sev.
func Count(list []Issue, sev severity.Severity) int {
	n := 0
	for _, issue := range list {
		if issue.Severity == sev {
			n++
		}
	}
	return n
}
