// Package severity provides severity levels for issues reported by the
// assembler and converter packages.
//
// The levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

// Severity indicates how serious a reported issue is.
type Severity int

const (
	// SeverityInfo indicates an informational notice about a processing choice.
	SeverityInfo Severity = iota

	// SeverityWarning indicates a lossy or surprising step that did not stop processing.
	SeverityWarning

	// SeverityError indicates a problem that makes the produced document suspect.
	SeverityError

	// SeverityCritical indicates content that was dropped because it could not be processed.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// AtLeast reports whether s is at least as severe as min.
func (s Severity) AtLeast(min Severity) bool {
	return s >= min
}
