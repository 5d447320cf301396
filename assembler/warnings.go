package assembler

import (
	"fmt"

	"github.com/erraggy/oasmerge/internal/severity"
)

// WarningCategory identifies the type of warning.
type WarningCategory string

const (
	// WarnSourceNotFound indicates an input document did not exist and was skipped.
	WarnSourceNotFound WarningCategory = "source_not_found"
	// WarnSectionOverwritten indicates a section held a different JSON type in
	// the accumulated document and was replaced by the incoming value.
	WarnSectionOverwritten WarningCategory = "section_overwritten"
	// WarnNoDocuments indicates none of the inputs existed and the result is null.
	WarnNoDocuments WarningCategory = "no_documents"
)

// Warning represents a structured, non-fatal condition encountered while
// assembling documents.
type Warning struct {
	// Category identifies the type of warning.
	Category WarningCategory
	// Path is the JSON path to the affected element.
	Path string
	// Message is a human-readable description.
	Message string
	// SourceFile is the input that triggered the warning.
	SourceFile string
	// Severity indicates warning severity (default: SeverityWarning).
	Severity severity.Severity
	// Context provides additional details.
	Context map[string]any
}

// String returns the warning message.
func (w *Warning) String() string {
	return w.Message
}

// NewSourceNotFoundWarning creates a warning for a skipped, missing input.
func NewSourceNotFoundWarning(sourceFile string) *Warning {
	return &Warning{
		Category:   WarnSourceNotFound,
		Message:    fmt.Sprintf("%s not found, skipping", sourceFile),
		SourceFile: sourceFile,
		Severity:   severity.SeverityWarning,
	}
}

// NewNoDocumentsWarning creates a warning for a run in which all skipped
// inputs were missing.
func NewNoDocumentsWarning(skipped int) *Warning {
	return &Warning{
		Category: WarnNoDocuments,
		Message:  fmt.Sprintf("none of the %d input(s) could be found, result is null", skipped),
		Severity: severity.SeverityWarning,
	}
}

// NewSectionOverwrittenWarning creates a warning for a section whose JSON type
// differs between the accumulated document and sourceFile.
func NewSectionOverwrittenWarning(path, sourceFile, oldKind, newKind string) *Warning {
	return &Warning{
		Category:   WarnSectionOverwritten,
		Path:       path,
		Message:    fmt.Sprintf("%s replaced: %s in merged document, %s in %s", path, oldKind, newKind, sourceFile),
		SourceFile: sourceFile,
		Severity:   severity.SeverityWarning,
		Context: map[string]any{
			"old_kind": oldKind,
			"new_kind": newKind,
		},
	}
}

// Warnings is a collection of assembler warnings.
type Warnings []*Warning

// ByCategory returns the warnings matching category.
func (ws Warnings) ByCategory(category WarningCategory) Warnings {
	var out Warnings
	for _, w := range ws {
		if w.Category == category {
			out = append(out, w)
		}
	}
	return out
}

// Strings returns the warning messages.
func (ws Warnings) Strings() []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.String())
	}
	return out
}
