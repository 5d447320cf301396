package converter

import (
	"context"
	"fmt"

	"github.com/viant/afs"

	"github.com/erraggy/oasmerge/internal/fileutil"
	"github.com/erraggy/oasmerge/internal/issues"
	"github.com/erraggy/oasmerge/internal/severity"
	"github.com/erraggy/oasmerge/jsonvalue"
	"github.com/erraggy/oasmerge/oaserrors"
)

// Severity indicates the severity level of a conversion issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about conversion choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates lossy conversions or best-effort transformations
	SeverityWarning = severity.SeverityWarning
	// SeverityCritical indicates content that was dropped during conversion
	SeverityCritical = severity.SeverityCritical
)

// ConversionIssue represents a single conversion issue or limitation
type ConversionIssue = issues.Issue

const (
	// DefaultTargetVersion is the openapi version written to converted documents.
	DefaultTargetVersion = "3.0.0"
	// DefaultServerURL is the placeholder server written to converted documents.
	DefaultServerURL = "http://localhost:8080"
	// DefaultServerDescription describes DefaultServerURL.
	DefaultServerDescription = "Local development server"
)

// ConversionResult contains the results of converting a Swagger 2.0 document
type ConversionResult struct {
	// Document is the converted OpenAPI 3.0 document
	Document *jsonvalue.Value
	// SourceVersion is the swagger version declared by the input ("" if absent)
	SourceVersion string
	// TargetVersion is the openapi version of Document
	TargetVersion string
	// Issues contains all conversion issues
	Issues []ConversionIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// Success is true if conversion completed without critical issues
	Success bool
}

// HasCriticalIssues returns true if there are any critical issues
func (r *ConversionResult) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *ConversionResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// Converter translates merged Swagger 2.0 documents into OpenAPI 3.0 documents
type Converter struct {
	// TargetVersion is written to the openapi field
	TargetVersion string
	// ServerURL is the URL of the single servers entry
	ServerURL string
	// ServerDescription describes the single servers entry
	ServerDescription string
	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool
	// FileSystem reads input documents. Nil means afs.New().
	FileSystem afs.Service
}

// New creates a new Converter instance with default settings
func New() *Converter {
	return &Converter{
		TargetVersion:     DefaultTargetVersion,
		ServerURL:         DefaultServerURL,
		ServerDescription: DefaultServerDescription,
		IncludeInfo:       true,
	}
}

// Convert is a convenience function that reads the Swagger 2.0 document at
// path and converts it with default settings.
//
// Example:
//
//	result, err := converter.Convert(ctx, "swagger/merged.swagger.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, issue := range result.Issues {
//	    fmt.Println(issue)
//	}
func Convert(ctx context.Context, path string) (*ConversionResult, error) {
	return New().Convert(ctx, path)
}

// ConvertDocument is a convenience function that converts an already-parsed
// Swagger 2.0 document with default settings.
func ConvertDocument(doc *jsonvalue.Value) (*ConversionResult, error) {
	return New().ConvertDocument(doc)
}

// Convert reads the document at path, a local path or afs URL, and converts it
func (c *Converter) Convert(ctx context.Context, path string) (*ConversionResult, error) {
	fs := c.FileSystem
	if fs == nil {
		fs = afs.New()
	}

	doc, err := fileutil.LoadDocument(ctx, fs, path)
	if err != nil {
		return nil, fmt.Errorf("converter: failed to load specification: %w", err)
	}

	return c.ConvertDocument(doc)
}

// ConvertDocument converts doc into a new OpenAPI 3.0 document. doc is not
// modified.
func (c *Converter) ConvertDocument(doc *jsonvalue.Value) (*ConversionResult, error) {
	if !doc.IsObject() {
		return nil, &oaserrors.ConversionError{
			SourceVersion: "2.0",
			TargetVersion: c.targetVersion(),
			Message:       "document root must be a JSON object, got " + doc.Kind().String(),
		}
	}

	result := &ConversionResult{
		SourceVersion: doc.Lookup("swagger").Str(),
		TargetVersion: c.targetVersion(),
		Issues:        make([]ConversionIssue, 0),
	}

	if result.SourceVersion != "2.0" {
		c.addIssueWithContext(result, "swagger",
			fmt.Sprintf("source document does not declare swagger 2.0 (got %q)", result.SourceVersion),
			"the document is converted as if it were Swagger 2.0")
	}

	result.Document = c.convertOAS2ToOAS3(doc, result)

	c.updateCounts(result)
	result.Success = result.CriticalCount == 0

	if !c.IncludeInfo {
		filtered := make([]ConversionIssue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Severity.AtLeast(SeverityWarning) {
				filtered = append(filtered, issue)
			}
		}
		result.Issues = filtered
		result.InfoCount = 0
	}

	return result, nil
}

// WriteResult writes the converted document to outputPath: YAML when the path
// ends in .yaml or .yml, otherwise JSON indented with two spaces.
func (c *Converter) WriteResult(result *ConversionResult, outputPath string) error {
	if err := fileutil.WriteDocument(outputPath, result.Document); err != nil {
		return fmt.Errorf("converter: %w", err)
	}
	return nil
}

func (c *Converter) targetVersion() string {
	if c.TargetVersion == "" {
		return DefaultTargetVersion
	}
	return c.TargetVersion
}

// updateCounts updates the issue counts in the result
func (c *Converter) updateCounts(result *ConversionResult) {
	result.InfoCount = issues.Count(result.Issues, SeverityInfo)
	result.WarningCount = issues.Count(result.Issues, SeverityWarning)
	result.CriticalCount = issues.Count(result.Issues, SeverityCritical)
}

// addIssue is a helper to add a conversion issue to the result
func (c *Converter) addIssue(result *ConversionResult, path, message string, severity Severity) {
	result.Issues = append(result.Issues, ConversionIssue{
		Path:     path,
		Message:  message,
		Severity: severity,
	})
}

// addIssueWithContext is a helper to add a conversion warning with context
func (c *Converter) addIssueWithContext(result *ConversionResult, path, message, context string) {
	result.Issues = append(result.Issues, ConversionIssue{
		Path:     path,
		Message:  message,
		Severity: SeverityWarning,
		Context:  context,
	})
}
