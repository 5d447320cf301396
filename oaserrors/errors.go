package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a document could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrSource indicates an input document could not be read.
	ErrSource = errors.New("source error")

	// ErrSourceNotFound indicates an input document does not exist.
	ErrSourceNotFound = errors.New("source not found")

	// ErrConversion indicates a format conversion failure.
	ErrConversion = errors.New("conversion error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrWrite indicates an output document could not be written.
	ErrWrite = errors.New("write error")
)

// ParseError represents a failure to decode a specification document.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// SourceError represents a failure to read an input document.
// A missing input is recoverable for the assembler and is flagged by IsNotFound.
type SourceError struct {
	// Path is the file path or URL of the input
	Path string
	// IsNotFound is true when the input does not exist
	IsNotFound bool
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SourceError) Error() string {
	msg := "source error"
	if e.IsNotFound {
		msg = "source not found"
	}
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SourceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrSource, and also ErrSourceNotFound when IsNotFound is set.
func (e *SourceError) Is(target error) bool {
	if target == ErrSource {
		return true
	}
	return target == ErrSourceNotFound && e.IsNotFound
}

// ConversionError represents a failure during format conversion.
type ConversionError struct {
	// SourceVersion is the source format version (e.g., "2.0")
	SourceVersion string
	// TargetVersion is the target format version
	TargetVersion string
	// Path is the JSON path where conversion failed
	Path string
	// Message describes the conversion failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConversionError) Error() string {
	msg := "conversion error"
	if e.SourceVersion != "" && e.TargetVersion != "" {
		msg += fmt.Sprintf(" (%s -> %s)", e.SourceVersion, e.TargetVersion)
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConversionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and unknown profiles.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// WriteError represents a failure to serialize or persist an output document.
type WriteError struct {
	// Path is the output file path
	Path string
	// Message describes the failing step
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *WriteError) Error() string {
	msg := "write error"
	if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *WriteError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}
