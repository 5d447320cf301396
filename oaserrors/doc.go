// Package oaserrors provides structured error types for oasmerge.
//
// Import path: github.com/erraggy/oasmerge/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between recoverable conditions (a missing input
// document) and fatal ones (malformed JSON, unwritable output).
//
// # Error Types
//
//   - [ParseError]: malformed JSON, with line and column when known
//   - [SourceError]: an input document could not be read, or does not exist
//   - [ConversionError]: Swagger 2.0 to OpenAPI 3.0 conversion failures
//   - [ConfigError]: invalid configuration, unknown profiles, empty input lists
//   - [WriteError]: output serialization or file write failures
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrSource]: Matches any [SourceError]
//   - [ErrSourceNotFound]: Matches [SourceError] with IsNotFound=true
//   - [ErrConversion]: Matches any [ConversionError]
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrWrite]: Matches any [WriteError]
//
// # Usage Examples
//
// Skip missing inputs but fail on anything else:
//
//	doc, err := load(path)
//	if errors.Is(err, oaserrors.ErrSourceNotFound) {
//	    // warn and continue with the next input
//	}
//
// Extract error details with errors.As():
//
//	var parseErr *oaserrors.ParseError
//	if errors.As(err, &parseErr) {
//	    fmt.Printf("%s:%d:%d\n", parseErr.Path, parseErr.Line, parseErr.Column)
//	}
//
// # Error Chaining
//
// All error types support error chaining via the Cause field and Unwrap() method:
//
//	var srcErr *oaserrors.SourceError
//	if errors.As(err, &srcErr) {
//	    if errors.Is(srcErr.Cause, os.ErrPermission) {
//	        // The input exists but cannot be read
//	    }
//	}
package oaserrors
