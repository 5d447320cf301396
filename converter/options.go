package converter

import (
	"context"
	"fmt"

	"github.com/viant/afs"

	"github.com/erraggy/oasmerge/jsonvalue"
	"github.com/erraggy/oasmerge/internal/options"
	"github.com/erraggy/oasmerge/oaserrors"
)

// Option is a function that configures a conversion operation
type Option func(*convertConfig) error

// convertConfig holds configuration for a conversion operation
type convertConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	document *jsonvalue.Value

	targetVersion     string
	serverURL         string
	serverDescription string
	includeInfo       bool
	fs                afs.Service
}

// ConvertWithOptions converts a Swagger 2.0 document using functional options.
//
// Example:
//
//	result, err := converter.ConvertWithOptions(ctx,
//	    converter.WithFilePath("swagger/merged.swagger.json"),
//	    converter.WithServer("https://api.example.com", "Production"),
//	)
func ConvertWithOptions(ctx context.Context, opts ...Option) (*ConversionResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("converter: invalid options: %w", err)
	}

	c := &Converter{
		TargetVersion:     cfg.targetVersion,
		ServerURL:         cfg.serverURL,
		ServerDescription: cfg.serverDescription,
		IncludeInfo:       cfg.includeInfo,
		FileSystem:        cfg.fs,
	}

	if cfg.filePath != nil {
		return c.Convert(ctx, *cfg.filePath)
	}
	return c.ConvertDocument(cfg.document)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*convertConfig, error) {
	cfg := &convertConfig{
		targetVersion:     DefaultTargetVersion,
		serverURL:         DefaultServerURL,
		serverDescription: DefaultServerDescription,
		includeInfo:       true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource("input",
		"must specify an input source (use WithFilePath or WithDocument)",
		"must specify exactly one input source",
		cfg.filePath != nil, cfg.document != nil); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path or afs URL as the input source
func WithFilePath(path string) Option {
	return func(cfg *convertConfig) error {
		if path == "" {
			return &oaserrors.ConfigError{Option: "file path", Message: "cannot be empty"}
		}
		cfg.filePath = &path
		return nil
	}
}

// WithDocument specifies an already-parsed document as the input source
func WithDocument(doc *jsonvalue.Value) Option {
	return func(cfg *convertConfig) error {
		if doc == nil {
			return &oaserrors.ConfigError{Option: "document", Message: "cannot be nil"}
		}
		cfg.document = doc
		return nil
	}
}

// WithTargetVersion sets the openapi version written to the output
// Default: "3.0.0"
func WithTargetVersion(version string) Option {
	return func(cfg *convertConfig) error {
		if version == "" {
			return &oaserrors.ConfigError{Option: "target version", Message: "cannot be empty"}
		}
		cfg.targetVersion = version
		return nil
	}
}

// WithServer sets the single servers entry of the output
// Default: "http://localhost:8080", "Local development server"
func WithServer(url, description string) Option {
	return func(cfg *convertConfig) error {
		if url == "" {
			return &oaserrors.ConfigError{Option: "server url", Message: "cannot be empty"}
		}
		cfg.serverURL = url
		cfg.serverDescription = description
		return nil
	}
}

// WithIncludeInfo enables or disables informational messages
// Default: true
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}

// WithFileSystem sets the afs service used to read WithFilePath inputs
func WithFileSystem(fs afs.Service) Option {
	return func(cfg *convertConfig) error {
		cfg.fs = fs
		return nil
	}
}
