package assembler

import (
	"log/slog"

	"github.com/viant/afs"

	"github.com/erraggy/oasmerge/internal/options"
	"github.com/erraggy/oasmerge/oaserrors"
)

// Option is a function that configures an assemble operation
type Option func(*assembleConfig) error

type assembleConfig struct {
	inputs  []string
	sources []Source
	info    Info
	fs      afs.Service
	logger  *slog.Logger
}

func applyOptions(opts ...Option) (*assembleConfig, error) {
	cfg := &assembleConfig{info: DefaultInfo()}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource("inputs",
		"must specify WithInputs or WithSources",
		"WithInputs and WithSources are mutually exclusive",
		len(cfg.inputs) > 0, len(cfg.sources) > 0); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithInputs specifies the ordered input paths or afs URLs.
func WithInputs(paths ...string) Option {
	return func(cfg *assembleConfig) error {
		for _, p := range paths {
			if p == "" {
				return &oaserrors.ConfigError{Option: "inputs", Message: "input path cannot be empty"}
			}
		}
		cfg.inputs = append(cfg.inputs, paths...)
		return nil
	}
}

// WithSources specifies pre-loaded documents to merge in order.
func WithSources(sources ...Source) Option {
	return func(cfg *assembleConfig) error {
		for _, s := range sources {
			if s.Document == nil {
				return &oaserrors.ConfigError{Option: "sources", Value: s.Name, Message: "document cannot be nil"}
			}
		}
		cfg.sources = append(cfg.sources, sources...)
		return nil
	}
}

// WithInfo sets the info block written over the base document's info.
func WithInfo(info Info) Option {
	return func(cfg *assembleConfig) error {
		cfg.info = info
		return nil
	}
}

// WithFileSystem sets the afs service used to read inputs.
func WithFileSystem(fs afs.Service) Option {
	return func(cfg *assembleConfig) error {
		cfg.fs = fs
		return nil
	}
}

// WithLogger sets the logger that receives warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *assembleConfig) error {
		cfg.logger = logger
		return nil
	}
}
