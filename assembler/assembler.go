package assembler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	slogctx "github.com/veqryn/slog-context"
	"github.com/viant/afs"

	"github.com/erraggy/oasmerge/internal/fileutil"
	"github.com/erraggy/oasmerge/internal/httputil"
	"github.com/erraggy/oasmerge/jsonvalue"
	"github.com/erraggy/oasmerge/oaserrors"
)

var assemblerLogger = slog.Default()

// Info is the metadata block written over the base document's info.
type Info struct {
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Version     string `yaml:"version,omitempty" json:"version,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// DefaultInfo returns the info block used when none is configured.
func DefaultInfo() Info {
	return Info{
		Title:       "Ark API",
		Version:     "1.0.0",
		Description: "Combined Ark Service, Indexer, Admin, Signer Manager, and Wallet API",
	}
}

// Value renders the info block as a JSON object with keys in title, version,
// description order.
func (i Info) Value() *jsonvalue.Value {
	v := jsonvalue.NewObject()
	obj := v.Object()
	obj.Set("title", jsonvalue.String(i.Title))
	obj.Set("version", jsonvalue.String(i.Version))
	obj.Set("description", jsonvalue.String(i.Description))
	return v
}

// Config holds configuration for assembling documents.
type Config struct {
	// Inputs is the ordered list of input paths or afs URLs used by Assemble.
	Inputs []string
	// Info replaces the base document's info block.
	Info Info
	// FileSystem reads the inputs. Nil means afs.New().
	FileSystem afs.Service
	// Logger receives warnings and progress records. Nil means the package logger.
	Logger *slog.Logger
}

// DefaultConfig returns a configuration with the default info block and no inputs.
func DefaultConfig() Config {
	return Config{Info: DefaultInfo()}
}

// Assembler folds an ordered list of specification documents into one.
type Assembler struct {
	config Config
	fs     afs.Service
	logger *slog.Logger
}

// New creates a new Assembler instance with the provided configuration.
// A zero Info is replaced by DefaultInfo.
func New(config Config) *Assembler {
	a := &Assembler{config: config, fs: config.FileSystem, logger: config.Logger}
	if a.fs == nil {
		a.fs = afs.New()
	}
	if a.logger == nil {
		a.logger = assemblerLogger
	}
	if a.config.Info == (Info{}) {
		a.config.Info = DefaultInfo()
	}
	return a
}

// Stats summarizes the assembled document.
type Stats struct {
	// PathCount is the number of entries under paths.
	PathCount int
	// OperationCount is the number of HTTP operations across all paths.
	OperationCount int
	// SchemaCount is the number of entries under components.schemas and definitions.
	SchemaCount int
}

// Result contains the assembled document and what went into it.
type Result struct {
	// Document is the merged specification document.
	Document *jsonvalue.Value
	// Sources lists the inputs that were merged, in order. The first is the base.
	Sources []string
	// Skipped lists the inputs that did not exist.
	Skipped []string
	// Warnings holds the non-fatal conditions encountered.
	Warnings Warnings
	// Stats summarizes Document.
	Stats Stats
}

// Assemble merges the configured inputs.
func (a *Assembler) Assemble(ctx context.Context) (*Result, error) {
	return a.AssembleFiles(ctx, a.config.Inputs)
}

// AssembleFiles reads and merges paths in order. Missing inputs are skipped
// with a warning; any other read or decode failure aborts the run.
func (a *Assembler) AssembleFiles(ctx context.Context, paths []string) (*Result, error) {
	if len(paths) == 0 {
		return nil, &oaserrors.ConfigError{Option: "inputs", Message: "at least one input is required"}
	}

	result := &Result{}
	for _, path := range paths {
		ctx := slogctx.Append(ctx, "source", path)

		doc, err := fileutil.LoadDocument(ctx, a.fs, path)
		if errors.Is(err, oaserrors.ErrSourceNotFound) {
			a.warn(ctx, result, NewSourceNotFoundWarning(path))
			result.Skipped = append(result.Skipped, path)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("assembler: %w", err)
		}

		a.fold(ctx, result, path, doc)
	}

	return a.finish(ctx, result), nil
}

// AssembleDocuments merges pre-loaded documents in order. The documents are
// copied, so the caller's values are left untouched.
func (a *Assembler) AssembleDocuments(ctx context.Context, sources []Source) (*Result, error) {
	if len(sources) == 0 {
		return nil, &oaserrors.ConfigError{Option: "sources", Message: "at least one document is required"}
	}

	result := &Result{}
	for i, src := range sources {
		name := src.Name
		if name == "" {
			name = fmt.Sprintf("document[%d]", i)
		}
		if !src.Document.IsObject() {
			return nil, fmt.Errorf("assembler: %w", &oaserrors.ParseError{
				Path:    name,
				Message: "document root must be a JSON object, got " + src.Document.Kind().String(),
			})
		}
		a.fold(slogctx.Append(ctx, "source", name), result, name, src.Document.Clone())
	}

	return a.finish(ctx, result), nil
}

// WriteResult writes the assembled document to outputPath: YAML when the path
// ends in .yaml or .yml, otherwise JSON indented with two spaces.
func (a *Assembler) WriteResult(result *Result, outputPath string) error {
	if err := fileutil.WriteDocument(outputPath, result.Document); err != nil {
		return fmt.Errorf("assembler: %w", err)
	}
	return nil
}

// fold merges doc into the accumulated document, or makes it the base when
// nothing has been accumulated yet.
func (a *Assembler) fold(ctx context.Context, result *Result, name string, doc *jsonvalue.Value) {
	result.Sources = append(result.Sources, name)

	if result.Document == nil {
		doc.Object().Set("info", a.config.Info.Value())
		result.Document = doc
		a.logger.DebugContext(ctx, "using document as base")
		return
	}

	a.mergeSections(ctx, result, name, doc)
	a.logger.DebugContext(ctx, "merged document")
}

// finish computes the stats. When no input could be read the document is
// null, which is what gets written.
func (a *Assembler) finish(ctx context.Context, result *Result) *Result {
	if result.Document == nil {
		a.warn(ctx, result, NewNoDocumentsWarning(len(result.Skipped)))
		result.Document = jsonvalue.Null()
	}
	result.Stats = computeStats(result.Document)
	return result
}

func (a *Assembler) warn(ctx context.Context, result *Result, w *Warning) {
	result.Warnings = append(result.Warnings, w)
	a.logger.WarnContext(ctx, w.Message, "category", string(w.Category))
}

// AssembleWithOptions assembles documents using functional options.
//
// Example:
//
//	result, err := assembler.AssembleWithOptions(ctx,
//	    assembler.WithInputs("swagger/types.openapi.json", "swagger/service.openapi.json"),
//	    assembler.WithInfo(assembler.Info{Title: "My API", Version: "2.0.0"}),
//	)
func AssembleWithOptions(ctx context.Context, opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("assembler: invalid options: %w", err)
	}

	a := New(Config{
		Inputs:     cfg.inputs,
		Info:       cfg.info,
		FileSystem: cfg.fs,
		Logger:     cfg.logger,
	})

	if len(cfg.sources) > 0 {
		return a.AssembleDocuments(ctx, cfg.sources)
	}
	return a.Assemble(ctx)
}

func computeStats(doc *jsonvalue.Value) Stats {
	var stats Stats

	paths := doc.Lookup("paths").Object()
	stats.PathCount = paths.Len()
	for _, item := range paths.All() {
		for key, op := range item.Object().All() {
			if httputil.IsOAS3Method(key) && op.IsObject() {
				stats.OperationCount++
			}
		}
	}

	stats.SchemaCount = doc.Lookup("components", "schemas").Object().Len() +
		doc.Lookup("definitions").Object().Len()

	return stats
}
