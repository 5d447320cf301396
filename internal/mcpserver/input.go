package mcpserver

import (
	"context"
	"fmt"

	"github.com/viant/afs"

	"github.com/erraggy/oasmerge/internal/fileutil"
	"github.com/erraggy/oasmerge/internal/options"
	"github.com/erraggy/oasmerge/jsonvalue"
)

// specInput represents the three ways a document can be provided to a tool.
// Exactly one of File, URL, or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a JSON document on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch a JSON document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline JSON document content"`
}

// name identifies the input in warnings and errors.
func (s specInput) name() string {
	switch {
	case s.File != "":
		return s.File
	case s.URL != "":
		return s.URL
	default:
		return "<inline>"
	}
}

func (s specInput) validate() error {
	if err := options.ValidateSingleInputSource("spec",
		"one of file, url, or content must be provided",
		"only one of file, url, or content may be provided",
		s.File != "", s.URL != "", s.Content != ""); err != nil {
		return err
	}
	if int64(len(s.Content)) > cfg.MaxInlineSize {
		return fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set OASMERGE_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}
	return nil
}

// resolve loads the document from whichever input was provided.
func (s specInput) resolve(ctx context.Context, fs afs.Service) (*jsonvalue.Value, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	if s.Content != "" {
		return fileutil.ParseDocument(s.name(), []byte(s.Content))
	}
	return fileutil.LoadDocument(ctx, fs, s.name())
}
