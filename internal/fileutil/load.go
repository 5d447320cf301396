package fileutil

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/viant/afs"

	"github.com/erraggy/oasmerge/jsonvalue"
	"github.com/erraggy/oasmerge/oaserrors"
)

// Location turns a plain file path into an absolute one so afs resolves it on
// the local file system. URLs are returned unchanged.
func Location(path string) string {
	if strings.Contains(path, "://") {
		return path
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// LoadDocument reads and decodes the JSON document at path, which may be a
// local path or any URL afs understands. A missing document yields a
// SourceError with IsNotFound set.
func LoadDocument(ctx context.Context, fs afs.Service, path string) (*jsonvalue.Value, error) {
	url := Location(path)

	exists, err := fs.Exists(ctx, url)
	if err != nil {
		return nil, &oaserrors.SourceError{Path: path, Message: "failed to stat input", Cause: err}
	}
	if !exists {
		return nil, &oaserrors.SourceError{Path: path, IsNotFound: true}
	}

	data, err := fs.DownloadWithURL(ctx, url)
	if err != nil {
		return nil, &oaserrors.SourceError{Path: path, Message: "failed to read input", Cause: err}
	}

	return ParseDocument(path, data)
}

// ParseDocument decodes data as a specification document. The root must be
// a JSON object.
func ParseDocument(name string, data []byte) (*jsonvalue.Value, error) {
	doc, err := jsonvalue.Parse(data)
	if err != nil {
		parseErr := &oaserrors.ParseError{Path: name, Cause: err}
		var syntaxErr *jsonvalue.SyntaxError
		if errors.As(err, &syntaxErr) {
			parseErr.Line = syntaxErr.Line
			parseErr.Column = syntaxErr.Column
		}
		return nil, parseErr
	}
	if !doc.IsObject() {
		return nil, &oaserrors.ParseError{
			Path:    name,
			Message: "document root must be a JSON object, got " + doc.Kind().String(),
		}
	}
	return doc, nil
}
