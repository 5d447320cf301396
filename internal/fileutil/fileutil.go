// Package fileutil writes specification documents to disk.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasmerge/jsonvalue"
	"github.com/erraggy/oasmerge/oaserrors"
)

// OwnerReadWrite is the file permission mode for spec output files
// containing potentially sensitive API data (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// IsYAMLPath reports whether path has a .yaml or .yml extension.
func IsYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// MarshalDocument renders doc for the output path: YAML for .yaml/.yml paths,
// otherwise JSON indented with two spaces and no trailing newline.
func MarshalDocument(path string, doc *jsonvalue.Value) ([]byte, error) {
	if IsYAMLPath(path) {
		return yaml.Marshal(doc)
	}
	return doc.MarshalIndent("", "  ")
}

// WriteDocument marshals doc and writes it to path with OwnerReadWrite
// permissions, replacing any existing file.
func WriteDocument(path string, doc *jsonvalue.Value) error {
	data, err := MarshalDocument(path, doc)
	if err != nil {
		return &oaserrors.WriteError{Path: path, Message: "failed to marshal document", Cause: err}
	}

	if err := os.WriteFile(path, data, OwnerReadWrite); err != nil {
		return &oaserrors.WriteError{Path: path, Message: "failed to write output file", Cause: err}
	}

	// The file may have existed before with wider permissions.
	if err := os.Chmod(path, OwnerReadWrite); err != nil {
		return &oaserrors.WriteError{Path: path, Message: "failed to set output file permissions", Cause: err}
	}

	return nil
}
