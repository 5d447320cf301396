package cliutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWritef(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{"no args", "Successfully merged", nil, "Successfully merged"},
		{"single arg", "Paths: %d\n", []any{12}, "Paths: 12\n"},
		{"mixed args", "%s: %d document(s), %v", []any{"merged", 3, true}, "merged: 3 document(s), true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Writef(&buf, tt.format, tt.args...)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWritef_WriteError(t *testing.T) {
	assert.NotPanics(t, func() {
		Writef(failingWriter{}, "Schemas: %d\n", 4)
	})
}
