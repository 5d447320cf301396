package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaRef(t *testing.T) {
	assert.Equal(t, "#/components/schemas/Vtxo", SchemaRef("Vtxo"))
}

func TestRefName(t *testing.T) {
	tests := []struct {
		ref    string
		prefix string
		want   string
		ok     bool
	}{
		{"#/definitions/Vtxo", RefPrefixDefinitions, "Vtxo", true},
		{"#/components/schemas/v1.Batch", RefPrefixSchemas, "v1.Batch", true},
		{"#/components/schemas/Vtxo", RefPrefixDefinitions, "#/components/schemas/Vtxo", false},
		{"other.json#/definitions/Vtxo", RefPrefixDefinitions, "other.json#/definitions/Vtxo", false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			name, ok := RefName(tt.ref, tt.prefix)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, name)
		})
	}
}
