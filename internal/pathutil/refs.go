// Package pathutil holds the JSON reference prefixes of the two document formats.
package pathutil

import "strings"

// Swagger 2.0 reference prefix for named schemas.
const RefPrefixDefinitions = "#/definitions/"

// OpenAPI 3.0 reference prefix for named schemas.
const RefPrefixSchemas = "#/components/schemas/"

// SchemaRef builds "#/components/schemas/{name}" (OpenAPI 3.0).
func SchemaRef(name string) string {
	return RefPrefixSchemas + name
}

// RefName returns the schema name referenced by ref and whether ref uses
// prefix.
func RefName(ref, prefix string) (string, bool) {
	return strings.CutPrefix(ref, prefix)
}
