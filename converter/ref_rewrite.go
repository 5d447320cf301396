// This file implements $ref rewriting from Swagger 2.0 to OpenAPI 3.0 form.

package converter

import (
	"github.com/erraggy/oasmerge/internal/pathutil"
	"github.com/erraggy/oasmerge/jsonvalue"
)

// rewriteRefOAS2ToOAS3 rewrites a Swagger 2.0 definitions $ref to its
// components.schemas form. Only definitions are carried into components, so
// any other reference is returned as-is.
func rewriteRefOAS2ToOAS3(ref string) string {
	if name, ok := pathutil.RefName(ref, pathutil.RefPrefixDefinitions); ok {
		return pathutil.SchemaRef(name)
	}
	return ref
}

// convertSchema returns a copy of schema with every string "$ref" member
// rewritten, at any depth of nested objects and arrays.
func convertSchema(schema *jsonvalue.Value) *jsonvalue.Value {
	switch schema.Kind() {
	case jsonvalue.KindObject:
		out := jsonvalue.NewObject()
		for key, member := range schema.Object().All() {
			if key == "$ref" && member.IsString() {
				out.Object().Set(key, jsonvalue.String(rewriteRefOAS2ToOAS3(member.Str())))
				continue
			}
			out.Object().Set(key, convertSchema(member))
		}
		return out
	case jsonvalue.KindArray:
		items := schema.Items()
		out := make([]*jsonvalue.Value, len(items))
		for i, item := range items {
			out[i] = convertSchema(item)
		}
		return jsonvalue.Array(out...)
	default:
		return schema.Clone()
	}
}
