package converter

import (
	"fmt"

	"github.com/erraggy/oasmerge/internal/httputil"
	"github.com/erraggy/oasmerge/jsonvalue"
)

const mediaTypeJSON = "application/json"

// convertOAS2ToOAS3 builds the OpenAPI 3.0 document for src
func (c *Converter) convertOAS2ToOAS3(src *jsonvalue.Value, result *ConversionResult) *jsonvalue.Value {
	dst := jsonvalue.NewObject()
	out := dst.Object()

	out.Set("openapi", jsonvalue.String(result.TargetVersion))

	if info, ok := src.Get("info"); ok {
		out.Set("info", info.Clone())
	} else {
		out.Set("info", jsonvalue.NewObject())
		c.addIssue(result, "info", "source document has no info block, writing an empty one", SeverityWarning)
	}

	out.Set("servers", c.convertServers(src, result))
	out.Set("paths", c.convertPaths(src, result))

	components := jsonvalue.NewObject()
	components.Object().Set("schemas", c.convertDefinitions(src, result))
	out.Set("components", components)

	return dst
}

// convertServers returns the single placeholder servers entry
func (c *Converter) convertServers(src *jsonvalue.Value, result *ConversionResult) *jsonvalue.Value {
	url := c.ServerURL
	if url == "" {
		url = DefaultServerURL
	}

	server := jsonvalue.NewObject()
	server.Object().Set("url", jsonvalue.String(url))
	if c.ServerDescription != "" {
		server.Object().Set("description", jsonvalue.String(c.ServerDescription))
	}

	if host := src.Lookup("host").Str(); host != "" {
		c.addIssue(result, "host",
			fmt.Sprintf("host %q is not carried over; servers is set to %s", host, url), SeverityInfo)
	}

	return jsonvalue.Array(server)
}

// convertDefinitions converts definitions into components.schemas
func (c *Converter) convertDefinitions(src *jsonvalue.Value, result *ConversionResult) *jsonvalue.Value {
	schemas := jsonvalue.NewObject()

	definitions, ok := src.Get("definitions")
	if !ok {
		return schemas
	}
	if !definitions.IsObject() {
		c.addIssue(result, "definitions",
			"definitions is not an object and was dropped, got "+definitions.Kind().String(), SeverityCritical)
		return schemas
	}

	for name, schema := range definitions.Object().All() {
		schemas.Object().Set(name, convertSchema(schema))
	}
	return schemas
}

// convertPaths converts every path item, keeping path order
func (c *Converter) convertPaths(src *jsonvalue.Value, result *ConversionResult) *jsonvalue.Value {
	paths := jsonvalue.NewObject()

	srcPaths, ok := src.Get("paths")
	if !ok {
		return paths
	}
	if !srcPaths.IsObject() {
		c.addIssue(result, "paths", "paths is not an object and was dropped, got "+srcPaths.Kind().String(), SeverityCritical)
		return paths
	}

	for pathPattern, pathItem := range srcPaths.Object().All() {
		itemPath := fmt.Sprintf("paths.%s", pathPattern)
		if !pathItem.IsObject() {
			c.addIssue(result, itemPath, "path item is not an object and was skipped", SeverityWarning)
			continue
		}
		paths.Object().Set(pathPattern, c.convertPathItem(pathItem, result, itemPath))
	}
	return paths
}

// convertPathItem converts the operations of one path item. Keys outside the
// operation allow-list are dropped.
func (c *Converter) convertPathItem(item *jsonvalue.Value, result *ConversionResult, path string) *jsonvalue.Value {
	dst := jsonvalue.NewObject()

	for key, value := range item.Object().All() {
		opPath := fmt.Sprintf("%s.%s", path, key)
		if !httputil.IsOAS2Method(key) {
			c.addIssue(result, opPath, fmt.Sprintf("path item key %q is not converted", key), SeverityInfo)
			continue
		}
		if !value.IsObject() {
			c.addIssue(result, opPath, "operation is not an object and was skipped", SeverityWarning)
			continue
		}
		dst.Object().Set(key, c.convertOperation(value, result, opPath))
	}
	return dst
}

// convertOperation converts a single operation
func (c *Converter) convertOperation(op *jsonvalue.Value, result *ConversionResult, path string) *jsonvalue.Value {
	dst := jsonvalue.NewObject()
	out := dst.Object()

	out.Set("summary", memberOr(op, "summary", jsonvalue.String("")))
	out.Set("description", memberOr(op, "description", jsonvalue.String("")))
	out.Set("operationId", memberOr(op, "operationId", jsonvalue.String("")))
	out.Set("tags", memberOr(op, "tags", jsonvalue.Array()))

	if params, ok := op.Get("parameters"); ok {
		c.convertParameters(params, out, result, path+".parameters")
	}

	out.Set("responses", c.convertResponses(op, result, path+".responses"))

	return dst
}

// convertParameters splits params into the first body parameter, which becomes
// requestBody, and the rest, which pass through unchanged. Further body
// parameters are dropped.
func (c *Converter) convertParameters(params *jsonvalue.Value, out *jsonvalue.Object, result *ConversionResult, path string) {
	if !params.IsArray() {
		c.addIssue(result, path, "parameters is not an array and was dropped, got "+params.Kind().String(), SeverityCritical)
		return
	}

	var body *jsonvalue.Value
	passThrough := make([]*jsonvalue.Value, 0, params.Len())

	for i, param := range params.Items() {
		if param.Lookup("in").Str() != "body" {
			passThrough = append(passThrough, param.Clone())
			continue
		}
		if body != nil {
			c.addIssue(result, fmt.Sprintf("%s[%d]", path, i),
				fmt.Sprintf("additional body parameter %q dropped; only the first becomes requestBody", param.Lookup("name").Str()),
				SeverityCritical)
			continue
		}
		body = param
	}

	if len(passThrough) > 0 {
		out.Set("parameters", jsonvalue.Array(passThrough...))
	}
	if body != nil {
		out.Set("requestBody", convertBodyParameter(body))
	}
}

// convertBodyParameter builds a requestBody from a body parameter
func convertBodyParameter(param *jsonvalue.Value) *jsonvalue.Value {
	rb := jsonvalue.NewObject()
	if desc, ok := param.Get("description"); ok {
		rb.Object().Set("description", desc.Clone())
	}
	if required, ok := param.Get("required"); ok {
		rb.Object().Set("required", required.Clone())
	}
	rb.Object().Set("content", jsonContent(param.Lookup("schema")))
	return rb
}

// convertResponses converts every response of op. Each keeps its description
// and moves schema under content.
func (c *Converter) convertResponses(op *jsonvalue.Value, result *ConversionResult, path string) *jsonvalue.Value {
	dst := jsonvalue.NewObject()

	responses, ok := op.Get("responses")
	if !ok {
		return dst
	}
	if !responses.IsObject() {
		c.addIssue(result, path, "responses is not an object and was dropped, got "+responses.Kind().String(), SeverityCritical)
		return dst
	}

	for code, response := range responses.Object().All() {
		if !response.IsObject() {
			c.addIssue(result, fmt.Sprintf("%s.%s", path, code), "response is not an object and was skipped", SeverityWarning)
			continue
		}

		if !httputil.ValidateStatusCode(code) {
			c.addIssue(result, fmt.Sprintf("%s.%s", path, code),
				fmt.Sprintf("response code %q is not a valid HTTP status code", code), SeverityInfo)
		}

		converted := jsonvalue.NewObject()
		converted.Object().Set("description", memberOr(response, "description", jsonvalue.String("")))
		if schema, ok := response.Get("schema"); ok {
			converted.Object().Set("content", jsonContent(schema))
		}
		dst.Object().Set(code, converted)
	}
	return dst
}

// jsonContent wraps schema as {"application/json": {"schema": schema}}.
// A nil schema yields an empty media type object.
func jsonContent(schema *jsonvalue.Value) *jsonvalue.Value {
	media := jsonvalue.NewObject()
	if schema != nil {
		media.Object().Set("schema", convertSchema(schema))
	}
	content := jsonvalue.NewObject()
	content.Object().Set(mediaTypeJSON, media)
	return content
}

// memberOr returns a copy of v[key], or def when the member is absent.
func memberOr(v *jsonvalue.Value, key string, def *jsonvalue.Value) *jsonvalue.Value {
	if member, ok := v.Get(key); ok {
		return member.Clone()
	}
	return def
}
