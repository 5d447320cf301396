// Package jsonvalue provides an order-preserving, untyped JSON document model.
//
// A [Value] is a tagged variant holding exactly one of null, bool, number,
// string, array, or object. Objects remember the order in which keys were
// first inserted, so a document that is decoded, modified, and re-encoded keeps
// the key order of its source. This matters for specification documents where
// a stable, human-friendly layout minimizes diffs between builds.
//
// # Decoding and Encoding
//
//	doc, err := jsonvalue.Parse(data)
//	if err != nil {
//		var se *jsonvalue.SyntaxError
//		if errors.As(err, &se) {
//			fmt.Printf("line %d, column %d\n", se.Line, se.Column)
//		}
//	}
//	out, err := doc.MarshalIndent("", "  ")
//
// Numbers are kept as [encoding/json.Number] so integers and decimals are
// written back exactly as they were read.
//
// # Equality
//
// [Equal] compares two values structurally: object key order is ignored and
// numbers compare by numeric value, so 1 and 1.0 are equal.
//
// # YAML
//
// Values implement the go.yaml.in/yaml/v4 Marshaler interface and render as
// a yaml.Node tree that keeps object key order.
package jsonvalue
