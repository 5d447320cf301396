package assembler

import "github.com/erraggy/oasmerge/jsonvalue"

// Source is a pre-loaded input document.
type Source struct {
	// Name identifies the document in warnings and logs.
	Name string
	// Document is the parsed document. It must be a JSON object.
	Document *jsonvalue.Value
}
