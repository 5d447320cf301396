// Package oasmerge merges OpenAPI 3.0 and Swagger 2.0 JSON documents into a
// single combined document, and converts merged Swagger 2.0 documents to
// OpenAPI 3.0.
//
// # Overview
//
// The module is organized as a few small packages:
//
//   - jsonvalue: an ordered JSON value model that keeps object key order
//   - merger: the recursive deep merge of two JSON trees
//   - assembler: folds an ordered list of documents into one and writes it
//   - converter: Swagger 2.0 to OpenAPI 3.0 structural conversion
//   - config: named merge profiles, built in or loaded from YAML
//   - oaserrors: typed errors for errors.Is and errors.As
//
// # Merge Rules
//
// Objects are merged key by key, recursing when both sides hold objects.
// Arrays are unioned: elements of the later document are appended unless an
// equal element is already present. Anything else is overwritten by the later
// document. Object equality ignores key order and numbers compare by value.
//
// The assembler uses the first input that exists as the base, replaces its
// info block, and folds only tags, paths, components.schemas, definitions and
// servers from the remaining inputs. Missing inputs are skipped with a warning.
//
// # Quick Start
//
//	result, err := assembler.AssembleWithOptions(ctx,
//	    assembler.WithInputs("swagger/types.openapi.json", "swagger/service.openapi.json"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := assembler.New(assembler.DefaultConfig()).WriteResult(result, "swagger/merged.openapi.json"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Command Line
//
// The oasmerge command runs the same operations:
//
//	oasmerge merge                      # built-in "openapi" profile
//	oasmerge merge -profile swagger     # merge Swagger 2.0 and convert
//	oasmerge merge -o out.json a.json b.json
//	oasmerge convert -o v3.json merged.swagger.json
//	oasmerge mcp                        # MCP server over stdio
package oasmerge
