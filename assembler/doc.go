// Package assembler combines an ordered list of OpenAPI 3.0 or Swagger 2.0
// JSON documents into one.
//
// The first input that exists becomes the base document and has its info
// block replaced. Every later input contributes only its recognized sections,
// folded in this order:
//
//   - tags: array union
//   - paths: deep merge
//   - components.schemas: deep merge
//   - definitions: deep merge
//   - servers: array union
//
// A section missing from the base is created before merging. Inputs that do
// not exist are skipped with a [WarnSourceNotFound] warning; any other read
// or decode failure aborts the run. When every input is missing the result
// document is JSON null and a [WarnNoDocuments] warning is added.
//
// # Quick Start
//
//	result, err := assembler.AssembleWithOptions(ctx,
//	    assembler.WithInputs("swagger/types.openapi.json", "swagger/service.openapi.json"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, w := range result.Warnings {
//	    fmt.Println(w)
//	}
//
// Inputs are read through github.com/viant/afs, so any afs URL (file://,
// mem://, ...) works alongside plain paths.
//
// The merge rules themselves live in the merger package.
package assembler
