// Package converter translates merged Swagger 2.0 documents into OpenAPI 3.0.
//
// The conversion is structural and deliberately narrow:
//
//   - openapi is set to the target version and info is carried over
//   - servers holds a single configurable placeholder entry
//   - definitions become components.schemas
//   - the first body parameter of an operation becomes its requestBody
//   - response schemas move under content["application/json"]
//   - $ref values under #/definitions/ are rewritten to #/components/schemas/
//
// Only get, post, put, delete, patch, options and head operations are
// converted. Everything else in the source is dropped, and lossy steps are
// reported as issues on the result. The input document is never modified.
//
// # Quick Start
//
//	result, err := converter.ConvertWithOptions(ctx,
//		converter.WithFilePath("swagger/merged.swagger.json"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if result.HasCriticalIssues() {
//		fmt.Printf("%d critical issue(s)\n", result.CriticalCount)
//	}
//
// # Conversion Issues
//
// The converter tracks three severity levels: Info (conversion choices),
// Warning (skipped malformed entries) and Critical (content that was dropped,
// such as a second body parameter on the same operation).
package converter
