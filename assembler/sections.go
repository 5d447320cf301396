package assembler

import (
	"context"

	"github.com/erraggy/oasmerge/jsonvalue"
	"github.com/erraggy/oasmerge/merger"
)

// section is a top-level container folded from every non-base document.
type section struct {
	key  string
	kind jsonvalue.Kind
}

// Order matters: it is the order in which new keys are appended to the base.
var topLevelSections = []section{
	{"tags", jsonvalue.KindArray},
	{"paths", jsonvalue.KindObject},
}

var trailingSections = []section{
	{"definitions", jsonvalue.KindObject},
	{"servers", jsonvalue.KindArray},
}

// mergeSections folds the recognized sections of doc into the accumulated
// document. Other top-level keys of doc are ignored.
func (a *Assembler) mergeSections(ctx context.Context, result *Result, name string, doc *jsonvalue.Value) {
	base := result.Document.Object()
	update := doc.Object()

	for _, s := range topLevelSections {
		a.mergeSection(ctx, result, name, base, update, "", s)
	}

	if schemas := doc.Lookup("components", "schemas"); schemas != nil {
		components, ok := base.Get("components")
		if !ok || !components.IsObject() {
			if ok {
				a.warn(ctx, result, NewSectionOverwrittenWarning("components", name, components.Kind().String(), "object"))
			}
			components = jsonvalue.NewObject()
			base.Set("components", components)
		}
		a.mergeSection(ctx, result, name, components.Object(), doc.Lookup("components").Object(), "components.",
			section{"schemas", jsonvalue.KindObject})
	}

	for _, s := range trailingSections {
		a.mergeSection(ctx, result, name, base, update, "", s)
	}
}

// mergeSection merges update[s.key] into base[s.key]. A missing container of
// the expected kind is created first so the incoming value goes through the
// same union or deep merge as an existing one.
func (a *Assembler) mergeSection(ctx context.Context, result *Result, name string, base, update *jsonvalue.Object, prefix string, s section) {
	incoming, ok := update.Get(s.key)
	if !ok {
		return
	}

	current, exists := base.Get(s.key)
	if !exists {
		if incoming.Kind() != s.kind {
			base.Set(s.key, incoming)
			return
		}
		current = emptyOf(s.kind)
		base.Set(s.key, current)
	}

	if current.Kind() != incoming.Kind() {
		a.warn(ctx, result, NewSectionOverwrittenWarning(prefix+s.key, name, current.Kind().String(), incoming.Kind().String()))
	}
	base.Set(s.key, merger.Merge(current, incoming))
}

func emptyOf(kind jsonvalue.Kind) *jsonvalue.Value {
	if kind == jsonvalue.KindArray {
		return jsonvalue.Array()
	}
	return jsonvalue.NewObject()
}
