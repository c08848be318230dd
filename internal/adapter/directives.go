package adapter

import (
	"go/ast"
	"go/types"
	"reflect"
	"strings"

	"github.com/typegraph/typegraph/graph"
)

// commentLines strips comment markers from a doc comment's lines, the
// extraction step graph.ParseDirectives expects its caller to have
// already done.
func commentLines(doc *ast.CommentGroup) []string {
	if doc == nil {
		return nil
	}
	var out []string
	for _, c := range doc.List {
		text := c.Text
		text = strings.TrimPrefix(text, "//")
		text = strings.TrimPrefix(text, "/*")
		text = strings.TrimSuffix(text, "*/")
		out = append(out, strings.TrimSpace(text))
	}
	return out
}

// tagDirectives bridges the struct-tag directive form (`typegraph:"ref=Other"`,
// a flat key=value pair, semicolon-separated for more than one) into the
// same Directive shape the doc-comment parser produces.
func tagDirectives(tag string) []graph.Directive {
	val, ok := reflect.StructTag(tag).Lookup("typegraph")
	if !ok {
		return nil
	}
	var out []graph.Directive
	for _, part := range strings.Split(val, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, "=", 2)
		name := strings.TrimSpace(kv[0])
		value := ""
		if len(kv) == 2 {
			value = strings.TrimSpace(kv[1])
		}
		params := map[string]string{}
		switch name {
		case "ref":
			params["name"] = value
		case "typeguard", "typeis":
			params["target"] = value
		case "qualifier":
			params["kind"] = value
		default:
			if value != "" {
				params[""] = value
			}
		}
		out = append(out, graph.Directive{Name: name, Params: params})
	}
	return out
}

func (r *rawGoType) directives() []graph.Directive {
	var all []graph.Directive
	if r.doc != nil {
		all = append(all, graph.ParseDirectives(commentLines(r.doc))...)
	}
	all = append(all, tagDirectives(r.tag)...)
	return all
}

func (r *rawGoType) directiveItems() []any {
	directives := r.directives()
	if len(directives) == 0 {
		return nil
	}
	return graph.ToMetadataItems(directives)
}

// findDirective returns the first metadata item of type T among r's
// parsed directives.
func findDirective[T any](r *rawGoType) (T, bool) {
	for _, item := range r.directiveItems() {
		if v, ok := item.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// isClassificationItem reports whether item is one of the metadata item
// types that drive node classification rather than being carried as plain
// Annotated metadata.
func isClassificationItem(item any) bool {
	switch item.(type) {
	case graph.RefDirective, graph.LiteralDirective, graph.TypeGuardDirective,
		graph.TypeIsDirective, graph.SelfDirective, graph.NeverDirective,
		graph.QualifierDirective:
		return true
	default:
		return false
	}
}

// generalMetadata returns r's directive items minus the classification-
// driving ones, the set that becomes an Annotated wrapper's payload.
func (r *rawGoType) generalMetadata() []any {
	items := r.directiveItems()
	out := make([]any, 0, len(items))
	for _, item := range items {
		if !isClassificationItem(item) {
			out = append(out, item)
		}
	}
	return out
}

// namedTypeDirectiveItems looks up the directives on named's own
// declaration, regardless of whose rawGoType is asking: a field whose type
// is a named struct carries the field's doc comment in r.doc, not the
// struct's, so classification checks that care about the struct itself
// (dataclass/typeddict/namedtuple/enum/literal/never) must go straight to
// the TypeName's declaration instead of trusting r.doc.
func namedTypeDirectiveItems(a *GoAdapter, named *types.Named) []any {
	if named == nil || named.Obj() == nil || named.Obj().Pkg() == nil {
		return nil
	}
	pkg, ok := a.loader.PackageByPath(named.Obj().Pkg().Path())
	if !ok || pkg == nil {
		return nil
	}
	_, doc := declNode(pkg, named.Obj())
	if doc == nil {
		return nil
	}
	return graph.ToMetadataItems(graph.ParseDirectives(commentLines(doc)))
}

func namedTypeDirective[T any](a *GoAdapter, named *types.Named) (T, bool) {
	for _, item := range namedTypeDirectiveItems(a, named) {
		if v, ok := item.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
