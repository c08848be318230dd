package adapter

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/packages"

	"github.com/typegraph/typegraph/graph"
)

// rawGoType wraps a go/types.Type plus the optional object and package it
// came from, giving the engine a stable Identity and String without
// exposing go/types to graph.
type rawGoType struct {
	typ types.Type
	obj types.Object // the declaring object, if this raw type names one (nil for anonymous types)
	pkg *packages.Package
	doc *ast.CommentGroup
	tag string // struct field tag, e.g. `typegraph:"ref=Other"`

	// name is set instead of typ for an unresolved symbolic reference: a
	// @typegraph:ref/typeguard/typeis target string that didn't resolve
	// against the owning package scope, kept around so the engine's own
	// ForwardRef machinery gets a chance to resolve it against a fuller
	// Namespace later.
	name string
}

func (r *rawGoType) Identity() any {
	if r.obj != nil {
		return r.obj
	}
	if r.typ != nil {
		return r.typ
	}
	return r.name
}

func (r *rawGoType) String() string {
	if r.typ == nil {
		if r.name != "" {
			return r.name
		}
		return "<nil>"
	}
	return r.typ.String()
}

func wrap(typ types.Type) graph.RawType {
	return &rawGoType{typ: typ}
}

func wrapName(name string) graph.RawType {
	return &rawGoType{name: name}
}

func wrapObj(obj types.Object, pkg *packages.Package) graph.RawType {
	t := obj.Type()
	doc := objDoc(obj, pkg)
	return &rawGoType{typ: t, obj: obj, pkg: pkg, doc: doc}
}

func wrapField(v *types.Var, tag string, pkg *packages.Package) graph.RawType {
	doc := objDoc(v, pkg)
	return &rawGoType{typ: v.Type(), obj: v, pkg: pkg, doc: doc, tag: tag}
}

func objDoc(obj types.Object, pkg *packages.Package) *ast.CommentGroup {
	if pkg == nil {
		return nil
	}
	_, doc := declNode(pkg, obj)
	return doc
}

func asRaw(t graph.RawType) *rawGoType {
	r, ok := t.(*rawGoType)
	if !ok || r == nil {
		return &rawGoType{}
	}
	return r
}
