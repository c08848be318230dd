package adapter

import (
	"go/types"

	"github.com/typegraph/typegraph/graph"
)

// structuredKindDirective returns the raw "@typegraph:dataclass" (or
// typeddict/namedtuple) directive name attached to named's own declaration,
// distinguishing the four struct-shaped node kinds the mapping table
// collapses onto *types.Named/*types.Struct; a struct with none of these
// falls back to a plain Class. It always resolves against named's own
// TypeName declaration rather than whatever rawGoType is asking, so a
// struct reached as a field's type still sees its own directives instead
// of the enclosing field's.
func structuredKindDirective(a *GoAdapter, named *types.Named, name string) (graph.RawDirective, bool) {
	for _, item := range namedTypeDirectiveItems(a, named) {
		if rd, ok := item.(graph.RawDirective); ok && rd.Name == name {
			return rd, true
		}
	}
	return graph.RawDirective{}, false
}

func namedStruct(t graph.RawType) (*types.Named, *types.Struct, bool) {
	r := asRaw(t)
	named, ok := r.typ.(*types.Named)
	if !ok {
		return nil, nil, false
	}
	st, ok := named.Underlying().(*types.Struct)
	return named, st, ok
}

func (a *GoAdapter) IsDataclass(t graph.RawType) bool {
	named, _, ok := namedStruct(t)
	if !ok {
		return false
	}
	_, ok = structuredKindDirective(a, named, "dataclass")
	return ok
}

func (a *GoAdapter) DataclassInfo(t graph.RawType) (bool, bool) {
	named, _, _ := namedStruct(t)
	d, _ := structuredKindDirective(a, named, "dataclass")
	return d.Params["frozen"] == "true", d.Params["slots"] == "true"
}

func (a *GoAdapter) IsTypedDict(t graph.RawType) bool {
	named, _, ok := namedStruct(t)
	if !ok {
		return false
	}
	_, ok = structuredKindDirective(a, named, "typeddict")
	return ok
}

func (a *GoAdapter) TypedDictInfo(t graph.RawType) bool {
	named, _, _ := namedStruct(t)
	d, _ := structuredKindDirective(a, named, "typeddict")
	return d.Params["total"] != "false"
}

func (a *GoAdapter) IsNamedTuple(t graph.RawType) bool {
	named, _, ok := namedStruct(t)
	if !ok {
		return false
	}
	_, ok = structuredKindDirective(a, named, "namedtuple")
	return ok
}

func (a *GoAdapter) IsProtocol(t graph.RawType) bool {
	iface := asInterface(t)
	return iface != nil && !a.IsUnion(t) && !a.IsIntersection(t)
}

func (a *GoAdapter) IsEnum(t graph.RawType) bool {
	r := asRaw(t)
	named, ok := r.typ.(*types.Named)
	if !ok {
		return false
	}
	if _, ok := named.Underlying().(*types.Basic); !ok {
		return false
	}
	if _, ok := findDirective[graph.LiteralDirective](r); ok {
		// Marked @literal instead of bare: the Literal node claims it.
		return false
	}
	if _, ok := namedTypeDirective[graph.LiteralDirective](a, named); ok {
		return false
	}
	return isEnumNamed(a.pkgOf(r), named)
}

func (a *GoAdapter) EnumValueType(t graph.RawType) (graph.RawType, bool) {
	named, _ := asRaw(t).typ.(*types.Named)
	if named == nil {
		return nil, false
	}
	return wrap(named.Underlying()), true
}

func (a *GoAdapter) EnumMembers(t graph.RawType) []graph.EnumMemberProbe {
	r := asRaw(t)
	named, ok := r.typ.(*types.Named)
	if !ok {
		return nil
	}
	pkg := a.pkgOf(r)
	consts := matchConstants(pkg, named)
	out := make([]graph.EnumMemberProbe, 0, len(consts))
	for _, c := range consts {
		out = append(out, constantMemberProbe(c, pkg))
	}
	return out
}

// fieldKind classifies a struct field as "instance_var" (Go's only real
// field storage kind) unless a qualifier directive says otherwise, e.g.
// `@typegraph:qualifier(kind:"class_var")` on a field meant to model a
// source-language class-level attribute.
func fieldKind(f *rawGoType) string {
	if d, ok := findDirective[graph.QualifierDirective](f); ok {
		switch d.Kind {
		case graph.QualifierClassVar:
			return "class_var"
		case graph.QualifierInitVar:
			return "init_var"
		}
	}
	return "instance_var"
}

func (a *GoAdapter) Fields(t graph.RawType) []graph.FieldProbe {
	r := asRaw(t)
	_, st, ok := namedStruct(t)
	if !ok {
		return nil
	}
	pkg := a.pkgOf(r)
	out := make([]graph.FieldProbe, 0, st.NumFields())
	for i := 0; i < st.NumFields(); i++ {
		v := st.Field(i)
		fr := wrapField(v, st.Tag(i), pkg).(*rawGoType)
		out = append(out, graph.FieldProbe{
			Name:     v.Name(),
			Type:     fr,
			Metadata: fr.generalMetadata(),
			Kind:     fieldKind(fr),
		})
	}
	return out
}

func (a *GoAdapter) Methods(t graph.RawType) []graph.FieldProbe {
	r := asRaw(t)
	pkg := a.pkgOf(r)
	var out []graph.FieldProbe

	switch typ := r.typ.(type) {
	case *types.Named:
		ms := types.NewMethodSet(types.NewPointer(typ))
		for i := 0; i < ms.Len(); i++ {
			fn, ok := ms.At(i).Obj().(*types.Func)
			if !ok {
				continue
			}
			fr := wrapObj(fn, pkg).(*rawGoType)
			out = append(out, graph.FieldProbe{
				Name:     fn.Name(),
				Type:     fr,
				Metadata: fr.generalMetadata(),
				Kind:     "method",
			})
		}
	case *types.Interface:
		for i := 0; i < typ.NumMethods(); i++ {
			fn := typ.Method(i)
			fr := wrapObj(fn, pkg).(*rawGoType)
			out = append(out, graph.FieldProbe{
				Name:     fn.Name(),
				Type:     fr,
				Metadata: fr.generalMetadata(),
				Kind:     "method",
			})
		}
	}
	return out
}

func (a *GoAdapter) ClassRef(t graph.RawType) string {
	r := asRaw(t)
	switch typ := r.typ.(type) {
	case *types.Named:
		return qualifiedName(typ)
	case *types.Basic:
		return typ.String()
	default:
		if r.typ != nil {
			return r.typ.String()
		}
		return r.name
	}
}

func (a *GoAdapter) SourceLocation(t graph.RawType) *graph.SourceLocation {
	r := asRaw(t)
	if r.obj == nil {
		return nil
	}
	pkg := a.pkgOf(r)
	loc := &graph.SourceLocation{Qualname: r.obj.Name()}
	if pkg != nil {
		loc.Module = pkg.PkgPath
	}
	if pkg != nil && pkg.Fset != nil {
		pos := pkg.Fset.Position(r.obj.Pos())
		loc.File = pos.Filename
		loc.Line = pos.Line
	}
	return loc
}
