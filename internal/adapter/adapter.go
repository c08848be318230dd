package adapter

import (
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/typegraph/typegraph/graph"
)

const markersPkgPath = "github.com/typegraph/typegraph/markers"

var _ graph.Adapter = (*GoAdapter)(nil)

// GoAdapter implements graph.Adapter over go/types values loaded by a
// Loader. It is the concrete Reflection Adapter: everything the
// Classifier and Builder know about the source language funnels through
// these methods.
type GoAdapter struct {
	loader *Loader
}

// New returns a GoAdapter backed by loader.
func New(loader *Loader) *GoAdapter {
	return &GoAdapter{loader: loader}
}

func (a *GoAdapter) pkgOf(r *rawGoType) *packages.Package {
	if r.pkg != nil {
		return r.pkg
	}
	if r.obj == nil || r.obj.Pkg() == nil {
		return nil
	}
	pkg, _ := a.loader.PackageByPath(r.obj.Pkg().Path())
	return pkg
}

func (a *GoAdapter) Origin(t graph.RawType) (graph.RawType, bool) {
	r := asRaw(t)
	switch typ := r.typ.(type) {
	case *types.Named:
		if ta := typ.TypeArgs(); ta != nil && ta.Len() > 0 {
			return wrap(typ.Origin()), true
		}
	case *types.Alias:
		if ta := typ.TypeArgs(); ta.Len() > 0 {
			return wrap(typ.Origin()), true
		}
	case *types.Signature:
		// Every Signature enters the Classifier's subscripted-origin gate
		// so TypeGuard/TypeIs/Concatenate directives on a func-typed field
		// get a chance to claim it before it falls through to Callable.
		return nil, true
	}
	return nil, false
}

func (a *GoAdapter) Args(t graph.RawType) []graph.RawType {
	r := asRaw(t)
	switch typ := r.typ.(type) {
	case *types.Named:
		ta := typ.TypeArgs()
		if ta == nil {
			return nil
		}
		out := make([]graph.RawType, ta.Len())
		for i := 0; i < ta.Len(); i++ {
			out[i] = wrap(ta.At(i))
		}
		return out
	case *types.Alias:
		ta := typ.TypeArgs()
		out := make([]graph.RawType, ta.Len())
		for i := 0; i < ta.Len(); i++ {
			out[i] = wrap(ta.At(i))
		}
		return out
	}
	return nil
}

// --- Special singletons ---

func (a *GoAdapter) IsAny(t graph.RawType) bool {
	r := asRaw(t)
	iface, ok := r.typ.(*types.Interface)
	if !ok {
		if named, ok := r.typ.(*types.Named); ok {
			iface, ok = named.Underlying().(*types.Interface)
			if !ok {
				return false
			}
		} else {
			return false
		}
	}
	return iface.NumMethods() == 0 && iface.NumEmbeddeds() == 0
}

func (a *GoAdapter) IsNever(t graph.RawType) bool {
	r := asRaw(t)
	named, ok := types.Unalias(r.typ).(*types.Named)
	if !ok {
		return false
	}
	if qualifiedName(named) == markersPkgPath+".Never" {
		return true
	}
	if _, ok := named.Underlying().(*types.Struct); !ok {
		return false
	}
	if _, ok := findDirective[graph.NeverDirective](r); ok {
		return true
	}
	_, ok = namedTypeDirective[graph.NeverDirective](a, named)
	return ok
}

func (a *GoAdapter) IsSelfType(t graph.RawType) bool {
	r := asRaw(t)
	_, ok := findDirective[graph.SelfDirective](r)
	return ok
}

func (a *GoAdapter) IsLiteralStringMarker(t graph.RawType) bool {
	r := asRaw(t)
	if named, ok := r.typ.(*types.Named); ok && qualifiedName(named) == markersPkgPath+".LiteralString" {
		return true
	}
	basic, ok := r.typ.(*types.Basic)
	if !ok || basic.Info()&types.IsString == 0 {
		return false
	}
	// A string-typed field or variable marked @typegraph:literal is a
	// LiteralString; a constant never is (constants of a literal-marked
	// named type make up the Literal node kind instead).
	if _, ok := r.obj.(*types.Const); ok {
		return false
	}
	_, ok = findDirective[graph.LiteralDirective](r)
	return ok
}

func (a *GoAdapter) IsEllipsisMarker(t graph.RawType) bool {
	r := asRaw(t)
	named, ok := r.typ.(*types.Named)
	return ok && qualifiedName(named) == markersPkgPath+".Ellipsis"
}

// --- NewType ---

func (a *GoAdapter) IsNewType(t graph.RawType) bool {
	r := asRaw(t)
	named, ok := r.typ.(*types.Named)
	if !ok {
		return false
	}
	if _, ok := named.Underlying().(*types.Basic); !ok {
		return false
	}
	if isMarkerNamed(named) {
		return false
	}
	if _, ok := findDirective[graph.LiteralDirective](r); ok {
		return false
	}
	if _, ok := namedTypeDirective[graph.LiteralDirective](a, named); ok {
		return false
	}
	if _, ok := findDirective[graph.NeverDirective](r); ok {
		return false
	}
	if _, ok := namedTypeDirective[graph.NeverDirective](a, named); ok {
		return false
	}
	return !isEnumNamed(a.pkgOf(r), named)
}

func (a *GoAdapter) NewTypeInfo(t graph.RawType) (string, graph.RawType) {
	r := asRaw(t)
	named := r.typ.(*types.Named)
	return named.Obj().Name(), wrap(named.Underlying())
}

// --- Alias ---

func (a *GoAdapter) IsAlias(t graph.RawType) bool {
	_, ok := asRaw(t).typ.(*types.Alias)
	return ok
}

func (a *GoAdapter) AliasInfo(t graph.RawType) (string, []graph.RawType, graph.RawType) {
	r := asRaw(t)
	al := r.typ.(*types.Alias)
	tp := al.TypeParams()
	params := make([]graph.RawType, tp.Len())
	for i := 0; i < tp.Len(); i++ {
		params[i] = wrap(tp.At(i))
	}
	return al.Obj().Name(), params, wrap(types.Unalias(al))
}

// --- Annotated ---

func (a *GoAdapter) IsAnnotated(t graph.RawType) bool {
	r := asRaw(t)
	return len(r.generalMetadata()) > 0
}

func (a *GoAdapter) AnnotationItems(t graph.RawType) (graph.RawType, []any) {
	r := asRaw(t)
	items := r.generalMetadata()
	base := &rawGoType{typ: r.typ, pkg: r.pkg} // stripped of obj/doc so it doesn't re-trigger IsAnnotated
	return base, items
}

// --- Union / Intersection ---

func asInterface(t graph.RawType) *types.Interface {
	r := asRaw(t)
	switch typ := r.typ.(type) {
	case *types.Interface:
		return typ
	case *types.Named:
		if iface, ok := typ.Underlying().(*types.Interface); ok {
			return iface
		}
	}
	return nil
}

func (a *GoAdapter) IsUnion(t graph.RawType) bool {
	iface := asInterface(t)
	if iface == nil || iface.NumEmbeddeds() != 1 {
		return false
	}
	_, ok := iface.EmbeddedType(0).(*types.Union)
	return ok
}

func (a *GoAdapter) UnionMembers(t graph.RawType) []graph.RawType {
	iface := asInterface(t)
	u, _ := iface.EmbeddedType(0).(*types.Union)
	if u == nil {
		return nil
	}
	out := make([]graph.RawType, u.Len())
	for i := 0; i < u.Len(); i++ {
		out[i] = wrap(u.Term(i).Type())
	}
	return out
}

func (a *GoAdapter) IsIntersection(t graph.RawType) bool {
	iface := asInterface(t)
	if iface == nil || iface.NumEmbeddeds() < 2 {
		return false
	}
	for i := 0; i < iface.NumEmbeddeds(); i++ {
		if _, ok := iface.EmbeddedType(i).(*types.Union); ok {
			return false
		}
	}
	return true
}

func (a *GoAdapter) IntersectionMembers(t graph.RawType) []graph.RawType {
	iface := asInterface(t)
	out := make([]graph.RawType, iface.NumEmbeddeds())
	for i := 0; i < iface.NumEmbeddeds(); i++ {
		out[i] = wrap(iface.EmbeddedType(i))
	}
	return out
}

// --- Literal ---

func (a *GoAdapter) IsLiteral(t graph.RawType) bool {
	r := asRaw(t)
	named, ok := r.typ.(*types.Named)
	if !ok {
		return false
	}
	if _, ok := named.Underlying().(*types.Basic); !ok {
		return false
	}
	_, direct := findDirective[graph.LiteralDirective](r)
	_, viaDecl := namedTypeDirective[graph.LiteralDirective](a, named)
	return (direct || viaDecl) && isEnumNamed(a.pkgOf(r), named)
}

func (a *GoAdapter) LiteralValues(t graph.RawType) []any {
	r := asRaw(t)
	named := r.typ.(*types.Named)
	consts := matchConstants(a.pkgOf(r), named)
	out := make([]any, 0, len(consts))
	for _, c := range consts {
		out = append(out, constantGoValue(c.Val()))
	}
	return out
}

// --- Tuple ---

func (a *GoAdapter) IsTuple(t graph.RawType) bool {
	_, ok := asRaw(t).typ.(*types.Tuple)
	return ok
}

func (a *GoAdapter) TupleElements(t graph.RawType) ([]graph.RawType, bool) {
	tup, ok := asRaw(t).typ.(*types.Tuple)
	if !ok {
		return nil, false
	}
	out := make([]graph.RawType, tup.Len())
	for i := 0; i < tup.Len(); i++ {
		out[i] = wrap(tup.At(i).Type())
	}
	return out, false
}

// --- Callable ---

func signatureOf(r *rawGoType) (*types.Signature, bool) {
	switch typ := r.typ.(type) {
	case *types.Signature:
		return typ, true
	case *types.Named:
		if sig, ok := typ.Underlying().(*types.Signature); ok && !strings.HasSuffix(typ.Obj().Name(), "ParamSpec") {
			return sig, true
		}
	}
	return nil, false
}

func (a *GoAdapter) IsCallable(t graph.RawType) bool {
	_, ok := signatureOf(asRaw(t))
	return ok
}

func (a *GoAdapter) CallableSignature(t graph.RawType) ([]graph.RawType, bool, graph.RawType) {
	sig, ok := signatureOf(asRaw(t))
	if !ok {
		return nil, false, nil
	}
	params := sig.Params()
	out := make([]graph.RawType, params.Len())
	for i := 0; i < params.Len(); i++ {
		out[i] = wrap(params.At(i).Type())
	}
	var ret graph.RawType
	switch sig.Results().Len() {
	case 0:
	case 1:
		ret = wrap(sig.Results().At(0).Type())
	default:
		ret = wrap(sig.Results())
	}
	return out, sig.Variadic(), ret
}

// --- Meta / TypeGuard / TypeIs / Concatenate / Unpack ---

func (a *GoAdapter) IsMeta(t graph.RawType) (graph.RawType, bool) {
	r := asRaw(t)
	named, ok := r.typ.(*types.Named)
	if !ok || qualifiedName(named) != markersPkgPath+".TypeOf" {
		return nil, false
	}
	ta := named.TypeArgs()
	if ta == nil || ta.Len() != 1 {
		return nil, false
	}
	return wrap(ta.At(0)), true
}

func (a *GoAdapter) IsTypeGuard(t graph.RawType) (graph.RawType, bool) {
	r := asRaw(t)
	if _, ok := signatureOf(r); !ok {
		return nil, false
	}
	d, ok := findDirective[graph.TypeGuardDirective](r)
	if !ok {
		return nil, false
	}
	return a.resolveTargetName(r, d.Target), true
}

func (a *GoAdapter) IsTypeIs(t graph.RawType) (graph.RawType, bool) {
	r := asRaw(t)
	if _, ok := signatureOf(r); !ok {
		return nil, false
	}
	d, ok := findDirective[graph.TypeIsDirective](r)
	if !ok {
		return nil, false
	}
	return a.resolveTargetName(r, d.Target), true
}

// resolveTargetName looks a directive-named type up in its declaring
// function's package scope, falling back to an unresolved symbolic
// reference the engine's own ForwardRef machinery can pick up later.
func (a *GoAdapter) resolveTargetName(r *rawGoType, name string) graph.RawType {
	pkg := a.pkgOf(r)
	if pkg != nil && pkg.Types != nil {
		if obj := pkg.Types.Scope().Lookup(name); obj != nil {
			return wrap(obj.Type())
		}
	}
	return wrapName(name)
}

func (a *GoAdapter) IsConcatenate(t graph.RawType) ([]graph.RawType, graph.RawType, bool) {
	sig, ok := signatureOf(asRaw(t))
	if !ok || sig.Recv() == nil {
		return nil, nil, false
	}
	return []graph.RawType{wrap(sig.Recv().Type())}, nil, true
}

// IsUnpack recognizes the markers.Unpack[Ts] marker, never a bare `...Ts`
// variadic slice: that slice shape is TypeVarTuple's own, and if IsUnpack
// also claimed it, a recursive build of the Unpack target would reclassify
// as Unpack forever. The target it returns is a synthesized slice of the
// wrapped type argument, the exact shape TypeVarTupleInfo expects, so the
// nested node under UnpackNode comes out as a genuine TypeVarTupleNode
// rather than a bare TypeVar.
func (a *GoAdapter) IsUnpack(t graph.RawType) (graph.RawType, bool) {
	r := asRaw(t)
	named, ok := r.typ.(*types.Named)
	if !ok || qualifiedName(named) != markersPkgPath+".Unpack" {
		return nil, false
	}
	ta := named.TypeArgs()
	if ta == nil || ta.Len() != 1 {
		return nil, false
	}
	return wrap(types.NewSlice(ta.At(0))), true
}

// --- Qualifiers ---

func (a *GoAdapter) QualifierUnwrap(t graph.RawType) (graph.Qualifier, graph.RawType, bool) {
	r := asRaw(t)
	d, ok := findDirective[graph.QualifierDirective](r)
	if !ok {
		return 0, nil, false
	}
	inner := &rawGoType{typ: r.typ, pkg: r.pkg}
	return d.Kind, inner, true
}

// --- ForwardRef ---

func (a *GoAdapter) IsForwardRef(t graph.RawType) bool {
	r := asRaw(t)
	if r.typ == nil && r.name != "" {
		return true
	}
	_, ok := findDirective[graph.RefDirective](r)
	return ok
}

func (a *GoAdapter) ForwardRefString(t graph.RawType) string {
	r := asRaw(t)
	if r.typ == nil {
		return r.name
	}
	if d, ok := findDirective[graph.RefDirective](r); ok {
		return d.Name
	}
	return r.String()
}

func (a *GoAdapter) EvaluateForwardRef(ref string, ns graph.Namespace) (graph.RawType, error) {
	if rt, ok := ns.Lookup(ref); ok {
		return rt, nil
	}
	return nil, &graph.ReflectionError{InspectionError: &graph.InspectionError{
		Op:      "evaluate_forward_ref",
		RawRepr: ref,
	}}
}

// --- Generics / type-variable family ---

func (a *GoAdapter) IsGeneric(t graph.RawType) bool {
	r := asRaw(t)
	named, ok := r.typ.(*types.Named)
	return ok && named.TypeParams() != nil && named.TypeParams().Len() > 0 && (named.TypeArgs() == nil || named.TypeArgs().Len() == 0)
}

func (a *GoAdapter) TypeParams(t graph.RawType) []graph.RawType {
	r := asRaw(t)
	named, ok := r.typ.(*types.Named)
	if !ok || named.TypeParams() == nil {
		return nil
	}
	tp := named.TypeParams()
	out := make([]graph.RawType, tp.Len())
	for i := 0; i < tp.Len(); i++ {
		out[i] = wrap(tp.At(i))
	}
	return out
}

func (a *GoAdapter) IsTypeVar(t graph.RawType) bool {
	_, ok := asRaw(t).typ.(*types.TypeParam)
	return ok
}

func (a *GoAdapter) TypeVarInfo(t graph.RawType) graph.TypeVarInfo {
	tp := asRaw(t).typ.(*types.TypeParam)
	info := graph.TypeVarInfo{Name: tp.Obj().Name(), Variance: graph.Invariant}
	constraint := tp.Constraint()
	if constraint == nil {
		return info
	}
	iface, ok := constraint.Underlying().(*types.Interface)
	if !ok {
		info.Bound = wrap(constraint)
		return info
	}
	if iface.NumEmbeddeds() == 1 {
		if u, ok := iface.EmbeddedType(0).(*types.Union); ok {
			terms := make([]graph.RawType, u.Len())
			for i := 0; i < u.Len(); i++ {
				terms[i] = wrap(u.Term(i).Type())
			}
			info.Constraints = terms
			return info
		}
	}
	if !iface.Empty() {
		info.Bound = wrap(constraint)
	}
	return info
}

// ParamSpec is represented by a defined function type named with a
// "ParamSpec" suffix, an adapter-level naming convention standing in for
// the source language's standalone ParamSpec declaration (Go has no
// first-class parameter-list type variable).
func (a *GoAdapter) IsParamSpec(t graph.RawType) bool {
	r := asRaw(t)
	named, ok := r.typ.(*types.Named)
	if !ok {
		return false
	}
	_, ok = named.Underlying().(*types.Signature)
	return ok && strings.HasSuffix(named.Obj().Name(), "ParamSpec")
}

func (a *GoAdapter) ParamSpecInfo(t graph.RawType) graph.ParamSpecInfo {
	named := asRaw(t).typ.(*types.Named)
	name := strings.TrimSuffix(named.Obj().Name(), "ParamSpec")
	return graph.ParamSpecInfo{Name: name}
}

// TypeVarTuple is represented by the slice element type of a `...T`
// variadic parameter where T is itself a type parameter.
func (a *GoAdapter) IsTypeVarTuple(t graph.RawType) bool {
	r := asRaw(t)
	sl, ok := r.typ.(*types.Slice)
	if !ok {
		return false
	}
	_, ok = sl.Elem().(*types.TypeParam)
	return ok
}

func (a *GoAdapter) TypeVarTupleInfo(t graph.RawType) graph.TypeVarTupleInfo {
	sl := asRaw(t).typ.(*types.Slice)
	tp := sl.Elem().(*types.TypeParam)
	return graph.TypeVarTupleInfo{Name: tp.Obj().Name()}
}

func qualifiedName(named *types.Named) string {
	obj := named.Obj()
	if obj.Pkg() == nil {
		return obj.Name()
	}
	return obj.Pkg().Path() + "." + obj.Name()
}

func isMarkerNamed(named *types.Named) bool {
	return named.Obj().Pkg() != nil && named.Obj().Pkg().Path() == markersPkgPath
}
