package adapter

import (
	"go/types"

	"golang.org/x/tools/go/packages"

	"github.com/typegraph/typegraph/graph"
)

// WrapModule exposes a loaded package as a graph.RawType suitable for
// ModuleGlobals / InspectModule, the entry point a caller uses to start
// introspecting a whole package rather than one named type.
func WrapModule(pkg *packages.Package) graph.RawType {
	return &rawGoType{pkg: pkg, name: pkg.PkgPath}
}

func scopeGlobals(scope *types.Scope) map[string]graph.RawType {
	if scope == nil {
		return nil
	}
	out := make(map[string]graph.RawType, scope.Len())
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if !obj.Exported() {
			continue
		}
		out[name] = wrap(obj.Type())
	}
	return out
}

func (a *GoAdapter) ModuleGlobals(mod graph.RawType) map[string]graph.RawType {
	r := asRaw(mod)
	if r.pkg == nil || r.pkg.Types == nil {
		return nil
	}
	return scopeGlobals(r.pkg.Types.Scope())
}

func (a *GoAdapter) ClassModuleGlobals(cls graph.RawType) map[string]graph.RawType {
	r := asRaw(cls)
	pkg := a.pkgOf(r)
	if pkg == nil || pkg.Types == nil {
		return nil
	}
	return scopeGlobals(pkg.Types.Scope())
}

func (a *GoAdapter) ClassLocals(cls graph.RawType) map[string]graph.RawType {
	r := asRaw(cls)
	named, ok := r.typ.(*types.Named)
	if !ok {
		return nil
	}
	out := map[string]graph.RawType{named.Obj().Name(): wrap(named)}
	ms := types.NewMethodSet(types.NewPointer(named))
	for i := 0; i < ms.Len(); i++ {
		fn, ok := ms.At(i).Obj().(*types.Func)
		if !ok {
			continue
		}
		out[fn.Name()] = wrap(fn.Type())
	}
	return out
}

func (a *GoAdapter) FunctionGlobals(fn graph.RawType) map[string]graph.RawType {
	r := asRaw(fn)
	pkg := a.pkgOf(r)
	if pkg == nil || pkg.Types == nil {
		return nil
	}
	return scopeGlobals(pkg.Types.Scope())
}

// FunctionClosure always returns nil. go/types keeps no record of a
// *types.Func's lexical closure once type-checking is done (that
// information lives only in the AST's surrounding scopes during the walk
// that produced it), so no function object reports closure locals; only
// an enclosing class's locals (handled via OwningClassOfMethod) are
// available after the fact.
func (a *GoAdapter) FunctionClosure(fn graph.RawType) map[string]graph.RawType {
	return nil
}

func (a *GoAdapter) OwningClassOfMethod(fn graph.RawType) (graph.RawType, bool) {
	r := asRaw(fn)
	sig, ok := signatureOf(r)
	if !ok || sig.Recv() == nil {
		return nil, false
	}
	recvType := sig.Recv().Type()
	if ptr, ok := recvType.(*types.Pointer); ok {
		recvType = ptr.Elem()
	}
	named, ok := recvType.(*types.Named)
	if !ok {
		return nil, false
	}
	return wrap(named), true
}
