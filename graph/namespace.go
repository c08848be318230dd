package graph

// Namespace is the (globals, locals) pair used to evaluate a forward
// reference string.
type Namespace struct {
	Globals map[string]RawType
	Locals  map[string]RawType
}

// Lookup resolves name, preferring locals over globals.
func (ns Namespace) Lookup(name string) (RawType, bool) {
	if v, ok := ns.Locals[name]; ok {
		return v, true
	}
	if v, ok := ns.Globals[name]; ok {
		return v, true
	}
	return nil, false
}

func mergeMaps(auto, user map[string]RawType) map[string]RawType {
	if len(auto) == 0 && len(user) == 0 {
		return nil
	}
	out := make(map[string]RawType, len(auto)+len(user))
	for k, v := range auto {
		out[k] = v
	}
	for k, v := range user {
		out[k] = v // user overlay wins on conflict
	}
	return out
}

// MergeNamespace overlays user bindings on top of auto-extracted ones;
// the user's wins on conflict.
func MergeNamespace(auto, user Namespace) Namespace {
	return Namespace{
		Globals: mergeMaps(auto.Globals, user.Globals),
		Locals:  mergeMaps(auto.Locals, user.Locals),
	}
}

// ExtractNamespace extracts a namespace from a class, function, or module
// raw value. It does not read Config.AutoNamespace and applies no
// user-supplied overlay; MergeNamespace performs that overlay. The actual per-kind extraction lives in the Adapter (ModuleGlobals,
// ClassLocals, ...) since only the adapter knows what "class" / "function"
// / "module" mean for the source language.
func ExtractNamespace(a Adapter, source RawType, kind SourceKind) Namespace {
	switch kind {
	case SourceModule:
		return Namespace{Globals: a.ModuleGlobals(source)}
	case SourceClass:
		locals := a.ClassLocals(source)
		return Namespace{Globals: a.ClassModuleGlobals(source), Locals: locals}
	case SourceFunction:
		globals := a.FunctionGlobals(source)
		closure := a.FunctionClosure(source)
		locals := closure
		if owner, ok := a.OwningClassOfMethod(source); ok {
			locals = mergeMaps(a.ClassLocals(owner), closure)
		}
		return Namespace{Globals: globals, Locals: locals}
	default:
		return Namespace{}
	}
}

// SourceKind distinguishes the kind of source object ExtractNamespace was
// given, since the Adapter exposes a different extraction method per kind.
type SourceKind int

const (
	SourceModule SourceKind = iota
	SourceClass
	SourceFunction
)
