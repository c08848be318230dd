package graph

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// InspectOptions bundles the adapter, configuration, and namespace an
// Inspect* call needs. A nil Cache uses DefaultCache; pass an explicit
// bypass Cache of nil only via InspectWithoutCache.
type InspectOptions struct {
	Adapter   Adapter
	Config    *Config
	Namespace Namespace
	Cache     *Cache
}

func (o InspectOptions) context() *Context {
	cache := o.Cache
	if cache == nil {
		cache = DefaultCache
	}
	cfg := o.Config
	if cfg == nil {
		cfg = NewConfig()
	}
	return NewContext(o.Adapter, cfg, cache, o.Namespace)
}

// InspectType is the general entry point: build the full node graph for
// any raw type, dispatching through the Classifier.
func InspectType(opts InspectOptions, raw RawType) (Node, error) {
	ctx := opts.context()
	return ctx.Build(raw)
}

// InspectWithoutCache builds a node graph bypassing the process-wide
// cache entirely: neither reads nor writes touch it. This is the
// "source" bypass mode (see DESIGN.md's Open Question decision):
// one-off introspection of a value the caller knows won't recur should
// not pollute the shared cache with a single-use entry.
func InspectWithoutCache(opts InspectOptions, raw RawType) (Node, error) {
	opts.Cache = nil
	ctx := opts.context()
	ctx.Cache = nil
	return ctx.Build(raw)
}

// typeMismatchError reports that InspectX found a node of the wrong kind.
func typeMismatchError(op string, want NodeKind, got Node, callID string) error {
	return &InspectionError{
		Op:      op,
		RawRepr: fmt.Sprintf("expected %s, got %s", want, got.Kind()),
		CallID:  callID,
	}
}

// InspectClass builds raw as a Class node, erroring if the adapter
// classifies it as anything else (including a more specific structured
// kind like Dataclass).
func InspectClass(opts InspectOptions, raw RawType) (*ClassNode, error) {
	ctx := opts.context()
	n, err := ctx.Build(raw)
	if err != nil {
		return nil, err
	}
	c, ok := IsClassNode(n)
	if !ok {
		return nil, typeMismatchError("inspect_class", KindClass, n, ctx.CallID)
	}
	return c, nil
}

func InspectDataclass(opts InspectOptions, raw RawType) (*DataclassNode, error) {
	ctx := opts.context()
	n, err := ctx.Build(raw)
	if err != nil {
		return nil, err
	}
	d, ok := IsDataclassNode(n)
	if !ok {
		return nil, typeMismatchError("inspect_dataclass", KindDataclass, n, ctx.CallID)
	}
	return d, nil
}

func InspectTypedDict(opts InspectOptions, raw RawType) (*TypedDictNode, error) {
	ctx := opts.context()
	n, err := ctx.Build(raw)
	if err != nil {
		return nil, err
	}
	td, ok := IsTypedDictNode(n)
	if !ok {
		return nil, typeMismatchError("inspect_typed_dict", KindTypedDict, n, ctx.CallID)
	}
	return td, nil
}

func InspectNamedTuple(opts InspectOptions, raw RawType) (*NamedTupleNode, error) {
	ctx := opts.context()
	n, err := ctx.Build(raw)
	if err != nil {
		return nil, err
	}
	nt, ok := IsNamedTupleNode(n)
	if !ok {
		return nil, typeMismatchError("inspect_named_tuple", KindNamedTuple, n, ctx.CallID)
	}
	return nt, nil
}

func InspectEnum(opts InspectOptions, raw RawType) (*EnumNode, error) {
	ctx := opts.context()
	n, err := ctx.Build(raw)
	if err != nil {
		return nil, err
	}
	e, ok := IsEnumNode(n)
	if !ok {
		return nil, typeMismatchError("inspect_enum", KindEnum, n, ctx.CallID)
	}
	return e, nil
}

func InspectProtocol(opts InspectOptions, raw RawType) (*ProtocolNode, error) {
	ctx := opts.context()
	n, err := ctx.Build(raw)
	if err != nil {
		return nil, err
	}
	p, ok := IsProtocolNode(n)
	if !ok {
		return nil, typeMismatchError("inspect_protocol", KindProtocol, n, ctx.CallID)
	}
	return p, nil
}

// InspectFunction probes a function/method raw value directly; functions
// are not reachable through Classify since they aren't type-annotation
// nodes themselves; only their parameter/return types are.
func InspectFunction(opts InspectOptions, raw RawType) (*FunctionNode, error) {
	ctx := opts.context()
	return ctx.BuildFunction(raw)
}

// InspectSignature probes just the signature portion of a function
// value, for callers that don't need the enclosing Function wrapper.
func InspectSignature(opts InspectOptions, raw RawType) (*SignatureNode, error) {
	ctx := opts.context()
	info := ctx.Adapter.FunctionInfo(raw)
	return ctx.buildSignature(info)
}

// InspectTypeAlias builds raw as a TypeAlias or GenericAlias node.
func InspectTypeAlias(opts InspectOptions, raw RawType) (Node, error) {
	ctx := opts.context()
	n, err := ctx.Build(raw)
	if err != nil {
		return nil, err
	}
	if n.Kind() != KindTypeAlias && n.Kind() != KindGenericAlias {
		return nil, typeMismatchError("inspect_type_alias", KindTypeAlias, n, ctx.CallID)
	}
	return n, nil
}

// InspectTypeParam builds raw as a TypeVar/ParamSpec/TypeVarTuple node.
func InspectTypeParam(opts InspectOptions, raw RawType) (Node, error) {
	ctx := opts.context()
	n, err := ctx.Build(raw)
	if err != nil {
		return nil, err
	}
	switch n.Kind() {
	case KindTypeVar, KindParamSpec, KindTypeVarTuple:
		return n, nil
	default:
		return nil, typeMismatchError("inspect_type_param", KindTypeVar, n, ctx.CallID)
	}
}

// ModuleMember is one exported entity discovered in a module.
type ModuleMember struct {
	Name string
	Node Node
	Err  error
}

// InspectModule concurrently inspects every entry of members (mod itself
// is not read), fanning out across an errgroup-bounded worker set (the
// engine's one genuinely concurrent operation: the members are
// independent, and the shared Cache/Adapter are safe for concurrent
// reads). A per-member error does not abort the others; it is recorded
// on that member's ModuleMember.Err instead, so a caller inspecting a
// large package still gets partial results.
func InspectModule(opts InspectOptions, mod RawType, members map[string]RawType, concurrency int) ([]ModuleMember, error) {
	if concurrency <= 0 {
		concurrency = 8
	}
	results := make([]ModuleMember, len(members))
	names := make([]string, 0, len(members))
	for name := range members {
		names = append(names, name)
	}

	g := new(errgroup.Group)
	g.SetLimit(concurrency)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			ctx := opts.context()
			n, err := ctx.Build(members[name])
			results[i] = ModuleMember{Name: name, Node: n, Err: err}
			return nil
		})
	}
	// g.Wait's error is always nil since member errors are captured per
	// result rather than propagated, but errgroup is still the right
	// vehicle for bounding concurrency and waiting out the fan-out.
	_ = g.Wait()
	return results, nil
}
