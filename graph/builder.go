package graph

// Build is the recursive node constructor: it consumes a raw type, invokes
// Classify, extracts qualifiers/metadata, recurses on children through the
// Context, and returns an immutable node with pre-computed children and
// edges.
func (ctx *Context) Build(t RawType) (Node, error) {
	identity := t.Identity()
	fp := ctx.Config.Fingerprint()

	if ctx.Cache != nil {
		if n, ok := ctx.Cache.get(identity, fp); ok {
			return n, nil
		}
	}

	if ctx.enter(identity) {
		// Cycle: this raw type is already being built higher up the
		// stack. Break it with an unresolved ForwardRef rather than
		// recursing forever.
		return forwardRefCycleNode(t), nil
	}
	defer ctx.leave(identity)

	if ctx.maxDepthExceeded() {
		return maxDepthSentinel(t), nil
	}

	node, err := ctx.buildClassified(t)
	if err != nil {
		return nil, err
	}

	if ctx.Cache != nil {
		node = ctx.Cache.insert(identity, fp, node)
	}
	return node, nil
}

func forwardRefCycleNode(t RawType) Node {
	b := newBase(KindForwardRef, t, nil, Empty(), nil, nil)
	return &ForwardRefNode{base: b, Reference: t.String(), State: RefState{Status: Unresolved}}
}

func maxDepthSentinel(t RawType) Node {
	b := newBase(KindForwardRef, t, nil, Empty(), nil, nil)
	return &ForwardRefNode{base: b, Reference: t.String(), State: RefState{Status: Failed, Error: "max depth exceeded"}}
}

// buildClassified performs qualifier peeling and Annotated hoisting, then
// dispatches to the kind-specific sub-builder.
func (ctx *Context) buildClassified(t RawType) (Node, error) {
	quals := QualifierSet{}
	extraMetadata := Empty()

	for {
		if q, inner, ok := ctx.Adapter.QualifierUnwrap(t); ok {
			quals = quals.With(q)
			t = inner
			continue
		}
		if ctx.Adapter.IsAnnotated(t) {
			baseRaw, items := ctx.Adapter.AnnotationItems(t)
			if ctx.Config.HoistMetadata {
				extraMetadata = extraMetadata.Concat(FromAnnotated(items, true))
				t = baseRaw
				continue
			}
			child := ctx.child()
			innerNode, err := child.Build(baseRaw)
			if err != nil {
				return nil, err
			}
			var loc *SourceLocation
			if ctx.Config.IncludeSourceLocations {
				loc = ctx.Adapter.SourceLocation(t)
			}
			edges := []EdgeConnection{singleEdge(EdgeAnnotatedBase, innerNode)}
			b := newBase(KindAnnotated, t, loc, extraMetadata, quals, edges)
			return &AnnotatedNode{base: b, BaseNode: innerNode, Annotations: items}, nil
		}
		break
	}

	kind := Classify(ctx.Adapter, t)
	ctx.pendingMetadata = extraMetadata
	return ctx.dispatch(kind, t, quals)
}

func (ctx *Context) dispatch(kind NodeKind, t RawType, quals QualifierSet) (Node, error) {
	switch kind {
	case KindAny:
		return &AnyNode{base: ctx.simpleBase(KindAny, t, quals, nil)}, nil
	case KindNever:
		return &NeverNode{base: ctx.simpleBase(KindNever, t, quals, nil)}, nil
	case KindSelfType:
		return &SelfTypeNode{base: ctx.simpleBase(KindSelfType, t, quals, nil)}, nil
	case KindLiteralString:
		return &LiteralStringNode{base: ctx.simpleBase(KindLiteralString, t, quals, nil)}, nil
	case KindEllipsis:
		return &EllipsisNode{base: ctx.simpleBase(KindEllipsis, t, quals, nil)}, nil
	case KindAnnotated:
		// Only reached when hoisting is off and IsAnnotated fires after
		// qualifier peeling consumed the wrapper already handled above;
		// treated identically to the preserved-shape branch.
		child := ctx.child()
		baseRaw, items := ctx.Adapter.AnnotationItems(t)
		innerNode, err := child.Build(baseRaw)
		if err != nil {
			return nil, err
		}
		edges := []EdgeConnection{singleEdge(EdgeAnnotatedBase, innerNode)}
		return &AnnotatedNode{base: ctx.simpleBase(KindAnnotated, t, quals, edges), BaseNode: innerNode, Annotations: items}, nil
	case KindForwardRef:
		return ctx.buildForwardRef(t, quals)
	case KindUnion:
		return ctx.buildUnion(t, quals)
	case KindIntersection:
		return ctx.buildIntersection(t, quals)
	case KindNewType:
		return ctx.buildNewType(t, quals)
	case KindGenericAlias:
		return ctx.buildGenericAlias(t, quals)
	case KindTypeAlias:
		return ctx.buildTypeAlias(t, quals)
	case KindMeta:
		target, _ := ctx.Adapter.IsMeta(t)
		return ctx.buildWrapping(KindMeta, t, quals, target, EdgeMetaOf, func(b base, n Node) Node {
			return &MetaNode{base: b, Target: n}
		})
	case KindTypeGuard:
		target, _ := ctx.Adapter.IsTypeGuard(t)
		return ctx.buildWrapping(KindTypeGuard, t, quals, target, EdgeTarget, func(b base, n Node) Node {
			return &TypeGuardNode{base: b, Target: n}
		})
	case KindTypeIs:
		target, _ := ctx.Adapter.IsTypeIs(t)
		return ctx.buildWrapping(KindTypeIs, t, quals, target, EdgeTarget, func(b base, n Node) Node {
			return &TypeIsNode{base: b, Target: n}
		})
	case KindLiteral:
		return ctx.buildLiteral(t, quals)
	case KindConcatenate:
		return ctx.buildConcatenate(t, quals)
	case KindUnpack:
		target, _ := ctx.Adapter.IsUnpack(t)
		return ctx.buildWrapping(KindUnpack, t, quals, target, EdgeTarget, func(b base, n Node) Node {
			return &UnpackNode{base: b, Target: n}
		})
	case KindTuple:
		return ctx.buildTuple(t, quals)
	case KindCallable:
		return ctx.buildCallable(t, quals)
	case KindSubscriptedGeneric:
		return ctx.buildSubscriptedGeneric(t, quals)
	case KindGenericType:
		return ctx.buildGenericType(t, quals)
	case KindTypeVar:
		return ctx.buildTypeVar(t, quals)
	case KindParamSpec:
		return ctx.buildParamSpec(t, quals)
	case KindTypeVarTuple:
		return ctx.buildTypeVarTuple(t, quals)
	case KindDataclass:
		return ctx.buildDataclass(t, quals)
	case KindTypedDict:
		return ctx.buildTypedDict(t, quals)
	case KindNamedTuple:
		return ctx.buildNamedTuple(t, quals)
	case KindProtocol:
		return ctx.buildProtocol(t, quals)
	case KindEnum:
		return ctx.buildEnum(t, quals)
	case KindClass:
		return ctx.buildClass(t, quals)
	default:
		return ctx.buildConcrete(t, quals)
	}
}

func (ctx *Context) simpleBase(kind NodeKind, t RawType, quals QualifierSet, edges []EdgeConnection) base {
	var loc *SourceLocation
	if ctx.Config.IncludeSourceLocations {
		loc = ctx.Adapter.SourceLocation(t)
	}
	return newBase(kind, t, loc, ctx.pendingMetadata, quals, edges)
}

// buildWrapping is shared by the single-target wrapper kinds (Meta,
// TypeGuard, TypeIs, Unpack).
func (ctx *Context) buildWrapping(kind NodeKind, t RawType, quals QualifierSet, target RawType, ek EdgeKind, make_ func(base, Node) Node) (Node, error) {
	child := ctx.child()
	n, err := child.Build(target)
	if err != nil {
		return nil, err
	}
	edges := []EdgeConnection{singleEdge(ek, n)}
	return make_(ctx.simpleBase(kind, t, quals, edges), n), nil
}

func (ctx *Context) buildConcrete(t RawType, quals QualifierSet) (Node, error) {
	b := ctx.simpleBase(KindConcrete, t, quals, nil)
	return &ConcreteNode{base: b, ClassRef: ctx.Adapter.ClassRef(t)}, nil
}

func (ctx *Context) buildNewType(t RawType, quals QualifierSet) (Node, error) {
	name, superRaw := ctx.Adapter.NewTypeInfo(t)
	child := ctx.child()
	superNode, err := child.Build(superRaw)
	if err != nil {
		return nil, err
	}
	edges := []EdgeConnection{singleEdge(EdgeSupertype, superNode)}
	return &NewTypeNode{base: ctx.simpleBase(KindNewType, t, quals, edges), Name: name, Supertype: superNode}, nil
}

func (ctx *Context) buildGenericType(t RawType, quals QualifierSet) (Node, error) {
	child := ctx.child()
	params := ctx.Adapter.TypeParams(t)
	edges := make([]EdgeConnection, 0, len(params))
	tp := make([]Node, 0, len(params))
	for i, p := range params {
		n, err := child.Build(p)
		if err != nil {
			return nil, err
		}
		tp = append(tp, n)
		edges = append(edges, typeParamEdge(i, n))
	}
	return &GenericTypeNode{base: ctx.simpleBase(KindGenericType, t, quals, edges), ClassRef: ctx.Adapter.ClassRef(t), TypeParams: tp}, nil
}

func (ctx *Context) buildSubscriptedGeneric(t RawType, quals QualifierSet) (Node, error) {
	child := ctx.child()
	var edges []EdgeConnection
	var originNode *GenericTypeNode

	if originRaw, ok := ctx.Adapter.Origin(t); ok && originRaw != nil {
		on, err := child.Build(originRaw)
		if err != nil {
			return nil, err
		}
		if gt, ok := on.(*GenericTypeNode); ok {
			originNode = gt
		}
		edges = append(edges, singleEdge(EdgeOrigin, on))
	}

	args := ctx.Adapter.Args(t)
	argNodes := make([]Node, 0, len(args))
	for i, a := range args {
		n, err := child.Build(a)
		if err != nil {
			return nil, err
		}
		argNodes = append(argNodes, n)
		edges = append(edges, typeArgEdge(i, n))
	}

	return &SubscriptedGenericNode{base: ctx.simpleBase(KindSubscriptedGeneric, t, quals, edges), Origin: originNode, Args: argNodes}, nil
}

func (ctx *Context) buildGenericAlias(t RawType, quals QualifierSet) (Node, error) {
	child := ctx.child()
	name, typeParams, value := ctx.Adapter.AliasInfo(t)
	var edges []EdgeConnection
	tpNodes := make([]Node, 0, len(typeParams))
	for i, p := range typeParams {
		n, err := child.Build(p)
		if err != nil {
			return nil, err
		}
		tpNodes = append(tpNodes, n)
		edges = append(edges, typeParamEdge(i, n))
	}
	valNode, err := child.Build(value)
	if err != nil {
		return nil, err
	}
	edges = append(edges, singleEdge(EdgeAliasTarget, valNode))
	return &GenericAliasNode{base: ctx.simpleBase(KindGenericAlias, t, quals, edges), Name: name, TypeParams: tpNodes, Value: valNode}, nil
}

func (ctx *Context) buildTypeAlias(t RawType, quals QualifierSet) (Node, error) {
	child := ctx.child()
	name, _, value := ctx.Adapter.AliasInfo(t)
	valNode, err := child.Build(value)
	if err != nil {
		return nil, err
	}
	edges := []EdgeConnection{singleEdge(EdgeAliasTarget, valNode)}
	return &TypeAliasNode{base: ctx.simpleBase(KindTypeAlias, t, quals, edges), Name: name, Value: valNode}, nil
}

func (ctx *Context) buildUnion(t RawType, quals QualifierSet) (Node, error) {
	child := ctx.child()
	members := ctx.Adapter.UnionMembers(t)
	var edges []EdgeConnection
	var nodes []Node
	idx := 0
	for _, m := range members {
		n, err := child.Build(m)
		if err != nil {
			return nil, err
		}
		if ctx.Config.NormalizeUnions {
			if u, ok := IsUnionNode(n); ok {
				for _, sub := range u.Members {
					nodes = append(nodes, sub)
					edges = append(edges, unionMemberEdge(idx, sub))
					idx++
				}
				continue
			}
		}
		nodes = append(nodes, n)
		edges = append(edges, unionMemberEdge(idx, n))
		idx++
	}
	return &UnionNode{base: ctx.simpleBase(KindUnion, t, quals, edges), Members: nodes}, nil
}

func (ctx *Context) buildIntersection(t RawType, quals QualifierSet) (Node, error) {
	child := ctx.child()
	members := ctx.Adapter.IntersectionMembers(t)
	var edges []EdgeConnection
	var nodes []Node
	for i, m := range members {
		n, err := child.Build(m)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
		edges = append(edges, intersectionMemberEdge(i, n))
	}
	return &IntersectionNode{base: ctx.simpleBase(KindIntersection, t, quals, edges), Members: nodes}, nil
}

func (ctx *Context) buildTuple(t RawType, quals QualifierSet) (Node, error) {
	child := ctx.child()
	elems, variadic := ctx.Adapter.TupleElements(t)
	var edges []EdgeConnection
	nodes := make([]Node, 0, len(elems))
	for i, e := range elems {
		n, err := child.Build(e)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
		edges = append(edges, elementEdge(i, n))
	}
	return &TupleNode{base: ctx.simpleBase(KindTuple, t, quals, edges), Elements: nodes, Variadic: variadic}, nil
}

func (ctx *Context) buildCallable(t RawType, quals QualifierSet) (Node, error) {
	child := ctx.child()
	params, ellipsis, returns := ctx.Adapter.CallableSignature(t)

	var edges []EdgeConnection
	var paramNodes []Node
	var paramSpecNode *ParamSpecNode

	switch {
	case ellipsis:
		// no param edges: the Ellipsis form carries no parameter list.
	case len(params) == 1 && ctx.Adapter.IsParamSpec(params[0]):
		n, err := child.Build(params[0])
		if err != nil {
			return nil, err
		}
		paramSpecNode, _ = n.(*ParamSpecNode)
		edges = append(edges, singleEdge(EdgeParamSpec, n))
	default:
		for i, p := range params {
			n, err := child.Build(p)
			if err != nil {
				return nil, err
			}
			paramNodes = append(paramNodes, n)
			edges = append(edges, paramEdge(i, "", n))
		}
	}

	retNode, err := child.Build(returns)
	if err != nil {
		return nil, err
	}
	edges = append(edges, singleEdge(EdgeReturn, retNode))

	return &CallableNode{base: ctx.simpleBase(KindCallable, t, quals, edges), Params: paramNodes, Ellipsis: ellipsis, ParamSpec: paramSpecNode, Returns: retNode}, nil
}

func (ctx *Context) buildLiteral(t RawType, quals QualifierSet) (Node, error) {
	values := ctx.Adapter.LiteralValues(t)
	return &LiteralNode{base: ctx.simpleBase(KindLiteral, t, quals, nil), Values: values}, nil
}

func (ctx *Context) buildConcatenate(t RawType, quals QualifierSet) (Node, error) {
	child := ctx.child()
	prefix, psRaw, _ := ctx.Adapter.IsConcatenate(t)
	var edges []EdgeConnection
	prefixNodes := make([]Node, 0, len(prefix))
	for i, p := range prefix {
		n, err := child.Build(p)
		if err != nil {
			return nil, err
		}
		prefixNodes = append(prefixNodes, n)
		edges = append(edges, prefixEdge(i, n))
	}
	var psNode *ParamSpecNode
	if psRaw != nil {
		n, err := child.Build(psRaw)
		if err != nil {
			return nil, err
		}
		psNode, _ = n.(*ParamSpecNode)
		edges = append(edges, singleEdge(EdgeParamSpec, n))
	}
	return &ConcatenateNode{base: ctx.simpleBase(KindConcatenate, t, quals, edges), Prefix: prefixNodes, ParamSpec: psNode}, nil
}

func (ctx *Context) buildTypeVar(t RawType, quals QualifierSet) (Node, error) {
	child := ctx.child()
	info := ctx.Adapter.TypeVarInfo(t)
	var edges []EdgeConnection

	var boundNode Node
	if info.Bound != nil {
		n, err := child.Build(info.Bound)
		if err != nil {
			return nil, err
		}
		boundNode = n
		edges = append(edges, singleEdge(EdgeBound, n))
	}
	constraintNodes := make([]Node, 0, len(info.Constraints))
	for i, c := range info.Constraints {
		n, err := child.Build(c)
		if err != nil {
			return nil, err
		}
		constraintNodes = append(constraintNodes, n)
		edges = append(edges, constraintEdge(i, n))
	}
	var defNode Node
	if info.Default != nil {
		n, err := child.Build(info.Default)
		if err != nil {
			return nil, err
		}
		defNode = n
		edges = append(edges, singleEdge(EdgeDefault, n))
	}

	return &TypeVarNode{
		base:          ctx.simpleBase(KindTypeVar, t, quals, edges),
		Name:          info.Name,
		Variance:      info.Variance,
		Bound:         boundNode,
		Constraints:   constraintNodes,
		Default:       defNode,
		InferVariance: info.InferVariance,
	}, nil
}

func (ctx *Context) buildParamSpec(t RawType, quals QualifierSet) (Node, error) {
	child := ctx.child()
	info := ctx.Adapter.ParamSpecInfo(t)
	var edges []EdgeConnection
	var defNode Node
	if info.Default != nil {
		n, err := child.Build(info.Default)
		if err != nil {
			return nil, err
		}
		defNode = n
		edges = append(edges, singleEdge(EdgeDefault, n))
	}
	return &ParamSpecNode{base: ctx.simpleBase(KindParamSpec, t, quals, edges), Name: info.Name, Default: defNode}, nil
}

func (ctx *Context) buildTypeVarTuple(t RawType, quals QualifierSet) (Node, error) {
	child := ctx.child()
	info := ctx.Adapter.TypeVarTupleInfo(t)
	var edges []EdgeConnection
	var defNode Node
	if info.Default != nil {
		n, err := child.Build(info.Default)
		if err != nil {
			return nil, err
		}
		defNode = n
		edges = append(edges, singleEdge(EdgeDefault, n))
	}
	return &TypeVarTupleNode{base: ctx.simpleBase(KindTypeVarTuple, t, quals, edges), Name: info.Name, Default: defNode}, nil
}

func (ctx *Context) buildForwardRef(t RawType, quals QualifierSet) (Node, error) {
	ref := ctx.Adapter.ForwardRefString(t)

	if ctx.refInProgress(ref) {
		return &ForwardRefNode{base: ctx.simpleBase(KindForwardRef, t, quals, nil), Reference: ref, State: RefState{Status: Unresolved}}, nil
	}

	if ctx.Config.EvalMode == EvalStringified {
		return &ForwardRefNode{base: ctx.simpleBase(KindForwardRef, t, quals, nil), Reference: ref, State: RefState{Status: Unresolved}}, nil
	}

	ctx.enterRef(ref)
	resolvedRaw, err := ctx.Adapter.EvaluateForwardRef(ref, ctx.Namespace)
	if err != nil {
		ctx.leaveRef(ref)
		if ctx.Config.EvalMode == EvalEager {
			return nil, newForwardRefError(ref, ctx.CallID, err)
		}
		return &ForwardRefNode{base: ctx.simpleBase(KindForwardRef, t, quals, nil), Reference: ref, State: RefState{Status: Failed, Error: err.Error()}}, nil
	}

	child := ctx.child()
	resolvedNode, err := child.Build(resolvedRaw)
	ctx.leaveRef(ref)
	if err != nil {
		if ctx.Config.EvalMode == EvalEager {
			return nil, newForwardRefError(ref, ctx.CallID, err)
		}
		return &ForwardRefNode{base: ctx.simpleBase(KindForwardRef, t, quals, nil), Reference: ref, State: RefState{Status: Failed, Error: err.Error()}}, nil
	}

	edges := []EdgeConnection{singleEdge(EdgeResolved, resolvedNode)}
	return &ForwardRefNode{base: ctx.simpleBase(KindForwardRef, t, quals, edges), Reference: ref, State: RefState{Status: Resolved, Node: resolvedNode}}, nil
}

// --- Structured kinds ---

func isUnexported(name string) bool {
	if name == "" {
		return false
	}
	r := name[0]
	return r >= 'a' && r <= 'z'
}

func filterFieldProbes(cfg *Config, probes []FieldProbe) []FieldProbe {
	out := make([]FieldProbe, 0, len(probes))
	for _, p := range probes {
		if !cfg.IncludePrivateMembers && isUnexported(p.Name) {
			continue
		}
		if p.Kind == "class_var" && !cfg.IncludeClassVars {
			continue
		}
		if p.Kind == "instance_var" && !cfg.IncludeInstanceVars {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (ctx *Context) buildFieldEdges(probes []FieldProbe) ([]FieldDef, []EdgeConnection, error) {
	child := ctx.child()
	defs := make([]FieldDef, 0, len(probes))
	edges := make([]EdgeConnection, 0, len(probes))
	for i, p := range probes {
		n, err := child.Build(p.Type)
		if err != nil {
			return nil, nil, err
		}
		md := FromAnnotated(p.Metadata, true)
		defs = append(defs, FieldDef{Name: p.Name, Type: n, HasDefault: p.HasDefault, DefaultRepr: p.DefaultRepr, Metadata: md, Kind: p.Kind})
		edges = append(edges, fieldEdge(i, p.Name, n))
	}
	return defs, edges, nil
}

func (ctx *Context) buildMethodEdges(probes []FieldProbe) ([]FieldDef, []EdgeConnection, error) {
	child := ctx.child()
	defs := make([]FieldDef, 0, len(probes))
	edges := make([]EdgeConnection, 0, len(probes))
	for _, p := range probes {
		n, err := child.Build(p.Type)
		if err != nil {
			return nil, nil, err
		}
		md := FromAnnotated(p.Metadata, true)
		defs = append(defs, FieldDef{Name: p.Name, Type: n, Metadata: md, Kind: "method"})
		edges = append(edges, methodEdge(p.Name, n))
	}
	return defs, edges, nil
}

func (ctx *Context) buildClass(t RawType, quals QualifierSet) (Node, error) {
	probes := filterFieldProbes(ctx.Config, ctx.Adapter.Fields(t))
	fields, edges, err := ctx.buildFieldEdges(probes)
	if err != nil {
		return nil, err
	}
	if ctx.Config.IncludeMethods {
		_, medges, err := ctx.buildMethodEdges(ctx.Adapter.Methods(t))
		if err != nil {
			return nil, err
		}
		edges = append(edges, medges...)
	}
	return &ClassNode{base: ctx.simpleBase(KindClass, t, quals, edges), Name: ctx.Adapter.ClassRef(t), Fields: fields}, nil
}

func (ctx *Context) buildDataclass(t RawType, quals QualifierSet) (Node, error) {
	probes := filterFieldProbes(ctx.Config, ctx.Adapter.Fields(t))
	fields, edges, err := ctx.buildFieldEdges(probes)
	if err != nil {
		return nil, err
	}
	frozen, slots := ctx.Adapter.DataclassInfo(t)
	return &DataclassNode{base: ctx.simpleBase(KindDataclass, t, quals, edges), Name: ctx.Adapter.ClassRef(t), Frozen: frozen, Slots: slots, Fields: fields}, nil
}

func (ctx *Context) buildTypedDict(t RawType, quals QualifierSet) (Node, error) {
	probes := filterFieldProbes(ctx.Config, ctx.Adapter.Fields(t))
	fields, edges, err := ctx.buildFieldEdges(probes)
	if err != nil {
		return nil, err
	}
	total := ctx.Adapter.TypedDictInfo(t)
	return &TypedDictNode{base: ctx.simpleBase(KindTypedDict, t, quals, edges), Name: ctx.Adapter.ClassRef(t), Fields: fields, Total: total}, nil
}

func (ctx *Context) buildNamedTuple(t RawType, quals QualifierSet) (Node, error) {
	probes := filterFieldProbes(ctx.Config, ctx.Adapter.Fields(t))
	fields, edges, err := ctx.buildFieldEdges(probes)
	if err != nil {
		return nil, err
	}
	return &NamedTupleNode{base: ctx.simpleBase(KindNamedTuple, t, quals, edges), Name: ctx.Adapter.ClassRef(t), Fields: fields}, nil
}

func (ctx *Context) buildProtocol(t RawType, quals QualifierSet) (Node, error) {
	attrProbes := filterFieldProbes(ctx.Config, ctx.Adapter.Fields(t))
	attrs, edges, err := ctx.buildFieldEdges(attrProbes)
	if err != nil {
		return nil, err
	}
	var methods []FieldDef
	if ctx.Config.IncludeMethods {
		var medges []EdgeConnection
		methods, medges, err = ctx.buildMethodEdges(ctx.Adapter.Methods(t))
		if err != nil {
			return nil, err
		}
		edges = append(edges, medges...)
	}
	return &ProtocolNode{base: ctx.simpleBase(KindProtocol, t, quals, edges), Name: ctx.Adapter.ClassRef(t), Methods: methods, Attributes: attrs}, nil
}

// BuildFunction builds the Function/Signature pair for a raw function or
// method value. Unlike the type-node kinds, functions are not reached
// through Classify: a caller probes one explicitly via InspectFunction.
func (ctx *Context) BuildFunction(t RawType) (*FunctionNode, error) {
	info := ctx.Adapter.FunctionInfo(t)
	sig, err := ctx.buildSignature(info)
	if err != nil {
		return nil, err
	}
	edges := []EdgeConnection{singleEdge(EdgeSignature, sig)}
	return &FunctionNode{
		base:        ctx.simpleBase(KindFunction, t, nil, edges),
		Name:        info.Name,
		Signature:   sig,
		IsAsync:     info.IsAsync,
		IsGenerator: info.IsGenerator,
		Decorators:  append([]string(nil), info.Decorators...),
	}, nil
}

func (ctx *Context) buildSignature(info FunctionProbe) (*SignatureNode, error) {
	child := ctx.child()
	var edges []EdgeConnection

	params := make([]Parameter, 0, len(info.Params))
	for i, p := range info.Params {
		n, err := child.Build(p.Type)
		if err != nil {
			return nil, err
		}
		params = append(params, Parameter{
			Name:        p.Name,
			Type:        n,
			Kind:        p.Kind,
			HasDefault:  p.HasDefault,
			DefaultRepr: p.DefaultRepr,
			Metadata:    FromAnnotated(p.Metadata, true),
		})
		edges = append(edges, paramEdge(i, p.Name, n))
	}

	var retNode Node
	if info.Returns != nil {
		n, err := child.Build(info.Returns)
		if err != nil {
			return nil, err
		}
		retNode = n
		edges = append(edges, singleEdge(EdgeReturn, n))
	}

	typeParams := make([]Node, 0, len(info.TypeParams))
	for i, tp := range info.TypeParams {
		n, err := child.Build(tp)
		if err != nil {
			return nil, err
		}
		typeParams = append(typeParams, n)
		edges = append(edges, typeParamEdge(i, n))
	}

	return &SignatureNode{
		base:       newBase(KindSignature, nil, nil, Empty(), nil, edges),
		Parameters: params,
		Returns:    retNode,
		TypeParams: typeParams,
	}, nil
}

func (ctx *Context) buildEnum(t RawType, quals QualifierSet) (Node, error) {
	memberProbes := ctx.Adapter.EnumMembers(t)
	members := make([]EnumMember, 0, len(memberProbes))
	for _, p := range memberProbes {
		members = append(members, EnumMember{Name: p.Name, Value: p.Value, Description: p.Description, Deprecated: p.Deprecated})
	}
	var edges []EdgeConnection
	var valueTypeNode Node
	if vt, ok := ctx.Adapter.EnumValueType(t); ok {
		child := ctx.child()
		n, err := child.Build(vt)
		if err != nil {
			return nil, err
		}
		valueTypeNode = n
		edges = append(edges, singleEdge(EdgeValueType, n))
	}
	return &EnumNode{base: ctx.simpleBase(KindEnum, t, quals, edges), Name: ctx.Adapter.ClassRef(t), Members: members, ValueType: valueTypeNode}, nil
}
