package graph

// Classify is the pure function `(RawType) → NodeKind`. It selects which
// kind-specific sub-builder Build should invoke, without recursing into
// children itself. The decision order below is first-match-wins: once an
// earlier case matches, later cases are never considered, even if the
// type would also satisfy them.
func Classify(a Adapter, t RawType) NodeKind {
	// Special singletons, identified however the adapter represents them.
	switch {
	case a.IsAny(t):
		return KindAny
	case a.IsNever(t):
		return KindNever
	case a.IsSelfType(t):
		return KindSelfType
	case a.IsLiteralStringMarker(t):
		return KindLiteralString
	case a.IsEllipsisMarker(t):
		return KindEllipsis
	}

	// 1. Annotated wrapper.
	if a.IsAnnotated(t) {
		return KindAnnotated
	}

	// 2. Qualifier unwrap: classify the unwrapped inner; the qualifier
	// itself is attached to the eventual node by the Builder, not
	// represented as its own Kind.
	if q, inner, ok := a.QualifierUnwrap(t); ok {
		_ = q
		return Classify(a, inner)
	}

	// 3. String / ForwardRef wrapper.
	if a.IsForwardRef(t) {
		return KindForwardRef
	}

	// 4. Union primitive.
	if a.IsUnion(t) {
		return KindUnion
	}

	// Method-set intersection: an interface embedding >=2 non-union
	// interface terms. Checked alongside Union since both are composite
	// forms the adapter recognizes without a subscripted origin.
	if a.IsIntersection(t) {
		return KindIntersection
	}

	// NewType (Go-native newtype idiom) is checked before alias/generic
	// dispatch since it wraps a single concrete supertype, not a scope.
	if a.IsNewType(t) {
		return KindNewType
	}

	// 5. Alias value with parameter scope vs. without.
	if a.IsAlias(t) {
		_, typeParams, _ := a.AliasInfo(t)
		if len(typeParams) > 0 {
			return KindGenericAlias
		}
		return KindTypeAlias
	}

	// 6. Subscripted generic: dispatch more specific forms first.
	if origin, ok := a.Origin(t); ok && origin != nil {
		if _, ok := a.IsMeta(t); ok {
			return KindMeta
		}
		if _, ok := a.IsTypeGuard(t); ok {
			return KindTypeGuard
		}
		if _, ok := a.IsTypeIs(t); ok {
			return KindTypeIs
		}
		if a.IsLiteral(t) {
			return KindLiteral
		}
		if _, _, ok := a.IsConcatenate(t); ok {
			return KindConcatenate
		}
		if _, ok := a.IsUnpack(t); ok {
			return KindUnpack
		}
		if a.IsTuple(t) {
			return KindTuple
		}
		if a.IsCallable(t) {
			return KindCallable
		}
		return KindSubscriptedGeneric
	}

	// Forms that can appear unsubscripted too (e.g. a bare Literal marker
	// type or bare Callable alias) fall through to the same checks.
	if a.IsLiteral(t) {
		return KindLiteral
	}
	if a.IsTuple(t) {
		return KindTuple
	}
	if a.IsCallable(t) {
		return KindCallable
	}

	// 7. Unsubscripted generic class.
	if a.IsGeneric(t) && len(a.TypeParams(t)) > 0 {
		return KindGenericType
	}

	// 8. Type-variable family.
	if a.IsTypeVar(t) {
		return KindTypeVar
	}
	if a.IsParamSpec(t) {
		return KindParamSpec
	}
	if a.IsTypeVarTuple(t) {
		return KindTypeVarTuple
	}

	// 9. Structured facets, attempted only after generic classification
	// has failed to claim the type.
	switch {
	case a.IsDataclass(t):
		return KindDataclass
	case a.IsTypedDict(t):
		return KindTypedDict
	case a.IsNamedTuple(t):
		return KindNamedTuple
	case a.IsEnum(t):
		return KindEnum
	case a.IsProtocol(t):
		return KindProtocol
	}
	if len(a.Fields(t)) > 0 || len(a.Methods(t)) > 0 {
		return KindClass
	}

	// 10. Otherwise: a plain concrete nominal type.
	return KindConcrete
}
