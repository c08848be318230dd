package graph

// RawType is an opaque handle to a source-language type value. Only the
// adapter implementation (internal/adapter) constructs or destructures
// one; the Classifier and Builder treat it as a black box plus an
// Identity used for cache keys and cycle detection.
type RawType interface {
	// Identity returns a comparable key unique to this raw type within
	// one inspection session (object identity or equivalent).
	Identity() any
	String() string
}

// TypeVarInfo is the structured probe result for a type-variable-family
// raw type.
type TypeVarInfo struct {
	Name          string
	Variance      Variance
	Bound         RawType
	Constraints   []RawType
	Default       RawType
	InferVariance bool
}

// ParamSpecInfo is the structured probe result for a ParamSpec raw type.
type ParamSpecInfo struct {
	Name    string
	Default RawType
}

// TypeVarTupleInfo is the structured probe result for a TypeVarTuple raw
// type.
type TypeVarTupleInfo struct {
	Name    string
	Default RawType
}

// FieldProbe is one field/parameter/member enumerated by the adapter's
// structured-facet probes.
type FieldProbe struct {
	Name        string
	Type        RawType
	HasDefault  bool
	DefaultRepr string
	Metadata    []any
	Kind        string
}

// EnumMemberProbe is one member enumerated by the adapter's enum probe.
type EnumMemberProbe struct {
	Name        string
	Value       any
	Description string
	Deprecated  string
}

// ParamProbe is one parameter enumerated by the adapter's function probe.
type ParamProbe struct {
	Name        string
	Type        RawType
	Kind        ParameterKind
	HasDefault  bool
	DefaultRepr string
	Metadata    []any
}

// FunctionProbe is the structured probe result for a function/method raw
// type, consumed by the Builder's function/signature construction (which
// runs outside the Classifier's tagged-sum dispatch, since a function is
// a standalone top-level entity rather than a type-annotation node).
type FunctionProbe struct {
	Name        string
	Params      []ParamProbe
	Returns     RawType
	TypeParams  []RawType
	IsAsync     bool
	IsGenerator bool
	Decorators  []string
}

// Adapter is the reflection contract: primitive queries over an opaque
// RawType that Classify and Build use without knowing the concrete type
// representation underneath.
type Adapter interface {
	Origin(t RawType) (RawType, bool)
	Args(t RawType) []RawType

	// Special singleton forms, identified by the adapter however its
	// source language represents them (identity, marker type, directive).
	IsAny(t RawType) bool
	IsNever(t RawType) bool
	IsSelfType(t RawType) bool
	IsLiteralStringMarker(t RawType) bool
	IsEllipsisMarker(t RawType) bool

	IsNewType(t RawType) bool
	NewTypeInfo(t RawType) (name string, supertype RawType)

	IsAlias(t RawType) bool
	AliasInfo(t RawType) (name string, typeParams []RawType, value RawType)

	IsAnnotated(t RawType) bool
	AnnotationItems(t RawType) (base RawType, items []any)

	IsUnion(t RawType) bool
	UnionMembers(t RawType) []RawType

	IsIntersection(t RawType) bool
	IntersectionMembers(t RawType) []RawType

	IsLiteral(t RawType) bool
	LiteralValues(t RawType) []any

	IsTuple(t RawType) bool
	TupleElements(t RawType) (elems []RawType, variadic bool)

	IsCallable(t RawType) bool
	CallableSignature(t RawType) (params []RawType, ellipsis bool, returns RawType)

	IsMeta(t RawType) (target RawType, ok bool)
	IsTypeGuard(t RawType) (target RawType, ok bool)
	IsTypeIs(t RawType) (target RawType, ok bool)
	IsConcatenate(t RawType) (prefix []RawType, paramSpec RawType, ok bool)
	IsUnpack(t RawType) (target RawType, ok bool)

	QualifierUnwrap(t RawType) (Qualifier, RawType, bool)

	IsForwardRef(t RawType) bool
	ForwardRefString(t RawType) string
	EvaluateForwardRef(ref string, ns Namespace) (RawType, error)

	IsGeneric(t RawType) bool
	TypeParams(t RawType) []RawType
	IsTypeVar(t RawType) bool
	TypeVarInfo(t RawType) TypeVarInfo
	IsParamSpec(t RawType) bool
	ParamSpecInfo(t RawType) ParamSpecInfo
	IsTypeVarTuple(t RawType) bool
	TypeVarTupleInfo(t RawType) TypeVarTupleInfo

	IsDataclass(t RawType) bool
	DataclassInfo(t RawType) (frozen, slots bool)
	IsTypedDict(t RawType) bool
	TypedDictInfo(t RawType) (total bool)
	IsNamedTuple(t RawType) bool
	IsEnum(t RawType) bool
	EnumValueType(t RawType) (RawType, bool)
	IsProtocol(t RawType) bool
	Fields(t RawType) []FieldProbe
	Methods(t RawType) []FieldProbe
	EnumMembers(t RawType) []EnumMemberProbe

	IsFunction(t RawType) bool
	FunctionInfo(t RawType) FunctionProbe

	ClassRef(t RawType) string
	SourceLocation(t RawType) *SourceLocation

	ModuleGlobals(mod RawType) map[string]RawType
	ClassModuleGlobals(cls RawType) map[string]RawType
	ClassLocals(cls RawType) map[string]RawType
	FunctionGlobals(fn RawType) map[string]RawType
	FunctionClosure(fn RawType) map[string]RawType
	OwningClassOfMethod(fn RawType) (RawType, bool)
}
