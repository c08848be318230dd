package graph

// fakeRaw is a minimal RawType test double: Identity is the pointer
// itself unless overridden, Label is its String().
type fakeRaw struct {
	Label string
	ID    any
}

func (r *fakeRaw) Identity() any {
	if r.ID != nil {
		return r.ID
	}
	return r
}

func (r *fakeRaw) String() string { return r.Label }

func raw(label string) *fakeRaw { return &fakeRaw{Label: label} }

// fakeAdapter is a function-field-based Adapter test double: every method
// delegates to an overridable field, defaulting to a harmless zero value
// (false/nil) so a test only needs to set what it cares about.
type fakeAdapter struct {
	OriginFn              func(RawType) (RawType, bool)
	ArgsFn                func(RawType) []RawType
	IsAnyFn               func(RawType) bool
	IsNeverFn             func(RawType) bool
	IsSelfTypeFn          func(RawType) bool
	IsLiteralStringFn     func(RawType) bool
	IsEllipsisFn          func(RawType) bool
	IsNewTypeFn           func(RawType) bool
	NewTypeInfoFn         func(RawType) (string, RawType)
	IsAliasFn             func(RawType) bool
	AliasInfoFn           func(RawType) (string, []RawType, RawType)
	IsAnnotatedFn         func(RawType) bool
	AnnotationItemsFn     func(RawType) (RawType, []any)
	IsUnionFn             func(RawType) bool
	UnionMembersFn        func(RawType) []RawType
	IsIntersectionFn      func(RawType) bool
	IntersectionMembersFn func(RawType) []RawType
	IsLiteralFn           func(RawType) bool
	LiteralValuesFn       func(RawType) []any
	IsTupleFn             func(RawType) bool
	TupleElementsFn       func(RawType) ([]RawType, bool)
	IsCallableFn          func(RawType) bool
	CallableSignatureFn   func(RawType) ([]RawType, bool, RawType)
	IsMetaFn              func(RawType) (RawType, bool)
	IsTypeGuardFn         func(RawType) (RawType, bool)
	IsTypeIsFn            func(RawType) (RawType, bool)
	IsConcatenateFn       func(RawType) ([]RawType, RawType, bool)
	IsUnpackFn            func(RawType) (RawType, bool)
	QualifierUnwrapFn     func(RawType) (Qualifier, RawType, bool)
	IsForwardRefFn        func(RawType) bool
	ForwardRefStringFn    func(RawType) string
	EvaluateForwardRefFn  func(string, Namespace) (RawType, error)
	IsGenericFn           func(RawType) bool
	TypeParamsFn          func(RawType) []RawType
	IsTypeVarFn           func(RawType) bool
	TypeVarInfoFn         func(RawType) TypeVarInfo
	IsParamSpecFn         func(RawType) bool
	ParamSpecInfoFn       func(RawType) ParamSpecInfo
	IsTypeVarTupleFn      func(RawType) bool
	TypeVarTupleInfoFn    func(RawType) TypeVarTupleInfo
	IsDataclassFn         func(RawType) bool
	DataclassInfoFn       func(RawType) (bool, bool)
	IsTypedDictFn         func(RawType) bool
	TypedDictInfoFn       func(RawType) bool
	IsNamedTupleFn        func(RawType) bool
	IsEnumFn              func(RawType) bool
	EnumValueTypeFn       func(RawType) (RawType, bool)
	IsProtocolFn          func(RawType) bool
	FieldsFn              func(RawType) []FieldProbe
	MethodsFn             func(RawType) []FieldProbe
	EnumMembersFn         func(RawType) []EnumMemberProbe
	IsFunctionFn          func(RawType) bool
	FunctionInfoFn        func(RawType) FunctionProbe
	ClassRefFn            func(RawType) string
	SourceLocationFn      func(RawType) *SourceLocation
	ModuleGlobalsFn       func(RawType) map[string]RawType
	ClassModuleGlobalsFn  func(RawType) map[string]RawType
	ClassLocalsFn         func(RawType) map[string]RawType
	FunctionGlobalsFn     func(RawType) map[string]RawType
	FunctionClosureFn     func(RawType) map[string]RawType
	OwningClassOfMethodFn func(RawType) (RawType, bool)
}

func (a *fakeAdapter) Origin(t RawType) (RawType, bool) {
	if a.OriginFn != nil {
		return a.OriginFn(t)
	}
	return nil, false
}
func (a *fakeAdapter) Args(t RawType) []RawType {
	if a.ArgsFn != nil {
		return a.ArgsFn(t)
	}
	return nil
}
func (a *fakeAdapter) IsAny(t RawType) bool {
	if a.IsAnyFn != nil {
		return a.IsAnyFn(t)
	}
	return false
}
func (a *fakeAdapter) IsNever(t RawType) bool {
	if a.IsNeverFn != nil {
		return a.IsNeverFn(t)
	}
	return false
}
func (a *fakeAdapter) IsSelfType(t RawType) bool {
	if a.IsSelfTypeFn != nil {
		return a.IsSelfTypeFn(t)
	}
	return false
}
func (a *fakeAdapter) IsLiteralStringMarker(t RawType) bool {
	if a.IsLiteralStringFn != nil {
		return a.IsLiteralStringFn(t)
	}
	return false
}
func (a *fakeAdapter) IsEllipsisMarker(t RawType) bool {
	if a.IsEllipsisFn != nil {
		return a.IsEllipsisFn(t)
	}
	return false
}
func (a *fakeAdapter) IsNewType(t RawType) bool {
	if a.IsNewTypeFn != nil {
		return a.IsNewTypeFn(t)
	}
	return false
}
func (a *fakeAdapter) NewTypeInfo(t RawType) (string, RawType) {
	if a.NewTypeInfoFn != nil {
		return a.NewTypeInfoFn(t)
	}
	return "", nil
}
func (a *fakeAdapter) IsAlias(t RawType) bool {
	if a.IsAliasFn != nil {
		return a.IsAliasFn(t)
	}
	return false
}
func (a *fakeAdapter) AliasInfo(t RawType) (string, []RawType, RawType) {
	if a.AliasInfoFn != nil {
		return a.AliasInfoFn(t)
	}
	return "", nil, nil
}
func (a *fakeAdapter) IsAnnotated(t RawType) bool {
	if a.IsAnnotatedFn != nil {
		return a.IsAnnotatedFn(t)
	}
	return false
}
func (a *fakeAdapter) AnnotationItems(t RawType) (RawType, []any) {
	if a.AnnotationItemsFn != nil {
		return a.AnnotationItemsFn(t)
	}
	return nil, nil
}
func (a *fakeAdapter) IsUnion(t RawType) bool {
	if a.IsUnionFn != nil {
		return a.IsUnionFn(t)
	}
	return false
}
func (a *fakeAdapter) UnionMembers(t RawType) []RawType {
	if a.UnionMembersFn != nil {
		return a.UnionMembersFn(t)
	}
	return nil
}
func (a *fakeAdapter) IsIntersection(t RawType) bool {
	if a.IsIntersectionFn != nil {
		return a.IsIntersectionFn(t)
	}
	return false
}
func (a *fakeAdapter) IntersectionMembers(t RawType) []RawType {
	if a.IntersectionMembersFn != nil {
		return a.IntersectionMembersFn(t)
	}
	return nil
}
func (a *fakeAdapter) IsLiteral(t RawType) bool {
	if a.IsLiteralFn != nil {
		return a.IsLiteralFn(t)
	}
	return false
}
func (a *fakeAdapter) LiteralValues(t RawType) []any {
	if a.LiteralValuesFn != nil {
		return a.LiteralValuesFn(t)
	}
	return nil
}
func (a *fakeAdapter) IsTuple(t RawType) bool {
	if a.IsTupleFn != nil {
		return a.IsTupleFn(t)
	}
	return false
}
func (a *fakeAdapter) TupleElements(t RawType) ([]RawType, bool) {
	if a.TupleElementsFn != nil {
		return a.TupleElementsFn(t)
	}
	return nil, false
}
func (a *fakeAdapter) IsCallable(t RawType) bool {
	if a.IsCallableFn != nil {
		return a.IsCallableFn(t)
	}
	return false
}
func (a *fakeAdapter) CallableSignature(t RawType) ([]RawType, bool, RawType) {
	if a.CallableSignatureFn != nil {
		return a.CallableSignatureFn(t)
	}
	return nil, false, nil
}
func (a *fakeAdapter) IsMeta(t RawType) (RawType, bool) {
	if a.IsMetaFn != nil {
		return a.IsMetaFn(t)
	}
	return nil, false
}
func (a *fakeAdapter) IsTypeGuard(t RawType) (RawType, bool) {
	if a.IsTypeGuardFn != nil {
		return a.IsTypeGuardFn(t)
	}
	return nil, false
}
func (a *fakeAdapter) IsTypeIs(t RawType) (RawType, bool) {
	if a.IsTypeIsFn != nil {
		return a.IsTypeIsFn(t)
	}
	return nil, false
}
func (a *fakeAdapter) IsConcatenate(t RawType) ([]RawType, RawType, bool) {
	if a.IsConcatenateFn != nil {
		return a.IsConcatenateFn(t)
	}
	return nil, nil, false
}
func (a *fakeAdapter) IsUnpack(t RawType) (RawType, bool) {
	if a.IsUnpackFn != nil {
		return a.IsUnpackFn(t)
	}
	return nil, false
}
func (a *fakeAdapter) QualifierUnwrap(t RawType) (Qualifier, RawType, bool) {
	if a.QualifierUnwrapFn != nil {
		return a.QualifierUnwrapFn(t)
	}
	return 0, nil, false
}
func (a *fakeAdapter) IsForwardRef(t RawType) bool {
	if a.IsForwardRefFn != nil {
		return a.IsForwardRefFn(t)
	}
	return false
}
func (a *fakeAdapter) ForwardRefString(t RawType) string {
	if a.ForwardRefStringFn != nil {
		return a.ForwardRefStringFn(t)
	}
	return ""
}
func (a *fakeAdapter) EvaluateForwardRef(ref string, ns Namespace) (RawType, error) {
	if a.EvaluateForwardRefFn != nil {
		return a.EvaluateForwardRefFn(ref, ns)
	}
	return nil, nil
}
func (a *fakeAdapter) IsGeneric(t RawType) bool {
	if a.IsGenericFn != nil {
		return a.IsGenericFn(t)
	}
	return false
}
func (a *fakeAdapter) TypeParams(t RawType) []RawType {
	if a.TypeParamsFn != nil {
		return a.TypeParamsFn(t)
	}
	return nil
}
func (a *fakeAdapter) IsTypeVar(t RawType) bool {
	if a.IsTypeVarFn != nil {
		return a.IsTypeVarFn(t)
	}
	return false
}
func (a *fakeAdapter) TypeVarInfo(t RawType) TypeVarInfo {
	if a.TypeVarInfoFn != nil {
		return a.TypeVarInfoFn(t)
	}
	return TypeVarInfo{}
}
func (a *fakeAdapter) IsParamSpec(t RawType) bool {
	if a.IsParamSpecFn != nil {
		return a.IsParamSpecFn(t)
	}
	return false
}
func (a *fakeAdapter) ParamSpecInfo(t RawType) ParamSpecInfo {
	if a.ParamSpecInfoFn != nil {
		return a.ParamSpecInfoFn(t)
	}
	return ParamSpecInfo{}
}
func (a *fakeAdapter) IsTypeVarTuple(t RawType) bool {
	if a.IsTypeVarTupleFn != nil {
		return a.IsTypeVarTupleFn(t)
	}
	return false
}
func (a *fakeAdapter) TypeVarTupleInfo(t RawType) TypeVarTupleInfo {
	if a.TypeVarTupleInfoFn != nil {
		return a.TypeVarTupleInfoFn(t)
	}
	return TypeVarTupleInfo{}
}
func (a *fakeAdapter) IsDataclass(t RawType) bool {
	if a.IsDataclassFn != nil {
		return a.IsDataclassFn(t)
	}
	return false
}
func (a *fakeAdapter) DataclassInfo(t RawType) (bool, bool) {
	if a.DataclassInfoFn != nil {
		return a.DataclassInfoFn(t)
	}
	return false, false
}
func (a *fakeAdapter) IsTypedDict(t RawType) bool {
	if a.IsTypedDictFn != nil {
		return a.IsTypedDictFn(t)
	}
	return false
}
func (a *fakeAdapter) TypedDictInfo(t RawType) bool {
	if a.TypedDictInfoFn != nil {
		return a.TypedDictInfoFn(t)
	}
	return false
}
func (a *fakeAdapter) IsNamedTuple(t RawType) bool {
	if a.IsNamedTupleFn != nil {
		return a.IsNamedTupleFn(t)
	}
	return false
}
func (a *fakeAdapter) IsEnum(t RawType) bool {
	if a.IsEnumFn != nil {
		return a.IsEnumFn(t)
	}
	return false
}
func (a *fakeAdapter) EnumValueType(t RawType) (RawType, bool) {
	if a.EnumValueTypeFn != nil {
		return a.EnumValueTypeFn(t)
	}
	return nil, false
}
func (a *fakeAdapter) IsProtocol(t RawType) bool {
	if a.IsProtocolFn != nil {
		return a.IsProtocolFn(t)
	}
	return false
}
func (a *fakeAdapter) Fields(t RawType) []FieldProbe {
	if a.FieldsFn != nil {
		return a.FieldsFn(t)
	}
	return nil
}
func (a *fakeAdapter) Methods(t RawType) []FieldProbe {
	if a.MethodsFn != nil {
		return a.MethodsFn(t)
	}
	return nil
}
func (a *fakeAdapter) EnumMembers(t RawType) []EnumMemberProbe {
	if a.EnumMembersFn != nil {
		return a.EnumMembersFn(t)
	}
	return nil
}
func (a *fakeAdapter) IsFunction(t RawType) bool {
	if a.IsFunctionFn != nil {
		return a.IsFunctionFn(t)
	}
	return false
}
func (a *fakeAdapter) FunctionInfo(t RawType) FunctionProbe {
	if a.FunctionInfoFn != nil {
		return a.FunctionInfoFn(t)
	}
	return FunctionProbe{}
}
func (a *fakeAdapter) ClassRef(t RawType) string {
	if a.ClassRefFn != nil {
		return a.ClassRefFn(t)
	}
	return ""
}
func (a *fakeAdapter) SourceLocation(t RawType) *SourceLocation {
	if a.SourceLocationFn != nil {
		return a.SourceLocationFn(t)
	}
	return nil
}
func (a *fakeAdapter) ModuleGlobals(t RawType) map[string]RawType {
	if a.ModuleGlobalsFn != nil {
		return a.ModuleGlobalsFn(t)
	}
	return nil
}
func (a *fakeAdapter) ClassModuleGlobals(t RawType) map[string]RawType {
	if a.ClassModuleGlobalsFn != nil {
		return a.ClassModuleGlobalsFn(t)
	}
	return nil
}
func (a *fakeAdapter) ClassLocals(t RawType) map[string]RawType {
	if a.ClassLocalsFn != nil {
		return a.ClassLocalsFn(t)
	}
	return nil
}
func (a *fakeAdapter) FunctionGlobals(t RawType) map[string]RawType {
	if a.FunctionGlobalsFn != nil {
		return a.FunctionGlobalsFn(t)
	}
	return nil
}
func (a *fakeAdapter) FunctionClosure(t RawType) map[string]RawType {
	if a.FunctionClosureFn != nil {
		return a.FunctionClosureFn(t)
	}
	return nil
}
func (a *fakeAdapter) OwningClassOfMethod(t RawType) (RawType, bool) {
	if a.OwningClassOfMethodFn != nil {
		return a.OwningClassOfMethodFn(t)
	}
	return nil, false
}

var _ Adapter = (*fakeAdapter)(nil)
