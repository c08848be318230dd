package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySpecialSingletons(t *testing.T) {
	tests := []struct {
		name string
		cfg  func(*fakeAdapter)
		want NodeKind
	}{
		{"any", func(a *fakeAdapter) { a.IsAnyFn = func(RawType) bool { return true } }, KindAny},
		{"never", func(a *fakeAdapter) { a.IsNeverFn = func(RawType) bool { return true } }, KindNever},
		{"self", func(a *fakeAdapter) { a.IsSelfTypeFn = func(RawType) bool { return true } }, KindSelfType},
		{"literal string", func(a *fakeAdapter) { a.IsLiteralStringFn = func(RawType) bool { return true } }, KindLiteralString},
		{"ellipsis", func(a *fakeAdapter) { a.IsEllipsisFn = func(RawType) bool { return true } }, KindEllipsis},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &fakeAdapter{}
			tt.cfg(a)
			assert.Equal(t, tt.want, Classify(a, raw("t")))
		})
	}
}

func TestClassifyAnnotatedBeforeEverythingElse(t *testing.T) {
	a := &fakeAdapter{
		IsAnnotatedFn: func(RawType) bool { return true },
		IsUnionFn:     func(RawType) bool { return true },
	}
	assert.Equal(t, KindAnnotated, Classify(a, raw("t")))
}

func TestClassifyQualifierUnwrapRecursesOnInner(t *testing.T) {
	inner := raw("inner")
	outer := raw("outer")
	a := &fakeAdapter{
		QualifierUnwrapFn: func(t RawType) (Qualifier, RawType, bool) {
			if t == outer {
				return QualifierFinal, inner, true
			}
			return 0, nil, false
		},
		IsAnyFn: func(t RawType) bool { return t == inner },
	}
	got := Classify(a, outer)
	assert.Equal(t, KindAny, got)
}

func TestClassifyForwardRef(t *testing.T) {
	a := &fakeAdapter{IsForwardRefFn: func(RawType) bool { return true }}
	assert.Equal(t, KindForwardRef, Classify(a, raw("t")))
}

func TestClassifyUnionBeforeIntersection(t *testing.T) {
	a := &fakeAdapter{
		IsUnionFn:        func(RawType) bool { return true },
		IsIntersectionFn: func(RawType) bool { return true },
	}
	assert.Equal(t, KindUnion, Classify(a, raw("t")))
}

func TestClassifyIntersection(t *testing.T) {
	a := &fakeAdapter{IsIntersectionFn: func(RawType) bool { return true }}
	assert.Equal(t, KindIntersection, Classify(a, raw("t")))
}

func TestClassifyNewTypeBeforeAlias(t *testing.T) {
	a := &fakeAdapter{
		IsNewTypeFn: func(RawType) bool { return true },
		IsAliasFn:   func(RawType) bool { return true },
	}
	assert.Equal(t, KindNewType, Classify(a, raw("t")))
}

func TestClassifyAliasWithTypeParamsIsGenericAlias(t *testing.T) {
	a := &fakeAdapter{
		IsAliasFn: func(RawType) bool { return true },
		AliasInfoFn: func(RawType) (string, []RawType, RawType) {
			return "Alias", []RawType{raw("T")}, raw("value")
		},
	}
	assert.Equal(t, KindGenericAlias, Classify(a, raw("t")))
}

func TestClassifyAliasWithoutTypeParamsIsTypeAlias(t *testing.T) {
	a := &fakeAdapter{
		IsAliasFn: func(RawType) bool { return true },
		AliasInfoFn: func(RawType) (string, []RawType, RawType) {
			return "Alias", nil, raw("value")
		},
	}
	assert.Equal(t, KindTypeAlias, Classify(a, raw("t")))
}

func TestClassifySubscriptedGenericDispatchOrder(t *testing.T) {
	origin := raw("origin")
	tests := []struct {
		name string
		cfg  func(*fakeAdapter)
		want NodeKind
	}{
		{"meta", func(a *fakeAdapter) { a.IsMetaFn = func(RawType) (RawType, bool) { return raw("x"), true } }, KindMeta},
		{"typeguard", func(a *fakeAdapter) {
			a.IsTypeGuardFn = func(RawType) (RawType, bool) { return raw("x"), true }
		}, KindTypeGuard},
		{"typeis", func(a *fakeAdapter) { a.IsTypeIsFn = func(RawType) (RawType, bool) { return raw("x"), true } }, KindTypeIs},
		{"literal", func(a *fakeAdapter) { a.IsLiteralFn = func(RawType) bool { return true } }, KindLiteral},
		{"concatenate", func(a *fakeAdapter) {
			a.IsConcatenateFn = func(RawType) ([]RawType, RawType, bool) { return nil, raw("ps"), true }
		}, KindConcatenate},
		{"unpack", func(a *fakeAdapter) { a.IsUnpackFn = func(RawType) (RawType, bool) { return raw("x"), true } }, KindUnpack},
		{"tuple", func(a *fakeAdapter) { a.IsTupleFn = func(RawType) bool { return true } }, KindTuple},
		{"callable", func(a *fakeAdapter) { a.IsCallableFn = func(RawType) bool { return true } }, KindCallable},
		{"default subscripted generic", func(a *fakeAdapter) {}, KindSubscriptedGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &fakeAdapter{OriginFn: func(RawType) (RawType, bool) { return origin, true }}
			tt.cfg(a)
			assert.Equal(t, tt.want, Classify(a, raw("t")))
		})
	}
}

func TestClassifyMetaBeforeTypeGuardWhenOriginPresent(t *testing.T) {
	origin := raw("origin")
	a := &fakeAdapter{
		OriginFn:      func(RawType) (RawType, bool) { return origin, true },
		IsMetaFn:      func(RawType) (RawType, bool) { return raw("x"), true },
		IsTypeGuardFn: func(RawType) (RawType, bool) { return raw("x"), true },
	}
	assert.Equal(t, KindMeta, Classify(a, raw("t")))
}

func TestClassifyBareLiteralWithoutOrigin(t *testing.T) {
	a := &fakeAdapter{IsLiteralFn: func(RawType) bool { return true }}
	assert.Equal(t, KindLiteral, Classify(a, raw("t")))
}

func TestClassifyBareTupleWithoutOrigin(t *testing.T) {
	a := &fakeAdapter{IsTupleFn: func(RawType) bool { return true }}
	assert.Equal(t, KindTuple, Classify(a, raw("t")))
}

func TestClassifyBareCallableWithoutOrigin(t *testing.T) {
	a := &fakeAdapter{IsCallableFn: func(RawType) bool { return true }}
	assert.Equal(t, KindCallable, Classify(a, raw("t")))
}

func TestClassifyUnsubscriptedGenericRequiresTypeParams(t *testing.T) {
	a := &fakeAdapter{
		IsGenericFn:  func(RawType) bool { return true },
		TypeParamsFn: func(RawType) []RawType { return []RawType{raw("T")} },
	}
	assert.Equal(t, KindGenericType, Classify(a, raw("t")))
}

func TestClassifyGenericWithNoTypeParamsFallsThrough(t *testing.T) {
	a := &fakeAdapter{
		IsGenericFn:  func(RawType) bool { return true },
		TypeParamsFn: func(RawType) []RawType { return nil },
	}
	assert.Equal(t, KindConcrete, Classify(a, raw("t")))
}

func TestClassifyTypeVarFamilyOrder(t *testing.T) {
	tests := []struct {
		name string
		cfg  func(*fakeAdapter)
		want NodeKind
	}{
		{"typevar", func(a *fakeAdapter) { a.IsTypeVarFn = func(RawType) bool { return true } }, KindTypeVar},
		{"paramspec", func(a *fakeAdapter) { a.IsParamSpecFn = func(RawType) bool { return true } }, KindParamSpec},
		{"typevartuple", func(a *fakeAdapter) { a.IsTypeVarTupleFn = func(RawType) bool { return true } }, KindTypeVarTuple},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &fakeAdapter{}
			tt.cfg(a)
			assert.Equal(t, tt.want, Classify(a, raw("t")))
		})
	}
}

func TestClassifyStructuredKindOrder(t *testing.T) {
	tests := []struct {
		name string
		cfg  func(*fakeAdapter)
		want NodeKind
	}{
		{"dataclass", func(a *fakeAdapter) { a.IsDataclassFn = func(RawType) bool { return true } }, KindDataclass},
		{"typeddict", func(a *fakeAdapter) { a.IsTypedDictFn = func(RawType) bool { return true } }, KindTypedDict},
		{"namedtuple", func(a *fakeAdapter) { a.IsNamedTupleFn = func(RawType) bool { return true } }, KindNamedTuple},
		{"enum", func(a *fakeAdapter) { a.IsEnumFn = func(RawType) bool { return true } }, KindEnum},
		{"protocol", func(a *fakeAdapter) { a.IsProtocolFn = func(RawType) bool { return true } }, KindProtocol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &fakeAdapter{}
			tt.cfg(a)
			assert.Equal(t, tt.want, Classify(a, raw("t")))
		})
	}
}

func TestClassifyFieldsOrMethodsYieldClass(t *testing.T) {
	a := &fakeAdapter{FieldsFn: func(RawType) []FieldProbe { return []FieldProbe{{Name: "X"}} }}
	assert.Equal(t, KindClass, Classify(a, raw("t")))

	a2 := &fakeAdapter{MethodsFn: func(RawType) []FieldProbe { return []FieldProbe{{Name: "Do"}} }}
	assert.Equal(t, KindClass, Classify(a2, raw("t")))
}

func TestClassifyDefaultsToConcrete(t *testing.T) {
	assert.Equal(t, KindConcrete, Classify(&fakeAdapter{}, raw("t")))
}

func TestClassifyDataclassBeatsClassWhenBothMatch(t *testing.T) {
	a := &fakeAdapter{
		IsDataclassFn: func(RawType) bool { return true },
		FieldsFn:      func(RawType) []FieldProbe { return []FieldProbe{{Name: "X"}} },
	}
	assert.Equal(t, KindDataclass, Classify(a, raw("t")))
}
