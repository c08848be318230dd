package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeKindString(t *testing.T) {
	assert.Equal(t, "Concrete", KindConcrete.String())
	assert.Equal(t, "Signature", KindSignature.String())
	assert.Contains(t, NodeKind(9999).String(), "NodeKind(9999)")
}

func TestVarianceString(t *testing.T) {
	assert.Equal(t, "invariant", Invariant.String())
	assert.Equal(t, "covariant", Covariant.String())
	assert.Equal(t, "contravariant", Contravariant.String())
}

func TestRefStatusString(t *testing.T) {
	assert.Equal(t, "Unresolved", Unresolved.String())
	assert.Equal(t, "Resolved", Resolved.String())
	assert.Equal(t, "Failed", Failed.String())
}

func TestNewBaseAssemblesChildrenFromEdges(t *testing.T) {
	a := &AnyNode{base: newBase(KindAny, nil, nil, nil, nil, nil)}
	n := &ConcreteNode{
		base:     newBase(KindConcrete, "raw", nil, nil, nil, []EdgeConnection{singleEdge(EdgeOrigin, a)}),
		ClassRef: "int",
	}
	require.Len(t, n.Children(), 1)
	assert.Same(t, a, n.Children()[0])
	require.Len(t, n.Edges(), 1)
	assert.Equal(t, EdgeOrigin, n.Edges()[0].Edge.Kind)
	assert.Equal(t, "raw", n.OriginalRaw())
}

func TestNewBaseDefaultsMetadataAndQualifiers(t *testing.T) {
	n := &AnyNode{base: newBase(KindAny, nil, nil, nil, nil, nil)}
	assert.True(t, n.Metadata().IsEmpty())
	assert.Equal(t, 0, n.Qualifiers().Len())
}

func TestNarrowingHelpers(t *testing.T) {
	var n Node = &ConcreteNode{base: newBase(KindConcrete, nil, nil, nil, nil, nil), ClassRef: "str"}

	c, ok := IsConcreteNode(n)
	require.True(t, ok)
	assert.Equal(t, "str", c.ClassRef)

	_, ok = IsUnionNode(n)
	assert.False(t, ok)
}

func TestIsOptionalNodeDetectsNoneTypeMember(t *testing.T) {
	noneMember := &ConcreteNode{base: newBase(KindConcrete, nil, nil, nil, nil, nil), ClassRef: "NoneType"}
	strMember := &ConcreteNode{base: newBase(KindConcrete, nil, nil, nil, nil, nil), ClassRef: "str"}
	union := &UnionNode{
		base: newBase(KindUnion, nil, nil, nil, nil, []EdgeConnection{
			unionMemberEdge(0, strMember),
			unionMemberEdge(1, noneMember),
		}),
		Members: []Node{strMember, noneMember},
	}

	assert.True(t, IsOptionalNode(union))
	assert.Equal(t, []Node{strMember, noneMember}, GetUnionMembers(union))
	assert.Equal(t, []Node{strMember}, UnwrapOptional(union))

	nonUnion := &AnyNode{base: newBase(KindAny, nil, nil, nil, nil, nil)}
	assert.False(t, IsOptionalNode(nonUnion))
	assert.Nil(t, GetUnionMembers(nonUnion))
	assert.Nil(t, UnwrapOptional(nonUnion))
}
