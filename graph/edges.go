package graph

import "fmt"

// EdgeKind labels the semantic role a child node plays relative to its
// parent: a dict key versus its value, a parameter versus a return, a
// union variant versus a type argument, and so on.
type EdgeKind int

const (
	EdgeElement EdgeKind = iota
	EdgeKey
	EdgeValue
	EdgeUnionMember
	EdgeAliasTarget
	EdgeIntersectionMember
	EdgeField
	EdgeMethod
	EdgeParam
	EdgeReturn
	EdgeOrigin
	EdgeBound
	EdgeConstraint
	EdgeDefault
	EdgeBase
	EdgeTypeParam
	EdgeTypeArg
	EdgeSignature
	EdgeNarrows
	EdgeSupertype
	EdgeAnnotatedBase
	EdgeMetaOf
	EdgeTarget
	EdgePrefix
	EdgeParamSpec
	EdgeResolved
	EdgeValueType
)

var edgeKindNames = [...]string{
	"Element", "Key", "Value", "UnionMember", "AliasTarget", "IntersectionMember",
	"Field", "Method", "Param", "Return", "Origin", "Bound", "Constraint",
	"Default", "Base", "TypeParam", "TypeArg", "Signature", "Narrows",
	"Supertype", "AnnotatedBase", "MetaOf", "Target", "Prefix", "ParamSpec",
	"Resolved", "ValueType",
}

func (k EdgeKind) String() string {
	if int(k) >= 0 && int(k) < len(edgeKindNames) {
		return edgeKindNames[k]
	}
	return "Unknown"
}

// namedEdgeKinds must carry a non-empty Name.
var namedEdgeKinds = map[EdgeKind]bool{
	EdgeField:  true,
	EdgeMethod: true,
}

// indexedEdgeKinds must carry an Index >= 0 when positional.
var indexedEdgeKinds = map[EdgeKind]bool{
	EdgeElement: true,
	EdgeParam:   true,
	EdgePrefix:  true,
	EdgeTypeArg: true,
}

// Edge is the label on one parent-to-child connection.
type Edge struct {
	Kind  EdgeKind
	Name  string // required for Field/Method/named Param edges
	Index int    // required (>=0) for Element/positional Param/Prefix/TypeArg edges; -1 otherwise
}

// EdgeConnection pairs an Edge with the child Node it points to.
type EdgeConnection struct {
	Edge   Edge
	Target Node
}

func fieldEdge(index int, name string, target Node) EdgeConnection {
	return EdgeConnection{Edge: Edge{Kind: EdgeField, Name: name, Index: index}, Target: target}
}

func methodEdge(name string, target Node) EdgeConnection {
	return EdgeConnection{Edge: Edge{Kind: EdgeMethod, Name: name, Index: -1}, Target: target}
}

func elementEdge(index int, target Node) EdgeConnection {
	return EdgeConnection{Edge: Edge{Kind: EdgeElement, Index: index}, Target: target}
}

func paramEdge(index int, name string, target Node) EdgeConnection {
	return EdgeConnection{Edge: Edge{Kind: EdgeParam, Name: name, Index: index}, Target: target}
}

func typeArgEdge(index int, target Node) EdgeConnection {
	return EdgeConnection{Edge: Edge{Kind: EdgeTypeArg, Index: index}, Target: target}
}

func typeParamEdge(index int, target Node) EdgeConnection {
	return EdgeConnection{Edge: Edge{Kind: EdgeTypeParam, Index: index}, Target: target}
}

func unionMemberEdge(index int, target Node) EdgeConnection {
	return EdgeConnection{Edge: Edge{Kind: EdgeUnionMember, Index: index}, Target: target}
}

func intersectionMemberEdge(index int, target Node) EdgeConnection {
	return EdgeConnection{Edge: Edge{Kind: EdgeIntersectionMember, Index: index}, Target: target}
}

func singleEdge(kind EdgeKind, target Node) EdgeConnection {
	return EdgeConnection{Edge: Edge{Kind: kind, Index: -1}, Target: target}
}

func prefixEdge(index int, target Node) EdgeConnection {
	return EdgeConnection{Edge: Edge{Kind: EdgePrefix, Index: index}, Target: target}
}

func constraintEdge(index int, target Node) EdgeConnection {
	return EdgeConnection{Edge: Edge{Kind: EdgeConstraint, Index: index}, Target: target}
}

// validateEdges reports an error when a named edge kind lacks a Name or
// an indexed edge kind has a negative Index. Node construction does not
// call it.
func validateEdges(edges []EdgeConnection) error {
	for _, ec := range edges {
		if namedEdgeKinds[ec.Edge.Kind] && ec.Edge.Name == "" {
			return fmt.Errorf("%s edge missing required name", ec.Edge.Kind)
		}
		if indexedEdgeKinds[ec.Edge.Kind] && ec.Edge.Index < 0 {
			return fmt.Errorf("%s edge missing required index", ec.Edge.Kind)
		}
	}
	return nil
}
