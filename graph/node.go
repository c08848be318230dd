// Package graph is the core type-annotation introspection engine: it
// classifies Go type expressions (sourced from go/types via
// internal/adapter) into an immutable, cached, traversable type graph.
package graph

import "fmt"

// NodeKind tags the concrete variant a Node carries. It is the
// discriminant of the tagged sum described by the node taxonomy; callers
// type-switch on the concrete struct (ConcreteNode, UnionNode, ...) rather
// than on this tag directly, but the tag is kept for fast dispatch in the
// classifier, cache fingerprinting, and error messages.
type NodeKind int

const (
	KindConcrete NodeKind = iota
	KindGenericType
	KindSubscriptedGeneric
	KindGenericAlias
	KindTypeAlias
	KindAnnotated
	KindNewType
	KindUnion
	KindIntersection
	KindTuple
	KindCallable
	KindAny
	KindNever
	KindSelfType
	KindLiteralString
	KindEllipsis
	KindLiteral
	KindMeta
	KindTypeGuard
	KindTypeIs
	KindTypeVar
	KindParamSpec
	KindTypeVarTuple
	KindConcatenate
	KindUnpack
	KindForwardRef
	KindClass
	KindDataclass
	KindTypedDict
	KindNamedTuple
	KindProtocol
	KindEnum
	KindFunction
	KindSignature
)

var kindNames = map[NodeKind]string{
	KindConcrete:           "Concrete",
	KindGenericType:        "GenericType",
	KindSubscriptedGeneric: "SubscriptedGeneric",
	KindGenericAlias:       "GenericAlias",
	KindTypeAlias:          "TypeAlias",
	KindAnnotated:          "Annotated",
	KindNewType:            "NewType",
	KindUnion:              "Union",
	KindIntersection:       "Intersection",
	KindTuple:              "Tuple",
	KindCallable:           "Callable",
	KindAny:                "Any",
	KindNever:              "Never",
	KindSelfType:           "SelfType",
	KindLiteralString:      "LiteralString",
	KindEllipsis:           "Ellipsis",
	KindLiteral:            "Literal",
	KindMeta:               "Meta",
	KindTypeGuard:          "TypeGuard",
	KindTypeIs:             "TypeIs",
	KindTypeVar:            "TypeVar",
	KindParamSpec:          "ParamSpec",
	KindTypeVarTuple:       "TypeVarTuple",
	KindConcatenate:        "Concatenate",
	KindUnpack:             "Unpack",
	KindForwardRef:         "ForwardRef",
	KindClass:              "Class",
	KindDataclass:          "Dataclass",
	KindTypedDict:          "TypedDict",
	KindNamedTuple:         "NamedTuple",
	KindProtocol:           "Protocol",
	KindEnum:               "Enum",
	KindFunction:           "Function",
	KindSignature:          "Signature",
}

func (k NodeKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// Node is the common interface every node variant implements. Nodes are
// immutable after construction and safe to share across goroutines.
type Node interface {
	Kind() NodeKind
	SourceLocation() *SourceLocation
	Metadata() MetadataCollection
	Qualifiers() QualifierSet
	Children() []Node
	Edges() []EdgeConnection
	// OriginalRaw returns the adapter-level identity the node was built
	// from, so rebuilding from it reproduces an equivalent node and cache
	// diagnostics can report what raw value a node came from.
	OriginalRaw() any
}

// SourceLocation records where a type construct came from. All fields are
// optional; populated only when Config.IncludeSourceLocations is set.
type SourceLocation struct {
	Module   string
	Qualname string
	Line     int
	File     string
}

// Variance describes how subtyping of a type parameter relates to
// subtyping of the containing generic.
type Variance int

const (
	Invariant Variance = iota
	Covariant
	Contravariant
)

func (v Variance) String() string {
	switch v {
	case Covariant:
		return "covariant"
	case Contravariant:
		return "contravariant"
	default:
		return "invariant"
	}
}

// ParameterKind classifies a function/signature parameter.
type ParameterKind int

const (
	PositionalOnly ParameterKind = iota
	PositionalOrKeyword
	VarPositional
	KeywordOnly
	VarKeyword
)

// Parameter is a supporting entity (not a Node itself) describing one
// parameter of a Signature.
type Parameter struct {
	Name        string
	Type        Node
	Kind        ParameterKind
	HasDefault  bool
	DefaultRepr string
	Metadata    MetadataCollection
}

// FieldDef is a supporting entity describing one field/member of a
// structured node (Class, Dataclass, TypedDict, NamedTuple, Protocol).
type FieldDef struct {
	Name        string
	Type        Node
	HasDefault  bool
	DefaultRepr string
	Metadata    MetadataCollection
	Kind        string // e.g. "field", "method", "attribute" for Protocol
}

// EnumMember is a supporting entity describing one value of an Enum node.
type EnumMember struct {
	Name        string
	Value       any
	Description string
	Deprecated  string
}

// base is embedded by every concrete Node variant and carries the fields
// common to all nodes. It is never used as a Node directly.
type base struct {
	kind       NodeKind
	location   *SourceLocation
	metadata   MetadataCollection
	qualifiers QualifierSet
	children   []Node
	edges      []EdgeConnection
	raw        any
}

func (b *base) Kind() NodeKind                   { return b.kind }
func (b *base) SourceLocation() *SourceLocation  { return b.location }
func (b *base) Metadata() MetadataCollection     { return b.metadata }
func (b *base) Qualifiers() QualifierSet         { return b.qualifiers }
func (b *base) Children() []Node                 { return b.children }
func (b *base) Edges() []EdgeConnection          { return b.edges }
func (b *base) OriginalRaw() any                 { return b.raw }

// newBase assembles the common fields. children is derived from edges, so
// len(children) == len(edges) and edges[i].Target == children[i] hold by
// construction.
func newBase(kind NodeKind, raw any, loc *SourceLocation, md MetadataCollection, quals QualifierSet, edges []EdgeConnection) base {
	if md == nil {
		md = Empty()
	}
	if quals == nil {
		quals = QualifierSet{}
	}
	children := make([]Node, len(edges))
	for i, e := range edges {
		children[i] = e.Target
	}
	return base{
		kind:       kind,
		location:   loc,
		metadata:   md,
		qualifiers: quals,
		children:   children,
		edges:      edges,
		raw:        raw,
	}
}

// --- Concrete/generic variants ---

type ConcreteNode struct {
	base
	ClassRef string
}

type GenericTypeNode struct {
	base
	ClassRef   string
	TypeParams []Node
}

type SubscriptedGenericNode struct {
	base
	Origin *GenericTypeNode
	Args   []Node
}

type GenericAliasNode struct {
	base
	Name       string
	TypeParams []Node
	Value      Node
}

type TypeAliasNode struct {
	base
	Name  string
	Value Node
}

type AnnotatedNode struct {
	base
	BaseNode    Node
	Annotations []any
}

type NewTypeNode struct {
	base
	Name      string
	Supertype Node
}

// --- Composite variants ---

type UnionNode struct {
	base
	Members []Node
}

type IntersectionNode struct {
	base
	Members []Node
}

type TupleNode struct {
	base
	Elements []Node
	Variadic bool
}

type CallableNode struct {
	base
	Params    []Node // nil when Ellipsis or ParamSpec is set
	Ellipsis  bool
	ParamSpec *ParamSpecNode
	Returns   Node
}

// --- Special forms ---

type AnyNode struct{ base }
type NeverNode struct{ base }
type SelfTypeNode struct{ base }
type LiteralStringNode struct{ base }
type EllipsisNode struct{ base }

type LiteralNode struct {
	base
	Values []any
}

type MetaNode struct {
	base
	Target Node
}

type TypeGuardNode struct {
	base
	Target Node
}

type TypeIsNode struct {
	base
	Target Node
}

// --- Type parameters ---

type TypeVarNode struct {
	base
	Name          string
	Variance      Variance
	Bound         Node
	Constraints   []Node
	Default       Node
	InferVariance bool
}

type ParamSpecNode struct {
	base
	Name    string
	Default Node
}

type TypeVarTupleNode struct {
	base
	Name    string
	Default Node
}

type ConcatenateNode struct {
	base
	Prefix    []Node
	ParamSpec *ParamSpecNode
}

type UnpackNode struct {
	base
	Target Node
}

// --- Forward reference ---

// RefStatus is the three-state lifecycle of a ForwardRefNode.
type RefStatus int

const (
	Unresolved RefStatus = iota
	Resolved
	Failed
)

func (s RefStatus) String() string {
	switch s {
	case Resolved:
		return "Resolved"
	case Failed:
		return "Failed"
	default:
		return "Unresolved"
	}
}

// RefState is set once at ForwardRefNode construction and never mutated.
type RefState struct {
	Status RefStatus
	Node   Node   // set iff Status == Resolved
	Error  string // set iff Status == Failed
}

type ForwardRefNode struct {
	base
	Reference string
	State     RefState
}

// --- Structured kinds ---

type ClassNode struct {
	base
	Name   string
	Fields []FieldDef
}

type DataclassNode struct {
	base
	Name   string
	Frozen bool
	Slots  bool
	Fields []FieldDef
}

type TypedDictNode struct {
	base
	Name   string
	Fields []FieldDef
	Total  bool
}

type NamedTupleNode struct {
	base
	Name   string
	Fields []FieldDef
}

type ProtocolNode struct {
	base
	Name       string
	Methods    []FieldDef
	Attributes []FieldDef
}

type EnumNode struct {
	base
	Name      string
	Members   []EnumMember
	ValueType Node
}

// --- Function / signature ---

type SignatureNode struct {
	base
	Parameters []Parameter
	Returns    Node
	TypeParams []Node
}

type FunctionNode struct {
	base
	Name        string
	Signature   *SignatureNode
	IsAsync     bool // always false for Go; kept for taxonomy parity
	IsGenerator bool // true when the function returns iter.Seq/iter.Seq2
	Decorators  []string
}

// --- Narrowing helpers: one Is<Kind>Node per node kind ---

func IsConcreteNode(n Node) (*ConcreteNode, bool)                 { v, ok := n.(*ConcreteNode); return v, ok }
func IsGenericTypeNode(n Node) (*GenericTypeNode, bool)           { v, ok := n.(*GenericTypeNode); return v, ok }
func IsSubscriptedGenericNode(n Node) (*SubscriptedGenericNode, bool) {
	v, ok := n.(*SubscriptedGenericNode)
	return v, ok
}
func IsGenericAliasNode(n Node) (*GenericAliasNode, bool) { v, ok := n.(*GenericAliasNode); return v, ok }
func IsTypeAliasNode(n Node) (*TypeAliasNode, bool)       { v, ok := n.(*TypeAliasNode); return v, ok }
func IsAnnotatedNode(n Node) (*AnnotatedNode, bool)       { v, ok := n.(*AnnotatedNode); return v, ok }
func IsNewTypeNode(n Node) (*NewTypeNode, bool)           { v, ok := n.(*NewTypeNode); return v, ok }
func IsUnionNode(n Node) (*UnionNode, bool)               { v, ok := n.(*UnionNode); return v, ok }
func IsIntersectionNode(n Node) (*IntersectionNode, bool) { v, ok := n.(*IntersectionNode); return v, ok }
func IsTupleNode(n Node) (*TupleNode, bool)               { v, ok := n.(*TupleNode); return v, ok }
func IsCallableNode(n Node) (*CallableNode, bool)         { v, ok := n.(*CallableNode); return v, ok }
func IsAnyNode(n Node) (*AnyNode, bool)                   { v, ok := n.(*AnyNode); return v, ok }
func IsNeverNode(n Node) (*NeverNode, bool)               { v, ok := n.(*NeverNode); return v, ok }
func IsSelfTypeNode(n Node) (*SelfTypeNode, bool)         { v, ok := n.(*SelfTypeNode); return v, ok }
func IsLiteralStringNode(n Node) (*LiteralStringNode, bool) {
	v, ok := n.(*LiteralStringNode)
	return v, ok
}
func IsEllipsisNode(n Node) (*EllipsisNode, bool)     { v, ok := n.(*EllipsisNode); return v, ok }
func IsLiteralNode(n Node) (*LiteralNode, bool)       { v, ok := n.(*LiteralNode); return v, ok }
func IsMetaNode(n Node) (*MetaNode, bool)             { v, ok := n.(*MetaNode); return v, ok }
func IsTypeGuardNode(n Node) (*TypeGuardNode, bool)   { v, ok := n.(*TypeGuardNode); return v, ok }
func IsTypeIsNode(n Node) (*TypeIsNode, bool)         { v, ok := n.(*TypeIsNode); return v, ok }
func IsTypeVarNode(n Node) (*TypeVarNode, bool)       { v, ok := n.(*TypeVarNode); return v, ok }
func IsParamSpecNode(n Node) (*ParamSpecNode, bool)   { v, ok := n.(*ParamSpecNode); return v, ok }
func IsTypeVarTupleNode(n Node) (*TypeVarTupleNode, bool) {
	v, ok := n.(*TypeVarTupleNode)
	return v, ok
}
func IsConcatenateNode(n Node) (*ConcatenateNode, bool) { v, ok := n.(*ConcatenateNode); return v, ok }
func IsUnpackNode(n Node) (*UnpackNode, bool)           { v, ok := n.(*UnpackNode); return v, ok }
func IsForwardRefNode(n Node) (*ForwardRefNode, bool)   { v, ok := n.(*ForwardRefNode); return v, ok }
func IsClassNode(n Node) (*ClassNode, bool)             { v, ok := n.(*ClassNode); return v, ok }
func IsDataclassNode(n Node) (*DataclassNode, bool)     { v, ok := n.(*DataclassNode); return v, ok }
func IsTypedDictNode(n Node) (*TypedDictNode, bool)     { v, ok := n.(*TypedDictNode); return v, ok }
func IsNamedTupleNode(n Node) (*NamedTupleNode, bool)   { v, ok := n.(*NamedTupleNode); return v, ok }
func IsProtocolNode(n Node) (*ProtocolNode, bool)       { v, ok := n.(*ProtocolNode); return v, ok }
func IsEnumNode(n Node) (*EnumNode, bool)               { v, ok := n.(*EnumNode); return v, ok }
func IsFunctionNode(n Node) (*FunctionNode, bool)       { v, ok := n.(*FunctionNode); return v, ok }
func IsSignatureNode(n Node) (*SignatureNode, bool)     { v, ok := n.(*SignatureNode); return v, ok }

// IsOptionalNode reports whether n is a Union with exactly a NoneType
// member alongside others (the source language's Optional[T] sugar).
func IsOptionalNode(n Node) bool {
	u, ok := IsUnionNode(n)
	if !ok {
		return false
	}
	for _, m := range u.Members {
		if c, ok := IsConcreteNode(m); ok && c.ClassRef == "NoneType" {
			return true
		}
	}
	return false
}

// GetUnionMembers returns the members of a Union node, or nil.
func GetUnionMembers(n Node) []Node {
	if u, ok := IsUnionNode(n); ok {
		return u.Members
	}
	return nil
}

// UnwrapOptional returns the non-NoneType members of a Union node. It
// returns nil if n is not a Union; a Union with no NoneType member comes
// back with all of its members.
func UnwrapOptional(n Node) []Node {
	u, ok := IsUnionNode(n)
	if !ok {
		return nil
	}
	out := make([]Node, 0, len(u.Members))
	for _, m := range u.Members {
		if c, ok := IsConcreteNode(m); ok && c.ClassRef == "NoneType" {
			continue
		}
		out = append(out, m)
	}
	return out
}
