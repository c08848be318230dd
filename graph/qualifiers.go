package graph

// Qualifier is a typing construct that modifies how a type is interpreted
// (ClassVar, Final, ...), stored as an element of a node's Qualifiers set.
type Qualifier int

const (
	QualifierClassVar Qualifier = iota
	QualifierFinal
	QualifierRequired
	QualifierNotRequired
	QualifierReadOnly
	QualifierInitVar
)

var qualifierNames = map[Qualifier]string{
	QualifierClassVar:    "class_var",
	QualifierFinal:       "final",
	QualifierRequired:    "required",
	QualifierNotRequired: "not_required",
	QualifierReadOnly:    "read_only",
	QualifierInitVar:     "init_var",
}

func (q Qualifier) String() string {
	if s, ok := qualifierNames[q]; ok {
		return s
	}
	return "unknown_qualifier"
}

// QualifierSet is a frozen set of Qualifier tags. The zero value is the
// empty set. Callers must treat a QualifierSet as immutable once attached
// to a Node; use NewQualifierSet to build one.
type QualifierSet map[Qualifier]struct{}

// NewQualifierSet builds a frozen qualifier set from the given tags.
func NewQualifierSet(qs ...Qualifier) QualifierSet {
	s := make(QualifierSet, len(qs))
	for _, q := range qs {
		s[q] = struct{}{}
	}
	return s
}

// Has reports whether q is a member of the set.
func (s QualifierSet) Has(q Qualifier) bool {
	_, ok := s[q]
	return ok
}

// With returns a new set containing s's members plus q, leaving s
// unmodified (sets are frozen once published on a Node).
func (s QualifierSet) With(q Qualifier) QualifierSet {
	out := make(QualifierSet, len(s)+1)
	for k := range s {
		out[k] = struct{}{}
	}
	out[q] = struct{}{}
	return out
}

// Len returns the number of qualifiers in the set.
func (s QualifierSet) Len() int { return len(s) }
