package graph

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Grouped is the "grouped metadata" protocol: a metadata item can declare
// itself as an expandable group of sub-items. Flatten/FlattenDeep and the
// Of factory look for this interface.
type Grouped interface {
	GroupedItems() []any
}

// Group is the concrete grouped-metadata item shipped by this package; it
// is the natural vehicle for the directive system's "@typegraph:group"
// annotation.
type Group struct {
	Label string
	Items []any
}

func (g Group) GroupedItems() []any { return g.Items }

// Protocol is a runtime-checkable structural-matching capability. A
// protocol must declare RuntimeCheckable() true before FindProtocol/
// HasProtocol/CountProtocol will match against it; otherwise they return
// a ProtocolNotRuntimeCheckableError, mirroring the source language's
// requirement that a Protocol be decorated @runtime_checkable.
type Protocol interface {
	RuntimeCheckable() bool
	InterfaceType() reflect.Type
}

// MetadataCollection is an immutable, ordered sequence of opaque metadata
// items. The zero value is an empty collection, equal to Empty().
type MetadataCollection struct {
	items []any
}

var emptyMetadata = MetadataCollection{items: nil}

// Empty returns the shared empty-collection singleton.
func Empty() MetadataCollection { return emptyMetadata }

// Of builds a collection from items. When autoFlatten is true (the
// default used by From* constructors), any item implementing Grouped is
// expanded one layer before being stored.
func Of(items []any, autoFlatten bool) MetadataCollection {
	if len(items) == 0 {
		return emptyMetadata
	}
	if !autoFlatten {
		out := make([]any, len(items))
		copy(out, items)
		return MetadataCollection{items: out}
	}
	out := make([]any, 0, len(items))
	for _, it := range items {
		if g, ok := it.(Grouped); ok {
			out = append(out, g.GroupedItems()...)
			continue
		}
		out = append(out, it)
	}
	if len(out) == 0 {
		return emptyMetadata
	}
	return MetadataCollection{items: out}
}

// FromItems is sugar for Of(items, true).
func FromItems(items ...any) MetadataCollection { return Of(items, true) }

// --- Sequence protocol ---

func (m MetadataCollection) Len() int { return len(m.items) }

func (m MetadataCollection) At(i int) any { return m.items[i] }

// Slice returns a new collection over m.items[lo:hi]; it reuses Empty()
// when the result would have zero items.
func (m MetadataCollection) Slice(lo, hi int) MetadataCollection {
	if lo >= hi {
		return emptyMetadata
	}
	out := make([]any, hi-lo)
	copy(out, m.items[lo:hi])
	return MetadataCollection{items: out}
}

// List returns a defensive copy of the underlying items, preserving order.
func (m MetadataCollection) List() []any {
	out := make([]any, len(m.items))
	copy(out, m.items)
	return out
}

func (m MetadataCollection) IsEmpty() bool { return len(m.items) == 0 }

// Contains reports whether item is present, compared with
// reflect.DeepEqual (safe even for uncomparable dynamic types).
func (m MetadataCollection) Contains(item any) bool {
	for _, it := range m.items {
		if reflect.DeepEqual(it, item) {
			return true
		}
	}
	return false
}

// Reversed returns a new collection with items in reverse order.
func (m MetadataCollection) Reversed() MetadataCollection {
	if len(m.items) == 0 {
		return emptyMetadata
	}
	out := make([]any, len(m.items))
	for i, it := range m.items {
		out[len(m.items)-1-i] = it
	}
	return MetadataCollection{items: out}
}

// --- Query ---

// Find returns the first item assignable to T, or (the zero T, false).
func Find[T any](m MetadataCollection) (T, bool) {
	var zero T
	for _, it := range m.items {
		if v, ok := it.(T); ok {
			return v, true
		}
	}
	return zero, false
}

// itemTypeMatches reports whether it's dynamic type is one of types.
func itemTypeMatches(it any, types []reflect.Type) bool {
	t := reflect.TypeOf(it)
	for _, want := range types {
		if t == want {
			return true
		}
	}
	return false
}

// FindAll returns every item whose dynamic type is one of types, in
// original order.
func (m MetadataCollection) FindAll(types ...reflect.Type) MetadataCollection {
	var out []any
	for _, it := range m.items {
		if itemTypeMatches(it, types) {
			out = append(out, it)
		}
	}
	return Of(out, false)
}

// FindFirst returns the first item whose dynamic type is one of types.
func (m MetadataCollection) FindFirst(types ...reflect.Type) (any, bool) {
	for _, it := range m.items {
		if itemTypeMatches(it, types) {
			return it, true
		}
	}
	return nil, false
}

// Get returns the first item of type T, or def if none exists.
func Get[T any](m MetadataCollection, def T) T {
	if v, ok := Find[T](m); ok {
		return v
	}
	return def
}

// GetRequired returns the first item of type T or raises MetadataNotFound.
func GetRequired[T any](m MetadataCollection) (T, error) {
	if v, ok := Find[T](m); ok {
		return v, nil
	}
	var zero T
	return zero, &MetadataNotFoundError{Want: reflect.TypeOf(zero), Have: m.Types()}
}

// Has reports whether the collection contains an item whose dynamic type
// is one of types.
func (m MetadataCollection) Has(types ...reflect.Type) bool {
	_, ok := m.FindFirst(types...)
	return ok
}

// Count returns the number of items whose dynamic type is one of types.
func (m MetadataCollection) Count(types ...reflect.Type) int {
	n := 0
	for _, it := range m.items {
		if itemTypeMatches(it, types) {
			n++
		}
	}
	return n
}

// --- Filter ---

func (m MetadataCollection) Filter(pred func(any) bool) MetadataCollection {
	var out []any
	for _, it := range m.items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return Of(out, false)
}

// FilterByType returns items of type T matching pred (pred may be nil to
// mean "always true").
func FilterByType[T any](m MetadataCollection, pred func(T) bool) MetadataCollection {
	var out []any
	for _, it := range m.items {
		if v, ok := it.(T); ok {
			if pred == nil || pred(v) {
				out = append(out, it)
			}
		}
	}
	return Of(out, false)
}

func (m MetadataCollection) First(pred func(any) bool) (any, bool) {
	for _, it := range m.items {
		if pred(it) {
			return it, true
		}
	}
	return nil, false
}

func FirstOfType[T any](m MetadataCollection, pred func(T) bool) (T, bool) {
	var zero T
	for _, it := range m.items {
		if v, ok := it.(T); ok {
			if pred == nil || pred(v) {
				return v, true
			}
		}
	}
	return zero, false
}

func (m MetadataCollection) Any(pred func(any) bool) bool {
	_, ok := m.First(pred)
	return ok
}

// FindProtocol returns the first item structurally implementing p's
// interface. Raises ProtocolNotRuntimeCheckable if p opts out.
func (m MetadataCollection) FindProtocol(p Protocol) (any, error) {
	if !p.RuntimeCheckable() {
		return nil, &ProtocolNotRuntimeCheckableError{Protocol: p.InterfaceType()}
	}
	iface := p.InterfaceType()
	for _, it := range m.items {
		if reflect.TypeOf(it) != nil && reflect.TypeOf(it).Implements(iface) {
			return it, nil
		}
	}
	return nil, nil
}

func (m MetadataCollection) HasProtocol(p Protocol) (bool, error) {
	v, err := m.FindProtocol(p)
	if err != nil {
		return false, err
	}
	return v != nil, nil
}

func (m MetadataCollection) CountProtocol(p Protocol) (int, error) {
	if !p.RuntimeCheckable() {
		return 0, &ProtocolNotRuntimeCheckableError{Protocol: p.InterfaceType()}
	}
	iface := p.InterfaceType()
	n := 0
	for _, it := range m.items {
		if t := reflect.TypeOf(it); t != nil && t.Implements(iface) {
			n++
		}
	}
	return n, nil
}

// --- Transform ---

// Concat returns a new collection with m's items followed by other's.
// EMPTY + c == c and c + EMPTY == c hold because an empty operand makes
// Concat return the other operand unchanged; otherwise a fresh slice is
// allocated.
func (m MetadataCollection) Concat(other MetadataCollection) MetadataCollection {
	if len(m.items) == 0 {
		return other
	}
	if len(other.items) == 0 {
		return m
	}
	out := make([]any, 0, len(m.items)+len(other.items))
	out = append(out, m.items...)
	out = append(out, other.items...)
	return MetadataCollection{items: out}
}

// Exclude returns a new collection omitting items whose dynamic type is
// one of types.
func (m MetadataCollection) Exclude(types ...reflect.Type) MetadataCollection {
	var out []any
	for _, it := range m.items {
		if !itemTypeMatches(it, types) {
			out = append(out, it)
		}
	}
	return Of(out, false)
}

// Unique returns a new collection with first-occurrence duplicates
// removed. O(n) when every item's dynamic type is comparable, O(n^2)
// fallback otherwise.
func (m MetadataCollection) Unique() MetadataCollection {
	if len(m.items) == 0 {
		return emptyMetadata
	}
	allComparable := true
	for _, it := range m.items {
		t := reflect.TypeOf(it)
		if t == nil || !t.Comparable() {
			allComparable = false
			break
		}
	}
	var out []any
	if allComparable {
		seen := make(map[any]bool, len(m.items))
		for _, it := range m.items {
			if !seen[it] {
				seen[it] = true
				out = append(out, it)
			}
		}
	} else {
		for _, it := range m.items {
			dup := false
			for _, kept := range out {
				if reflect.DeepEqual(it, kept) {
					dup = true
					break
				}
			}
			if !dup {
				out = append(out, it)
			}
		}
	}
	return Of(out, false)
}

// sortKey produces the default sort key: (type-name, value-repr).
func sortKey(it any) (string, string) {
	t := reflect.TypeOf(it)
	typeName := "<nil>"
	if t != nil {
		typeName = t.String()
	}
	return typeName, fmt.Sprintf("%v", it)
}

// Sorted returns a new collection sorted by key (default: type-name then
// value repr) using a stable sort, so repeated application is a fixpoint.
func (m MetadataCollection) Sorted(key func(any) string) MetadataCollection {
	out := m.List()
	if key != nil {
		sort.SliceStable(out, func(i, j int) bool { return key(out[i]) < key(out[j]) })
	} else {
		sort.SliceStable(out, func(i, j int) bool {
			ti, vi := sortKey(out[i])
			tj, vj := sortKey(out[j])
			if ti != tj {
				return ti < tj
			}
			return vi < vj
		})
	}
	return Of(out, false)
}

// Map applies f to every item and returns the resulting slice, a plain
// terminal/external shape rather than another MetadataCollection.
func Map[R any](m MetadataCollection, f func(any) R) []R {
	out := make([]R, len(m.items))
	for i, it := range m.items {
		out[i] = f(it)
	}
	return out
}

// Partition splits m into (matching, non-matching) by pred.
func (m MetadataCollection) Partition(pred func(any) bool) (MetadataCollection, MetadataCollection) {
	var yes, no []any
	for _, it := range m.items {
		if pred(it) {
			yes = append(yes, it)
		} else {
			no = append(no, it)
		}
	}
	return Of(yes, false), Of(no, false)
}

// --- Introspection ---

// Types returns the set of distinct dynamic types present.
func (m MetadataCollection) Types() map[reflect.Type]struct{} {
	out := make(map[reflect.Type]struct{})
	for _, it := range m.items {
		if t := reflect.TypeOf(it); t != nil {
			out[t] = struct{}{}
		}
	}
	return out
}

// ByType groups items by dynamic type.
func (m MetadataCollection) ByType() map[reflect.Type]MetadataCollection {
	grouped := make(map[reflect.Type][]any)
	var order []reflect.Type
	for _, it := range m.items {
		t := reflect.TypeOf(it)
		if _, seen := grouped[t]; !seen {
			order = append(order, t)
		}
		grouped[t] = append(grouped[t], it)
	}
	out := make(map[reflect.Type]MetadataCollection, len(grouped))
	for _, t := range order {
		out[t] = Of(grouped[t], false)
	}
	return out
}

// IsHashable reports whether every item's dynamic type is comparable (the
// Go analog of Python hashability for this collection's equality/hash).
func (m MetadataCollection) IsHashable() bool {
	for _, it := range m.items {
		t := reflect.TypeOf(it)
		if t == nil || !t.Comparable() {
			return false
		}
	}
	return true
}

// --- Grouped flattening ---

// Flatten expands one layer of any item implementing Grouped.
func (m MetadataCollection) Flatten() MetadataCollection {
	var out []any
	changed := false
	for _, it := range m.items {
		if g, ok := it.(Grouped); ok {
			changed = true
			out = append(out, g.GroupedItems()...)
		} else {
			out = append(out, it)
		}
	}
	if !changed {
		return m
	}
	return Of(out, false)
}

// FlattenDeep expands Grouped items recursively until none remain.
func (m MetadataCollection) FlattenDeep() MetadataCollection {
	cur := m
	for cur.Any(func(it any) bool { _, ok := it.(Grouped); return ok }) {
		cur = cur.Flatten()
	}
	return cur
}

// FromAnnotated extracts the metadata tuple of an Annotated wrapper's raw
// representation: the base type plus its ordered annotation items. When
// recursive is true, nested Annotated wrappers encountered among the
// metadata items themselves are flattened into the result.
func FromAnnotated(items []any, recursive bool) MetadataCollection {
	if !recursive {
		return Of(items, true)
	}
	var out []any
	var walk func([]any)
	walk = func(xs []any) {
		for _, x := range xs {
			if inner, ok := x.(interface{ AnnotatedItems() []any }); ok {
				walk(inner.AnnotatedItems())
				continue
			}
			out = append(out, x)
		}
	}
	walk(items)
	return Of(out, true)
}

// --- Equality / Repr ---

// Equal compares length first (a fast short-circuit), then structural
// equality of every item in order.
func (m MetadataCollection) Equal(other MetadataCollection) bool {
	if len(m.items) != len(other.items) {
		return false
	}
	for i := range m.items {
		if !reflect.DeepEqual(m.items[i], other.items[i]) {
			return false
		}
	}
	return true
}

// String truncates long collections for display, matching the source
// library's repr-truncation convention.
func (m MetadataCollection) String() string {
	const maxShown = 8
	parts := make([]string, 0, len(m.items))
	for i, it := range m.items {
		if i >= maxShown {
			parts = append(parts, fmt.Sprintf("...+%d more", len(m.items)-maxShown))
			break
		}
		parts = append(parts, fmt.Sprintf("%v", it))
	}
	return "MetadataCollection[" + strings.Join(parts, ", ") + "]"
}
