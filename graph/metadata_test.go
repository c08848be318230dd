package graph

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type descItem struct{ Text string }
type deprItem struct{ Reason string }

func TestEmptyMetadataCollection(t *testing.T) {
	m := Empty()
	assert.Equal(t, 0, m.Len())
	assert.True(t, m.IsEmpty())
	assert.Equal(t, []any{}, m.List())
}

func TestFromItemsAutoFlattensGroups(t *testing.T) {
	g := Group{Label: "g", Items: []any{descItem{"a"}, descItem{"b"}}}
	m := FromItems(g, deprItem{"old"})

	assert.Equal(t, 3, m.Len())
	assert.True(t, m.Has(reflect.TypeOf(descItem{})))
	assert.True(t, m.Has(reflect.TypeOf(deprItem{})))
}

func TestOfWithoutAutoFlattenKeepsGroupWhole(t *testing.T) {
	g := Group{Label: "g", Items: []any{descItem{"a"}}}
	m := Of([]any{g}, false)
	assert.Equal(t, 1, m.Len())
	_, ok := m.At(0).(Group)
	assert.True(t, ok)
}

func TestFindAndGet(t *testing.T) {
	m := FromItems(descItem{"hello"}, deprItem{"old"})

	got, ok := Find[descItem](m)
	assert.True(t, ok)
	assert.Equal(t, "hello", got.Text)

	_, ok = Find[struct{ X int }](m)
	assert.False(t, ok)

	assert.Equal(t, descItem{"hello"}, Get(m, descItem{"fallback"}))
	assert.Equal(t, descItem{"fallback"}, Get(Empty(), descItem{"fallback"}))
}

func TestGetRequiredMissingReturnsMetadataNotFound(t *testing.T) {
	m := FromItems(deprItem{"old"})
	_, err := GetRequired[descItem](m)
	assert.Error(t, err)
	var notFound *MetadataNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestFilterByTypeAndFirstOfType(t *testing.T) {
	m := FromItems(descItem{"a"}, descItem{"bb"}, descItem{"ccc"})

	longOnes := FilterByType(m, func(d descItem) bool { return len(d.Text) > 1 })
	assert.Equal(t, 2, longOnes.Len())

	first, ok := FirstOfType(m, func(d descItem) bool { return len(d.Text) == 3 })
	assert.True(t, ok)
	assert.Equal(t, "ccc", first.Text)
}

func TestConcatEmptyShortCircuits(t *testing.T) {
	m := FromItems(descItem{"a"})
	assert.Equal(t, m, m.Concat(Empty()))
	assert.Equal(t, m, Empty().Concat(m))

	combined := m.Concat(FromItems(deprItem{"old"}))
	assert.Equal(t, 2, combined.Len())
}

func TestExcludeAndCount(t *testing.T) {
	m := FromItems(descItem{"a"}, deprItem{"old"}, descItem{"b"})
	assert.Equal(t, 2, m.Count(reflect.TypeOf(descItem{})))

	excluded := m.Exclude(reflect.TypeOf(deprItem{}))
	assert.Equal(t, 2, excluded.Len())
	assert.False(t, excluded.Has(reflect.TypeOf(deprItem{})))
}

func TestUniqueDedupesComparableItems(t *testing.T) {
	m := FromItems(descItem{"a"}, descItem{"a"}, descItem{"b"})
	uniq := m.Unique()
	assert.Equal(t, 2, uniq.Len())
}

func TestSortedDefaultKeyIsStableFixpoint(t *testing.T) {
	m := FromItems(descItem{"b"}, descItem{"a"})
	sorted := m.Sorted(nil)
	twice := sorted.Sorted(nil)
	assert.True(t, sorted.Equal(twice))
}

func TestPartition(t *testing.T) {
	m := FromItems(descItem{"a"}, deprItem{"old"}, descItem{"b"})
	yes, no := m.Partition(func(it any) bool {
		_, ok := it.(descItem)
		return ok
	})
	assert.Equal(t, 2, yes.Len())
	assert.Equal(t, 1, no.Len())
}

func TestFlattenDeepExpandsNestedGroups(t *testing.T) {
	inner := Group{Label: "inner", Items: []any{descItem{"x"}}}
	outer := Group{Label: "outer", Items: []any{inner, deprItem{"old"}}}
	m := Of([]any{outer}, false)

	flat := m.FlattenDeep()
	assert.Equal(t, 2, flat.Len())
	_, ok := Find[descItem](flat)
	assert.True(t, ok)
}

func TestMetadataCollectionEqual(t *testing.T) {
	a := FromItems(descItem{"a"}, deprItem{"old"})
	b := FromItems(descItem{"a"}, deprItem{"old"})
	c := FromItems(descItem{"a"})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestMetadataCollectionStringTruncates(t *testing.T) {
	items := make([]any, 12)
	for i := range items {
		items[i] = descItem{"x"}
	}
	m := FromItems(items...)
	s := m.String()
	assert.Contains(t, s, "more")
}
