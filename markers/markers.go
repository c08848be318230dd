// Package markers ships the sentinel types a Go source file references
// to express annotation-language constructs Go has no syntax of its
// own for. The adapter recognizes these by qualified name, not by
// structural shape, the same way it recognizes an empty interface as
// Any without needing a marker.
package markers

// Never is the bottom type: a function or field typed markers.Never
// never actually produces a value. The adapter recognizes it by its
// qualified name; no directive is needed. A struct type of your own that
// carries a `@typegraph:never` doc-comment directive classifies the same
// way.
type Never struct{ _ [0]func() }

// LiteralString stands in for a string type that classifies as the
// LiteralString singleton rather than a plain Concrete string. The
// adapter recognizes it by qualified name; a plain string field carrying
// a `@typegraph:literal` directive classifies the same way.
type LiteralString string

// Ellipsis marks a `...T` variadic parameter's logical Ellipsis slot;
// the adapter derives this from `*types.Signature.Variadic()` directly
// and does not require this marker to be referenced, but it is provided
// so generated stubs have something nameable to document intent with.
type Ellipsis struct{ _ [0]func() }

// TypeOf is the Meta marker: a field typed TypeOf[T] represents the
// source language's `type[T]` (a value that stands for the type T
// itself, not an instance of it).
type TypeOf[T any] struct{ _ [0]func() T }

// Unpack marks an explicit `Unpack[Ts]` annotation, distinct from a bare
// `...Ts` variadic parameter: a field or return typed Unpack[Ts] spreads
// the tuple-like type variable Ts in place, the same way `*Ts` does in a
// parameter list. Go's go/types has no shape that distinguishes "the
// variadic slice of a type parameter" from "that type parameter wrapped
// in Unpack" other than this marker, so the adapter keys off it by
// qualified name rather than by structural inspection.
type Unpack[T any] struct{ _ [0]func() T }
