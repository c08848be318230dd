package adapter

import (
	"go/constant"
	"go/types"

	"golang.org/x/tools/go/packages"

	"github.com/typegraph/typegraph/graph"
)

// matchConstants finds every package-level constant whose type is named.
// go/types has already resolved each const's declared type and value
// during type-checking, so there is no need to separately collect const
// blocks and match them against candidates by name and iota-replay — a
// single scope walk does it.
func matchConstants(pkg *packages.Package, named *types.Named) []*types.Const {
	if pkg == nil || pkg.Types == nil {
		return nil
	}
	scope := pkg.Types.Scope()
	var out []*types.Const
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		c, ok := obj.(*types.Const)
		if !ok {
			continue
		}
		if n, ok := c.Type().(*types.Named); ok && n.Obj() == named.Obj() {
			out = append(out, c)
		}
	}
	return out
}

func constantMemberProbe(c *types.Const, pkg *packages.Package) graph.EnumMemberProbe {
	desc, deprecated := "", ""
	if _, doc := declNode(pkg, c); doc != nil {
		items := graph.ToMetadataItems(graph.ParseDirectives(commentLines(doc)))
		for _, item := range items {
			switch v := item.(type) {
			case graph.DescriptionDirective:
				desc = v.Text
			case graph.DeprecatedDirective:
				deprecated = v.Reason
			}
		}
	}
	return graph.EnumMemberProbe{
		Name:        c.Name(),
		Value:       constantGoValue(c.Val()),
		Description: desc,
		Deprecated:  deprecated,
	}
}

// constantGoValue converts a go/constant.Value to a plain Go value usable
// as an EnumMemberProbe.Value / LiteralValues entry.
func constantGoValue(v constant.Value) any {
	switch v.Kind() {
	case constant.Bool:
		return constant.BoolVal(v)
	case constant.String:
		return constant.StringVal(v)
	case constant.Int:
		if i, ok := constant.Int64Val(v); ok {
			return i
		}
		return v.String()
	case constant.Float:
		f, _ := constant.Float64Val(v)
		return f
	default:
		return v.String()
	}
}

// isEnumNamed reports whether named has at least one matching constant in
// its owning package, the signal that distinguishes an Enum (or Literal)
// from a plain NewType over the same basic kind.
func isEnumNamed(pkg *packages.Package, named *types.Named) bool {
	return len(matchConstants(pkg, named)) > 0
}
