package adapter

import (
	"go/types"

	"github.com/typegraph/typegraph/graph"
)

func (a *GoAdapter) IsFunction(t graph.RawType) bool {
	_, ok := asRaw(t).obj.(*types.Func)
	return ok
}

func (a *GoAdapter) FunctionInfo(t graph.RawType) graph.FunctionProbe {
	r := asRaw(t)
	fn, _ := r.obj.(*types.Func)
	sig, _ := r.typ.(*types.Signature)
	if sig == nil && fn != nil {
		sig, _ = fn.Type().(*types.Signature)
	}
	if sig == nil {
		return graph.FunctionProbe{}
	}

	pkg := a.pkgOf(r)
	params := make([]graph.ParamProbe, 0, sig.Params().Len())
	n := sig.Params().Len()
	for i := 0; i < n; i++ {
		v := sig.Params().At(i)
		fr := wrapField(v, "", pkg).(*rawGoType)
		kind := graph.PositionalOrKeyword
		if sig.Variadic() && i == n-1 {
			kind = graph.VarPositional
		}
		params = append(params, graph.ParamProbe{
			Name:     v.Name(),
			Type:     fr,
			Kind:     kind,
			Metadata: fr.generalMetadata(),
		})
	}

	var returns graph.RawType
	switch sig.Results().Len() {
	case 0:
	case 1:
		returns = wrap(sig.Results().At(0).Type())
	default:
		returns = wrap(sig.Results())
	}

	tp := sig.TypeParams()
	typeParams := make([]graph.RawType, 0)
	if tp != nil {
		for i := 0; i < tp.Len(); i++ {
			typeParams = append(typeParams, wrap(tp.At(i)))
		}
	}

	name := ""
	if fn != nil {
		name = fn.Name()
	}

	isGenerator := false
	if sig.Results().Len() == 1 {
		if named, ok := sig.Results().At(0).Type().(*types.Named); ok {
			q := qualifiedName(named)
			isGenerator = q == "iter.Seq" || q == "iter.Seq2"
		}
	}

	return graph.FunctionProbe{
		Name:        name,
		Params:      params,
		Returns:     returns,
		TypeParams:  typeParams,
		IsGenerator: isGenerator,
	}
}
