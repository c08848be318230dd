package adapter

import (
	"fmt"

	"github.com/typegraph/typegraph/graph"
)

// Engine wires a Loader, a GoAdapter, and a graph.Config/graph.Cache pair
// into the single object cmd/typegraph and tests drive introspection
// through.
//
// Basic usage:
//
//	eng := adapter.NewEngine(".", nil, nil)
//	if err := eng.Load("./..."); err != nil {
//		panic(err)
//	}
//	members, err := eng.InspectPackage("github.com/example/models")
type Engine struct {
	Loader  *Loader
	Adapter *GoAdapter
	Config  *graph.Config
	Cache   *graph.Cache
}

// NewEngine returns an Engine rooted at dir. A nil cfg uses graph.NewConfig;
// a nil cache uses graph.DefaultCache.
func NewEngine(dir string, cfg *graph.Config, cache *graph.Cache) *Engine {
	if cfg == nil {
		cfg = graph.NewConfig()
	}
	if cache == nil {
		cache = graph.DefaultCache
	}
	loader := NewLoader(dir)
	return &Engine{
		Loader:  loader,
		Adapter: New(loader),
		Config:  cfg,
		Cache:   cache,
	}
}

// Load runs the underlying Loader over patterns, making their packages
// available to every Inspect* call that follows.
func (e *Engine) Load(patterns ...string) error {
	_, err := e.Loader.Load(patterns...)
	return err
}

func (e *Engine) options(ns graph.Namespace) graph.InspectOptions {
	return graph.InspectOptions{
		Adapter:   e.Adapter,
		Config:    e.Config,
		Namespace: ns,
		Cache:     e.Cache,
	}
}

// InspectPackage concurrently builds a node graph for every exported
// member of the package at importPath, which must already have been
// loaded via Load.
func (e *Engine) InspectPackage(importPath string) ([]graph.ModuleMember, error) {
	pkg, ok := e.Loader.PackageByPath(importPath)
	if !ok {
		return nil, fmt.Errorf("typegraph: package %q was not loaded", importPath)
	}
	mod := WrapModule(pkg)
	ns := graph.ExtractNamespace(e.Adapter, mod, graph.SourceModule)
	members := e.Adapter.ModuleGlobals(mod)
	return graph.InspectModule(e.options(ns), mod, members, 0)
}

// InspectName builds the node graph for a single exported symbol (a
// type, function, or constant) declared in importPath.
func (e *Engine) InspectName(importPath, name string) (graph.Node, error) {
	pkg, ok := e.Loader.PackageByPath(importPath)
	if !ok {
		return nil, fmt.Errorf("typegraph: package %q was not loaded", importPath)
	}
	obj := pkg.Types.Scope().Lookup(name)
	if obj == nil {
		return nil, fmt.Errorf("typegraph: no symbol %q in package %q", name, importPath)
	}
	raw := wrapObj(obj, pkg)
	mod := WrapModule(pkg)
	ns := graph.ExtractNamespace(e.Adapter, mod, graph.SourceModule)
	return graph.InspectType(e.options(ns), raw)
}
