package graph

import "github.com/google/uuid"

// Context is created once per top-level inspection call and destroyed
// when that call returns. It carries configuration, the current
// recursion depth, the cycle-detection set of raw-type identities
// currently being built, and the forward-reference
// "in-progress" set.
type Context struct {
	Config    *Config
	Adapter   Adapter
	Cache     *Cache // nil bypasses the cache entirely (a `source` was given)
	Namespace Namespace

	Depth int

	inProgress    map[any]bool
	resolvingRefs map[string]bool

	// CallID correlates a failing build across logs/errors with a single
	// top-level inspection.
	CallID string

	// pendingMetadata carries metadata hoisted off an Annotated wrapper
	// during the current buildClassified call, picked up by simpleBase
	// when the kind-specific sub-builder constructs its node. Every
	// buildClassified call overwrites it, so sibling Builds that share
	// one child Context each see only their own hoisted metadata; child
	// Contexts start with it unset.
	pendingMetadata MetadataCollection
}

// NewContext builds a fresh top-level Context.
func NewContext(adapter Adapter, cfg *Config, cache *Cache, ns Namespace) *Context {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &Context{
		Config:        cfg,
		Adapter:       adapter,
		Cache:         cache,
		Namespace:     ns,
		inProgress:    make(map[any]bool),
		resolvingRefs: make(map[string]bool),
		CallID:        uuid.NewString(),
	}
}

// child returns a new Context one recursion level deeper, sharing the
// cycle-detection bookkeeping (it is private to the whole top-level
// call, not per-node).
func (c *Context) child() *Context {
	return &Context{
		Config:        c.Config,
		Adapter:       c.Adapter,
		Cache:         c.Cache,
		Namespace:     c.Namespace,
		Depth:         c.Depth + 1,
		inProgress:    c.inProgress,
		resolvingRefs: c.resolvingRefs,
		CallID:        c.CallID,
	}
}

func (c *Context) enter(identity any) (alreadyInProgress bool) {
	if c.inProgress[identity] {
		return true
	}
	c.inProgress[identity] = true
	return false
}

func (c *Context) leave(identity any) {
	delete(c.inProgress, identity)
}

func (c *Context) refInProgress(ref string) bool {
	return c.resolvingRefs[ref]
}

func (c *Context) enterRef(ref string)  { c.resolvingRefs[ref] = true }
func (c *Context) leaveRef(ref string)  { delete(c.resolvingRefs, ref) }

func (c *Context) maxDepthExceeded() bool {
	return c.Config.MaxDepth > 0 && c.Depth >= c.Config.MaxDepth
}
