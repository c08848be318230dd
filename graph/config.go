package graph

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// EvalMode controls forward-reference resolution policy.
type EvalMode string

const (
	EvalEager       EvalMode = "eager"
	EvalDeferred    EvalMode = "deferred"
	EvalStringified EvalMode = "stringified"
)

// Config controls how the engine classifies and builds nodes. It
// participates in cache-key fingerprinting: every field that affects
// node shape must be reflected in Fingerprint().
type Config struct {
	EvalMode EvalMode `yaml:"eval_mode"`

	// GlobalNS/LocalNS are user-supplied namespace overlays; user bindings
	// win over auto-extracted ones on conflict. Not part of the
	// fingerprint (see Context, which is per top-level call).
	GlobalNS map[string]any `yaml:"-"`
	LocalNS  map[string]any `yaml:"-"`

	AutoNamespace bool `yaml:"auto_namespace"`

	// MaxDepth is a soft recursion cap; 0 means unset (no cap).
	MaxDepth int `yaml:"max_depth"`

	HoistMetadata           bool `yaml:"hoist_metadata"`
	IncludeSourceLocations  bool `yaml:"include_source_locations"`
	NormalizeUnions         bool `yaml:"normalize_unions"`
	IncludePrivateMembers   bool `yaml:"include_private_members"`
	IncludeInheritedMembers bool `yaml:"include_inherited_members"`
	IncludeMethods          bool `yaml:"include_methods"`
	IncludeClassVars        bool `yaml:"include_class_vars"`
	IncludeInstanceVars     bool `yaml:"include_instance_vars"`

	// Packages are glob patterns (supports doublestar recursive globs,
	// e.g. "./models/**/*.go") resolved by ExpandPackages.
	Packages []string `yaml:"packages"`
}

// NewConfig returns a Config populated with its documented defaults.
func NewConfig() *Config {
	return &Config{
		EvalMode:                EvalDeferred,
		AutoNamespace:           true,
		HoistMetadata:           true,
		IncludeSourceLocations:  false,
		NormalizeUnions:         true,
		IncludePrivateMembers:  false,
		IncludeInheritedMembers: true,
		IncludeMethods:          true,
		IncludeClassVars:        true,
		IncludeInstanceVars:     true,
	}
}

// Normalize fills in an empty EvalMode with its default (deferred). All
// other fields are left unchanged.
func (c *Config) Normalize() {
	if c.EvalMode == "" {
		c.EvalMode = EvalDeferred
	}
}

// Validate rejects configurations that cannot produce a coherent graph.
func (c *Config) Validate() error {
	switch c.EvalMode {
	case EvalEager, EvalDeferred, EvalStringified:
	default:
		return fmt.Errorf("config: invalid eval_mode %q", c.EvalMode)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("config: max_depth must be >= 0, got %d", c.MaxDepth)
	}
	return nil
}

// Fingerprint deterministically hashes every field that affects node
// shape, for use as half of a cache key. No floating point or unordered
// sets are involved, so the hash is stable across runs.
func (c *Config) Fingerprint() string {
	h := sha256.New()
	fmt.Fprintf(h, "eval=%s|depth=%d|hoist=%t|srcloc=%t|normU=%t|priv=%t|inherit=%t|methods=%t|cvars=%t|ivars=%t|autons=%t",
		c.EvalMode, c.MaxDepth, c.HoistMetadata, c.IncludeSourceLocations, c.NormalizeUnions,
		c.IncludePrivateMembers, c.IncludeInheritedMembers, c.IncludeMethods,
		c.IncludeClassVars, c.IncludeInstanceVars, c.AutoNamespace)
	return hex.EncodeToString(h.Sum(nil))
}

// ExpandPackages resolves c.Packages's doublestar glob patterns (e.g.
// "./models/**/*.go") against baseDir into a sorted, deduplicated list of
// "./relative/dir" package patterns, one per directory holding a matched
// file — the form an Engine's Load expects, so a config file can name
// which packages to inspect without the CLI caller enumerating them.
func (c *Config) ExpandPackages(baseDir string) ([]string, error) {
	seen := map[string]bool{}
	for _, pattern := range c.Packages {
		matches, err := doublestar.FilepathGlob(filepath.Join(baseDir, pattern))
		if err != nil {
			return nil, fmt.Errorf("config: invalid packages pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			rel, err := filepath.Rel(baseDir, filepath.Dir(m))
			if err != nil {
				return nil, fmt.Errorf("config: resolving packages pattern %q: %w", pattern, err)
			}
			rel = filepath.ToSlash(rel)
			if rel == "." {
				seen["./"] = true
				continue
			}
			seen["./"+rel] = true
		}
	}
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}

// LoadConfig reads a YAML configuration file from disk and normalizes it.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes cfg as YAML to path.
func SaveConfig(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}
