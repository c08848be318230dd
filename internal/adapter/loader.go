// Package adapter implements graph.Adapter over go/types: it wraps
// go/types values as graph.RawType and runs packages.Load in full
// type-checking mode, working from *types.Package directly, since
// classification needs real type identity rather than syntactic shape.
package adapter

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"

	"golang.org/x/tools/go/packages"
)

// loadMode is the packages.Load mode needed to get a fully type-checked
// *types.Package plus the syntax trees doc comments are read from.
const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedImports |
	packages.NeedTypes |
	packages.NeedSyntax |
	packages.NeedTypesInfo |
	packages.NeedModule

// Loader loads and caches type-checked packages by directory or import
// path pattern: a dir-path -> *packages.Package cache avoiding repeat
// go/packages.Load calls for files in the same directory.
type Loader struct {
	dir      string
	pkgCache map[string]*packages.Package
	byPath   map[string]*packages.Package
}

// NewLoader returns a Loader rooted at dir, the working directory
// go/packages resolves patterns relative to.
func NewLoader(dir string) *Loader {
	return &Loader{
		dir:      dir,
		pkgCache: make(map[string]*packages.Package),
		byPath:   make(map[string]*packages.Package),
	}
}

// Load resolves patterns (package import paths or "./..."-style globs
// already expanded by graph.Config.Packages) into type-checked packages,
// returning the first load error it encounters, if any package failed to
// type-check cleanly in a way that blocks further introspection.
func (l *Loader) Load(patterns ...string) ([]*packages.Package, error) {
	cfg := &packages.Config{Mode: loadMode, Dir: l.dir}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("adapter: load %v: %w", patterns, err)
	}
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
		l.byPath[pkg.PkgPath] = pkg
		for _, f := range pkg.GoFiles {
			l.pkgCache[filepath.Dir(f)] = pkg
		}
	}
	if len(errs) > 0 {
		return pkgs, fmt.Errorf("adapter: %d package error(s), first: %w", len(errs), errs[0])
	}
	return pkgs, nil
}

// PackageForDir returns the cached package covering a source directory,
// loading it on demand if it is not yet known, resolving a file's import
// path without re-walking the whole module.
func (l *Loader) PackageForDir(dir string) (*packages.Package, error) {
	if pkg, ok := l.pkgCache[dir]; ok && pkg != nil {
		return pkg, nil
	}
	pkgs, err := l.Load(dir)
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("adapter: no package found in %s", dir)
	}
	pkg := pkgs[0]
	l.pkgCache[dir] = pkg
	return pkg, nil
}

// PackageByPath returns an already-loaded package by its import path.
func (l *Loader) PackageByPath(path string) (*packages.Package, bool) {
	pkg, ok := l.byPath[path]
	return pkg, ok
}

// Packages returns every package loaded so far, in no particular order.
func (l *Loader) Packages() []*packages.Package {
	out := make([]*packages.Package, 0, len(l.byPath))
	for _, pkg := range l.byPath {
		out = append(out, pkg)
	}
	return out
}

// declNode locates the ast.Decl and doc comment (if any) backing a
// *types.Object by scanning the owning package's syntax trees. go/types
// throws away the AST/comment association once type-checking is done,
// so this walk is how directive comments get back to an object.
func declNode(pkg *packages.Package, obj types.Object) (ast.Node, *ast.CommentGroup) {
	if pkg == nil || obj == nil {
		return nil, nil
	}
	pos := obj.Pos()
	for _, file := range pkg.Syntax {
		if file.FileStart > pos || pos > file.FileEnd {
			continue
		}
		var found ast.Node
		var doc *ast.CommentGroup
		ast.Inspect(file, func(n ast.Node) bool {
			if found != nil {
				return false
			}
			switch decl := n.(type) {
			case *ast.GenDecl:
				for _, spec := range decl.Specs {
					if specNamePos(spec) == pos {
						found = decl
						doc = decl.Doc
						if ts, ok := spec.(*ast.TypeSpec); ok && ts.Doc != nil {
							doc = ts.Doc
						}
						if vs, ok := spec.(*ast.ValueSpec); ok && vs.Doc != nil {
							doc = vs.Doc
						}
						return false
					}
				}
			case *ast.FuncDecl:
				if decl.Name != nil && decl.Name.Pos() == pos {
					found = decl
					doc = decl.Doc
					return false
				}
			case *ast.Field:
				for _, name := range decl.Names {
					if name.Pos() == pos {
						found = decl
						doc = decl.Doc
						return false
					}
				}
			}
			return true
		})
		if found != nil {
			return found, doc
		}
	}
	return nil, nil
}

func specNamePos(spec ast.Spec) token.Pos {
	switch s := spec.(type) {
	case *ast.TypeSpec:
		if s.Name != nil {
			return s.Name.Pos()
		}
	case *ast.ValueSpec:
		if len(s.Names) > 0 {
			return s.Names[0].Pos()
		}
	}
	return token.NoPos
}
