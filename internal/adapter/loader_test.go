package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// repoRoot locates the module root on disk from the running test binary's
// own source path, so a scaffolded fixture module can replace its way to
// the real markers package without a network-reachable module proxy.
func repoRoot(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	dir, err := filepath.Abs(filepath.Join(filepath.Dir(file), "..", ".."))
	require.NoError(t, err)
	return dir
}

// writeModule scaffolds a minimal module in a temp dir so Loader.Load can
// type-check it without network access. The fixture module replaces this
// repo's own module path with its on-disk location, so fixture sources are
// free to import the markers package the same way real callers do.
func writeModule(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	goMod := fmt.Sprintf(
		"module loadertest\n\ngo 1.21\n\nrequire github.com/typegraph/typegraph v0.0.0\n\nreplace github.com/typegraph/typegraph => %s\n",
		repoRoot(t),
	)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte(goMod), 0o644))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

const sampleSource = `package sample

// Widget is a dataclass-like struct.
//
// @typegraph:description("a widget")
type Widget struct {
	// Name is the widget's display name.
	Name string
	Count int
}

// DoThing does a thing.
func DoThing(w *Widget) bool {
	return w != nil
}
`

func TestLoaderLoadTypeChecksPackage(t *testing.T) {
	dir := writeModule(t, map[string]string{"sample.go": sampleSource})
	l := NewLoader(dir)

	pkgs, err := l.Load("./...")
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	assert.Equal(t, "loadertest", pkgs[0].PkgPath)

	pkg, ok := l.PackageByPath("loadertest")
	require.True(t, ok)
	assert.Same(t, pkgs[0], pkg)
}

func TestLoaderPackageForDirCachesByDirectory(t *testing.T) {
	dir := writeModule(t, map[string]string{"sample.go": sampleSource})
	l := NewLoader(dir)

	pkg1, err := l.PackageForDir(dir)
	require.NoError(t, err)
	pkg2, err := l.PackageForDir(dir)
	require.NoError(t, err)
	assert.Same(t, pkg1, pkg2)
}

func TestLoaderPackagesReturnsAllLoaded(t *testing.T) {
	dir := writeModule(t, map[string]string{"sample.go": sampleSource})
	l := NewLoader(dir)
	_, err := l.Load("./...")
	require.NoError(t, err)
	assert.Len(t, l.Packages(), 1)
}

func TestDeclNodeFindsTypeDocComment(t *testing.T) {
	dir := writeModule(t, map[string]string{"sample.go": sampleSource})
	l := NewLoader(dir)
	pkgs, err := l.Load("./...")
	require.NoError(t, err)
	pkg := pkgs[0]

	obj := pkg.Types.Scope().Lookup("Widget")
	require.NotNil(t, obj)

	_, doc := declNode(pkg, obj)
	require.NotNil(t, doc)
	assert.Contains(t, doc.Text(), "dataclass-like")
}

func TestDeclNodeFindsFuncDocComment(t *testing.T) {
	dir := writeModule(t, map[string]string{"sample.go": sampleSource})
	l := NewLoader(dir)
	pkgs, err := l.Load("./...")
	require.NoError(t, err)
	pkg := pkgs[0]

	obj := pkg.Types.Scope().Lookup("DoThing")
	require.NotNil(t, obj)

	_, doc := declNode(pkg, obj)
	require.NotNil(t, doc)
	assert.Contains(t, doc.Text(), "does a thing")
}

func TestDeclNodeNilForNilObject(t *testing.T) {
	node, doc := declNode(nil, nil)
	assert.Nil(t, node)
	assert.Nil(t, doc)
}

func TestLoaderLoadSurfacesTypeErrors(t *testing.T) {
	dir := writeModule(t, map[string]string{"broken.go": "package sample\n\nfunc Broken() int {\n\treturn \"not an int\"\n}\n"})
	l := NewLoader(dir)
	_, err := l.Load("./...")
	assert.Error(t, err)
}
