package main

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const modulePath = "github.com/automoto/stride"

// windowed are import prefixes that pull in a window system.
var windowed = []string{
	"github.com/hajimehoshi/ebiten",
	"github.com/yohamta/donburi",
}

// localImports returns the imports of the non-test Go files in dir.
func localImports(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read %s: %v", dir, err)
	}
	var imports []string
	fset := token.NewFileSet()
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse %s: %v", name, err)
		}
		for _, imp := range f.Imports {
			path, err := strconv.Unquote(imp.Path.Value)
			if err != nil {
				t.Fatalf("import in %s: %v", name, err)
			}
			imports = append(imports, path)
		}
	}
	return imports
}

func TestNoWindowSystemDependency(t *testing.T) {
	root := filepath.Join("..", "..")
	seen := map[string]bool{}
	queue := []string{modulePath + "/cmd/locosim"}

	for len(queue) > 0 {
		pkg := queue[0]
		queue = queue[1:]
		if seen[pkg] {
			continue
		}
		seen[pkg] = true

		dir := filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(pkg, modulePath)))
		for _, imp := range localImports(t, dir) {
			for _, prefix := range windowed {
				if strings.HasPrefix(imp, prefix) {
					t.Errorf("%s imports %s", pkg, imp)
				}
			}
			if strings.HasPrefix(imp, modulePath+"/") {
				queue = append(queue, imp)
			}
		}
	}

	for _, want := range []string{modulePath + "/config", modulePath + "/sim", modulePath + "/locomotion"} {
		if !seen[want] {
			t.Errorf("%s not reached from cmd/locosim", want)
		}
	}
}
