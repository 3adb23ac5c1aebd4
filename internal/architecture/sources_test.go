// Where: internal/architecture/sources_test.go
// What: Shared loader for non-test internal sources.
// Why: Parse every package once and let each guard inspect the same view.
package architecture

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	pathpkg "path"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const modulePath = "github.com/poruru-code/m2settings"

const internalImportPrefix = modulePath + "/internal/"

type sourceFile struct {
	fset *token.FileSet
	// rel is slash-separated and relative to internal/.
	rel  string
	pkg  string
	file *ast.File
	// aliases maps the local import name to the import path.
	aliases map[string]string
}

func (s sourceFile) layer() string {
	layer, _, _ := strings.Cut(s.pkg, "/")
	return layer
}

func (s sourceFile) importPaths() []string {
	paths := make([]string, 0, len(s.file.Imports))
	for _, imp := range s.file.Imports {
		value, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}
		paths = append(paths, value)
	}
	return paths
}

func (s sourceFile) position(pos token.Pos) string {
	return s.rel + ":" + strconv.Itoa(s.fset.Position(pos).Line)
}

func loadInternalSources(t *testing.T) []sourceFile {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	root := filepath.Join(wd, "..")
	fset := token.NewFileSet()
	sources := []sourceFile{}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".go") || strings.HasSuffix(d.Name(), "_test.go") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		file, err := parser.ParseFile(fset, path, nil, parser.SkipObjectResolution)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		sources = append(sources, sourceFile{
			fset:    fset,
			rel:     rel,
			pkg:     pathpkg.Dir(rel),
			file:    file,
			aliases: importAliases(file),
		})
		return nil
	})
	if err != nil {
		t.Fatalf("scan internal packages: %v", err)
	}
	if len(sources) == 0 {
		t.Fatalf("no sources found under %s", root)
	}
	return sources
}

func importAliases(file *ast.File) map[string]string {
	aliases := map[string]string{}
	for _, imp := range file.Imports {
		importPath, err := strconv.Unquote(imp.Path.Value)
		if err != nil || importPath == "" {
			continue
		}
		alias := pathpkg.Base(importPath)
		if imp.Name != nil {
			if imp.Name.Name == "_" || imp.Name.Name == "." {
				continue
			}
			alias = imp.Name.Name
		}
		aliases[alias] = importPath
	}
	return aliases
}

// internalPackage returns the package path below internal/, or "" for
// imports from outside the module.
func internalPackage(importPath string) string {
	rest, ok := strings.CutPrefix(importPath, internalImportPrefix)
	if !ok {
		return ""
	}
	return rest
}
