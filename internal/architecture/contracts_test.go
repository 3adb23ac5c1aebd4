// Where: internal/architecture/contracts_test.go
// What: Forbidden import and symbol checks per package.
// Why: Environment reads go through views, stdout goes through ui, and only the generator writes files.
package architecture

import (
	"go/ast"
	"slices"
	"sort"
	"strings"
	"testing"
)

type contract struct {
	imports []string
	// symbols holds "importpath.Name" entries matched against calls and
	// composite literals.
	symbols []string
}

var stdoutPrinters = []string{"fmt.Print", "fmt.Printf", "fmt.Println"}

var contracts = map[string]contract{
	"command": {
		symbols: []string{
			"os.Getenv",
			"os.LookupEnv",
			"os.WriteFile",
			internalImportPrefix + "infra/fileops.WriteFileAtomic",
			internalImportPrefix + "infra/ui.Console",
		},
	},
	"usecase": {
		imports: []string{"os"},
		symbols: stdoutPrinters,
	},
	"domain": {
		imports: []string{"os", internalImportPrefix + "infra/logging"},
		symbols: stdoutPrinters,
	},
	"infra/config": {
		symbols: append([]string{"os.Getenv", "os.LookupEnv"}, stdoutPrinters...),
	},
	"infra/logging": {
		symbols: stdoutPrinters,
	},
}

func TestDependencyContracts(t *testing.T) {
	t.Parallel()

	violations := []string{}
	for _, src := range loadInternalSources(t) {
		c, ok := contractFor(src.pkg)
		if !ok {
			continue
		}
		for _, imp := range src.file.Imports {
			importPath := strings.Trim(imp.Path.Value, `"`)
			if slices.Contains(c.imports, importPath) {
				violations = append(violations, src.position(imp.Pos())+" -> import "+importPath)
			}
		}
		ast.Inspect(src.file, func(node ast.Node) bool {
			var expr ast.Expr
			kind := ""
			switch n := node.(type) {
			case *ast.CallExpr:
				expr, kind = n.Fun, "call"
			case *ast.CompositeLit:
				expr, kind = n.Type, "literal"
			default:
				return true
			}
			if symbol, ok := qualifiedSymbol(expr, src.aliases); ok && slices.Contains(c.symbols, symbol) {
				violations = append(violations, src.position(node.Pos())+" -> "+kind+" "+symbol)
			}
			return true
		})
	}

	if len(violations) > 0 {
		sort.Strings(violations)
		t.Fatalf("dependency contract violations:\n%s", strings.Join(violations, "\n"))
	}
}

// contractFor picks the most specific contract whose key is pkg or a parent of it.
func contractFor(pkg string) (contract, bool) {
	best := ""
	for key := range contracts {
		if (pkg == key || strings.HasPrefix(pkg, key+"/")) && len(key) > len(best) {
			best = key
		}
	}
	if best == "" {
		return contract{}, false
	}
	return contracts[best], true
}

func qualifiedSymbol(expr ast.Expr, aliases map[string]string) (string, bool) {
	selector, ok := expr.(*ast.SelectorExpr)
	if !ok {
		return "", false
	}
	ident, ok := selector.X.(*ast.Ident)
	if !ok {
		return "", false
	}
	importPath, ok := aliases[ident.Name]
	if !ok {
		return "", false
	}
	return importPath + "." + selector.Sel.Name, true
}
