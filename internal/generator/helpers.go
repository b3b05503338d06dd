package generator

import (
	"fmt"
	"go/ast"
	"go/parser"
	"strings"

	"github.com/calumari/paramkit/params"
)

// schema type suffixes dropped when deriving a generated name from a Go
// source type.
var sourceSuffixes = []string{"Params", "Schema", "Spec"}

// splitTypeSpec parses a --type entry: "srcType" or "srcType=Name".
func splitTypeSpec(spec string) (src, name string) {
	src, name, ok := strings.Cut(strings.TrimSpace(spec), "=")
	src = strings.TrimSpace(src)
	if ok {
		return src, strings.TrimSpace(name)
	}
	return src, generatedName(src)
}

// generatedName derives the Regular type name from a source struct name.
func generatedName(src string) string {
	base := src
	for _, suf := range sourceSuffixes {
		if trimmed := strings.TrimSuffix(base, suf); trimmed != base && trimmed != "" {
			base = trimmed
			break
		}
	}
	return params.ExportName(base)
}

// typeRefs checks that expr is a Go type expression and returns the package
// qualifiers it uses.
func typeRefs(expr string) ([]string, error) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return nil, fmt.Errorf("type %q: %w", expr, err)
	}
	if !isTypeExpr(node) {
		return nil, fmt.Errorf("type %q: not a type expression", expr)
	}
	var quals []string
	seen := map[string]bool{}
	ast.Inspect(node, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		if id, ok := sel.X.(*ast.Ident); ok && !seen[id.Name] {
			seen[id.Name] = true
			quals = append(quals, id.Name)
		}
		return false
	})
	return quals, nil
}

func isTypeExpr(n ast.Expr) bool {
	switch t := n.(type) {
	case *ast.Ident, *ast.ArrayType, *ast.MapType, *ast.ChanType, *ast.FuncType, *ast.InterfaceType, *ast.StructType:
		return true
	case *ast.SelectorExpr:
		_, ok := t.X.(*ast.Ident)
		return ok
	case *ast.StarExpr:
		return isTypeExpr(t.X)
	case *ast.ParenExpr:
		return isTypeExpr(t.X)
	case *ast.IndexExpr:
		return isTypeExpr(t.X)
	case *ast.IndexListExpr:
		return isTypeExpr(t.X)
	}
	return false
}

// typeIdents returns every bare identifier a type expression mentions.
func typeIdents(expr string) map[string]bool {
	out := map[string]bool{}
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return out
	}
	ast.Inspect(node, func(n ast.Node) bool {
		switch t := n.(type) {
		case *ast.SelectorExpr:
			return false
		case *ast.Ident:
			out[t.Name] = true
		}
		return true
	})
	return out
}
