package generator

import (
	"regexp"

	"github.com/calumari/paramkit/params"
)

// identifiers the generated method bodies declare or refer to; a schema
// named after one of them would be shadowed inside its own methods.
var bodyNames = map[string]bool{
	"s": true, "w": true, "fn": true, "fallback": true, "missing": true, "ok": true,
	"opt": true, "params": true, "any": true, "error": true, "len": true, "append": true,
}

var localPattern = regexp.MustCompile(`^v[0-9]+$`)

// result type parameter candidates for the typed dispatch helper.
var typeParamNames = []string{"Ret", "Result", "R", "T"}

// analyze checks the models of one output file against each other and, when
// the target package was type-checked, against its existing declarations.
func (g *generator) analyze(models []schemaModel) error {
	owner := map[string]string{}
	for i := range models {
		m := &models[i]
		if bodyNames[m.Name] || localPattern.MatchString(m.Name) {
			return &params.SchemaError{Schema: m.Name, Index: -1, Kind: params.ErrInvalidName, Detail: "collides with an identifier used by generated code"}
		}
		for _, id := range []string{m.Name, m.OptName, m.CallName, m.VarName} {
			if prev, ok := owner[id]; ok {
				if prev == m.Name {
					return &params.SchemaError{Schema: m.Name, Index: -1, Kind: params.ErrInvalidName, Detail: "declared twice (" + m.Origin + ")"}
				}
				return &params.SchemaError{Schema: m.Name, Index: -1, Kind: params.ErrInvalidName, Detail: "generated identifier " + id + " also produced by schema " + prev}
			}
			owner[id] = m.Name
			if g.pkgScope != nil {
				if obj := g.pkgScope.Lookup(id); obj != nil {
					return &params.SchemaError{Schema: m.Name, Index: -1, Kind: params.ErrInvalidName, Detail: "generated identifier " + id + " already declared at " + g.fset.Position(obj.Pos()).String()}
				}
			}
		}
		m.TypeParam = pickTypeParam(m.Name, m.Fields)
	}
	if g.pkgScope != nil {
		for _, id := range []string{"opt", "params"} {
			if obj := g.pkgScope.Lookup(id); obj != nil {
				return &params.SchemaError{Index: -1, Kind: params.ErrInvalidName, Detail: "package declares " + id + ", which generated code imports"}
			}
		}
	}
	return nil
}

// pickTypeParam returns the first candidate that is neither the schema name
// nor mentioned by a field type.
func pickTypeParam(schema string, fields []fieldModel) string {
	used := map[string]bool{schema: true}
	for _, f := range fields {
		for id := range typeIdents(f.Type) {
			used[id] = true
		}
	}
	for _, name := range typeParamNames {
		if !used[name] {
			return name
		}
	}
	name := "Ret_"
	for used[name] {
		name += "_"
	}
	return name
}
