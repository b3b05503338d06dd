package generator

import (
	"fmt"
	"go/token"
	"go/types"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/calumari/paramkit/params"
)

// generator holds transient state while building models for one file.
type generator struct {
	log      *slog.Logger
	pkgName  string
	pkgPath  string
	pkgScope *types.Scope // nil unless the target package was type-checked
	fset     *token.FileSet
	imports  *importSet
	schemas  []schemaSource
}

// schemaSource is a validated schema and where it came from.
type schemaSource struct {
	schema *params.Schema
	origin string
}

// Run generates the configured schemas and writes the output file.
func Run(cfg Config) error {
	cfg = cfg.normalize()
	return newGenerator(cfg.Logger).run(cfg)
}

// Render generates the configured schemas and returns the formatted source
// without writing it.
func Render(cfg Config) ([]byte, error) {
	cfg = cfg.normalize()
	g := newGenerator(cfg.Logger)
	data, _, err := g.render(cfg)
	return data, err
}

// Check collects and validates the configured schemas without rendering.
func Check(cfg Config) ([]*params.Schema, error) {
	cfg = cfg.normalize()
	g := newGenerator(cfg.Logger)
	if _, err := g.plan(cfg); err != nil {
		return nil, err
	}
	out := make([]*params.Schema, len(g.schemas))
	for i, s := range g.schemas {
		out[i] = s.schema
	}
	return out, nil
}

func newGenerator(log *slog.Logger) *generator {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &generator{log: log, imports: newImportSet()}
}

// qualifier renders package-qualified type names, registering an import for
// every package other than the target one.
func (g *generator) qualifier(p *types.Package) string {
	if p == nil || p.Path() == g.pkgPath {
		return ""
	}
	return g.imports.auto(p.Path(), p.Name())
}

func (g *generator) addSchema(s *params.Schema, origin string) {
	g.log.Debug("schema", "name", s.Name(), "fields", s.Len(), "origin", origin)
	g.schemas = append(g.schemas, schemaSource{schema: s, origin: origin})
}

// buildSchemaModel derives the template model for one validated schema.
func buildSchemaModel(src schemaSource) schemaModel {
	s := src.schema
	name := s.Name()
	m := schemaModel{
		Name:      name,
		OptName:   name + "WithDefaults",
		CallName:  "Call" + params.ExportName(name),
		VarName:   "schemaOf" + params.ExportName(name),
		TypeParam: "Ret",
		Origin:    src.origin,
	}
	schemaArgs := []string{strconv.Quote(name)}
	var args, paramTypes, results []string
	for i, f := range s.Fields() {
		fm := fieldModel{Name: f.Name, GoName: f.GoName(), Type: f.Type, Local: "v" + strconv.Itoa(i)}
		m.Fields = append(m.Fields, fm)
		schemaArgs = append(schemaArgs, fmt.Sprintf("params.Field{Name: %q, Type: %q}", f.Name, f.Type))
		args = append(args, "s."+fm.GoName)
		paramTypes = append(paramTypes, fm.Type)
		results = append(results, fm.GoName+": "+fm.Local)
	}
	m.SchemaArgs = strings.Join(schemaArgs, ", ")
	m.ArgList = strings.Join(args, ", ")
	m.ParamTypes = strings.Join(paramTypes, ", ")
	m.ResultList = strings.Join(results, ", ")
	return m
}
