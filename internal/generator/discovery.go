package generator

import (
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/calumari/paramkit/params"
)

// loadDir loads and type-checks the Go package in dir. A previously generated
// output file is replaced by a bare package clause so stale generated code
// neither breaks type checking nor shadows the identifiers about to be
// regenerated. Type errors are tolerated: package code that uses the
// generated identifiers does not check while they are hidden.
func (g *generator) loadDir(dir, output string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedDeps | packages.NeedFiles | packages.NeedCompiledGoFiles,
		Dir:  dir,
	}
	if overlay := outputOverlay(filepath.Join(dir, output)); overlay != nil {
		cfg.Overlay = overlay
	}
	pkgs, err := packages.Load(cfg, "./")
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found in %s", dir)
	}
	p := pkgs[0]
	for _, e := range p.Errors {
		if e.Kind != packages.TypeError {
			return nil, e
		}
		g.log.Debug("ignoring type error", "err", e.Msg, "pos", e.Pos)
	}
	if p.Types == nil {
		return nil, fmt.Errorf("package in %s has no type information", dir)
	}
	return p, nil
}

func outputOverlay(path string) map[string][]byte {
	f, err := parser.ParseFile(token.NewFileSet(), path, nil, parser.PackageClauseOnly)
	if err != nil {
		return nil
	}
	return map[string][]byte{path: []byte("package " + f.Name.Name + "\n")}
}

// detectPackageName returns the package clause used by the Go files in dir,
// or "" when there are none.
func detectPackageName(dir string) string {
	pkgs, err := packages.Load(&packages.Config{Mode: packages.NeedName, Dir: dir}, "./")
	if err == nil && len(pkgs) > 0 && pkgs[0].Name != "" {
		return pkgs[0].Name
	}
	return ""
}

// discoverStructs turns the named struct types of pkg into schemas.
func (g *generator) discoverStructs(pkg *packages.Package, specs []string) error {
	g.pkgName = pkg.Name
	g.pkgPath = pkg.PkgPath
	g.pkgScope = pkg.Types.Scope()
	g.fset = pkg.Fset

	var missing []string
	for _, spec := range specs {
		src, name := splitTypeSpec(spec)
		obj := g.pkgScope.Lookup(src)
		if obj == nil {
			missing = append(missing, src)
			continue
		}
		st, ok := obj.Type().Underlying().(*types.Struct)
		if !ok {
			return fmt.Errorf("%s is not a struct type", src)
		}
		if named, ok := obj.Type().(*types.Named); ok && named.TypeParams().Len() > 0 {
			return &params.SchemaError{Schema: name, Index: -1, Kind: params.ErrMalformedDescriptor, Detail: src + ": generic types are not supported"}
		}
		fields := make([]params.Field, 0, st.NumFields())
		for i := 0; i < st.NumFields(); i++ {
			f := st.Field(i)
			if f.Embedded() {
				return &params.SchemaError{Schema: name, Field: f.Name(), Index: i, Kind: params.ErrMalformedDescriptor, Detail: "embedded field in " + src}
			}
			typ := types.TypeString(f.Type(), g.qualifier)
			if strings.Contains(typ, "invalid type") {
				return &params.SchemaError{Schema: name, Field: f.Name(), Index: i, Kind: params.ErrMalformedDescriptor, Detail: "type of field in " + src + " does not resolve"}
			}
			fields = append(fields, params.Field{Name: f.Name(), Type: typ})
		}
		s, err := params.NewSchema(name, fields...)
		if err != nil {
			return fmt.Errorf("%s: %w", src, err)
		}
		g.addSchema(s, g.fset.Position(obj.Pos()).String())
	}
	if len(missing) > 0 {
		return fmt.Errorf("types not found: %s", strings.Join(missing, ", "))
	}
	return nil
}

// inlineSchema builds the schema given as a flat descriptor list.
func (g *generator) inlineSchema(name string, descriptors []string) error {
	if name == "" {
		return errors.New("--fields requires --name")
	}
	s, err := params.ParseDescriptors(name, descriptors...)
	if err != nil {
		return err
	}
	for i, f := range s.Fields() {
		quals, err := typeRefs(f.Type)
		if err != nil {
			return &params.SchemaError{Schema: name, Field: f.Name, Index: i, Kind: params.ErrMalformedDescriptor, Detail: err.Error()}
		}
		if len(quals) > 0 {
			return &params.SchemaError{Schema: name, Field: f.Name, Index: i, Kind: params.ErrMalformedDescriptor, Detail: "inline types cannot reference package " + quals[0] + "; use a schema file"}
		}
	}
	g.addSchema(s, "inline")
	return nil
}
