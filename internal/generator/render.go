package generator

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
)

// run orchestrates collection, analysis, rendering and file emission.
func (g *generator) run(cfg Config) error {
	data, absDir, err := g.render(cfg)
	if err != nil {
		return err
	}
	outPath := filepath.Join(absDir, cfg.Output)
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return err
	}
	g.log.Info("wrote generated file", "path", outPath, "schemas", len(g.schemas))
	return nil
}

// plan collects every configured schema and builds the file model.
func (g *generator) plan(cfg Config) (*fileModel, error) {
	if !cfg.hasSource() {
		return nil, errors.New("no schemas provided: use --type, --schema or --name with --fields")
	}
	absDir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, err
	}

	if len(cfg.Types) > 0 {
		pkg, err := g.loadDir(absDir, cfg.Output)
		if err != nil {
			return nil, err
		}
		g.log.Debug("loaded package", "path", pkg.PkgPath, "files", len(pkg.GoFiles))
		if err := g.discoverStructs(pkg, cfg.Types); err != nil {
			return nil, err
		}
	}
	if cfg.SchemaFile != "" {
		path := cfg.SchemaFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(absDir, path)
		}
		doc, err := readSchemaFile(path)
		if err != nil {
			return nil, err
		}
		if g.pkgName == "" {
			g.pkgName = doc.Package
		}
		if err := g.fileSchemas(path, doc); err != nil {
			return nil, err
		}
	}
	if cfg.Name != "" || len(cfg.Fields) > 0 {
		if err := g.inlineSchema(cfg.Name, cfg.Fields); err != nil {
			return nil, err
		}
	}

	if cfg.Package != "" {
		g.pkgName = cfg.Package
	}
	if g.pkgName == "" {
		g.pkgName = detectPackageName(absDir)
	}
	if g.pkgName == "" {
		return nil, fmt.Errorf("cannot determine package name for %s: set --package", absDir)
	}

	models := make([]schemaModel, len(g.schemas))
	names := make([]string, len(g.schemas))
	for i, s := range g.schemas {
		models[i] = buildSchemaModel(s)
		names[i] = s.schema.Name()
	}
	if err := g.analyze(models); err != nil {
		return nil, err
	}
	return &fileModel{
		Package: g.pkgName,
		Source:  strings.Join(names, ", "),
		Command: cfg.Command,
		Version: cfg.Version,
		Imports: g.imports.specs(),
		Schemas: models,
	}, nil
}

// render executes the templates and gofmt-formats the result. It also
// returns the absolute target directory.
func (g *generator) render(cfg Config) ([]byte, string, error) {
	if err := ensureTemplates(); err != nil {
		return nil, "", err
	}
	data, err := g.plan(cfg)
	if err != nil {
		return nil, "", err
	}
	absDir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, "", err
	}
	var out bytes.Buffer
	if err := fileTmpl.ExecuteTemplate(&out, tmplFile, data); err != nil {
		return nil, "", err
	}
	formatted, err := format.Source(out.Bytes())
	if err != nil {
		return nil, "", fmt.Errorf("formatting generated code: %w", err)
	}
	return formatted, absDir, nil
}
