package generator

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/calumari/paramkit/params"
)

// schemaDoc is the layout of a schema description file.
type schemaDoc struct {
	Package string       `yaml:"package" json:"package"`
	Imports []string     `yaml:"imports" json:"imports"` // "path" or "name path"
	Schemas []schemaDecl `yaml:"schemas" json:"schemas"`
}

type schemaDecl struct {
	Name   string      `yaml:"name" json:"name"`
	Fields []fieldDecl `yaml:"fields" json:"fields"`
}

type fieldDecl struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"`
}

// readSchemaFile decodes a schema description, choosing the format by
// extension.
func readSchemaFile(path string) (*schemaDoc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc schemaDoc
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	case ".cue":
		v := cuecontext.New().CompileBytes(data, cue.Filename(path))
		if err := v.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if err := v.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: unsupported schema file extension %q", path, ext)
	}
	if len(doc.Schemas) == 0 {
		return nil, fmt.Errorf("%s: no schemas declared", path)
	}
	return &doc, nil
}

// parseImport splits an imports entry into its local name and path.
func parseImport(entry string) (local, path string, err error) {
	parts := strings.Fields(entry)
	switch len(parts) {
	case 1:
		return importBase(parts[0]), parts[0], nil
	case 2:
		return parts[0], parts[1], nil
	}
	return "", "", fmt.Errorf("malformed import %q", entry)
}

// importBase guesses the package name of an import path from its last
// element, skipping a major version suffix.
func importBase(p string) string {
	elems := strings.Split(p, "/")
	last := elems[len(elems)-1]
	if len(elems) > 1 && len(last) > 1 && last[0] == 'v' && strings.Trim(last[1:], "0123456789") == "" {
		last = elems[len(elems)-2]
	}
	return last
}

// fileSchemas validates every schema of doc and registers the imports their
// field types use.
func (g *generator) fileSchemas(path string, doc *schemaDoc) error {
	declared := map[string]string{}
	for _, entry := range doc.Imports {
		local, p, err := parseImport(entry)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if prev, ok := declared[local]; ok && prev != p {
			return fmt.Errorf("%s: import name %q used for both %s and %s", path, local, prev, p)
		}
		declared[local] = p
	}
	for i, decl := range doc.Schemas {
		fields := make([]params.Field, len(decl.Fields))
		for j, f := range decl.Fields {
			fields[j] = params.Field{Name: f.Name, Type: f.Type}
		}
		s, err := params.NewSchema(decl.Name, fields...)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for j, f := range s.Fields() {
			quals, err := typeRefs(f.Type)
			if err != nil {
				return fmt.Errorf("%s: %w", path, &params.SchemaError{Schema: s.Name(), Field: f.Name, Index: j, Kind: params.ErrMalformedDescriptor, Detail: err.Error()})
			}
			for _, q := range quals {
				p, ok := declared[q]
				if !ok {
					return fmt.Errorf("%s: schema %s field %s: package %s is not in imports", path, s.Name(), f.Name, q)
				}
				if err := g.imports.declare(p, q); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}
		}
		g.addSchema(s, fmt.Sprintf("%s:schemas[%d]", filepath.Base(path), i))
	}
	return nil
}
