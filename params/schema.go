package params

import (
	"go/token"
	"strconv"
	"strings"
)

// Field describes one schema entry: the name callers use and the Go type
// expression of its value.
type Field struct {
	Name string
	Type string
}

// GoName is the exported struct field name generated for f.
func (f Field) GoName() string { return ExportName(f.Name) }

func (f Field) String() string { return f.Name + " " + f.Type }

// Schema is a named, ordered, validated list of fields. It is never modified
// after construction and may be shared freely.
type Schema struct {
	name   string
	fields []Field
	index  map[string]int
}

// NewSchema validates fields and returns the schema they describe. Order is
// preserved; it fixes both struct layout and argument order at dispatch.
func NewSchema(name string, fields ...Field) (*Schema, error) {
	if !token.IsIdentifier(name) {
		return nil, &SchemaError{Schema: name, Index: -1, Kind: ErrInvalidName, Detail: "schema name must be a Go identifier"}
	}
	if len(fields) == 0 {
		return nil, &SchemaError{Schema: name, Index: -1, Kind: ErrEmptySchema}
	}
	s := &Schema{
		name:   name,
		fields: make([]Field, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		f.Name = strings.TrimSpace(f.Name)
		f.Type = strings.TrimSpace(f.Type)
		if err := checkField(name, i, f); err != nil {
			return nil, err
		}
		goName := f.GoName()
		if prev, dup := s.index[goName]; dup {
			return nil, &SchemaError{Schema: name, Field: f.Name, Index: i, Kind: ErrDuplicateField, Detail: "already declared as #" + strconv.Itoa(prev) + " " + s.fields[prev].Name}
		}
		s.fields[i] = f
		s.index[goName] = i
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on an invalid schema. Generated code
// uses it for schemas the generator has already validated.
func MustSchema(name string, fields ...Field) *Schema {
	s, err := NewSchema(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseDescriptors builds a schema from a flat type, name, type, name, ...
// list.
func ParseDescriptors(name string, descriptors ...string) (*Schema, error) {
	if len(descriptors)%2 != 0 {
		last := strings.TrimSpace(descriptors[len(descriptors)-1])
		return nil, &SchemaError{Schema: name, Field: last, Index: len(descriptors) / 2, Kind: ErrMalformedDescriptor, Detail: "type " + last + " has no matching name"}
	}
	fields := make([]Field, 0, len(descriptors)/2)
	for i := 0; i < len(descriptors); i += 2 {
		fields = append(fields, Field{Type: descriptors[i], Name: descriptors[i+1]})
	}
	return NewSchema(name, fields...)
}

func checkField(schema string, i int, f Field) error {
	switch {
	case f.Type == "":
		return &SchemaError{Schema: schema, Field: f.Name, Index: i, Kind: ErrMalformedDescriptor, Detail: "missing type"}
	case f.Name == "":
		return &SchemaError{Schema: schema, Field: f.Type, Index: i, Kind: ErrMalformedDescriptor, Detail: "type " + f.Type + " has no matching name"}
	case IsReserved(f.Name):
		return &SchemaError{Schema: schema, Field: f.Name, Index: i, Kind: ErrReservedField}
	case !token.IsIdentifier(f.Name):
		return &SchemaError{Schema: schema, Field: f.Name, Index: i, Kind: ErrInvalidName}
	case !token.IsExported(f.GoName()):
		return &SchemaError{Schema: schema, Field: f.Name, Index: i, Kind: ErrInvalidName, Detail: "cannot be exported"}
	}
	return nil
}

// Name returns the schema name, which is also the Regular type name.
func (s *Schema) Name() string { return s.name }

// Len returns the number of fields.
func (s *Schema) Len() int { return len(s.fields) }

// Field returns the i'th field in declaration order.
func (s *Schema) Field(i int) Field { return s.fields[i] }

// Fields returns a copy of the fields in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Index returns the position of the field called name, matching either the
// schema name or the exported Go name.
func (s *Schema) Index(name string) (int, bool) {
	i, ok := s.index[ExportName(name)]
	return i, ok
}

// String renders the schema as Name(field type, ...).
func (s *Schema) String() string {
	parts := make([]string, len(s.fields))
	for i, f := range s.fields {
		parts[i] = f.String()
	}
	return s.name + "(" + strings.Join(parts, ", ") + ")"
}
