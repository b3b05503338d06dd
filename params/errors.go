package params

import (
	"errors"
	"fmt"
	"strings"
)

// Schema definition errors.
var (
	ErrInvalidName         = errors.New("invalid identifier")
	ErrDuplicateField      = errors.New("duplicate field name")
	ErrReservedField       = errors.New("reserved field name")
	ErrMalformedDescriptor = errors.New("malformed field descriptor")
	ErrEmptySchema         = errors.New("schema has no fields")
)

// ErrIncomplete is wrapped by every *IncompleteError.
var ErrIncomplete = errors.New("merge left fields unset")

// Dispatch errors.
var (
	ErrNotCallable = errors.New("target is not a function")
	ErrNoMethod    = errors.New("no such method")
	ErrArity       = errors.New("argument count mismatch")
	ErrArgType     = errors.New("argument type mismatch")
	ErrResultType  = errors.New("result type mismatch")
)

// SchemaError reports a schema that cannot be turned into types. Kind is one
// of the schema sentinels above.
type SchemaError struct {
	Schema string
	Field  string
	Index  int // position of Field, -1 when the error concerns the whole schema
	Kind   error
	Detail string
}

func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("params: schema ")
	if e.Schema != "" {
		fmt.Fprintf(&b, "%q", e.Schema)
	} else {
		b.WriteString("<unnamed>")
	}
	if e.Index >= 0 {
		fmt.Fprintf(&b, ": field #%d %q", e.Index, e.Field)
	}
	fmt.Fprintf(&b, ": %v", e.Kind)
	if e.Detail != "" {
		b.WriteString(" (" + e.Detail + ")")
	}
	return b.String()
}

func (e *SchemaError) Unwrap() error { return e.Kind }

// IncompleteError is returned when both sides of a WithDefaults merge leave
// the same field absent. Fields lists every such field in schema order.
type IncompleteError struct {
	Schema string
	Fields []string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("params: combine %s: no value for %s", e.Schema, strings.Join(e.Fields, ", "))
}

func (e *IncompleteError) Unwrap() error { return ErrIncomplete }

// DispatchError reports a target whose signature does not fit the schema.
// Position is the offending parameter index, or -1 for errors that concern
// the whole signature.
type DispatchError struct {
	Schema   string
	Target   string
	Position int
	Field    string
	Want     string // what the target declares
	Got      string // what the schema supplies
	Kind     error
}

func (e *DispatchError) Error() string {
	msg := fmt.Sprintf("params: dispatch %s to %s: %v", e.Schema, e.Target, e.Kind)
	switch {
	case e.Position >= 0:
		msg += fmt.Sprintf(": parameter %d (field %s) is %s, field is %s", e.Position, e.Field, e.Want, e.Got)
	case errors.Is(e.Kind, ErrResultType):
		msg += fmt.Sprintf(": target returns %s, caller wants %s", e.Want, e.Got)
	case e.Want != "" || e.Got != "":
		msg += fmt.Sprintf(": target takes %s, schema has %s", e.Want, e.Got)
	}
	return msg
}

func (e *DispatchError) Unwrap() error { return e.Kind }
