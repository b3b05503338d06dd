package generator

import "log/slog"

// This file houses the intermediate representation shared by the generator
// phases (collection -> analysis -> render).

// Config holds generation settings for paramgen.
type Config struct {
	Dir        string       // directory of the target package ("." relative to where the command runs)
	Output     string       // output filename, relative to Dir
	Types      []string     // Go struct types to read schemas from: "srcType" or "srcType=Name"
	SchemaFile string       // optional YAML, JSON or CUE schema description, relative to Dir
	Name       string       // inline schema name, used with Fields
	Fields     []string     // inline flat descriptor list: type, name, type, name, ...
	Package    string       // package clause override
	Command    string       // canonical invocation shown in the file header
	Version    string       // paramgen build version
	Logger     *slog.Logger // nil discards
}

// DefaultOutput is the output filename used when Config.Output is empty.
const DefaultOutput = "params_gen.go"

func (c Config) normalize() Config {
	if c.Dir == "" {
		c.Dir = "."
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	return c
}

func (c Config) hasSource() bool {
	return len(c.Types) > 0 || c.SchemaFile != "" || c.Name != "" || len(c.Fields) > 0
}

// fileModel is the root template model for a generated file.
type fileModel struct {
	Package string
	Source  string
	Command string
	Version string
	Imports []importModel
	Schemas []schemaModel
}

// importModel is one import spec of the generated file.
type importModel struct {
	Name  string // local name
	Path  string
	Alias bool // emit Name explicitly
}

// schemaModel captures everything the templates emit for one schema.
type schemaModel struct {
	Name       string // Regular type
	OptName    string // WithDefaults type
	CallName   string // typed dispatch helper
	VarName    string // package-level *params.Schema
	TypeParam  string // result type parameter of CallName
	SchemaArgs string // arguments of params.MustSchema
	ArgList    string // s.X, s.Y
	ParamTypes string // int, float64
	ResultList string // X: v0, Y: v1
	Fields     []fieldModel
	Origin     string // where the schema was declared, for diagnostics
}

// fieldModel is one field of a schema as the templates see it.
type fieldModel struct {
	Name   string // schema name
	GoName string
	Type   string
	Local  string // local variable in CombineDefaults
}
