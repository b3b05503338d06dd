package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/calumari/paramkit/params"
)

func inlineConfig(dir string) Config {
	return Config{
		Dir:     dir,
		Name:    "S",
		Fields:  []string{"int", "x", "float64", "y"},
		Package: "basic",
		Command: "paramgen generate --name=S --fields=int,x,float64,y --package=basic",
		Version: "test",
	}
}

func TestRenderGolden(t *testing.T) {
	out, err := Render(inlineConfig(t.TempDir()))
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "inline_s", out)
}

func TestRunWritesRenderedFile(t *testing.T) {
	dir := t.TempDir()
	cfg := inlineConfig(dir)
	cfg.Output = "s_gen.go"
	require.NoError(t, Run(cfg))

	want, err := Render(cfg)
	require.NoError(t, err)
	got, err := os.ReadFile(filepath.Join(dir, "s_gen.go"))
	require.NoError(t, err)
	require.Equal(t, string(want), string(got))
}

func TestRenderIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "params.yaml", `
package: demo
imports:
  - time
  - net/url
schemas:
  - name: Fetch
    fields:
      - {name: target, type: "*url.URL"}
      - {name: timeout, type: time.Duration}
`)
	cfg := Config{Dir: dir, SchemaFile: "params.yaml"}
	first, err := Render(cfg)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Render(cfg)
		require.NoError(t, err)
		require.Equal(t, string(first), string(again))
	}
}

func TestRenderSingleField(t *testing.T) {
	out, err := Render(Config{Dir: t.TempDir(), Name: "One", Fields: []string{"string", "name"}, Package: "demo"})
	require.NoError(t, err)
	src := string(out)
	require.Contains(t, src, "func (s One) Args() []any { return []any{s.Name} }")
	require.Contains(t, src, "Name opt.Value[string]")
	require.Contains(t, src, "return One{Name: v0}, nil")
	require.Contains(t, src, "func CallOne[Ret any](s One, fn func(string) Ret) Ret")
}

func TestRenderPicksFreeTypeParam(t *testing.T) {
	out, err := Render(Config{Dir: t.TempDir(), Name: "Wrap", Fields: []string{"Ret", "value"}, Package: "demo"})
	require.NoError(t, err)
	require.Contains(t, string(out), "func CallWrap[Result any](s Wrap, fn func(Ret) Result) Result")
}

func TestRenderTypeParamAvoidsSchemaName(t *testing.T) {
	out, err := Render(Config{Dir: t.TempDir(), Name: "Ret", Fields: []string{"int", "x"}, Package: "demo"})
	require.NoError(t, err)
	src := string(out)
	require.Contains(t, src, "func CallRet[Result any](s Ret, fn func(int) Result) Result")
	require.NotContains(t, src, "[Ret any]")
}

func TestSchemaFiles(t *testing.T) {
	files := map[string]string{
		"params.yaml": `
package: demo
imports:
  - time
schemas:
  - name: Retry
    fields:
      - name: attempts
        type: int
      - name: backoff
        type: time.Duration
`,
		"params.json": `{
  "package": "demo",
  "imports": ["time"],
  "schemas": [
    {"name": "Retry", "fields": [
      {"name": "attempts", "type": "int"},
      {"name": "backoff", "type": "time.Duration"}
    ]}
  ]
}`,
		"params.cue": `
schemas: [{
	name: "Retry"
	fields: [
		{name: "attempts", "type": "int"},
		{name: "backoff", "type": "time.Duration"},
	]
}]
imports: ["time"]
"package": "demo"
`,
	}
	for name, body := range files {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, name, body)

			schemas, err := Check(Config{Dir: dir, SchemaFile: name})
			require.NoError(t, err)
			require.Len(t, schemas, 1)
			require.Equal(t, "Retry(attempts int, backoff time.Duration)", schemas[0].String())

			out, err := Render(Config{Dir: dir, SchemaFile: name})
			require.NoError(t, err)
			src := string(out)
			require.Contains(t, src, "package demo")
			require.Contains(t, src, `"time"`)
			require.Contains(t, src, "opt.Value[time.Duration]")
			require.Contains(t, src, "func CallRetry[Ret any](s Retry, fn func(int, time.Duration) Ret) Ret")
		})
	}
}

func TestSchemaFileImportAlias(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "params.yaml", `
package: demo
imports:
  - stdtime time
  - net/url
schemas:
  - name: Job
    fields:
      - {name: after, type: stdtime.Duration}
`)
	out, err := Render(Config{Dir: dir, SchemaFile: "params.yaml"})
	require.NoError(t, err)
	src := string(out)
	require.Contains(t, src, `stdtime "time"`)
	require.NotContains(t, src, `"net/url"`)
}

func TestSchemaErrors(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
		cfg  Config
		kind error
		msg  string
	}{
		{
			name: "duplicate field in file",
			file: "params.yaml",
			body: "package: demo\nschemas:\n  - name: S\n    fields:\n      - {name: x, type: int}\n      - {name: x, type: string}\n",
			kind: params.ErrDuplicateField,
		},
		{
			name: "reserved field",
			file: "params.yaml",
			body: "package: demo\nschemas:\n  - name: S\n    fields:\n      - {name: combine, type: int}\n",
			kind: params.ErrReservedField,
		},
		{
			name: "type without name",
			file: "params.yaml",
			body: "package: demo\nschemas:\n  - name: S\n    fields:\n      - {type: int}\n",
			kind: params.ErrMalformedDescriptor,
		},
		{
			name: "not a type expression",
			file: "params.yaml",
			body: "package: demo\nschemas:\n  - name: S\n    fields:\n      - {name: x, type: \"1 + 2\"}\n",
			kind: params.ErrMalformedDescriptor,
		},
		{
			name: "undeclared import",
			file: "params.yaml",
			body: "package: demo\nschemas:\n  - name: S\n    fields:\n      - {name: at, type: time.Time}\n",
			msg:  "package time is not in imports",
		},
		{
			name: "unknown key",
			file: "params.yaml",
			body: "package: demo\nschemaz: []\n",
			msg:  "field schemaz not found",
		},
		{
			name: "unsupported extension",
			file: "params.toml",
			body: "",
			msg:  "unsupported schema file extension",
		},
		{
			name: "schema declared twice",
			file: "params.yaml",
			body: "package: demo\nschemas:\n  - name: S\n    fields:\n      - {name: x, type: int}\n",
			cfg:  Config{Name: "S", Fields: []string{"int", "y"}},
			kind: params.ErrInvalidName,
			msg:  "declared twice",
		},
		{
			name: "generated names collide",
			file: "params.yaml",
			body: "package: demo\nschemas:\n  - name: S\n    fields:\n      - {name: x, type: int}\n  - name: SWithDefaults\n    fields:\n      - {name: y, type: int}\n",
			kind: params.ErrInvalidName,
			msg:  "also produced by schema S",
		},
		{
			name: "schema named like a generated local",
			file: "params.yaml",
			body: "package: demo\nschemas:\n  - name: fallback\n    fields:\n      - {name: x, type: int}\n",
			kind: params.ErrInvalidName,
		},
		{
			name: "inline fields without name",
			cfg:  Config{Fields: []string{"int", "x"}, Package: "demo"},
			msg:  "--fields requires --name",
		},
		{
			name: "inline qualified type",
			cfg:  Config{Name: "S", Fields: []string{"time.Duration", "d"}, Package: "demo"},
			kind: params.ErrMalformedDescriptor,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			cfg := tt.cfg
			cfg.Dir = dir
			if tt.file != "" {
				writeFile(t, dir, tt.file, tt.body)
				cfg.SchemaFile = tt.file
			}
			out, err := Render(cfg)
			require.Error(t, err)
			require.Nil(t, out)
			if tt.kind != nil {
				require.ErrorIs(t, err, tt.kind)
			}
			if tt.msg != "" {
				require.ErrorContains(t, err, tt.msg)
			}
			_, statErr := os.Stat(filepath.Join(dir, DefaultOutput))
			require.True(t, os.IsNotExist(statErr))
		})
	}
}

func TestNoSource(t *testing.T) {
	_, err := Render(Config{Dir: t.TempDir(), Package: "demo"})
	require.ErrorContains(t, err, "no schemas provided")
}

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}
