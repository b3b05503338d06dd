package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calumari/paramkit/internal/generator"
)

// rootOptions holds global flags for all commands.
type rootOptions struct {
	Verbose bool
	Version string
}

// sourceOptions holds the flags shared by generate and check.
type sourceOptions struct {
	*rootOptions
	Dir        string
	Output     string
	Types      []string
	SchemaFile string
	Name       string
	Fields     []string
	Package    string
}

func newRootCommand(version string) *cobra.Command {
	opts := &rootOptions{Version: version}

	cmd := &cobra.Command{
		Use:           "paramgen",
		Short:         "Generate parameter structs with defaults",
		Long:          "paramgen turns a parameter schema into a Regular struct, a WithDefaults struct of optional overrides, merge methods between them and a typed dispatch helper.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(newGenerateCommand(opts))
	cmd.AddCommand(newCheckCommand(opts))
	cmd.AddCommand(newVersionCommand(opts))
	return cmd
}

func bindSourceFlags(cmd *cobra.Command, opts *sourceOptions) {
	cmd.Flags().StringVar(&opts.Dir, "dir", ".", "directory of the target package")
	cmd.Flags().StringSliceVar(&opts.Types, "type", nil, "struct types to read schemas from (srcType or srcType=Name)")
	cmd.Flags().StringVar(&opts.SchemaFile, "schema", "", "schema description file (.yaml, .json or .cue)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "inline schema name")
	cmd.Flags().StringSliceVar(&opts.Fields, "fields", nil, "inline descriptors: type,name,type,name,...")
	cmd.Flags().StringVar(&opts.Package, "package", "", "package name of the generated file")
}

func (o *sourceOptions) config(cmd *cobra.Command) generator.Config {
	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}
	return generator.Config{
		Dir:        o.Dir,
		Output:     o.Output,
		Types:      trimAll(o.Types),
		SchemaFile: o.SchemaFile,
		Name:       o.Name,
		Fields:     trimAll(o.Fields),
		Package:    o.Package,
		Command:    o.command(cmd.Name()),
		Version:    o.Version,
		Logger:     slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})),
	}
}

// command builds a canonical command line for the generated header instead
// of raw argv, which may include build cache paths.
func (o *sourceOptions) command(sub string) string {
	parts := []string{"paramgen", sub}
	if o.Dir != "" && o.Dir != "." {
		parts = append(parts, "--dir="+o.Dir)
	}
	if len(o.Types) > 0 {
		parts = append(parts, "--type="+strings.Join(trimAll(o.Types), ","))
	}
	if o.SchemaFile != "" {
		parts = append(parts, "--schema="+o.SchemaFile)
	}
	if o.Name != "" {
		parts = append(parts, "--name="+o.Name)
	}
	if len(o.Fields) > 0 {
		parts = append(parts, "--fields="+strings.Join(trimAll(o.Fields), ","))
	}
	if o.Package != "" {
		parts = append(parts, "--package="+o.Package)
	}
	if o.Output != "" && o.Output != generator.DefaultOutput {
		parts = append(parts, "--output="+o.Output)
	}
	return strings.Join(parts, " ")
}

func trimAll(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func newVersionCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the paramgen version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "paramgen", opts.Version)
			return err
		},
	}
}
