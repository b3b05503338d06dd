package main

import (
	"github.com/spf13/cobra"

	"github.com/calumari/paramkit/internal/generator"
)

func newGenerateCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &sourceOptions{rootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the generated parameter types",
		Long: `Generate the Regular and WithDefaults types for every schema given.

Typical use is from a go:generate directive:

  //go:generate go run github.com/calumari/paramkit/cmd/paramgen generate --type=retryParams`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generator.Run(opts.config(cmd))
		},
	}
	bindSourceFlags(cmd, opts)
	cmd.Flags().StringVarP(&opts.Output, "output", "o", generator.DefaultOutput, "output filename, relative to --dir")
	return cmd
}
