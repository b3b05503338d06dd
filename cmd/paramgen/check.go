package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calumari/paramkit/internal/generator"
)

func newCheckCommand(rootOpts *rootOptions) *cobra.Command {
	opts := &sourceOptions{rootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate schemas without writing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schemas, err := generator.Check(opts.config(cmd))
			if err != nil {
				return err
			}
			for _, s := range schemas {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), s); err != nil {
					return err
				}
			}
			return nil
		},
	}
	bindSourceFlags(cmd, opts)
	return cmd
}
