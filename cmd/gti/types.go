package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-type-input/internal/glob"
	"go-type-input/internal/tracer"
)

func (a *app) typesCmd() *cobra.Command {
	var explain bool
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the type names declared in the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := tracer.Load(cmd.Context(), a.cfg.Project, a.cfg.TracerOptions(a.logger))
			if err != nil {
				return err
			}
			names := project.AllNames()
			if len(a.cfg.Patterns) == 0 {
				for _, name := range names {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}

			patterns := glob.CompileAll(a.cfg.Patterns)
			for _, name := range glob.Filter(names, patterns) {
				if !explain {
					fmt.Fprintln(cmd.OutOrStdout(), name)
					continue
				}
				p, _ := glob.FirstMatch(name, patterns)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, p)
			}
			return nil
		},
	}
	cmd.Flags().StringSlice("pattern", nil, "only list names matching this glob (repeatable)")
	cmd.Flags().BoolVar(&explain, "explain", false, "print the first pattern matching each name")
	return cmd
}
