package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-type-input/internal/glob"
)

func (a *app) globCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "glob <pattern>...",
		Short: "Show how glob patterns compile",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				p := glob.Compile(arg)
				fmt.Fprintf(out, "pattern: %s\nexpr:    %s\n", p, p.Expr())
				for _, tok := range p.Tokens() {
					fmt.Fprintf(out, "  %-11s %q\n", tok.Kind, tok.Text)
				}
			}
			return nil
		},
	}
}
