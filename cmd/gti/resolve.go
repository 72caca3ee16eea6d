package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go-type-input/internal/input"
	"go-type-input/internal/output"
	"go-type-input/internal/tracer"
)

func (a *app) resolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve input types from names, patterns and an application",
		Example: `  gti resolve -p . -t example.com/shop/model.Order
  gti resolve --pattern 'example.com/shop/api.*Request' --format json
  gti resolve --app example.com/shop/api.Server --exclude example.com/shop/model.Secret`,
		Args: cobra.NoArgs,
		RunE: a.runResolve,
	}

	flags := cmd.Flags()
	flags.StringSliceP("type", "t", nil, "qualified type name to include (repeatable)")
	flags.StringSlice("pattern", nil, "glob over qualified type names (repeatable)")
	flags.String("app", "", "application entry point: a function or a type whose methods are scanned")
	flags.StringSlice("exclude", nil, "type or function excluded from the application scan (repeatable)")
	flags.Int("depth", tracer.DefaultDepth, "call depth followed from the application entry point")
	flags.StringP("format", "f", "text", "output format: text, json or yaml")
	flags.StringP("output", "o", "", "write to this file instead of stdout")
	return cmd
}

func (a *app) runResolve(cmd *cobra.Command, args []string) error {
	project, err := tracer.Load(cmd.Context(), a.cfg.Project, a.cfg.TracerOptions(a.logger))
	if err != nil {
		return err
	}

	types, err := input.Resolve(a.cfg.Request(), input.Environment{
		Types:       project,
		Inventory:   project,
		Application: project,
		Logger:      a.logger,
	})
	if err != nil {
		if errors.Is(err, input.ErrNoInput) {
			a.logger.Error("no input types found; name types, add patterns or set an application")
		}
		return err
	}
	a.logger.Info("resolved input types", "count", len(types))

	if a.cfg.Output != "" {
		return writeOutputFile(a.cfg.Output, types, a.cfg.Format)
	}
	return output.Write(cmd.OutOrStdout(), types, a.cfg.Format)
}

// writeOutputFile writes types to path. A failed close is reported unless
// writing already failed.
func writeOutputFile(path string, types []input.SourceType, format string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()
	return output.Write(f, types, format)
}
