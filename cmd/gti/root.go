package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go-type-input/internal/config"
)

// flagKeys maps flag names to config keys. Flags are bound for the command
// being executed only, since several subcommands share keys.
var flagKeys = map[string]string{
	"project":      "project",
	"log-level":    "log_level",
	"allow-errors": "allow_errors",
	"type":         "types",
	"pattern":      "patterns",
	"app":          "app",
	"exclude":      "excluded",
	"depth":        "depth",
	"format":       "format",
	"output":       "output",
}

// app carries the state shared by all subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	logger  *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "gti",
		Short: "Resolve the Go types a code generator should process",
		Long: `gti loads a Go project and resolves the set of input types for code generation.
Types can be named explicitly, selected with glob patterns over qualified names
(* stays within one segment, ** crosses segments), or discovered from an
application entry point.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.loadConfig,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: .gti.yaml, then ~/.config/gti/config.yaml)")
	flags.StringP("project", "p", ".", "Go project root directory")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.Bool("allow-errors", false, "keep packages that fail to type-check")

	root.AddCommand(a.resolveCmd())
	root.AddCommand(a.typesCmd())
	root.AddCommand(a.globCmd())
	return root
}

// loadConfig merges defaults, config file, GTI_* environment variables and
// flags, in increasing priority.
func (a *app) loadConfig(cmd *cobra.Command, args []string) error {
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := a.v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	defaults := config.Defaults()
	a.v.SetDefault("project", defaults.Project)
	a.v.SetDefault("depth", defaults.Depth)
	a.v.SetDefault("format", defaults.Format)
	a.v.SetDefault("log_level", defaults.LogLevel)

	a.v.SetEnvPrefix("GTI")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else if _, err := os.Stat(".gti.yaml"); err == nil {
		a.v.SetConfigFile(".gti.yaml")
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(filepath.Join(home, ".config", "gti"))
		}
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "gti",
		Level:  a.cfg.Level(),
	})
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("using config file", "path", used)
	}
	return nil
}
