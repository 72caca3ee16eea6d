// Package config holds the settings shared by the gti CLI and server.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"go-type-input/internal/input"
	"go-type-input/internal/tracer"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	ErrNoProject     = errors.New("project directory is required")
	ErrInvalidFormat = errors.New("invalid output format")
	ErrInvalidLevel  = errors.New("invalid log level")
)

// Config is the full gti configuration as read by viper.
type Config struct {
	Project     string   `mapstructure:"project" yaml:"project"`
	Types       []string `mapstructure:"types" yaml:"types,omitempty"`
	Patterns    []string `mapstructure:"patterns" yaml:"patterns,omitempty"`
	App         string   `mapstructure:"app" yaml:"app,omitempty"`
	Excluded    []string `mapstructure:"excluded" yaml:"excluded,omitempty"`
	Depth       int      `mapstructure:"depth" yaml:"depth"`
	AllowErrors bool     `mapstructure:"allow_errors" yaml:"allow_errors"`
	Format      string   `mapstructure:"format" yaml:"format"`
	Output      string   `mapstructure:"output" yaml:"output,omitempty"`
	LogLevel    string   `mapstructure:"log_level" yaml:"log_level"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Project:  ".",
		Depth:    tracer.DefaultDepth,
		Format:   FormatText,
		LogLevel: "info",
	}
}

// Validate checks the settings that do not depend on the project contents.
func (c Config) Validate() error {
	if c.Project == "" {
		return ErrNoProject
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %q (want text, json or yaml)", ErrInvalidFormat, c.Format)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLevel, c.LogLevel)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Request builds the discovery request. Empty lists mean the strategy was not
// asked for.
func (c Config) Request() input.Request {
	req := input.Request{
		Application: c.App,
		Excluded:    c.Excluded,
	}
	if len(c.Types) > 0 {
		req.Names = c.Types
	}
	if len(c.Patterns) > 0 {
		req.Patterns = c.Patterns
	}
	return req
}

// TracerOptions returns the project loading options for this configuration.
func (c Config) TracerOptions(logger *log.Logger) tracer.Options {
	depth := c.Depth
	if depth == 0 {
		// tracer treats zero as "use the default"; zero here means no recursion.
		depth = -1
	}
	return tracer.Options{
		AllowErrors: c.AllowErrors,
		Depth:       depth,
		Logger:      logger,
	}
}
