// Package output writes resolved source types as text, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"go-type-input/internal/input"
)

// Record is the serialized form of a SourceType.
type Record struct {
	Name   string `json:"name" yaml:"name"`
	Kind   string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Usage  string `json:"usage,omitempty" yaml:"usage,omitempty"`
	Member string `json:"member,omitempty" yaml:"member,omitempty"`
}

type kinded interface {
	Kind() string
}

// Records converts source types, keeping their order.
func Records(types []input.SourceType) []Record {
	records := make([]Record, 0, len(types))
	for _, st := range types {
		r := Record{Name: st.Name()}
		if k, ok := st.Handle().(kinded); ok {
			r.Kind = k.Kind()
		}
		if u := st.Usage(); u != nil {
			r.Usage = u.Context
			r.Member = u.Member
		}
		records = append(records, r)
	}
	return records
}

type styles struct {
	name, kind, usage lipgloss.Style
}

// newStyles binds the text styles to w, so color is only emitted when w
// itself is a terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		name:  r.NewStyle().Bold(true),
		kind:  r.NewStyle().Foreground(lipgloss.Color("6")),
		usage: r.NewStyle().Faint(true),
	}
}

// Write renders types in the given format ("text", "json" or "yaml").
func Write(w io.Writer, types []input.SourceType, format string) error {
	records := Records(types)
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		st := newStyles(w)
		for _, r := range records {
			line := st.name.Render(r.Name)
			if r.Kind != "" {
				line += " " + st.kind.Render(r.Kind)
			}
			if r.Usage != "" {
				line += " " + st.usage.Render("("+r.Usage+")")
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
