package config

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Format selects the output encoding of Render
type Format string

const (
	FormatEnv  Format = "env"
	FormatJSON Format = "json"
)

// RenderOptions controls which settings Render writes
type RenderOptions struct {
	Format      Format
	Groups      []Group // empty means all groups
	ShowSecrets bool
}

// Render writes settings for consumption by shell entrypoints or tooling.
// Secret values are blanked unless ShowSecrets is set.
func Render(w io.Writer, settings []Setting, opts RenderOptions) error {
	selected := filterGroups(settings, opts.Groups)

	switch opts.Format {
	case FormatEnv, "":
		for _, s := range selected {
			value := s.Text()
			if s.Secret && !opts.ShowSecrets {
				value = ""
			}
			if _, err := fmt.Fprintf(w, "export %s=%s\n", s.Name, shellQuote(value)); err != nil {
				return fmt.Errorf("failed to write %s: %w", s.Name, err)
			}
		}
		return nil

	case FormatJSON:
		out := make(map[string]interface{}, len(selected))
		for _, s := range selected {
			value := s.Value
			if s.Secret && !opts.ShowSecrets {
				value = ""
			}
			out[s.Name] = value
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("failed to encode settings: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unknown format: %s", opts.Format)
	}
}

func filterGroups(settings []Setting, groups []Group) []Setting {
	if len(groups) == 0 {
		return settings
	}
	want := make(map[Group]bool, len(groups))
	for _, g := range groups {
		want[g] = true
	}
	selected := make([]Setting, 0, len(settings))
	for _, s := range settings {
		if want[s.Group] {
			selected = append(selected, s)
		}
	}
	return selected
}

// shellQuote wraps s in single quotes for POSIX shells
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
