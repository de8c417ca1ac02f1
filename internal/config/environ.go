package config

import (
	"os"
	"strings"
)

// Environ is a snapshot of environment variables. A key that is present with
// an empty value is distinct from an absent key.
type Environ map[string]string

// OSEnviron snapshots the process environment.
func OSEnviron() Environ {
	return ParseEnviron(os.Environ())
}

// ParseEnviron builds an Environ from KEY=value pairs. Entries without '='
// are ignored; later duplicates win.
func ParseEnviron(pairs []string) Environ {
	environ := make(Environ, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			continue
		}
		environ[key] = value
	}
	return environ
}

// Lookup returns the raw value of name and whether it is set
func (e Environ) Lookup(name string) (string, bool) {
	value, ok := e[name]
	return value, ok
}

// String returns the value verbatim, or def when name is absent
func (e Environ) String(name, def string) string {
	if value, ok := e.Lookup(name); ok {
		return value
	}
	return def
}

// Lower is String, lower-cased
func (e Environ) Lower(name, def string) string {
	return strings.ToLower(e.String(name, def))
}

// Bool coerces the value with parseBool. When name is absent the default is
// run through the same coercion.
func (e Environ) Bool(name string, def bool) bool {
	return parseBool(e.String(name, formatBool(def)))
}

// Int coerces the value with parseInt
func (e Environ) Int(name string, def int) int {
	value, ok := e.Lookup(name)
	return parseInt(value, ok, def)
}
