// Package topics derives MQTT topic names from MQTT_TOPIC_PREFIX.
//
// Decoded fields are published under <prefix>/<pi>/<field>, where pi is the
// station's program identification code as 0xABCD and nested fields become
// nested levels (other_network.ta -> other_network/ta). Station-independent
// topics sit directly under the prefix. An empty prefix drops the leading
// level instead of producing a leading slash.
package topics

import (
	"fmt"
	"strings"

	"github.com/aescanero/rds-guard/internal/eval/template"
)

const (
	fieldTemplate  = "{{#if prefix}}{{{prefix}}}/{{/if}}{{{hex pi}}}/{{{path field}}}"
	globalTemplate = "{{#if prefix}}{{{prefix}}}/{{/if}}{{{name}}}"
)

// Station-independent topic names
const (
	StatusTopic = "status"
	AlertTopic  = "alert"
	RawTopic    = "raw"
)

// Layout renders topic names for one prefix
type Layout struct {
	prefix string
	engine *template.Engine
}

// New creates a layout. MQTT forbids wildcards in publish topics, so a prefix
// containing '+' or '#' is rejected here rather than by the broker.
func New(prefix string) (*Layout, error) {
	if err := checkLevel(prefix); err != nil {
		return nil, fmt.Errorf("invalid topic prefix: %w", err)
	}

	return &Layout{
		prefix: strings.TrimSuffix(prefix, "/"),
		engine: template.NewEngine(),
	}, nil
}

// Prefix returns the prefix without a trailing slash
func (l *Layout) Prefix() string {
	return l.prefix
}

// Field returns the topic for a decoded field of station pi
func (l *Layout) Field(pi uint16, field string) (string, error) {
	if field == "" {
		return "", fmt.Errorf("field is required")
	}
	if err := checkLevel(field); err != nil {
		return "", fmt.Errorf("invalid field %q: %w", field, err)
	}

	return l.engine.Render(fieldTemplate, map[string]interface{}{
		"prefix": l.prefix,
		"pi":     pi,
		"field":  field,
	})
}

// Status returns the topic for periodic status reports
func (l *Layout) Status() (string, error) {
	return l.global(StatusTopic)
}

// Alert returns the topic for traffic announcement alerts
func (l *Layout) Alert() (string, error) {
	return l.global(AlertTopic)
}

// Raw returns the topic for undecoded group data
func (l *Layout) Raw() (string, error) {
	return l.global(RawTopic)
}

func (l *Layout) global(name string) (string, error) {
	return l.engine.Render(globalTemplate, map[string]interface{}{
		"prefix": l.prefix,
		"name":   name,
	})
}

func checkLevel(s string) error {
	if strings.ContainsAny(s, "+#") {
		return fmt.Errorf("wildcards are not allowed")
	}
	if strings.ContainsRune(s, 0) {
		return fmt.Errorf("NUL is not allowed")
	}
	return nil
}
