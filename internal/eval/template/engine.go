package template

import (
	"fmt"
	"strings"
	"sync"

	"github.com/aymerick/raymond"
)

// raymond keeps helpers in a process-wide registry and panics on duplicates
var registerOnce sync.Once

// Engine renders Handlebars templates
type Engine struct {
	cache map[string]*raymond.Template
	mu    sync.RWMutex
}

// NewEngine creates a new template engine
func NewEngine() *Engine {
	registerOnce.Do(registerHelpers)

	return &Engine{
		cache: make(map[string]*raymond.Template),
	}
}

// Render renders a template with the given data
func (e *Engine) Render(templateStr string, data interface{}) (string, error) {
	tmpl, err := e.getTemplate(templateStr)
	if err != nil {
		return "", fmt.Errorf("failed to compile template: %w", err)
	}

	result, err := tmpl.Exec(data)
	if err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}

	return result, nil
}

// getTemplate gets a compiled template from cache or compiles it
func (e *Engine) getTemplate(templateStr string) (*raymond.Template, error) {
	e.mu.RLock()
	if tmpl, ok := e.cache[templateStr]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if tmpl, ok := e.cache[templateStr]; ok {
		return tmpl, nil
	}

	tmpl, err := raymond.Parse(templateStr)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	e.cache[templateStr] = tmpl

	return tmpl, nil
}

// ValidateTemplate validates a template without rendering it
func (e *Engine) ValidateTemplate(templateStr string) error {
	_, err := raymond.Parse(templateStr)
	return err
}

// registerHelpers registers the topic helpers
func registerHelpers() {
	// hex helper - program identification code as 0xABCD
	raymond.RegisterHelper("hex", func(value interface{}) string {
		switch v := value.(type) {
		case uint16:
			return fmt.Sprintf("0x%04X", v)
		case int:
			return fmt.Sprintf("0x%04X", v)
		case uint:
			return fmt.Sprintf("0x%04X", v)
		default:
			return fmt.Sprint(v)
		}
	})

	// path helper - dotted field path as topic levels
	raymond.RegisterHelper("path", func(value string) string {
		return strings.ReplaceAll(value, ".", "/")
	})

	// lowercase helper
	raymond.RegisterHelper("lowercase", func(value string) string {
		return strings.ToLower(value)
	})
}
