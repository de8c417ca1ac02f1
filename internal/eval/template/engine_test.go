package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHelpers(t *testing.T) {
	e := NewEngine()

	out, err := e.Render("{{{prefix}}}/{{{hex pi}}}/{{{path field}}}", map[string]interface{}{
		"prefix": "rds",
		"pi":     uint16(0xd3c2),
		"field":  "other_network.ta",
	})
	require.NoError(t, err)
	assert.Equal(t, "rds/0xD3C2/other_network/ta", out)

	out, err = e.Render("{{{lowercase name}}}", map[string]interface{}{"name": "RadioText"})
	require.NoError(t, err)
	assert.Equal(t, "radiotext", out)
}

func TestNewEngineTwice(t *testing.T) {
	assert.NotPanics(t, func() {
		NewEngine()
		NewEngine()
	})
}

func TestRenderCaches(t *testing.T) {
	e := NewEngine()

	for i := 0; i < 3; i++ {
		_, err := e.Render("{{{a}}}", map[string]interface{}{"a": "x"})
		require.NoError(t, err)
	}
	assert.Len(t, e.cache, 1)
}

func TestRenderParseError(t *testing.T) {
	e := NewEngine()

	_, err := e.Render("{{#if a}}unterminated", nil)
	assert.Error(t, err)
	assert.Error(t, e.ValidateTemplate("{{#if a}}unterminated"))
	assert.NoError(t, e.ValidateTemplate("{{{a}}}"))
}
