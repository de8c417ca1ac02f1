package config

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsNamesUnique(t *testing.T) {
	settings := Resolve(Environ{}).Settings()
	require.Len(t, settings, 23)

	seen := make(map[string]bool)
	for _, s := range settings {
		assert.False(t, seen[s.Name], "duplicate setting %s", s.Name)
		seen[s.Name] = true
	}
}

func TestSettingsDefaults(t *testing.T) {
	for _, s := range Resolve(Environ{}).Settings() {
		assert.True(t, s.IsDefault(), "%s resolved to %v, default %v", s.Name, s.Value, s.Default)
	}
}

func TestSettingsKinds(t *testing.T) {
	for _, s := range Resolve(Environ{}).Settings() {
		switch s.Kind {
		case KindString:
			assert.IsType(t, "", s.Value, s.Name)
		case KindBool:
			assert.IsType(t, false, s.Value, s.Name)
		case KindInt:
			assert.IsType(t, 0, s.Value, s.Name)
		default:
			t.Errorf("%s has unknown kind %q", s.Name, s.Kind)
		}
	}
}

func TestSettingsRoundTripThroughEnviron(t *testing.T) {
	cfg := Resolve(Environ{
		"FM_FREQUENCY":    "88.0M",
		"REDSEA_SHOW_RAW": "YES",
		"MQTT_PORT":       "1999",
		"PUBLISH_MODE":    "ALL",
	})

	environ := Environ{}
	for _, s := range cfg.Settings() {
		environ[s.Name] = s.Text()
	}

	assert.Equal(t, cfg, Resolve(environ))
}

func TestParseGroup(t *testing.T) {
	g, err := ParseGroup("MQTT")
	require.NoError(t, err)
	assert.Equal(t, GroupMQTT, g)

	g, err = ParseGroup("web-ui")
	require.NoError(t, err)
	assert.Equal(t, GroupWebUI, g)

	_, err = ParseGroup("tuner")
	assert.Error(t, err)
}

func TestRenderEnv(t *testing.T) {
	cfg := Resolve(Environ{"FM_FREQUENCY": "it's", "MQTT_PASSWORD": "pw"})

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, cfg.Settings(), RenderOptions{Format: FormatEnv}))

	out := buf.String()
	assert.Contains(t, out, "export FM_FREQUENCY='it'\\''s'\n")
	assert.Contains(t, out, "export MQTT_PORT='1883'\n")
	assert.Contains(t, out, "export REDSEA_SHOW_PARTIAL='true'\n")
	assert.Contains(t, out, "export MQTT_PASSWORD=''\n")
	assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 23)
}

func TestRenderShowSecrets(t *testing.T) {
	cfg := Resolve(Environ{"MQTT_PASSWORD": "pw"})

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, cfg.Settings(), RenderOptions{
		Format:      FormatEnv,
		Groups:      []Group{GroupMQTT},
		ShowSecrets: true,
	}))

	out := buf.String()
	assert.Contains(t, out, "export MQTT_PASSWORD='pw'\n")
	assert.NotContains(t, out, "FM_FREQUENCY")
}

func TestRenderJSON(t *testing.T) {
	cfg := Resolve(Environ{"MQTT_ENABLED": "on", "MQTT_PASSWORD": "pw"})

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, cfg.Settings(), RenderOptions{
		Format: FormatJSON,
		Groups: []Group{GroupMQTT, GroupWebUI},
	}))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, true, got["MQTT_ENABLED"])
	assert.Equal(t, float64(1883), got["MQTT_PORT"])
	assert.Equal(t, "", got["MQTT_PASSWORD"])
	assert.Equal(t, float64(8022), got["WEB_UI_PORT"])
	assert.NotContains(t, got, "FM_FREQUENCY")
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, nil, RenderOptions{Format: "yaml"})
	assert.Error(t, err)
}
