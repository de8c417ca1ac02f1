package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aescanero/rds-guard/internal/config"
)

func TestRunEnvDefaults(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(nil, config.Environ{}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "export FM_FREQUENCY='103.5M'\n")
	assert.Contains(t, out, "export PUBLISH_MODE='essential'\n")
	assert.Contains(t, out, "export EVENT_RETENTION_DAYS='30'\n")
}

func TestRunJSONGroup(t *testing.T) {
	var stdout, stderr bytes.Buffer

	environ := config.Environ{"MQTT_ENABLED": "true", "MQTT_PORT": "8883", "MQTT_HOST": "broker"}
	code := run([]string{"--format", "json", "-g", "mqtt"}, environ, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Len(t, got, 9)
	assert.Equal(t, true, got["MQTT_ENABLED"])
	assert.Equal(t, float64(8883), got["MQTT_PORT"])
	assert.Equal(t, "rds-guard", got["MQTT_CLIENT_ID"])

	assert.Contains(t, stderr.String(), "rds/status")
}

func TestRunSecrets(t *testing.T) {
	environ := config.Environ{"MQTT_PASSWORD": "pw"}

	var hidden, shown, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"-g", "mqtt"}, environ, &hidden, &stderr))
	require.Equal(t, 0, run([]string{"-g", "mqtt", "--show-secrets"}, environ, &shown, &stderr))

	assert.Contains(t, hidden.String(), "export MQTT_PASSWORD=''\n")
	assert.Contains(t, shown.String(), "export MQTT_PASSWORD='pw'\n")
}

func TestRunText(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-f", "text"}, config.Environ{"MQTT_PASSWORD": "pw"}, &stdout, &stderr)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Config{Frequency=103.5M")
	assert.NotContains(t, stdout.String(), "pw")
}

func TestRunWarnings(t *testing.T) {
	var stdout, stderr bytes.Buffer

	environ := config.Environ{"PUBLISH_MODE": "loud", "MQTT_ENABLED": "1", "MQTT_TOPIC_PREFIX": "rds/#"}
	require.Equal(t, 0, run(nil, environ, &stdout, &stderr))

	logs := stderr.String()
	assert.Contains(t, logs, "unrecognized publish mode")
	assert.Contains(t, logs, "mqtt enabled without MQTT_HOST")
	assert.Contains(t, logs, "mqtt topic prefix is not publishable")
}

func TestRunBadFlags(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 1, run([]string{"--group", "tuner"}, config.Environ{}, &stdout, &stderr))
	assert.Equal(t, 1, run([]string{"--format", "yaml"}, config.Environ{}, &stdout, &stderr))
	assert.Equal(t, 1, run([]string{"--nope"}, config.Environ{}, &stdout, &stderr))
	assert.Equal(t, 0, run([]string{"--help"}, config.Environ{}, &stdout, &stderr))
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer

	require.Equal(t, 0, run([]string{"--version"}, config.Environ{}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "rds-config dev")
}
