package config

import (
	"fmt"
)

// Defaults for every setting, as documented for the deployment.
const (
	DefaultFMFrequency     = "103.5M"
	DefaultRTLGain         = "8"
	DefaultPPMCorrection   = "0"
	DefaultRTLDeviceSerial = ""
	DefaultRTLDeviceIndex  = "0"

	DefaultRedseaShowPartial = true
	DefaultRedseaShowRaw     = false

	DefaultMQTTEnabled     = false
	DefaultMQTTHost        = ""
	DefaultMQTTPort        = 1883
	DefaultMQTTUser        = ""
	DefaultMQTTPassword    = ""
	DefaultMQTTTopicPrefix = "rds"
	DefaultMQTTClientID    = "rds-guard"
	DefaultMQTTQoS         = 1
	DefaultMQTTRetainState = true

	DefaultPublishMode    = PublishEssential
	DefaultPublishRaw     = false
	DefaultStatusInterval = 30

	DefaultWebUIPort          = 8022
	DefaultEventRetentionDays = 30
)

// PublishMode selects which decoded RDS fields the MQTT publisher emits.
type PublishMode string

const (
	// PublishEssential publishes TA/TP flags, RadioText, PTY changes and EON TA events
	PublishEssential PublishMode = "essential"

	// PublishAll publishes every decoded field under its own topic
	PublishAll PublishMode = "all"
)

// Known reports whether the mode is one the publisher recognizes.
// Resolution never rejects an unknown mode.
func (m PublishMode) Known() bool {
	return m == PublishEssential || m == PublishAll
}

// Config holds the resolved configuration for the RDS monitoring pipeline.
// It is built once at startup and never modified afterwards.
type Config struct {
	RTLSDR     RTLSDRConfig
	Redsea     RedseaConfig
	MQTT       MQTTConfig
	Publishing PublishingConfig
	WebUI      WebUIConfig

	// Runtime holds process-level settings (logging) that no collaborator reads
	Runtime RuntimeConfig
}

// RTLSDRConfig is read by the SDR tuner.
type RTLSDRConfig struct {
	Frequency     string
	Gain          string
	PPMCorrection string
	DeviceSerial  string
	DeviceIndex   string
}

// RedseaConfig is read by the RDS decoder.
type RedseaConfig struct {
	ShowPartial bool
	ShowRaw     bool
}

// MQTTConfig is read by the MQTT publisher.
type MQTTConfig struct {
	Enabled     bool
	Host        string
	Port        int
	User        string
	Password    string
	TopicPrefix string
	ClientID    string
	QoS         int
	RetainState bool
}

// PublishingConfig controls what the publisher emits and how often.
type PublishingConfig struct {
	Mode           PublishMode
	Raw            bool
	StatusInterval int // seconds
}

// WebUIConfig is read by the web UI.
type WebUIConfig struct {
	Port               int
	EventRetentionDays int
}

// Load resolves configuration from the process environment
func Load() *Config {
	return Resolve(OSEnviron())
}

// Resolve builds a Config from an environment snapshot. Absent or malformed
// values fall back to their defaults; resolution never fails.
func Resolve(environ Environ) *Config {
	return &Config{
		RTLSDR: RTLSDRConfig{
			Frequency:     environ.String("FM_FREQUENCY", DefaultFMFrequency),
			Gain:          environ.String("RTL_GAIN", DefaultRTLGain),
			PPMCorrection: environ.String("PPM_CORRECTION", DefaultPPMCorrection),
			DeviceSerial:  environ.String("RTL_DEVICE_SERIAL", DefaultRTLDeviceSerial),
			DeviceIndex:   environ.String("RTL_DEVICE_INDEX", DefaultRTLDeviceIndex),
		},
		Redsea: RedseaConfig{
			ShowPartial: environ.Bool("REDSEA_SHOW_PARTIAL", DefaultRedseaShowPartial),
			ShowRaw:     environ.Bool("REDSEA_SHOW_RAW", DefaultRedseaShowRaw),
		},
		MQTT: MQTTConfig{
			Enabled:     environ.Bool("MQTT_ENABLED", DefaultMQTTEnabled),
			Host:        environ.String("MQTT_HOST", DefaultMQTTHost),
			Port:        environ.Int("MQTT_PORT", DefaultMQTTPort),
			User:        environ.String("MQTT_USER", DefaultMQTTUser),
			Password:    environ.String("MQTT_PASSWORD", DefaultMQTTPassword),
			TopicPrefix: environ.String("MQTT_TOPIC_PREFIX", DefaultMQTTTopicPrefix),
			ClientID:    environ.String("MQTT_CLIENT_ID", DefaultMQTTClientID),
			QoS:         environ.Int("MQTT_QOS", DefaultMQTTQoS),
			RetainState: environ.Bool("MQTT_RETAIN_STATE", DefaultMQTTRetainState),
		},
		Publishing: PublishingConfig{
			Mode:           PublishMode(environ.Lower("PUBLISH_MODE", string(DefaultPublishMode))),
			Raw:            environ.Bool("PUBLISH_RAW", DefaultPublishRaw),
			StatusInterval: environ.Int("STATUS_INTERVAL", DefaultStatusInterval),
		},
		WebUI: WebUIConfig{
			Port:               environ.Int("WEB_UI_PORT", DefaultWebUIPort),
			EventRetentionDays: environ.Int("EVENT_RETENTION_DAYS", DefaultEventRetentionDays),
		},
		Runtime: resolveRuntime(environ),
	}
}

// String returns a string representation of the config (without sensitive data)
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Frequency=%s, Gain=%s, PPM=%s, DeviceSerial=%q, DeviceIndex=%s, "+
			"ShowPartial=%v, ShowRaw=%v, MQTTEnabled=%v, MQTTHost=%q, MQTTPort=%d, MQTTUser=%q, "+
			"TopicPrefix=%s, ClientID=%s, QoS=%d, RetainState=%v, PublishMode=%s, PublishRaw=%v, "+
			"StatusInterval=%ds, WebUIPort=%d, RetentionDays=%d, LogLevel=%s}",
		c.RTLSDR.Frequency,
		c.RTLSDR.Gain,
		c.RTLSDR.PPMCorrection,
		c.RTLSDR.DeviceSerial,
		c.RTLSDR.DeviceIndex,
		c.Redsea.ShowPartial,
		c.Redsea.ShowRaw,
		c.MQTT.Enabled,
		c.MQTT.Host,
		c.MQTT.Port,
		c.MQTT.User,
		c.MQTT.TopicPrefix,
		c.MQTT.ClientID,
		c.MQTT.QoS,
		c.MQTT.RetainState,
		c.Publishing.Mode,
		c.Publishing.Raw,
		c.Publishing.StatusInterval,
		c.WebUI.Port,
		c.WebUI.EventRetentionDays,
		c.Runtime.LogLevel,
	)
}
