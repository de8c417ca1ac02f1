package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Group names the subsystem a setting belongs to
type Group string

const (
	GroupRTLSDR     Group = "rtl-sdr"
	GroupRedsea     Group = "redsea"
	GroupMQTT       Group = "mqtt"
	GroupPublishing Group = "publishing"
	GroupWebUI      Group = "web-ui"
	GroupRuntime    Group = "runtime"
)

// Groups lists every group in declaration order
var Groups = []Group{GroupRTLSDR, GroupRedsea, GroupMQTT, GroupPublishing, GroupWebUI, GroupRuntime}

// Kind is the semantic type of a setting
type Kind string

const (
	KindString Kind = "string"
	KindBool   Kind = "bool"
	KindInt    Kind = "int"
)

// Setting describes one resolved configuration value
type Setting struct {
	Name    string
	Group   Group
	Kind    Kind
	Default interface{}
	Value   interface{}
	Secret  bool
}

// IsDefault reports whether the resolved value equals the default
func (s Setting) IsDefault() bool {
	return s.Value == s.Default
}

// Text formats the value the way it would be written in the environment
func (s Setting) Text() string {
	switch v := s.Value.(type) {
	case bool:
		return formatBool(v)
	case int:
		return strconv.Itoa(v)
	case string:
		return v
	default:
		return ""
	}
}

// Settings enumerates every setting in declaration order
func (c *Config) Settings() []Setting {
	str := func(name string, group Group, def, value string) Setting {
		return Setting{Name: name, Group: group, Kind: KindString, Default: def, Value: value}
	}
	flag := func(name string, group Group, def, value bool) Setting {
		return Setting{Name: name, Group: group, Kind: KindBool, Default: def, Value: value}
	}
	num := func(name string, group Group, def, value int) Setting {
		return Setting{Name: name, Group: group, Kind: KindInt, Default: def, Value: value}
	}

	password := str("MQTT_PASSWORD", GroupMQTT, DefaultMQTTPassword, c.MQTT.Password)
	password.Secret = true

	rt := defaultRuntime()

	return []Setting{
		str("FM_FREQUENCY", GroupRTLSDR, DefaultFMFrequency, c.RTLSDR.Frequency),
		str("RTL_GAIN", GroupRTLSDR, DefaultRTLGain, c.RTLSDR.Gain),
		str("PPM_CORRECTION", GroupRTLSDR, DefaultPPMCorrection, c.RTLSDR.PPMCorrection),
		str("RTL_DEVICE_SERIAL", GroupRTLSDR, DefaultRTLDeviceSerial, c.RTLSDR.DeviceSerial),
		str("RTL_DEVICE_INDEX", GroupRTLSDR, DefaultRTLDeviceIndex, c.RTLSDR.DeviceIndex),

		flag("REDSEA_SHOW_PARTIAL", GroupRedsea, DefaultRedseaShowPartial, c.Redsea.ShowPartial),
		flag("REDSEA_SHOW_RAW", GroupRedsea, DefaultRedseaShowRaw, c.Redsea.ShowRaw),

		flag("MQTT_ENABLED", GroupMQTT, DefaultMQTTEnabled, c.MQTT.Enabled),
		str("MQTT_HOST", GroupMQTT, DefaultMQTTHost, c.MQTT.Host),
		num("MQTT_PORT", GroupMQTT, DefaultMQTTPort, c.MQTT.Port),
		str("MQTT_USER", GroupMQTT, DefaultMQTTUser, c.MQTT.User),
		password,
		str("MQTT_TOPIC_PREFIX", GroupMQTT, DefaultMQTTTopicPrefix, c.MQTT.TopicPrefix),
		str("MQTT_CLIENT_ID", GroupMQTT, DefaultMQTTClientID, c.MQTT.ClientID),
		num("MQTT_QOS", GroupMQTT, DefaultMQTTQoS, c.MQTT.QoS),
		flag("MQTT_RETAIN_STATE", GroupMQTT, DefaultMQTTRetainState, c.MQTT.RetainState),

		str("PUBLISH_MODE", GroupPublishing, string(DefaultPublishMode), string(c.Publishing.Mode)),
		flag("PUBLISH_RAW", GroupPublishing, DefaultPublishRaw, c.Publishing.Raw),
		num("STATUS_INTERVAL", GroupPublishing, DefaultStatusInterval, c.Publishing.StatusInterval),

		num("WEB_UI_PORT", GroupWebUI, DefaultWebUIPort, c.WebUI.Port),
		num("EVENT_RETENTION_DAYS", GroupWebUI, DefaultEventRetentionDays, c.WebUI.EventRetentionDays),

		str("LOG_LEVEL", GroupRuntime, rt.LogLevel, c.Runtime.LogLevel),
		str("LOG_FORMAT", GroupRuntime, rt.LogFormat, c.Runtime.LogFormat),
	}
}

// ParseGroup returns the group with the given name, case-insensitively
func ParseGroup(name string) (Group, error) {
	for _, g := range Groups {
		if strings.EqualFold(string(g), name) {
			return g, nil
		}
	}
	return "", fmt.Errorf("unknown group: %s", name)
}
