// Package config resolves the RDS pipeline configuration from environment
// variables.
//
// Resolution is total: every setting has a default, and absent or malformed
// values fall back to it instead of producing an error. Booleans are true only
// for "1", "true", "yes" or "on" (any case). Integers are parsed in base 10.
// Strings are used verbatim, except PUBLISH_MODE which is lower-cased.
//
// The result is built once at startup and handed to each collaborator:
//
//	cfg := config.Load()
//	tuner.Start(cfg.RTLSDR)
//	publisher.Start(cfg.MQTT, cfg.Publishing)
//
// Settings are grouped by the subsystem that reads them:
//   - RTL-SDR: FM_FREQUENCY, RTL_GAIN, PPM_CORRECTION, RTL_DEVICE_SERIAL, RTL_DEVICE_INDEX
//   - Redsea: REDSEA_SHOW_PARTIAL, REDSEA_SHOW_RAW
//   - MQTT: MQTT_ENABLED, MQTT_HOST, MQTT_PORT, MQTT_USER, MQTT_PASSWORD,
//     MQTT_TOPIC_PREFIX, MQTT_CLIENT_ID, MQTT_QOS, MQTT_RETAIN_STATE
//   - Publishing: PUBLISH_MODE, PUBLISH_RAW, STATUS_INTERVAL
//   - Web UI: WEB_UI_PORT, EVENT_RETENTION_DAYS
//   - Runtime: LOG_LEVEL, LOG_FORMAT
package config
