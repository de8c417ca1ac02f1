// Package template provides a Handlebars template engine for rendering MQTT
// topic names.
//
// Example usage:
//
//	engine := template.NewEngine()
//
//	topic, err := engine.Render("{{{prefix}}}/{{{hex pi}}}/{{{path field}}}", map[string]interface{}{
//	    "prefix": "rds",
//	    "pi":     uint16(0xD3C2),
//	    "field":  "other_network.ta",
//	})
//	// topic == "rds/0xD3C2/other_network/ta"
//
// Built-in helpers:
//   - hex - Format a program identification code as 0xABCD
//   - path - Turn a dotted field path into topic levels
//   - lowercase - Convert string to lowercase
//
// Use triple-stash expressions: double-stash output is HTML-escaped.
package template
