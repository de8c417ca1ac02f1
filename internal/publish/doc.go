// Package publish turns the resolved PUBLISH_MODE into a field filter for
// the MQTT publisher.
//
// Example usage:
//
//	cfg := config.Load()
//	selector, err := publish.NewSelector(cfg.Publishing.Mode)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if ok, _ := selector.Publishes(ctx, "radiotext"); ok {
//	    // publish to topics.Layout.Field(pi, "radiotext")
//	}
//
// Modes:
//   - essential: ta, tp, radiotext, prog_type and other_network.ta
//   - all: every decoded field
//
// Any other mode value is treated as essential.
package publish
