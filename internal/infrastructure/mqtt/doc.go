// Package mqtt provides the optional broker sink for joke events.
//
// When enabled, the service announces itself on punchline/system/status
// (with a Last Will for crash detection) and publishes a small JSON event
// to punchline/events/joke/{created,updated,deleted} whenever the catalogue
// changes. External consumers (dashboards, bots, pipelines) subscribe to
// these topics instead of polling the HTTP API.
//
// The client auto-reconnects with exponential backoff; publishes while
// disconnected fail fast with ErrNotConnected so callers can treat the
// sink as best-effort.
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	topic := mqtt.Topics{}.JokeCreated()
//	client.Publish(topic, payload, 1, false)
package mqtt
