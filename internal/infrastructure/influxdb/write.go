package influxdb

import (
	"strconv"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// WriteRequestMetric records a handled HTTP request.
//
// The write is non-blocking; points are batched and sent asynchronously.
//
// Parameters:
//   - method: HTTP method (e.g., "GET")
//   - path: route pattern, not the raw URL (keeps tag cardinality low)
//   - status: response status code
//   - durationMs: handling time in milliseconds
func (c *Client) WriteRequestMetric(method, path string, status int, durationMs float64) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"http_requests",
		map[string]string{
			"method": method,
			"path":   path,
			"status": strconv.Itoa(status),
		},
		map[string]interface{}{
			"duration_ms": durationMs,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WriteJokeEvent records a catalogue change (created, updated, deleted).
func (c *Client) WriteJokeEvent(action string, jokeID int64) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"joke_events",
		map[string]string{
			"action": action,
		},
		map[string]interface{}{
			"joke_id": jokeID,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WriteBroadcastMetric records a realtime fan-out: how many subscribers
// received a broadcast and how many were dropped for failed delivery.
func (c *Client) WriteBroadcastMetric(delivered, dropped int) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"broadcasts",
		nil,
		map[string]interface{}{
			"delivered": delivered,
			"dropped":   dropped,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WritePoint writes a custom point with full control over tags and fields.
// Use for measurements that don't fit the helper methods.
func (c *Client) WritePoint(measurement string, tags map[string]string, fields map[string]interface{}) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(measurement, tags, fields, time.Now())
	c.writeAPI.WritePoint(point)
}
