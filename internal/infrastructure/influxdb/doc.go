// Package influxdb provides the optional telemetry sink.
//
// When enabled, the service records request latencies, catalogue change
// events, and broadcast fan-out metrics as time-series points. Writes are
// non-blocking and batched by the underlying client, so a slow or absent
// InfluxDB never stalls request handling.
//
//	client, err := influxdb.Connect(cfg.InfluxDB)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	client.WriteRequestMetric("GET", "/jokes", 200, 3.2)
//	client.WriteJokeEvent("created", 42)
package influxdb
