// Package docsite serves the API documentation site as an embedded asset.
//
// The static docs build is embedded into the Go binary using go:embed,
// so the binary has no runtime dependency on external files. Handler
// returns an http.Handler with SPA-style fallback: requests for paths
// that do not exist serve index.html.
//
// During development a disk directory can be supplied instead, so doc
// edits show up without recompiling.
package docsite
