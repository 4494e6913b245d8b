// Package timeouts defines shared timeout constants used by the console.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// UpstreamRequest is the default budget of one advertiser API call.
const UpstreamRequest = 15 * time.Second
