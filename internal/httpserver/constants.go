package httpserver

import "time"

const (
	readTimeout       = 3 * time.Second
	readHeaderTimeout = 3 * time.Second
	writeTimeout      = 5 * time.Second
	idleTimeout       = 60 * time.Second
	maxHeaderBytes    = 1 << 12 // 4kb
)

const (
	pathHealthz = "/-/healthz"
	pathReadyz  = "/-/readyz"
	pathStatus  = "/-/status"
	pathMetrics = "/metrics"
)
