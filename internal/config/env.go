package config

// Env key constants. Durations are whole seconds.

// Namespace holding the watched jobs.
const (
	envKeyNamespace     = "NAMESPACE"
	envDefaultNamespace = "flickr-downloader"
)

// Comma separated job names, required.
const envKeyJobNames = "JOB_NAMES"

// Seconds between reconcile cycles, must be positive.
const (
	envKeyCheckInterval     = "CHECK_INTERVAL"
	envDefaultCheckInterval = "60"
)

// Cooldown in seconds after a failure before the job is recreated.
const (
	envKeyRestartDelay     = "RESTART_DELAY"
	envDefaultRestartDelay = "3600"
)

// "true" (any case) restarts OOM-killed jobs without waiting for the cooldown.
const envKeySkipDelayOnOOM = "SKIP_DELAY_ON_OOM"

// Path to kubeconfig file and API server URL. Both empty selects in-cluster config.
const (
	envKeyKubeConfig = "KUBECONFIG"
	envKeyKubeMaster = "KUBERNETES_MASTER"
)

// Log level: debug, info, warn, error.
const (
	envKeyLogLevel     = "LOG_LEVEL"
	envDefaultLogLevel = "info"
)

// Log format: json or text.
const (
	envKeyLogFormat     = "LOG_FORMAT"
	envDefaultLogFormat = "json"
)

// Port for the health/readiness HTTP server. Empty disables it.
const envKeyHTTPPort = "HTTP_PORT"

// Port for Prometheus metrics (GET /metrics). Empty disables it.
const envKeyMetricsPort = "METRICS_PORT"
