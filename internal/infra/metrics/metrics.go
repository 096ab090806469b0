package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "job_restart_operator"

var restartsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "restarts_total",
		Help:      "Total number of jobs recreated, by restart reason.",
	},
	[]string{"namespace", "job", "reason"},
)

var jobErrorsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_errors_total",
		Help:      "Total number of per-job processing errors, by error kind.",
	},
	[]string{"namespace", "job", "kind"},
)

var jobPhase = promauto.With(prometheus.DefaultRegisterer).NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "job_phase",
		Help:      "Last observed phase of a watched job (1 for the current phase, 0 otherwise).",
	},
	[]string{"namespace", "job", "phase"},
)

var reconcileDuration = promauto.With(prometheus.DefaultRegisterer).NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "reconcile_duration_seconds",
		Help:      "Duration of a full reconcile cycle over all watched jobs.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
	},
)

// Phases lists every phase label value so stale phases can be reset to zero.
var Phases = []string{"active", "failed", "other", "absent"}

// RecordRestart increments the restart counter for a job.
func RecordRestart(ns, job, reason string) {
	restartsTotal.WithLabelValues(ns, job, reason).Inc()
}

// RecordJobError increments the error counter for a job.
func RecordJobError(ns, job, kind string) {
	jobErrorsTotal.WithLabelValues(ns, job, kind).Inc()
}

// SetJobPhase marks phase as the current phase of a job.
func SetJobPhase(ns, job, phase string) {
	for _, p := range Phases {
		value := 0.0
		if p == phase {
			value = 1
		}

		jobPhase.WithLabelValues(ns, job, p).Set(value)
	}
}

// ObserveReconcileDuration records the duration of one reconcile cycle.
func ObserveReconcileDuration(d time.Duration) {
	reconcileDuration.Observe(d.Seconds())
}

// RestartsCounter exposes the restart counter for tests and collectors.
func RestartsCounter(ns, job, reason string) prometheus.Counter {
	return restartsTotal.WithLabelValues(ns, job, reason)
}

// JobErrorsCounter exposes the error counter for tests and collectors.
func JobErrorsCounter(ns, job, kind string) prometheus.Counter {
	return jobErrorsTotal.WithLabelValues(ns, job, kind)
}

// JobPhaseGauge exposes the phase gauge for tests and collectors.
func JobPhaseGauge(ns, job, phase string) prometheus.Gauge {
	return jobPhase.WithLabelValues(ns, job, phase)
}
