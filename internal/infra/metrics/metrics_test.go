package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/job-restart-operator/internal/infra/metrics"
)

func TestRecordRestart(t *testing.T) {
	before := testutil.ToFloat64(metrics.RestartsCounter("metrics-ns", "job-a", "oom"))

	metrics.RecordRestart("metrics-ns", "job-a", "oom")
	metrics.RecordRestart("metrics-ns", "job-a", "oom")

	require.InDelta(t, before+2, testutil.ToFloat64(metrics.RestartsCounter("metrics-ns", "job-a", "oom")), 0.001)
}

func TestRecordJobError(t *testing.T) {
	before := testutil.ToFloat64(metrics.JobErrorsCounter("metrics-ns", "job-a", "api"))

	metrics.RecordJobError("metrics-ns", "job-a", "api")

	require.InDelta(t, before+1, testutil.ToFloat64(metrics.JobErrorsCounter("metrics-ns", "job-a", "api")), 0.001)
}

func TestSetJobPhase(t *testing.T) {
	metrics.SetJobPhase("metrics-ns", "job-b", "failed")
	require.InDelta(t, 1.0, testutil.ToFloat64(metrics.JobPhaseGauge("metrics-ns", "job-b", "failed")), 0.001)
	require.InDelta(t, 0.0, testutil.ToFloat64(metrics.JobPhaseGauge("metrics-ns", "job-b", "active")), 0.001)

	metrics.SetJobPhase("metrics-ns", "job-b", "active")
	require.InDelta(t, 0.0, testutil.ToFloat64(metrics.JobPhaseGauge("metrics-ns", "job-b", "failed")), 0.001)
	require.InDelta(t, 1.0, testutil.ToFloat64(metrics.JobPhaseGauge("metrics-ns", "job-b", "active")), 0.001)
}

func TestObserveReconcileDuration(t *testing.T) {
	require.NotPanics(t, func() {
		metrics.ObserveReconcileDuration(150 * time.Millisecond)
	})
}
