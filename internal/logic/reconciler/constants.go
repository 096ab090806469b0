package reconciler

import "time"

const (
	jobAPIVersion = "batch/v1"
	jobKind       = "Job"

	// JobNameLabel is set by the Job controller on every pod it creates.
	JobNameLabel = "job-name"

	conditionTypeFailed = "Failed"
	conditionStatusTrue = "True"

	// ReasonOOMKilled is the container termination reason for memory limit kills.
	ReasonOOMKilled = "OOMKilled"

	// LogsUnavailable replaces a pod log tail that could not be fetched.
	LogsUnavailable = "<logs unavailable>"

	// diagnosticLogLines is the number of trailing log lines fetched per pod.
	diagnosticLogLines = 2

	// DefaultRestartSettle bounds the wait between delete and create.
	DefaultRestartSettle = 15 * time.Second
)

// ServerManagedLabels are added to the pod template by the Job controller and reference
// the previous Job's UID, so they have to be removed before the Job is created again.
var ServerManagedLabels = []string{
	"controller-uid",
	"batch.kubernetes.io/controller-uid",
	"job-name",
	"batch.kubernetes.io/job-name",
}
