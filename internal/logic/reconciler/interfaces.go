package reconciler

import "context"

// Repository is the port interface for K8s operations.
// Implementations are provided by adapters in the outbound layer.
type Repository interface {
	GetJobQuery(
		ctx context.Context,
		namespace,
		name string,
	) (JobSnapshot, error)

	ListPodsQuery(
		ctx context.Context,
		namespace,
		labelSelector string,
	) ([]Pod, error)

	GetPodLogTailQuery(
		ctx context.Context,
		namespace,
		name string,
		lines int64,
	) (string, error)

	DeleteJobCommand(
		ctx context.Context,
		namespace,
		name string,
	) error

	CreateJobCommand(
		ctx context.Context,
		namespace string,
		manifest RestartableManifest,
	) error
}

// notFound is a private interface for checking "not found" errors
// without importing the adapter package.
type notFound interface {
	IsNotFound()
}

// apiError is a private interface for errors reported by the API server
// (as opposed to local conversion failures).
type apiError interface {
	IsAPIError()
}

// diagnoser reports on the pods of a failed job.
type diagnoser interface {
	Report(ctx context.Context, jobName string) []PodReport
}
