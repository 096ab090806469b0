package reconciler

import (
	"errors"
	"fmt"
)

var (
	ErrManifestInvalid  = errors.New("invalid job manifest")
	ErrConditionInvalid = errors.New("invalid job condition")
	ErrNoCachedManifest = errors.New("no cached manifest")
	ErrGetJob           = errors.New("get job")
	ErrDeleteJob        = errors.New("delete job")
	ErrCreateJob        = errors.New("create job")
	ErrPanic            = errors.New("panic while processing job")
)

// ErrorKind classifies why processing of a single job stopped early.
type ErrorKind string

const (
	KindNone       ErrorKind = ""
	KindNotFound   ErrorKind = "not_found"
	KindAPI        ErrorKind = "api"
	KindUnexpected ErrorKind = "unexpected"
)

// JobError is the per-job failure reported by one reconcile cycle.
// It never aborts the cycle.
type JobError struct {
	Job  string
	Kind ErrorKind
	Err  error
}

func (e *JobError) Error() string {
	return fmt.Sprintf("job %s (%s): %v", e.Job, e.Kind, e.Err)
}

func (e *JobError) Unwrap() error {
	return e.Err
}

func newJobError(job string, kind ErrorKind, err error) *JobError {
	return &JobError{Job: job, Kind: kind, Err: err}
}

// kindOf maps an error returned by the repository to its ErrorKind.
func kindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}

	var target notFound
	if errors.As(err, &target) {
		return KindNotFound
	}

	var apiTarget apiError
	if errors.As(err, &apiTarget) {
		return KindAPI
	}

	return KindUnexpected
}
