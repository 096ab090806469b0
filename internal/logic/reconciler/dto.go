package reconciler

import "time"

// JobSnapshot is the serialized state of one Job as returned by the API.
type JobSnapshot struct {
	Object map[string]any
}

// RestartableManifest is a creation-ready Job definition stripped of
// server-assigned identity.
type RestartableManifest struct {
	Object map[string]any
}

// Pod represents a Job's pod in the domain layer.
type Pod struct {
	Name       string
	Namespace  string
	Containers []ContainerStatus
}

// ContainerStatus holds the current state of one container.
type ContainerStatus struct {
	Name       string
	Terminated *Termination
}

// Termination describes a terminated container.
type Termination struct {
	ExitCode int32
	Reason   string
}

// PodReport is the diagnostic view of a single pod.
type PodReport struct {
	PodName  string
	ExitCode *int32
	Reason   *string
	LogTail  string
}

// Phase is the classified state of a Job.
type Phase string

const (
	PhaseActive Phase = "active"
	PhaseFailed Phase = "failed"
	PhaseOther  Phase = "other"
	// PhaseAbsent is reported for jobs that were not found.
	PhaseAbsent Phase = "absent"
)

// JobState is the result of classifying a snapshot.
type JobState struct {
	Phase    Phase
	FailedAt time.Time
}

// Action is the outcome of the restart policy.
type Action string

const (
	ActionRestart Action = "restart"
	ActionWait    Action = "wait"
)

// RestartReason labels why a restart happened.
type RestartReason string

const (
	RestartReasonCooldown RestartReason = "cooldown-elapsed"
	RestartReasonOOM      RestartReason = "oom"
	RestartReasonRecreate RestartReason = "recreate"
)

// Decision is returned by Decide.
type Decision struct {
	Action    Action
	Reason    RestartReason
	Elapsed   time.Duration
	Remaining time.Duration
}

// JobStatus is the last observed state of a configured job.
type JobStatus struct {
	Phase         Phase     `json:"phase"`
	LastChecked   time.Time `json:"lastChecked"`
	LastErrorKind ErrorKind `json:"lastErrorKind,omitempty"`
	LastError     string    `json:"lastError,omitempty"`
	LastRestartAt time.Time `json:"lastRestartAt,omitzero"`
	Restarts      int       `json:"restarts"`
}
