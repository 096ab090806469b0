package reconciler

import (
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// Classify returns the current phase of the job described by snapshot.
//
// A positive status.active wins over any condition: a job may still carry a Failed
// condition from an earlier attempt while a new pod runs. Otherwise the first
// condition with type Failed and status True marks the job failed at its
// lastTransitionTime. Everything else, succeeded or pending, is PhaseOther.
func Classify(snapshot JobSnapshot) (JobState, error) {
	active, _, err := unstructured.NestedFieldNoCopy(snapshot.Object, "status", "active")
	if err != nil {
		return JobState{}, fmt.Errorf("status.active: %w", err)
	}

	if n, ok := toInt64(active); ok && n > 0 {
		return JobState{Phase: PhaseActive}, nil
	}

	conditions, _, err := unstructured.NestedFieldNoCopy(snapshot.Object, "status", "conditions")
	if err != nil {
		return JobState{}, fmt.Errorf("status.conditions: %w", err)
	}

	list, _ := conditions.([]any)
	for i := range list {
		condition, ok := list[i].(map[string]any)
		if !ok {
			continue
		}

		if condition["type"] != conditionTypeFailed || condition["status"] != conditionStatusTrue {
			continue
		}

		failedAt, err := parseTransitionTime(condition["lastTransitionTime"])
		if err != nil {
			return JobState{}, err
		}

		return JobState{Phase: PhaseFailed, FailedAt: failedAt}, nil
	}

	return JobState{Phase: PhaseOther}, nil
}

func parseTransitionTime(raw any) (time.Time, error) {
	value, ok := raw.(string)
	if !ok || value == "" {
		return time.Time{}, fmt.Errorf("%w: missing lastTransitionTime", ErrConditionInvalid)
	}

	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: lastTransitionTime: %w", ErrConditionInvalid, err)
	}

	return ts, nil
}

// toInt64 accepts the numeric types produced by the runtime converter and by JSON/YAML decoding.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}
