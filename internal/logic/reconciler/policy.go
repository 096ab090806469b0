package reconciler

import "time"

// Decide returns whether a job that failed at failedAt should be restarted now.
//
// Elapsed time is clamped at zero so clock skew never reads as overdue. An observed
// OOM kill bypasses the delay when skipOnOOM is set.
func Decide(
	failedAt,
	now time.Time,
	delay time.Duration,
	skipOnOOM,
	oomObserved bool,
) Decision {
	elapsed := max(now.Sub(failedAt), 0)

	if skipOnOOM && oomObserved {
		return Decision{Action: ActionRestart, Reason: RestartReasonOOM, Elapsed: elapsed}
	}

	if elapsed >= delay {
		return Decision{Action: ActionRestart, Reason: RestartReasonCooldown, Elapsed: elapsed}
	}

	return Decision{Action: ActionWait, Elapsed: elapsed, Remaining: delay - elapsed}
}
