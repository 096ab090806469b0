package reconciler

import (
	"context"
	"log/slog"
	"strings"

	"k8s.io/apimachinery/pkg/labels"
)

// Reporter collects best-effort diagnostics for the pods of a job.
type Reporter struct {
	logger    *slog.Logger
	repo      Repository
	namespace string
}

// NewReporter creates a diagnostic reporter for jobs in namespace.
func NewReporter(logger *slog.Logger, repo Repository, namespace string) *Reporter {
	return &Reporter{
		logger:    logger,
		repo:      repo,
		namespace: namespace,
	}
}

// Report lists the pods of jobName and returns their last termination and log tail.
// It never fails: a list error yields an empty result, a log error yields LogsUnavailable.
func (r *Reporter) Report(ctx context.Context, jobName string) []PodReport {
	logger := r.logger.With("job", jobName, "namespace", r.namespace)

	selector := labels.Set{JobNameLabel: jobName}.AsSelector().String()

	pods, err := r.repo.ListPodsQuery(ctx, r.namespace, selector)
	if err != nil {
		logger.WarnContext(ctx, "could not retrieve pod details", "reason", err)

		return []PodReport{}
	}

	reports := make([]PodReport, 0, len(pods))

	for i := range pods {
		report := PodReport{PodName: pods[i].Name}

		if term := firstTermination(pods[i].Containers); term != nil {
			exitCode := term.ExitCode
			reason := term.Reason
			report.ExitCode = &exitCode
			report.Reason = &reason
		}

		tail, err := r.repo.GetPodLogTailQuery(ctx, r.namespace, pods[i].Name, diagnosticLogLines)
		if err != nil {
			logger.DebugContext(ctx, "pod logs unavailable", "pod", pods[i].Name, "reason", err)

			tail = LogsUnavailable
		}

		report.LogTail = strings.TrimSpace(tail)

		logger.InfoContext(ctx, "pod diagnostics",
			"pod", report.PodName,
			"exitCode", derefOr(report.ExitCode, "none"),
			"terminationReason", derefOr(report.Reason, "none"),
			"lastLogLines", "\n"+indent(report.LogTail, "\t"),
		)

		reports = append(reports, report)
	}

	return reports
}

// OOMObserved reports whether any pod was terminated for exceeding its memory limit.
func OOMObserved(reports []PodReport) bool {
	for i := range reports {
		if reports[i].Reason != nil && *reports[i].Reason == ReasonOOMKilled {
			return true
		}
	}

	return false
}

func firstTermination(containers []ContainerStatus) *Termination {
	for i := range containers {
		if containers[i].Terminated != nil {
			return containers[i].Terminated
		}
	}

	return nil
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}

	return strings.Join(lines, "\n")
}

func derefOr[T any](v *T, fallback any) any {
	if v == nil {
		return fallback
	}

	return *v
}
