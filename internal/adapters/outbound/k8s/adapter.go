package k8s

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/skillcoder/job-restart-operator/internal/logic/reconciler"
)

const (
	kindJob = "job"
	kindPod = "pod"

	// maxLogTailBytes caps how much of a log tail is read into memory.
	maxLogTailBytes = 64 << 10
)

type adapter struct {
	logger    *slog.Logger
	clientset kubernetes.Interface
}

// New creates a new K8s adapter.
func New(
	logger *slog.Logger,
	clientset kubernetes.Interface,
) reconciler.Repository {
	return &adapter{
		logger:    logger,
		clientset: clientset,
	}
}

var _ reconciler.Repository = (*adapter)(nil)

func (a *adapter) GetJobQuery(
	ctx context.Context,
	namespace,
	name string,
) (reconciler.JobSnapshot, error) {
	job, err := a.clientset.BatchV1().Jobs(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return reconciler.JobSnapshot{}, fmt.Errorf("get job: %w", wrapAPIError(err, kindJob, name))
	}

	snapshot, err := toDomainJobSnapshot(job)
	if err != nil {
		return reconciler.JobSnapshot{}, fmt.Errorf("get job: %w", err)
	}

	return snapshot, nil
}

func (a *adapter) ListPodsQuery(
	ctx context.Context,
	namespace,
	labelSelector string,
) ([]reconciler.Pod, error) {
	podList, err := a.clientset.CoreV1().Pods(namespace).List(
		ctx,
		metav1.ListOptions{
			LabelSelector: labelSelector,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("list pods: %w", wrapAPIError(err, kindPod, labelSelector))
	}

	pods := make([]reconciler.Pod, 0, len(podList.Items))
	for i := range podList.Items {
		pods = append(pods, toDomainPod(&podList.Items[i]))
	}

	return pods, nil
}

func (a *adapter) GetPodLogTailQuery(
	ctx context.Context,
	namespace,
	name string,
	lines int64,
) (string, error) {
	limitBytes := int64(maxLogTailBytes)

	stream, err := a.clientset.CoreV1().Pods(namespace).GetLogs(name, &corev1.PodLogOptions{
		TailLines:  &lines,
		LimitBytes: &limitBytes,
	}).Stream(ctx)
	if err != nil {
		return "", fmt.Errorf("get pod logs: %w", wrapAPIError(err, kindPod, name))
	}

	defer func() {
		if closeErr := stream.Close(); closeErr != nil {
			a.logger.DebugContext(ctx, "failed to close log stream", "pod", name, "reason", closeErr)
		}
	}()

	data, err := io.ReadAll(io.LimitReader(stream, maxLogTailBytes))
	if err != nil {
		return "", fmt.Errorf("read pod logs: %w", err)
	}

	return string(data), nil
}

func (a *adapter) DeleteJobCommand(
	ctx context.Context,
	namespace,
	name string,
) error {
	propagation := metav1.DeletePropagationForeground

	err := a.clientset.BatchV1().Jobs(namespace).Delete(ctx, name, metav1.DeleteOptions{
		PropagationPolicy: &propagation,
	})
	if err != nil {
		return fmt.Errorf("delete job: %w", wrapAPIError(err, kindJob, name))
	}

	return nil
}

func (a *adapter) CreateJobCommand(
	ctx context.Context,
	namespace string,
	manifest reconciler.RestartableManifest,
) error {
	job, err := fromDomainManifest(manifest)
	if err != nil {
		return fmt.Errorf("create job: %w", err)
	}

	_, err = a.clientset.BatchV1().Jobs(namespace).Create(ctx, job, metav1.CreateOptions{})
	if err != nil {
		return fmt.Errorf("create job: %w", wrapAPIError(err, kindJob, job.Name))
	}

	return nil
}
