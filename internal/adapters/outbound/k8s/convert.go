package k8s

import (
	"fmt"

	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/runtime"

	"github.com/skillcoder/job-restart-operator/internal/logic/reconciler"
)

func toDomainJobSnapshot(job *batchv1.Job) (reconciler.JobSnapshot, error) {
	obj, err := runtime.DefaultUnstructuredConverter.ToUnstructured(job)
	if err != nil {
		return reconciler.JobSnapshot{}, fmt.Errorf("%w: job to unstructured: %w", ErrConvert, err)
	}

	return reconciler.JobSnapshot{Object: obj}, nil
}

func fromDomainManifest(manifest reconciler.RestartableManifest) (*batchv1.Job, error) {
	job := &batchv1.Job{}

	err := runtime.DefaultUnstructuredConverter.FromUnstructured(manifest.Object, job)
	if err != nil {
		return nil, fmt.Errorf("%w: manifest to job: %w", ErrConvert, err)
	}

	return job, nil
}

func toDomainPod(pod *corev1.Pod) reconciler.Pod {
	out := reconciler.Pod{
		Name:       pod.Name,
		Namespace:  pod.Namespace,
		Containers: make([]reconciler.ContainerStatus, 0, len(pod.Status.ContainerStatuses)),
	}

	for i := range pod.Status.ContainerStatuses {
		cs := &pod.Status.ContainerStatuses[i]
		status := reconciler.ContainerStatus{Name: cs.Name}

		if cs.State.Terminated != nil {
			status.Terminated = &reconciler.Termination{
				ExitCode: cs.State.Terminated.ExitCode,
				Reason:   cs.State.Terminated.Reason,
			}
		}

		out.Containers = append(out.Containers, status)
	}

	return out
}
