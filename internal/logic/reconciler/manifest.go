package reconciler

import (
	"fmt"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// BuildManifest produces a creation-ready Job definition from a snapshot.
// The snapshot is not mutated: every value is deep copied.
func BuildManifest(snapshot JobSnapshot) (RestartableManifest, error) {
	name, _, err := unstructured.NestedString(snapshot.Object, "metadata", "name")
	if err != nil {
		return RestartableManifest{}, fmt.Errorf("%w: metadata.name: %w", ErrManifestInvalid, err)
	}

	namespace, _, err := unstructured.NestedString(snapshot.Object, "metadata", "namespace")
	if err != nil {
		return RestartableManifest{}, fmt.Errorf("%w: metadata.namespace: %w", ErrManifestInvalid, err)
	}

	backoffLimit, found, err := unstructured.NestedFieldCopy(snapshot.Object, "spec", "backoffLimit")
	if err != nil {
		return RestartableManifest{}, fmt.Errorf("%w: spec.backoffLimit: %w", ErrManifestInvalid, err)
	}

	if !found || backoffLimit == nil {
		return RestartableManifest{}, fmt.Errorf("%w: spec.backoffLimit missing", ErrManifestInvalid)
	}

	template, found, err := unstructured.NestedMap(snapshot.Object, "spec", "template")
	if err != nil {
		return RestartableManifest{}, fmt.Errorf("%w: spec.template: %w", ErrManifestInvalid, err)
	}

	if !found || template == nil {
		return RestartableManifest{}, fmt.Errorf("%w: spec.template missing", ErrManifestInvalid)
	}

	labels, err := templateLabels(template)
	if err != nil {
		return RestartableManifest{}, err
	}

	for _, key := range ServerManagedLabels {
		delete(labels, key)
	}

	// template is already a copy, so writing into it is safe
	err = unstructured.SetNestedMap(template, labels, "metadata", "labels")
	if err != nil {
		return RestartableManifest{}, fmt.Errorf("%w: set template labels: %w", ErrManifestInvalid, err)
	}

	return RestartableManifest{
		Object: map[string]any{
			"apiVersion": jobAPIVersion,
			"kind":       jobKind,
			"metadata": map[string]any{
				"name":      name,
				"namespace": namespace,
			},
			"spec": map[string]any{
				"backoffLimit": backoffLimit,
				"template":     template,
			},
		},
	}, nil
}

// templateLabels returns the labels map of a pod template, or an empty map when the
// template carries none. The returned map aliases template.
func templateLabels(template map[string]any) (map[string]any, error) {
	raw, found, err := unstructured.NestedFieldNoCopy(template, "metadata", "labels")
	if err != nil {
		return nil, fmt.Errorf("%w: spec.template.metadata: %w", ErrManifestInvalid, err)
	}

	if !found || raw == nil {
		return map[string]any{}, nil
	}

	labels, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: spec.template.metadata.labels is %T", ErrManifestInvalid, raw)
	}

	return labels, nil
}

// Name returns the Job name of the manifest.
func (m RestartableManifest) Name() string {
	name, _, _ := unstructured.NestedString(m.Object, "metadata", "name")

	return name
}

// TemplateLabels returns the pod template labels of the manifest.
func (m RestartableManifest) TemplateLabels() map[string]string {
	labels, _, _ := unstructured.NestedStringMap(m.Object, "spec", "template", "metadata", "labels")

	return labels
}
