package reconciler_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"

	"github.com/skillcoder/job-restart-operator/internal/logic/reconciler"
)

// loadSnapshot reads a Job fixture from testdata.
func loadSnapshot(t *testing.T, name string) reconciler.JobSnapshot {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	obj := map[string]any{}
	require.NoError(t, yaml.Unmarshal(data, &obj))

	return reconciler.JobSnapshot{Object: obj}
}

// testNotFoundError and testAPIError implement the reconciler's private error interfaces
// so the mock can return them and the reconciler recognizes them.
type testNotFoundError struct{}

func (testNotFoundError) Error() string { return "not found" }
func (testNotFoundError) IsNotFound()   {}

type testAPIError struct{}

func (testAPIError) Error() string { return "internal server error" }
func (testAPIError) IsAPIError()   {}

func ptr[T any](v T) *T {
	return &v
}
