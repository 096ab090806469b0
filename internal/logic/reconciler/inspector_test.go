package reconciler_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/job-restart-operator/internal/logic/reconciler"
)

type classifyCase struct {
	name         string
	giveSnapshot reconciler.JobSnapshot
	wantPhase    reconciler.Phase
	wantFailedAt time.Time
	wantErr      error
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []classifyCase{
		{
			name:         "failed job",
			giveSnapshot: loadSnapshot(t, "failed_job.yaml"),
			wantPhase:    reconciler.PhaseFailed,
			wantFailedAt: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:         "active wins over stale failed condition",
			giveSnapshot: loadSnapshot(t, "active_stale_failed_job.yaml"),
			wantPhase:    reconciler.PhaseActive,
		},
		{
			name:         "succeeded job is other",
			giveSnapshot: loadSnapshot(t, "succeeded_job.yaml"),
			wantPhase:    reconciler.PhaseOther,
		},
		{
			name:         "job without status is other",
			giveSnapshot: loadSnapshot(t, "pending_job.yaml"),
			wantPhase:    reconciler.PhaseOther,
		},
		{
			name: "active count as int64",
			giveSnapshot: reconciler.JobSnapshot{Object: map[string]any{
				"status": map[string]any{"active": int64(2)},
			}},
			wantPhase: reconciler.PhaseActive,
		},
		{
			name: "zero active with failed condition",
			giveSnapshot: reconciler.JobSnapshot{Object: map[string]any{
				"status": map[string]any{
					"active": int64(0),
					"conditions": []any{
						map[string]any{
							"type":               "Failed",
							"status":             "True",
							"lastTransitionTime": "2025-02-03T04:05:06Z",
						},
					},
				},
			}},
			wantPhase:    reconciler.PhaseFailed,
			wantFailedAt: time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC),
		},
		{
			name: "failed condition without timestamp",
			giveSnapshot: reconciler.JobSnapshot{Object: map[string]any{
				"status": map[string]any{
					"conditions": []any{
						map[string]any{"type": "Failed", "status": "True"},
					},
				},
			}},
			wantErr: reconciler.ErrConditionInvalid,
		},
		{
			name: "failed condition with bad timestamp",
			giveSnapshot: reconciler.JobSnapshot{Object: map[string]any{
				"status": map[string]any{
					"conditions": []any{
						map[string]any{"type": "Failed", "status": "True", "lastTransitionTime": "yesterday"},
					},
				},
			}},
			wantErr: reconciler.ErrConditionInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := reconciler.Classify(tt.giveSnapshot)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantPhase, got.Phase)
			require.True(t, tt.wantFailedAt.Equal(got.FailedAt), "failedAt: got %s, want %s", got.FailedAt, tt.wantFailedAt)
		})
	}
}
