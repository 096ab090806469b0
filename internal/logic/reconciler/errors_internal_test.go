package reconciler

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type markerNotFound struct{}

func (markerNotFound) Error() string { return "gone" }
func (markerNotFound) IsNotFound()   {}

type markerAPI struct{}

func (markerAPI) Error() string { return "conflict" }
func (markerAPI) IsAPIError()   {}

func Test_kindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		giveErr error
		want    ErrorKind
	}{
		{name: "nil", giveErr: nil, want: KindNone},
		{name: "not found", giveErr: markerNotFound{}, want: KindNotFound},
		{name: "wrapped not found", giveErr: fmt.Errorf("get job: %w", markerNotFound{}), want: KindNotFound},
		{name: "api", giveErr: fmt.Errorf("get job: %w", markerAPI{}), want: KindAPI},
		{name: "context", giveErr: context.Canceled, want: KindUnexpected},
		{name: "plain", giveErr: errors.New("boom"), want: KindUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, kindOf(tt.giveErr))
		})
	}
}

func TestJobError(t *testing.T) {
	t.Parallel()

	err := newJobError("job-a", KindAPI, fmt.Errorf("%w: %w", ErrGetJob, markerAPI{}))

	require.ErrorIs(t, err, ErrGetJob)
	require.Contains(t, err.Error(), "job-a")
	require.Contains(t, err.Error(), "api")
}

func Test_toInt64(t *testing.T) {
	t.Parallel()

	for _, v := range []any{int64(3), int32(3), 3, float64(3)} {
		got, ok := toInt64(v)
		require.True(t, ok)
		require.Equal(t, int64(3), got)
	}

	_, ok := toInt64("3")
	require.False(t, ok)

	_, ok = toInt64(nil)
	require.False(t, ok)
}

func Test_indent(t *testing.T) {
	t.Parallel()

	require.Equal(t, "\tline 1\n\tline 2", indent("line 1\nline 2", "\t"))
	require.Equal(t, "", indent("", "\t"))
}
