package appstate_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/job-restart-operator/internal/infra/appstate"
	"github.com/skillcoder/job-restart-operator/internal/infra/shutdown/mocks"
)

func newAppState(t *testing.T) *appstate.AppState {
	t.Helper()

	return appstate.New(slog.Default(), time.Now(), make(chan os.Signal, 1))
}

type stubChecker struct {
	name string
	err  error
	wait time.Duration
}

func (c *stubChecker) Name() string {
	return c.name
}

func (c *stubChecker) Ping(ctx context.Context) error {
	if c.wait > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.wait):
		}
	}

	return c.err
}

func TestAppState_StateTransitions(t *testing.T) {
	t.Parallel()

	t.Run("init to starting", func(t *testing.T) {
		t.Parallel()

		s := newAppState(t)
		require.NoError(t, s.SetStarting(t.Context()))
		require.Equal(t, appstate.StateStarting, s.GetState())
	})

	t.Run("starting to running", func(t *testing.T) {
		t.Parallel()

		s := newAppState(t)
		require.NoError(t, s.SetStarting(t.Context()))
		require.NoError(t, s.SetRunning(t.Context()))
		require.Equal(t, appstate.StateRunning, s.GetState())
	})

	t.Run("running to terminating", func(t *testing.T) {
		t.Parallel()

		s := newAppState(t)
		require.NoError(t, s.SetStarting(t.Context()))
		require.NoError(t, s.SetRunning(t.Context()))
		require.NoError(t, s.SetTerminating(t.Context()))
		require.Equal(t, appstate.StateTerminating, s.GetState())
	})

	t.Run("invalid: init to running", func(t *testing.T) {
		t.Parallel()

		s := newAppState(t)
		err := s.SetRunning(t.Context())
		require.ErrorIs(t, err, appstate.ErrInvalidStateTransition)
		require.Equal(t, appstate.StateInit, s.GetState())
	})

	t.Run("invalid: terminated cannot change", func(t *testing.T) {
		t.Parallel()

		s := newAppState(t)
		require.NoError(t, s.SetStarting(t.Context()))
		require.NoError(t, s.SetRunning(t.Context()))
		require.NoError(t, s.Shutdown(t.Context()))
		require.Equal(t, appstate.StateTerminated, s.GetState())

		require.Error(t, s.SetStarting(t.Context()))
		require.ErrorIs(t, s.SetTerminating(t.Context()), appstate.ErrAlreadyTerminated)
		require.Equal(t, appstate.StateTerminated, s.GetState())
	})
}

func TestAppState_QueryMethods(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	startTime := time.Now()
	s := appstate.New(slog.Default(), startTime, make(chan os.Signal, 1))

	require.Equal(t, appstate.StateInit, s.GetState())
	require.Equal(t, startTime, s.GetStartTime())
	require.False(t, s.IsHealthy())
	require.False(t, s.IsReady())

	require.NoError(t, s.SetStarting(ctx))
	require.False(t, s.IsReady())

	require.NoError(t, s.SetRunning(ctx))
	require.True(t, s.IsHealthy())
	require.True(t, s.IsReady())
	require.Positive(t, s.GetUptime())
}

func TestAppState_Shutdown(t *testing.T) {
	t.Parallel()

	t.Run("stops registered components and is idempotent", func(t *testing.T) {
		t.Parallel()

		s := newAppState(t)

		component := mocks.NewMockShutdowner(t)
		component.EXPECT().Name().Return("component").Once()
		component.EXPECT().Shutdown(mock.Anything).Return(nil).Once()
		s.RegisterShutdowner(component)

		require.NoError(t, s.SetStarting(t.Context()))
		require.NoError(t, s.SetRunning(t.Context()))

		require.NoError(t, s.Shutdown(t.Context()))
		require.Equal(t, appstate.StateTerminated, s.GetState())

		require.NoError(t, s.Shutdown(t.Context()))
		require.Equal(t, appstate.StateTerminated, s.GetState())
	})

	t.Run("component failure still terminates", func(t *testing.T) {
		t.Parallel()

		s := newAppState(t)
		errStuck := errors.New("stuck")

		component := mocks.NewMockShutdowner(t)
		component.EXPECT().Name().Return("component").Once()
		component.EXPECT().Shutdown(mock.Anything).Return(errStuck).Once()
		s.RegisterShutdowner(component)

		require.ErrorIs(t, s.Shutdown(t.Context()), errStuck)
		require.Equal(t, appstate.StateTerminated, s.GetState())
	})
}

func TestAppState_Check(t *testing.T) {
	t.Parallel()

	t.Run("results keep registration order", func(t *testing.T) {
		t.Parallel()

		s := newAppState(t)
		require.NoError(t, s.RegisterChecker(&stubChecker{name: "reconciler"}))
		require.NoError(t, s.RegisterChecker(&stubChecker{name: "metrics", err: errors.New("not listening")}))

		results := s.Check(t.Context())
		require.Len(t, results, 2)
		require.Equal(t, "reconciler", results[0].Name)
		require.True(t, results[0].Healthy)
		require.Equal(t, "metrics", results[1].Name)
		require.False(t, results[1].Healthy)
		require.Equal(t, "not listening", results[1].Error)
		require.False(t, appstate.AllHealthy(results))
	})

	t.Run("slow checker times out", func(t *testing.T) {
		t.Parallel()

		s := newAppState(t)
		require.NoError(t, s.RegisterChecker(&stubChecker{name: "slow", wait: time.Minute}))

		start := time.Now()
		results := s.Check(t.Context())

		require.Less(t, time.Since(start), 5*time.Second)
		require.False(t, results[0].Healthy)
		require.Contains(t, results[0].Error, context.DeadlineExceeded.Error())
	})

	t.Run("no checkers is healthy", func(t *testing.T) {
		t.Parallel()

		require.True(t, appstate.AllHealthy(newAppState(t).Check(t.Context())))
	})
}

func TestAppState_RegisterChecker(t *testing.T) {
	t.Parallel()

	s := newAppState(t)

	require.ErrorIs(t, s.RegisterChecker(nil), appstate.ErrNilChecker)
	require.NoError(t, s.RegisterChecker(&stubChecker{name: "reconciler"}))
	require.ErrorIs(t, s.RegisterChecker(&stubChecker{name: "reconciler"}), appstate.ErrCheckerAlreadyRegistered)
}
