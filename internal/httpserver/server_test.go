package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/job-restart-operator/internal/httpserver"
	"github.com/skillcoder/job-restart-operator/internal/infra/appstate"
	"github.com/skillcoder/job-restart-operator/internal/infra/metrics"
	"github.com/skillcoder/job-restart-operator/internal/logic/reconciler"
)

type stubJobs map[string]reconciler.JobStatus

func (j stubJobs) JobStatuses() map[string]reconciler.JobStatus {
	return j
}

type stubChecker struct {
	err error
}

func (c stubChecker) Name() string {
	return "reconciler"
}

func (c stubChecker) Ping(context.Context) error {
	return c.err
}

func newRunningAppState(t *testing.T, checkerErr error) *appstate.AppState {
	t.Helper()

	s := appstate.New(slog.Default(), time.Now(), make(chan os.Signal, 1))
	require.NoError(t, s.RegisterChecker(stubChecker{err: checkerErr}))
	require.NoError(t, s.SetStarting(t.Context()))
	require.NoError(t, s.SetRunning(t.Context()))

	return s
}

func localURL(t *testing.T, addr, path string) string {
	t.Helper()

	_, port, err := net.SplitHostPort(addr)
	require.NoError(t, err)

	return "http://127.0.0.1:" + port + path
}

func serve(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)

	handler.ServeHTTP(rec, req)

	return rec
}

func TestServer_Healthz(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	tests := []struct {
		name       string
		giveState  func(t *testing.T) *appstate.AppState
		wantStatus int
	}{
		{
			name: "running and checks pass",
			giveState: func(t *testing.T) *appstate.AppState {
				return newRunningAppState(t, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "failing checker",
			giveState: func(t *testing.T) *appstate.AppState {
				return newRunningAppState(t, errors.New("last reconcile was too long ago"))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "not running",
			giveState: func(*testing.T) *appstate.AppState {
				return appstate.New(logger, time.Now(), make(chan os.Signal, 1))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httpserver.New(logger, tt.giveState(t), stubJobs{}, "0")
			rec := serve(t, srv.Handler(), "/-/healthz")
			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestServer_Readyz(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	notReady := appstate.New(logger, time.Now(), make(chan os.Signal, 1))
	rec := serve(t, httpserver.New(logger, notReady, stubJobs{}, "0").Handler(), "/-/readyz")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	// readiness ignores checker failures
	ready := newRunningAppState(t, errors.New("stale"))
	rec = serve(t, httpserver.New(logger, ready, stubJobs{}, "0").Handler(), "/-/readyz")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_Status(t *testing.T) {
	t.Parallel()

	giveRestartAt := time.Date(2025, 1, 1, 11, 0, 15, 0, time.UTC)
	jobs := stubJobs{
		"alice": {
			Phase:         reconciler.PhaseActive,
			LastChecked:   giveRestartAt,
			LastRestartAt: giveRestartAt,
			Restarts:      1,
		},
		"bob": {
			Phase:         reconciler.PhaseAbsent,
			LastChecked:   giveRestartAt,
			LastErrorKind: reconciler.KindNotFound,
			LastError:     `job "bob" not found`,
		},
	}

	srv := httpserver.New(slog.Default(), newRunningAppState(t, nil), jobs, "0")
	rec := serve(t, srv.Handler(), "/-/status")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		State  string `json:"state"`
		Checks []struct {
			Name    string `json:"name"`
			Healthy bool   `json:"healthy"`
		} `json:"checks"`
		Jobs map[string]map[string]any `json:"jobs"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	require.Equal(t, string(appstate.StateRunning), body.State)
	require.Len(t, body.Checks, 1)
	require.True(t, body.Checks[0].Healthy)

	require.Equal(t, "active", body.Jobs["alice"]["phase"])
	require.InDelta(t, 1, body.Jobs["alice"]["restarts"], 0)
	require.Equal(t, "not_found", body.Jobs["bob"]["lastErrorKind"])
	require.NotContains(t, body.Jobs["bob"], "lastRestartAt")
}

func TestServer_Lifecycle(t *testing.T) {
	t.Parallel()

	logger := slog.Default()
	srv := httpserver.New(logger, newRunningAppState(t, nil), stubJobs{}, "0")

	require.Equal(t, "http-server", srv.Name())
	require.Error(t, srv.Ping(t.Context()))
	require.Empty(t, srv.Addr())

	require.NoError(t, srv.Start(t.Context()))

	select {
	case <-srv.Ready():
	case <-time.After(time.Second):
		t.Fatal("server did not become ready")
	}

	require.NoError(t, srv.Ping(t.Context()))

	resp, err := http.Get(localURL(t, srv.Addr(), "/-/readyz"))
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, srv.Shutdown(shutdownCtx))
	require.NoError(t, srv.Shutdown(shutdownCtx))
}

func TestMetricsServer_Lifecycle(t *testing.T) {
	t.Parallel()

	srv := httpserver.NewMetricsServer(slog.Default(), "0")

	require.Equal(t, "metrics-server", srv.Name())
	require.Error(t, srv.Ping(t.Context()))

	require.NoError(t, srv.Start(t.Context()))
	<-srv.Ready()
	require.NoError(t, srv.Ping(t.Context()))

	metrics.RecordRestart("flickr-downloader", "metrics-server-test", "oom")

	resp, err := http.Get(localURL(t, srv.Addr(), "/metrics"))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), `job_restart_operator_restarts_total{job="metrics-server-test",namespace="flickr-downloader",reason="oom"} 1`)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, srv.Shutdown(shutdownCtx))
}
