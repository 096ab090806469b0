package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/skillcoder/job-restart-operator/internal/infra/appstate"
	"github.com/skillcoder/job-restart-operator/internal/logic/reconciler"
)

type statusResponse struct {
	State     string                          `json:"state"`
	Uptime    string                          `json:"uptime"`
	StartTime time.Time                       `json:"startTime"`
	UptimeSec float64                         `json:"uptimeSeconds"`
	Checks    []appstate.CheckResult          `json:"checks"`
	Jobs      map[string]reconciler.JobStatus `json:"jobs"`
}

// handleHealthz fails when the app is not running or any registered checker fails.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := s.logger.With("traceID", middleware.GetReqID(ctx))

	if !s.appState.IsHealthy() {
		w.WriteHeader(http.StatusServiceUnavailable)
		logger.DebugContext(ctx, "health check failed", "state", s.appState.GetState())

		return
	}

	if results := s.appState.Check(ctx); !appstate.AllHealthy(results) {
		w.WriteHeader(http.StatusServiceUnavailable)
		logger.DebugContext(ctx, "health check failed", "checks", results)

		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if !s.appState.IsReady() {
		w.WriteHeader(http.StatusServiceUnavailable)
		s.logger.DebugContext(r.Context(), "readiness check failed", "traceID", middleware.GetReqID(r.Context()))

		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	uptime := s.appState.GetUptime()

	response := statusResponse{
		State:     string(s.appState.GetState()),
		Uptime:    uptime.String(),
		StartTime: s.appState.GetStartTime(),
		UptimeSec: uptime.Seconds(),
		Checks:    s.appState.Check(ctx),
		Jobs:      s.jobs.JobStatuses(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.logger.ErrorContext(ctx, "failed to encode status response",
			"traceID", middleware.GetReqID(ctx),
			"reason", err,
		)
	}
}
