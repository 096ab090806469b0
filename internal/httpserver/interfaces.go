package httpserver

import (
	"context"
	"time"

	"github.com/skillcoder/job-restart-operator/internal/infra/appstate"
	"github.com/skillcoder/job-restart-operator/internal/logic/reconciler"
)

// appstater is an internal interface for application state management
type appstater interface {
	GetState() appstate.State
	IsHealthy() bool
	IsReady() bool
	GetUptime() time.Duration
	GetStartTime() time.Time
	Check(ctx context.Context) []appstate.CheckResult
}

type jobStatuser interface {
	JobStatuses() map[string]reconciler.JobStatus
}
