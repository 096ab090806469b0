package reconciler

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/skillcoder/job-restart-operator/internal/infra/metrics"
)

// Settings is the validated configuration the reconcile loop runs with.
type Settings struct {
	Namespace      string
	JobNames       []string
	CheckInterval  time.Duration
	RestartDelay   time.Duration
	SkipDelayOnOOM bool

	// RestartSettle bounds the wait between delete and create; zero means DefaultRestartSettle.
	RestartSettle time.Duration

	// Now returns the current time; nil means time.Now.
	Now func() time.Time
}

// cacheEntry is the last manifest built for a job. pendingRecreate is set
// once the job was deleted by this process and not yet created again.
type cacheEntry struct {
	manifest        RestartableManifest
	pendingRecreate bool
}

type Service struct {
	logger        *slog.Logger
	repo          Repository
	reporter      diagnoser
	namespace     string
	jobNames      []string
	interval      time.Duration
	restartDelay  time.Duration
	skipOnOOM     bool
	restartSettle time.Duration
	now           func() time.Time

	// cache is only touched by the reconcile goroutine.
	cache map[string]*cacheEntry

	ready      chan struct{}
	doneCh     chan struct{}
	inShutdown atomic.Bool

	mu           sync.RWMutex
	lastProgress time.Time
	statuses     map[string]JobStatus
}

// New creates a new reconcile service.
func New(
	logger *slog.Logger,
	repo Repository,
	settings Settings,
) *Service {
	restartSettle := settings.RestartSettle
	if restartSettle <= 0 {
		restartSettle = DefaultRestartSettle
	}

	now := settings.Now
	if now == nil {
		now = time.Now
	}

	return &Service{
		logger:        logger,
		repo:          repo,
		reporter:      NewReporter(logger, repo, settings.Namespace),
		namespace:     settings.Namespace,
		jobNames:      slices.Clone(settings.JobNames),
		interval:      settings.CheckInterval,
		restartDelay:  settings.RestartDelay,
		skipOnOOM:     settings.SkipDelayOnOOM,
		restartSettle: restartSettle,
		now:           now,
		cache:         make(map[string]*cacheEntry, len(settings.JobNames)),
		ready:         make(chan struct{}),
		doneCh:        make(chan struct{}),
		statuses:      make(map[string]JobStatus, len(settings.JobNames)),
	}
}

func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "reconciler is shutting down, skipping start")

		return nil
	}

	go s.RunCommand(ctx)

	return nil
}

// Name returns the name of the reconciler component
func (s *Service) Name() string {
	return "job-reconciler"
}

func (s *Service) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ready:
		// Progress is stamped per job, so the longest quiet gap is one sleep
		// plus one restart settle, however many jobs a cycle restarts.
		progressAge := s.getProgressAge()
		if progressAge > 2*s.interval+s.restartSettle {
			return fmt.Errorf("last reconcile progress was too long ago: %s", progressAge.Round(time.Second).String())
		}

		return nil
	default:
		return fmt.Errorf("reconciler is not ready")
	}
}

func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "reconciler is already shutting down, skipping shutdown")

		return nil
	}

	defer func() {
		s.logger.InfoContext(ctx, "reconciler shut downed")
	}()

	s.logger.InfoContext(ctx, "shutting down reconciler")

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before reconcile loop exited: %w", ctx.Err())
	case <-s.doneCh:
		s.logger.InfoContext(ctx, "reconcile loop exited")
	}

	return nil
}

func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// RunCommand runs reconcile cycles until ctx is cancelled, sleeping the
// configured interval between cycles.
func (s *Service) RunCommand(ctx context.Context) {
	defer close(s.doneCh)

	logger := s.logger.With("reconciler", "RunCommand")

	logger.InfoContext(ctx, "reconciler started",
		"jobs", len(s.jobNames),
		"namespace", s.namespace,
	)

	s.markProgress()
	close(s.ready)

	for {
		s.ReconcileCommand(ctx)
		s.markProgress()

		select {
		case <-ctx.Done():
			logger.InfoContext(ctx, "terminating reconcile loop")

			return
		default:
		}

		logger.InfoContext(ctx, "sleeping until next cycle", "interval", s.interval)

		timer := time.NewTimer(s.interval)

		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			logger.InfoContext(ctx, "terminating reconcile loop")

			return
		}
	}
}

// ReconcileCommand runs one cycle over every configured job, in order.
// It returns the per-job errors of the cycle; none of them stop the cycle.
func (s *Service) ReconcileCommand(ctx context.Context) []*JobError {
	logger := s.logger.With("reconciler", "ReconcileCommand")

	start := time.Now()
	defer func() {
		metrics.ObserveReconcileDuration(time.Since(start))
	}()

	var jobErrors []*JobError

	for _, jobName := range s.jobNames {
		select {
		case <-ctx.Done():
			logger.InfoContext(ctx, "context done, stopping reconciliation")

			return jobErrors
		default:
		}

		phase, jobErr := s.processJob(ctx, logger, jobName)
		s.recordJob(ctx, logger, jobName, phase, jobErr)
		s.markProgress()

		if jobErr != nil {
			jobErrors = append(jobErrors, jobErr)
		}
	}

	return jobErrors
}

func (s *Service) processJob(
	ctx context.Context,
	logger *slog.Logger,
	jobName string,
) (phase Phase, jobErr *JobError) {
	logger = logger.With("job", jobName, "namespace", s.namespace)

	defer func() {
		if r := recover(); r != nil {
			phase = ""
			jobErr = newJobError(jobName, KindUnexpected, fmt.Errorf("%w: %v", ErrPanic, r))
		}
	}()

	logger.DebugContext(ctx, "checking job")

	snapshot, err := s.repo.GetJobQuery(ctx, s.namespace, jobName)
	if err != nil {
		kind := kindOf(err)
		if kind == KindNotFound {
			return s.handleMissingJob(ctx, logger, jobName, err)
		}

		return "", newJobError(jobName, kind, fmt.Errorf("%w: %w", ErrGetJob, err))
	}

	manifest, err := BuildManifest(snapshot)
	if err != nil {
		return "", newJobError(jobName, KindUnexpected, fmt.Errorf("build manifest: %w", err))
	}

	// The job exists, so any earlier pending recreate is settled.
	s.cache[jobName] = &cacheEntry{manifest: manifest}

	state, err := Classify(snapshot)
	if err != nil {
		return "", newJobError(jobName, KindUnexpected, fmt.Errorf("classify job: %w", err))
	}

	switch state.Phase {
	case PhaseActive:
		logger.InfoContext(ctx, "job is running")
	case PhaseFailed:
		return PhaseFailed, s.handleFailedJob(ctx, logger, jobName, state.FailedAt)
	default:
		logger.InfoContext(ctx, "job succeeded or still pending, no action needed")
	}

	return state.Phase, nil
}

func (s *Service) handleMissingJob(
	ctx context.Context,
	logger *slog.Logger,
	jobName string,
	err error,
) (Phase, *JobError) {
	entry, ok := s.cache[jobName]
	if !ok || !entry.pendingRecreate {
		logger.InfoContext(ctx, "job not found, nothing to do")

		return PhaseAbsent, newJobError(jobName, KindNotFound, err)
	}

	logger.InfoContext(ctx, "job not found after an interrupted restart, recreating")

	return PhaseAbsent, s.createJob(ctx, logger, jobName, entry, RestartReasonRecreate)
}

func (s *Service) handleFailedJob(
	ctx context.Context,
	logger *slog.Logger,
	jobName string,
	failedAt time.Time,
) *JobError {
	reports := s.reporter.Report(ctx, jobName)

	decision := Decide(failedAt, s.now(), s.restartDelay, s.skipOnOOM, OOMObserved(reports))

	logger = logger.With(
		"failedAgo", decision.Elapsed.Round(time.Second).String(),
		"restartDelay", s.restartDelay.String(),
	)

	if decision.Action == ActionWait {
		logger.InfoContext(ctx, "job failed, waiting before restart",
			"remaining", decision.Remaining.Round(time.Second).String(),
		)

		return nil
	}

	logger.InfoContext(ctx, "job failed, deleting and recreating", "restartReason", string(decision.Reason))

	return s.restartJob(ctx, logger, jobName, decision.Reason)
}

// restartJob deletes the job with foreground propagation, waits for cleanup and
// creates it again from the manifest cached in this cycle.
func (s *Service) restartJob(
	ctx context.Context,
	logger *slog.Logger,
	jobName string,
	reason RestartReason,
) *JobError {
	entry, ok := s.cache[jobName]
	if !ok {
		return newJobError(jobName, KindUnexpected, ErrNoCachedManifest)
	}

	err := s.repo.DeleteJobCommand(ctx, s.namespace, jobName)
	if err != nil {
		kind := kindOf(err)
		if kind == KindNotFound {
			// Deleted by someone else since the fetch. Leave it gone.
			logger.InfoContext(ctx, "job already gone when deleting, not recreating")
		}

		return newJobError(jobName, kind, fmt.Errorf("%w: %w", ErrDeleteJob, err))
	}

	entry.pendingRecreate = true
	s.markProgress()

	timer := time.NewTimer(s.restartSettle)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		logger.InfoContext(ctx, "shutdown requested while waiting for cleanup, restart abandoned")

		return nil
	case <-timer.C:
	}

	return s.createJob(ctx, logger, jobName, entry, reason)
}

func (s *Service) createJob(
	ctx context.Context,
	logger *slog.Logger,
	jobName string,
	entry *cacheEntry,
	reason RestartReason,
) *JobError {
	err := s.repo.CreateJobCommand(ctx, s.namespace, entry.manifest)
	if err != nil {
		kind := kindOf(err)
		if kind == KindNotFound {
			kind = KindAPI
		}

		return newJobError(jobName, kind, fmt.Errorf("%w: %w", ErrCreateJob, err))
	}

	entry.pendingRecreate = false

	metrics.RecordRestart(s.namespace, jobName, string(reason))
	s.recordRestart(jobName)

	logger.InfoContext(ctx, "job restarted successfully", "restartReason", string(reason))

	return nil
}

// recordJob logs a job error at the job boundary and updates the status view.
func (s *Service) recordJob(
	ctx context.Context,
	logger *slog.Logger,
	jobName string,
	phase Phase,
	jobErr *JobError,
) {
	if jobErr != nil && jobErr.Kind != KindNotFound {
		logger.ErrorContext(ctx, "process job error",
			"job", jobName,
			"namespace", s.namespace,
			"kind", string(jobErr.Kind),
			"reason", jobErr.Err,
		)

		metrics.RecordJobError(s.namespace, jobName, string(jobErr.Kind))
	}

	if phase != "" {
		metrics.SetJobPhase(s.namespace, jobName, string(phase))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	status := s.statuses[jobName]
	status.LastChecked = s.now()

	if phase != "" {
		status.Phase = phase
	}

	status.LastErrorKind = KindNone
	status.LastError = ""

	// not found is shown in the status view but is not counted as an error
	if jobErr != nil {
		status.LastErrorKind = jobErr.Kind
		status.LastError = jobErr.Err.Error()
	}

	s.statuses[jobName] = status
}

func (s *Service) recordRestart(jobName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := s.statuses[jobName]
	status.LastRestartAt = s.now()
	status.Restarts++
	s.statuses[jobName] = status
}

// JobStatuses returns a copy of the last observed status of every checked job.
func (s *Service) JobStatuses() map[string]JobStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.statuses)
}

func (s *Service) getProgressAge() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return time.Since(s.lastProgress)
}

func (s *Service) markProgress() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastProgress = time.Now()
}
