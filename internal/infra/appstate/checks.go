package appstate

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const defaultCheckTimeout = time.Second

// CheckResult is the outcome of a single Checker ping.
type CheckResult struct {
	Name    string        `json:"name"`
	Healthy bool          `json:"healthy"`
	Error   string        `json:"error,omitempty"`
	Latency time.Duration `json:"latencyNanoseconds"`
}

// RegisterChecker adds a component to the health checks.
func (s *AppState) RegisterChecker(checker Checker) error {
	if checker == nil {
		return fmt.Errorf("register checker: %w", ErrNilChecker)
	}

	name := checker.Name()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, registered := range s.checkers {
		if registered.Name() == name {
			return fmt.Errorf("register checker %s: %w", name, ErrCheckerAlreadyRegistered)
		}
	}

	s.checkers = append(s.checkers, checker)

	s.logger.Info("checker registered", "name", name)

	return nil
}

// Check pings every registered checker in parallel, each bounded by its own timeout.
// Results keep registration order.
func (s *AppState) Check(ctx context.Context) []CheckResult {
	s.mu.RLock()
	checkers := make([]Checker, len(s.checkers))
	copy(checkers, s.checkers)
	s.mu.RUnlock()

	results := make([]CheckResult, len(checkers))

	var wg sync.WaitGroup

	for i, checker := range checkers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			results[i] = s.ping(ctx, checker)
		}()
	}

	wg.Wait()

	return results
}

func (s *AppState) ping(ctx context.Context, checker Checker) CheckResult {
	pingCtx, cancel := context.WithTimeout(ctx, defaultCheckTimeout)
	defer cancel()

	start := time.Now()
	err := checker.Ping(pingCtx)
	result := CheckResult{
		Name:    checker.Name(),
		Healthy: err == nil,
		Latency: time.Since(start),
	}

	if err != nil {
		result.Error = err.Error()

		s.logger.DebugContext(ctx, "checker failed",
			"name", result.Name,
			"latency", result.Latency,
			"reason", err,
		)
	}

	return result
}

// AllHealthy reports whether every result is healthy.
func AllHealthy(results []CheckResult) bool {
	for _, result := range results {
		if !result.Healthy {
			return false
		}
	}

	return true
}
