// job-restart-operator watches a fixed list of batch Jobs and recreates the ones that failed.
//
// Usage:
//
//	JOB_NAMES=alice,bob job-restart-operator
//	job-restart-operator manifest alice -o json
//	job-restart-operator version
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/skillcoder/job-restart-operator/internal/infra/shutdown"
)

func main() {
	appStart := time.Now()
	// Start listening for signals immediately as first thing, before any other initialization
	signals := shutdown.Notify()
	ctx := context.Background()

	err := newRootCmd(signals, appStart).ExecuteContext(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to run", "reason", err)
		// Give the logger some time to flush
		time.Sleep(1 * time.Second)
		os.Exit(1)
	}
}
