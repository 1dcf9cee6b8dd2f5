package background

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/openmazad/auction-service/internal/usecase/lifecycle"
)

// BackgroundTasks owns the recurring lifecycle sweep. The host process
// starts it once and stops it deterministically: Stop waits for an
// in-flight pass to finish so no auction is left mid-transition.
type BackgroundTasks struct {
	Lifecycle     lifecycle.LifecycleUsecase
	SweepInterval time.Duration

	wg sync.WaitGroup
}

func NewBackgroundTasks(lifecycleUC lifecycle.LifecycleUsecase, sweepInterval time.Duration) *BackgroundTasks {
	if sweepInterval <= 0 {
		sweepInterval = 5 * time.Minute
	}
	return &BackgroundTasks{
		Lifecycle:     lifecycleUC,
		SweepInterval: sweepInterval,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	bt.wg.Add(1)
	go bt.startLifecycleSweep(ctx)
}

// Stop blocks until the running tasks have drained.
func (bt *BackgroundTasks) Stop() {
	bt.wg.Wait()
}

func (bt *BackgroundTasks) startLifecycleSweep(ctx context.Context) {
	defer bt.wg.Done()

	// One pass right away: auctions that expired while the process was
	// down should not wait a full interval.
	if err := bt.Lifecycle.SweepOnce(ctx); err != nil {
		slog.Error("lifecycle sweep failed", "error", err.Error())
	}

	ticker := time.NewTicker(bt.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.Lifecycle.SweepOnce(ctx); err != nil {
				slog.Error("lifecycle sweep failed", "error", err.Error())
			}
		}
	}
}
