package console

import (
	"context"
	"sync"
	"time"

	"github.com/appetiteclub/apt"
)

// Refresher runs a named tick function on a fixed interval until its
// context is cancelled or Stop is called. Each tick gets its own timeout
// so a slow backend cannot stall the loop, and a failed tick is logged
// and skipped rather than ending the loop.
type Refresher struct {
	name     string
	interval time.Duration
	tick     func(ctx context.Context) error
	logger   apt.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRefresher creates a stopped refresher.
func NewRefresher(name string, interval time.Duration, tick func(ctx context.Context) error, logger apt.Logger) *Refresher {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &Refresher{
		name:     name,
		interval: interval,
		tick:     tick,
		logger:   logger,
	}
}

// Start launches the loop. It runs one tick immediately so panels have
// data as soon as the service is up. Starting an already running
// refresher is a no-op.
func (r *Refresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})

	go r.run(ctx)
}

func (r *Refresher) run(ctx context.Context) {
	defer close(r.done)

	r.logger.Info("refresh loop started", "name", r.name, "interval", r.interval.String())

	r.runTick(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("refresh loop stopped", "name", r.name)
			return
		case <-ticker.C:
			r.runTick(ctx)
		}
	}
}

func (r *Refresher) runTick(ctx context.Context) {
	tctx, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	if err := r.tick(tctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		r.logger.Error("refresh tick failed", "name", r.name, "error", err)
	}
}

// Stop cancels the loop and waits for the current tick to finish.
// Stopping a refresher that never started is a no-op.
func (r *Refresher) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel = nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
