package application

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type Reloader interface {
	Reload(ctx context.Context)
}

// StoreRefresher reloads the store on a fixed interval so long-running
// sessions pick up changes made by other clients.
type StoreRefresher struct {
	store    Reloader
	interval time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewStoreRefresher(store Reloader, interval time.Duration) *StoreRefresher {
	return &StoreRefresher{
		store:    store,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start blocks until Stop or ctx is done. A non-positive interval disables
// the refresher and Start returns at once.
func (r *StoreRefresher) Start(ctx context.Context) {
	if r.interval <= 0 {
		slog.Warn("Store refresher disabled", "interval", r.interval)
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	slog.Info("Store refresher started", "interval", r.interval)

	for {
		select {
		case <-ticker.C:
			r.store.Reload(ctx)
			slog.Debug("Store refreshed")
		case <-r.stopChan:
			slog.Info("Store refresher stopped")
			return
		case <-ctx.Done():
			slog.Info("Store refresher stopped due to context cancellation")
			return
		}
	}
}

func (r *StoreRefresher) Stop() {
	r.stopOnce.Do(func() { close(r.stopChan) })
}
