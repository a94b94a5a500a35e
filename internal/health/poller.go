// Package health runs the periodic backend liveness probe. It writes only
// the store's offline flag and never touches foreground query state.
package health

import (
	"context"
	"log/slog"
	"time"

	"github.com/thanseerjelani/mgnrega-dashboard/internal/store"
)

// Checker is the liveness probe the poller runs. CheckHealth never fails;
// it answers true when the backend responded.
type Checker interface {
	CheckHealth(ctx context.Context) bool
}

type Poller struct {
	checker  Checker
	store    *store.Store
	interval time.Duration
}

func NewPoller(checker Checker, st *store.Store, interval time.Duration) *Poller {
	return &Poller{checker: checker, store: st, interval: interval}
}

// Start probes once immediately, then on every tick until ctx is
// cancelled.
func (p *Poller) Start(ctx context.Context) {
	go func() {
		p.probe(ctx)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.probe(ctx)
			}
		}
	}()
}

func (p *Poller) probe(ctx context.Context) {
	alive := p.checker.CheckHealth(ctx)
	if !alive {
		slog.Warn("backend health check failed")
	}
	p.store.SetOffline(!alive)
}
