package engine

import (
	"context"
	"log"
	"time"

	"github.com/lixenwraith/tickdown/core"
	"github.com/lixenwraith/tickdown/events"
)

// StartTicker runs a tick source publishing one Tick per interval.
// Its lifetime is scoped to the Running state: the control loop
// cancels ctx on every Running exit, so no tick producer outlives the
// countdown it was started for and no stale ticks survive a restart.
func StartTicker(ctx context.Context, p *events.Producer, interval time.Duration) {
	core.Go(func() {
		defer p.Close()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := p.Publish(events.Event{Type: events.TypeTick}); err != nil {
					log.Printf("ticker: shutting down: %v", err)
					return
				}
			}
		}
	})
}
