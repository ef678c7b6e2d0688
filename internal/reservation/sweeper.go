package reservation

import (
	"context"
	"log"
	"time"
)

// RunSweeper drives the expiry sweep on a fixed interval until the
// context is cancelled.  The sweep reclaims seats without waiting for a
// confirm attempt to trip the lazy deadline check; correctness does not
// depend on it running, only reclamation latency does.
func (c *Coordinator) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := c.Sweep(now.UTC()); n > 0 {
				log.Printf("expiry-sweep: released %d expired hold(s)", n)
			}
		}
	}
}
