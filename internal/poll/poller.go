package poll

import (
	"context"
	"time"

	"waitlist-engine/internal/scheduler"
)

// Run polls now and then every interval until ctx is done.
func (p *Poller) Run(ctx context.Context, interval time.Duration) {
	p.logger().Sugar().Infof("poller started interval=%s", interval)
	scheduler.Every(ctx, p.logger(), interval, "poll", func(ctx context.Context) error {
		_, err := p.PollOnce(ctx)
		return err
	})
}
