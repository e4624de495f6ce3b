// Package pacer spaces out outbound requests to external services.
package pacer

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Clock abstracts time so pacing can be tested without sleeping.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

// RealClock uses the wall clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

func (RealClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Pacer wraps a token bucket limiter with a burst of one, so consecutive
// Wait calls return at least one interval apart.
type Pacer struct {
	limiter *rate.Limiter
	clock   Clock
}

// New creates a pacer allowing one request per interval.
func New(interval time.Duration, clock Clock) *Pacer {
	if clock == nil {
		clock = RealClock{}
	}
	return &Pacer{
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		clock:   clock,
	}
}

// PerSecond creates a pacer allowing rps requests per second on the wall
// clock.
func PerSecond(rps float64) *Pacer {
	return &Pacer{
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		clock:   RealClock{},
	}
}

// Wait blocks until the next request may be sent.
func (p *Pacer) Wait(ctx context.Context) error {
	now := p.clock.Now()
	r := p.limiter.ReserveN(now, 1)
	if !r.OK() {
		return context.DeadlineExceeded
	}
	if err := p.clock.Sleep(ctx, r.DelayFrom(now)); err != nil {
		r.CancelAt(p.clock.Now())
		return err
	}
	return nil
}
