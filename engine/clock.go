package engine

import (
	"context"
	"time"
)

// Clock abstracts wall time so the loop can be driven by tests.
type Clock interface {
	Now() time.Time
	// Sleep returns after d or as soon as ctx is done.
	Sleep(ctx context.Context, d time.Duration)
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

func (RealClock) Sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
