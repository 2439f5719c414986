package rpc

import "context"

// limiter is a fixed pool of request slots. Each Client owns one.
type limiter struct {
	slots chan struct{}
}

func newLimiter(size int) *limiter {
	return &limiter{slots: make(chan struct{}, size)}
}

// acquire blocks until a slot is free or ctx is done.
func (l *limiter) acquire(ctx context.Context) error {
	select {
	case l.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *limiter) release() {
	<-l.slots
}

func (l *limiter) inFlight() int {
	return len(l.slots)
}

func (l *limiter) capacity() int {
	return cap(l.slots)
}
