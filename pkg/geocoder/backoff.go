package geocoder

import (
	"sync"
	"time"
)

// Backoff is the rate-limit state shared by the lookups that use it: the
// delay applied before each uncached request and a blocked flag set once
// retries have been exhausted. It is safe for concurrent use.
type Backoff struct {
	mu      sync.Mutex
	blocked bool
	delay   time.Duration
}

func NewBackoff() *Backoff {
	return &Backoff{}
}

func (b *Backoff) Blocked() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.blocked
}

func (b *Backoff) Delay() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.delay
}

// Increase grows the delay by step and returns the new delay.
func (b *Backoff) Increase(step time.Duration) time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.delay += step
	return b.delay
}

// Block marks the service as exhausted.
func (b *Backoff) Block() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.blocked = true
}

// Reset clears both the block and the delay.
func (b *Backoff) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.blocked = false
	b.delay = 0
}
