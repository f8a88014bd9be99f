package monitor

import "sync/atomic"

// Readiness is the only process-wide mutable state: whether this instance
// should still receive traffic. It is owned by the bootstrap and shared with
// the health handler and the lifecycle manager; handlers never mutate it.
type Readiness struct {
	down atomic.Bool
}

func NewReadiness() *Readiness {
	return &Readiness{}
}

// MarkDown flips the instance to draining. It is never flipped back.
func (r *Readiness) MarkDown() {
	r.down.Store(true)
}

// Ready reports whether the instance is accepting traffic.
func (r *Readiness) Ready() bool {
	return !r.down.Load()
}
