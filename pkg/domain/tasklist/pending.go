package tasklist

import "sync"

// OpKey identifies one de-duplicated mutation stream: a single roadmap item
// of a single task.
type OpKey struct {
	TaskID   string
	Position int
}

// PendingTracker is a per-key advisory gate over in-flight roadmap
// mutations. Acquiring a held key fails instead of queueing, so at most one
// operation per key is ever in flight. Its count feeds the user-visible
// "N updating" indicator and carries no other semantics.
type PendingTracker struct {
	mu       sync.Mutex
	inflight map[OpKey]struct{}
}

// NewPendingTracker returns an empty tracker.
func NewPendingTracker() *PendingTracker {
	return &PendingTracker{inflight: make(map[OpKey]struct{})}
}

// TryAcquire claims the key. It returns false if an operation for the key is
// already in flight; the caller must then drop the operation entirely.
func (p *PendingTracker) TryAcquire(key OpKey) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, held := p.inflight[key]; held {
		return false
	}
	p.inflight[key] = struct{}{}
	return true
}

// Release frees the key. It must be called exactly once per successful
// TryAcquire, on every exit path of the operation it guards.
func (p *PendingTracker) Release(key OpKey) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.inflight, key)
}

// IsPending reports whether an operation for the key is in flight.
func (p *PendingTracker) IsPending(key OpKey) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, held := p.inflight[key]
	return held
}

// Count returns the number of in-flight operations.
func (p *PendingTracker) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.inflight)
}
