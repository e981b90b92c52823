package relay

import (
	"slices"
	"sync"
)

// Registry is the set of subscriber addresses messages are broadcast to.
type Registry struct {
	mu   sync.RWMutex
	subs map[string]struct{}
}

func NewRegistry() *Registry {
	return &Registry{subs: make(map[string]struct{})}
}

// Add registers addr and reports whether it was new.
func (r *Registry) Add(addr string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.subs[addr]; ok {
		return false
	}
	r.subs[addr] = struct{}{}
	return true
}

func (r *Registry) Remove(addr string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.subs, addr)
}

// Snapshot returns the registered addresses in sorted order.
func (r *Registry) Snapshot() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.subs))
	for addr := range r.subs {
		out = append(out, addr)
	}
	slices.Sort(out)
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs)
}
