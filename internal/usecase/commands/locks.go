package commands

import (
	"sync"

	"github.com/google/uuid"
)

// sessionLocks serializes the find-mutate-save cycle per session so
// concurrent requests on one session cannot interleave. Locks are not held
// across the simulated delays; a second request observes the saved pending
// state and is answered with an in-flight error instead of blocking.
type sessionLocks struct {
	mu sync.Map // uuid.UUID -> *sync.Mutex
}

func (l *sessionLocks) lock(id uuid.UUID) func() {
	v, _ := l.mu.LoadOrStore(id, &sync.Mutex{})
	m := v.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}
