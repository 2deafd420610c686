package server

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/Aayushjha0128/GraphSense/pkg/builder"
)

// ErrSessionNotFound is returned when a session ID has no live graph.
var ErrSessionNotFound = errors.New("session not found")

// session pairs a builder with the mutex that serializes access to it.
// Handlers must hold mu for the duration of any graph read or write.
type session struct {
	id string
	mu sync.Mutex
	b  *builder.Builder
}

// registry tracks live sessions by ID.
type registry struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func newRegistry() *registry {
	return &registry{sessions: make(map[string]*session)}
}

// add registers b under a fresh UUID and returns the session.
func (r *registry) add(b *builder.Builder) *session {
	sess := &session{id: uuid.NewString(), b: b}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sess.id] = sess
	return sess
}

// get looks up a session by ID.
func (r *registry) get(id string) (*session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSessionNotFound, id)
	}
	return sess, nil
}

// remove drops a session. Returns ErrSessionNotFound if absent.
func (r *registry) remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("%w: %q", ErrSessionNotFound, id)
	}
	delete(r.sessions, id)
	return nil
}

// ids returns all session IDs in ascending order.
func (r *registry) ids() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.sessions))
}
