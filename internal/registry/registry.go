// Package registry holds the in-memory activity registry for the
// Mergington activities service.
//
// A Registry is created once at startup from a seed dataset and passed to
// the HTTP layer. Activities are never created or removed at runtime; only
// their participant lists change through Signup and Unregister.
package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
)

// Activity is a named extracurricular offering.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Registry is a concurrency-safe store of activities keyed by name.
type Registry struct {
	mu              sync.RWMutex
	activities      map[string]*Activity
	enforceCapacity bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithCapacityEnforcement makes Signup reject new participants once an
// activity holds MaxParticipants entries.
func WithCapacityEnforcement(enabled bool) Option {
	return func(r *Registry) {
		r.enforceCapacity = enabled
	}
}

// New creates a Registry seeded with a copy of the given activities.
func New(seed map[string]Activity, opts ...Option) *Registry {
	r := &Registry{
		activities: make(map[string]*Activity, len(seed)),
	}
	for name, a := range seed {
		a := a.clone()
		r.activities[name] = &a
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// List returns every activity keyed by name. The result is a snapshot and
// may be modified freely by the caller.
func (r *Registry) List() map[string]Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]Activity, len(r.activities))
	for name, a := range r.activities {
		out[name] = a.clone()
	}
	return out
}

// Get returns a single activity by exact name.
func (r *Registry) Get(name string) (Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return Activity{}, fmt.Errorf("%w: %s", ErrActivityNotFound, name)
	}
	return a.clone(), nil
}

// Len returns the number of activities.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.activities)
}

// Signup adds email to the named activity and returns a confirmation message.
func (r *Registry) Signup(name, email string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrActivityNotFound, name)
	}
	if slices.Contains(a.Participants, email) {
		return "", fmt.Errorf("%w: %s", ErrAlreadySignedUp, email)
	}
	if r.enforceCapacity && len(a.Participants) >= a.MaxParticipants {
		return "", fmt.Errorf("%w: %s (%d/%d)", ErrActivityFull, name, len(a.Participants), a.MaxParticipants)
	}

	a.Participants = append(a.Participants, email)

	log.Info().
		Str("activity", name).
		Str("email", email).
		Int("participants", len(a.Participants)).
		Msg("Participant signed up")

	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

// Unregister removes email from the named activity and returns a confirmation message.
func (r *Registry) Unregister(name, email string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrActivityNotFound, name)
	}
	i := slices.Index(a.Participants, email)
	if i < 0 {
		return "", fmt.Errorf("%w: %s", ErrNotRegistered, email)
	}

	a.Participants = slices.Delete(a.Participants, i, i+1)

	log.Info().
		Str("activity", name).
		Str("email", email).
		Int("participants", len(a.Participants)).
		Msg("Participant unregistered")

	return fmt.Sprintf("Unregistered %s from %s", email, name), nil
}

func (a Activity) clone() Activity {
	// Non-nil so an empty list encodes as [] rather than null.
	a.Participants = append(make([]string, 0, len(a.Participants)), a.Participants...)
	return a
}
