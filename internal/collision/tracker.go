package collision

import (
	"github.com/arloliu/grnbulk/errs"
)

// Tracker tracks domain names by their 64-bit name hash and detects collisions.
//
// A registry keyed by name hash can only answer lookups from the hash alone while no two
// names share a hash. Once a collision is seen the owner must compare names as well.
type Tracker struct {
	names        map[uint64][]string // hash → names sharing it
	order        []string            // registration order
	hasCollision bool
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names: make(map[uint64][]string),
		order: make([]string, 0),
	}
}

// Track records name under hash.
//
// Returns errs.ErrInvalidDomainName for an empty name and errs.ErrDomainExists if the
// same name was tracked before. Two different names with the same hash are not an
// error; the collision flag is set instead.
func (t *Tracker) Track(name string, hash uint64) error {
	if name == "" {
		return errs.ErrInvalidDomainName
	}

	existing := t.names[hash]
	for _, n := range existing {
		if n == name {
			return errs.ErrDomainExists
		}
	}
	if len(existing) > 0 {
		t.hasCollision = true
	}

	t.names[hash] = append(existing, name)
	t.order = append(t.order, name)

	return nil
}

// Collides reports whether hash is shared by more than one tracked name.
func (t *Tracker) Collides(hash uint64) bool {
	return len(t.names[hash]) > 1
}

// HasCollision returns true if any collision has been detected.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Names returns the tracked names in registration order.
func (t *Tracker) Names() []string {
	return t.order
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	return len(t.order)
}

// Reset clears all tracked names and collision state.
func (t *Tracker) Reset() {
	for k := range t.names {
		delete(t.names, k)
	}
	t.order = t.order[:0]
	t.hasCollision = false
}
