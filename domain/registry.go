// Package domain resolves type ids ("domains" or "ranges") to their category.
//
// The codec needs exactly one capability from the search engine's schema: given a type
// id, tell whether it is a primitive kind or a table whose values are record ids. That
// capability is the Registry interface. MemoryRegistry is an in-process implementation
// preloaded with the built-in types; tables are added with RegisterTable.
package domain

import (
	"fmt"
	"sync"

	"github.com/arloliu/grnbulk/errs"
	"github.com/arloliu/grnbulk/format"
	"github.com/arloliu/grnbulk/internal/collision"
	"github.com/arloliu/grnbulk/internal/hash"
)

// Descriptor describes one registered type.
type Descriptor struct {
	ID       format.ID
	Name     string
	Category format.Category
}

// ObjectID returns the descriptor's id, so a Descriptor can be encoded as an opaque
// typed handle.
func (d Descriptor) ObjectID() format.ID {
	return d.ID
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s(%d:%s)", d.Name, d.ID, d.Category)
}

// Registry resolves type ids. Implementations must be safe for concurrent use, and
// Resolve must be idempotent and free of side effects.
type Registry interface {
	Resolve(id format.ID) (Descriptor, bool)
}

// Builtins returns the descriptors of the built-in types, in id order.
//
// Built-in ids without a codec layout (Bool, Int8, ...) resolve to CategoryOther.
func Builtins() []Descriptor {
	return []Descriptor{
		{ID: format.DomainVoid, Name: "Void", Category: format.CategoryVoid},
		{ID: format.DomainObject, Name: "Object", Category: format.CategoryOther},
		{ID: format.DomainBool, Name: "Bool", Category: format.CategoryOther},
		{ID: format.DomainInt8, Name: "Int8", Category: format.CategoryOther},
		{ID: format.DomainUInt8, Name: "UInt8", Category: format.CategoryOther},
		{ID: format.DomainInt16, Name: "Int16", Category: format.CategoryOther},
		{ID: format.DomainUInt16, Name: "UInt16", Category: format.CategoryOther},
		{ID: format.DomainInt32, Name: "Int32", Category: format.CategoryInt32},
		{ID: format.DomainUInt32, Name: "UInt32", Category: format.CategoryUInt32},
		{ID: format.DomainInt64, Name: "Int64", Category: format.CategoryInt64},
		{ID: format.DomainUInt64, Name: "UInt64", Category: format.CategoryOther},
		{ID: format.DomainFloat, Name: "Float", Category: format.CategoryFloat64},
		{ID: format.DomainTime, Name: "Time", Category: format.CategoryTimestamp},
		{ID: format.DomainShortText, Name: "ShortText", Category: format.CategoryShortText},
		{ID: format.DomainText, Name: "Text", Category: format.CategoryText},
		{ID: format.DomainLongText, Name: "LongText", Category: format.CategoryLongText},
	}
}

// Get resolves id in r and returns an error wrapping errs.ErrDomainNotFound when it is
// not registered.
func Get(r Registry, id format.ID) (Descriptor, error) {
	d, ok := r.Resolve(id)
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: id %d", errs.ErrDomainNotFound, id)
	}

	return d, nil
}

// MemoryRegistry is a Registry held in process memory.
//
// Lookups by id are the hot path used by decoders and take a read lock only.
// Name lookups go through the xxHash64 of the name; names are compared only for hashes
// that are known to collide.
type MemoryRegistry struct {
	mu      sync.RWMutex
	byID    map[format.ID]Descriptor
	byHash  map[uint64][]format.ID
	tracker *collision.Tracker
	nextID  format.ID
}

var _ Registry = (*MemoryRegistry)(nil)

// NewMemoryRegistry creates a registry preloaded with Builtins.
func NewMemoryRegistry() *MemoryRegistry {
	r := &MemoryRegistry{
		byID:    make(map[format.ID]Descriptor),
		byHash:  make(map[uint64][]format.ID),
		tracker: collision.NewTracker(),
		nextID:  format.ReservedDomainCount,
	}

	for _, d := range Builtins() {
		if err := r.add(d); err != nil {
			panic(fmt.Sprintf("domain: invalid builtin %s: %v", d, err))
		}
	}

	return r
}

// Resolve returns the descriptor registered under id.
func (r *MemoryRegistry) Resolve(id format.ID) (Descriptor, bool) {
	r.mu.RLock()
	d, ok := r.byID[id]
	r.mu.RUnlock()

	return d, ok
}

// Lookup returns the descriptor registered under name.
func (r *MemoryRegistry) Lookup(name string) (Descriptor, bool) {
	h := hash.ID(name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byHash[h]
	if len(ids) == 1 && !r.tracker.Collides(h) {
		return r.byID[ids[0]], true
	}

	for _, id := range ids {
		if d := r.byID[id]; d.Name == name {
			return d, true
		}
	}

	return Descriptor{}, false
}

// RegisterTable adds a table of the given category and assigns it the next free id.
//
// Parameters:
//   - name: Unique table name
//   - category: One of the table categories (hash key, patricia key, no key)
//
// Returns:
//   - Descriptor: The registered table
//   - error: ErrInvalidDomainName, ErrDomainExists or ErrDomainIDExhausted
func (r *MemoryRegistry) RegisterTable(name string, category format.Category) (Descriptor, error) {
	if !category.IsTable() {
		return Descriptor{}, fmt.Errorf("%w: %s is not a table category", errs.ErrInvalidDomainName, category)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nextID == 0 {
		return Descriptor{}, errs.ErrDomainIDExhausted
	}

	d := Descriptor{ID: r.nextID, Name: name, Category: category}
	if err := r.addLocked(d); err != nil {
		return Descriptor{}, err
	}
	r.nextID++

	return d, nil
}

// Register adds a descriptor with a caller-chosen id, e.g. one mirrored from another
// process's schema.
//
// Returns ErrDomainExists if the id or the name is already in use.
func (r *MemoryRegistry) Register(d Descriptor) error {
	if d.ID == format.NilID {
		return fmt.Errorf("%w: nil id", errs.ErrInvalidDomainName)
	}

	return r.add(d)
}

// Names returns the registered names in registration order.
func (r *MemoryRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.tracker.Names()))
	copy(names, r.tracker.Names())

	return names
}

// Len returns the number of registered descriptors.
func (r *MemoryRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID)
}

func (r *MemoryRegistry) add(d Descriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.addLocked(d); err != nil {
		return err
	}
	if d.ID >= r.nextID && d.ID+1 != 0 {
		r.nextID = d.ID + 1
	}

	return nil
}

func (r *MemoryRegistry) addLocked(d Descriptor) error {
	if _, exists := r.byID[d.ID]; exists {
		return fmt.Errorf("%w: id %d", errs.ErrDomainExists, d.ID)
	}

	h := hash.ID(d.Name)
	if err := r.tracker.Track(d.Name, h); err != nil {
		return fmt.Errorf("%w: %q", err, d.Name)
	}

	r.byID[d.ID] = d
	r.byHash[h] = append(r.byHash[h], d.ID)

	return nil
}
