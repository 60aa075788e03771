package state

import (
	"errors"

	"github.com/google/uuid"
)

// ErrDuplicateSubscriber is returned when an id is registered while a live
// entry already uses it.
var ErrDuplicateSubscriber = errors.New("subscriber id already registered")

// SubscriptionID identifies one registered callback.
type SubscriptionID string

// NewSubscriptionID returns a process-unique id.
func NewSubscriptionID() SubscriptionID {
	return SubscriptionID(uuid.NewString())
}

// Callback receives every merged state delivered by a broadcast.
type Callback func(SharedState)

type entry struct {
	id SubscriptionID
	cb Callback
}

// Registry is an ordered map from subscription id to callback. Add and
// Remove are its only mutating operations. It is not safe for concurrent
// use on its own; Store serialises access.
type Registry struct {
	entries []entry
	index   map[SubscriptionID]int
}

// NewRegistry allocates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[SubscriptionID]int)}
}

// Add registers cb under id.
func (r *Registry) Add(id SubscriptionID, cb Callback) error {
	if r.Has(id) {
		return ErrDuplicateSubscriber
	}
	r.index[id] = len(r.entries)
	r.entries = append(r.entries, entry{id: id, cb: cb})
	return nil
}

// Remove drops the entry for id and reports whether one existed.
func (r *Registry) Remove(id SubscriptionID) bool {
	pos, exists := r.index[id]
	if !exists {
		return false
	}
	copy(r.entries[pos:], r.entries[pos+1:])
	r.entries[len(r.entries)-1] = entry{}
	r.entries = r.entries[:len(r.entries)-1]
	delete(r.index, id)
	for i := pos; i < len(r.entries); i++ {
		r.index[r.entries[i].id] = i
	}
	return true
}

// Has reports whether id is registered.
func (r *Registry) Has(id SubscriptionID) bool {
	_, ok := r.index[id]
	return ok
}

// Len returns the number of live entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Snapshot returns the live callbacks in registration order.
func (r *Registry) Snapshot() []Callback {
	out := make([]Callback, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.cb
	}
	return out
}
