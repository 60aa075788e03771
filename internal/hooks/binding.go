// Package hooks binds UI components to a state.Store. Each hook registers
// one subscriber while mounted, keeps a local copy of the shared state for
// rendering and exposes the mutators that broadcast changes.
//
// Usage contract: mutators must not be called after Unmount.
package hooks

import (
	"sync"

	"github.com/alexisbeaulieu97/themekit/internal/state"
)

// Option customises a hook at mount time.
type Option func(*binding)

// WithOnChange registers fn to run after the hook's local copy has been
// replaced by a broadcast. Components use it to schedule a re-render.
func WithOnChange(fn func(state.SharedState)) Option {
	return func(b *binding) {
		b.onChange = fn
	}
}

type binding struct {
	store    *state.Store
	id       state.SubscriptionID
	onChange func(state.SharedState)

	mu    sync.RWMutex
	local state.SharedState

	unmount sync.Once
}

func mount(store *state.Store, opts ...Option) *binding {
	b := &binding{
		store: store,
		id:    state.NewSubscriptionID(),
		local: store.State(),
	}
	for _, opt := range opts {
		opt(b)
	}
	// Fresh ids never collide.
	_ = store.SubscribeWithID(b.id, b.receive)
	return b
}

func (b *binding) receive(next state.SharedState) {
	b.mu.Lock()
	b.local = next
	b.mu.Unlock()

	if b.onChange != nil {
		b.onChange(next)
	}
}

func (b *binding) snapshot() state.SharedState {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.local
}

func (b *binding) dispatch(p state.Patch) {
	b.store.Dispatch(b.snapshot(), p)
}

// ID returns the subscriber id registered for this mount.
func (b *binding) ID() state.SubscriptionID {
	return b.id
}

// Unmount releases the subscription. Further calls do nothing.
func (b *binding) Unmount() {
	b.unmount.Do(func() {
		b.store.Unsubscribe(b.id)
	})
}
