package selection

import "sync"

// Registry holds one State per admin session so concurrent operators do
// not share selections.
type Registry struct {
	mu       sync.Mutex
	provider AreaProvider
	states   map[string]*State
}

// NewRegistry returns an empty registry whose states all share one area
// provider.
func NewRegistry(provider AreaProvider) *Registry {
	return &Registry{
		provider: provider,
		states:   make(map[string]*State),
	}
}

// Get returns the selection for a session key, creating it on first use.
func (r *Registry) Get(key string) *State {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.states[key]
	if !ok {
		state = New(r.provider)
		r.states[key] = state
	}
	return state
}

// Remove drops a session's selection, typically after a successful
// generation or logout.
func (r *Registry) Remove(key string) {
	r.mu.Lock()
	delete(r.states, key)
	r.mu.Unlock()
}
