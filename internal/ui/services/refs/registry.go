package refs

import (
	"sync"

	"multiselect/internal/domain"
)

// Ref is a host-owned element that can take keyboard focus
type Ref interface {
	Focus()
}

// RefFunc adapts a function to Ref
type RefFunc func()

func (f RefFunc) Focus() { f() }

// Registry maps element roles to host references. Entries may lag a render
// behind the selection list; lookups against missing entries are not errors.
type Registry struct {
	mu      sync.RWMutex
	trigger Ref
	items   map[int]Ref
}

// New creates an empty registry
func New() *Registry {
	return &Registry{items: make(map[int]Ref)}
}

// Register installs or replaces the reference for role. A nil ref removes it.
func (r *Registry) Register(role domain.Role, ref Ref) {
	if role.IsNone() {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if role.IsTrigger() {
		r.trigger = ref
		return
	}
	if ref == nil {
		delete(r.items, role.Index())
		return
	}
	r.items[role.Index()] = ref
}

// Lookup returns the reference registered for role
func (r *Registry) Lookup(role domain.Role) (Ref, bool) {
	if role.IsNone() {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if role.IsTrigger() {
		return r.trigger, r.trigger != nil
	}
	ref, ok := r.items[role.Index()]
	return ref, ok
}

// HasTrigger reports whether a trigger reference is registered
func (r *Registry) HasTrigger() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.trigger != nil
}

// Focus requests focus on the element bound to target. Returns false when
// there is nothing to focus.
func (r *Registry) Focus(target domain.FocusTarget) bool {
	role, ok := target.Role()
	if !ok {
		return false
	}
	ref, ok := r.Lookup(role)
	if !ok {
		return false
	}
	ref.Focus()
	return true
}

// Prune drops item references at or beyond length
func (r *Registry) Prune(length int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for index := range r.items {
		if index >= length {
			delete(r.items, index)
		}
	}
}

// ItemCount returns the number of registered item references
func (r *Registry) ItemCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
