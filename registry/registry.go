// Package registry keeps the filter definitions installed on a rendering
// surface, keyed by element identifier.
//
// A Registry replaces ambient document singletons (style and SVG elements
// looked up by fixed ids and re-asserted by an observer) with an explicit
// map. Upsert and Remove are idempotent: repeating an operation with the
// same arguments reports no change, so callers may re-assert their
// definitions as often as they like.
package registry

import (
	"slices"
	"sync"

	"github.com/gogpu/colorfx"
)

// Kind identifies what a definition renders to.
type Kind uint8

const (
	// KindStyle is a CSS stylesheet.
	KindStyle Kind = iota
	// KindSVG is an SVG element holding filter definitions.
	KindSVG
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindStyle:
		return "style"
	case KindSVG:
		return "svg"
	default:
		return "unknown"
	}
}

// Definition is one installable element.
type Definition struct {
	Kind   Kind
	Markup string
}

// Registry is a set of definitions keyed by identifier.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Definition
	version uint64
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]Definition)}
}

// Upsert installs d under id, replacing any previous definition.
// It reports whether the registry changed; upserting an identical
// definition is a no-op.
func (r *Registry) Upsert(id string, d Definition) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cur, ok := r.entries[id]; ok && cur == d {
		return false
	}
	r.entries[id] = d
	r.version++
	colorfx.Logger().Debug("registry: upsert", "id", id, "kind", d.Kind, "version", r.version)
	return true
}

// Remove deletes the definition under id and reports whether it existed.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return false
	}
	delete(r.entries, id)
	r.version++
	colorfx.Logger().Debug("registry: remove", "id", id, "version", r.version)
	return true
}

// Get returns the definition under id.
func (r *Registry) Get(id string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.entries[id]
	return d, ok
}

// IDs returns the installed identifiers in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	slices.Sort(ids)
	return ids
}

// Len returns the number of installed definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Version returns a counter incremented on every change.
func (r *Registry) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}
