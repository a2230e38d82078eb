package store

import (
	"sync"
	"time"
)

type entry struct {
	store    *Store
	lastSeen time.Time
}

// Registry asocia cada sesión con su Store.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

// NewRegistry crea un registro vacío.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*entry), now: time.Now}
}

// For devuelve el Store de la sesión, creándolo la primera vez. Cada acceso renueva la sesión.
func (r *Registry) For(sessionID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[sessionID]
	if !ok {
		e = &entry{store: New()}
		r.entries[sessionID] = e
	}
	e.lastSeen = r.now()
	return e.store
}

// Drop descarta el estado de la sesión (logout).
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	delete(r.entries, sessionID)
	r.mu.Unlock()
}

// Sweep descarta los Store sin uso desde before y devuelve cuántos se liberaron.
func (r *Registry) Sweep(before time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, e := range r.entries {
		if e.lastSeen.Before(before) {
			delete(r.entries, id)
			n++
		}
	}
	return n
}

// Len cantidad de sesiones con estado.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
