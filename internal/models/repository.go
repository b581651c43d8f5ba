package models

import (
	"sync"
)

// OptionsRepository holds the single live options record shared by the
// widget callbacks and the file watcher
type OptionsRepository struct {
	mu      sync.RWMutex
	current KeyboardOptions
	dirty   bool
}

// NewOptionsRepository creates a repository seeded with opts
func NewOptionsRepository(opts KeyboardOptions) *OptionsRepository {
	return &OptionsRepository{current: opts}
}

// Get returns a copy of the current record
func (r *OptionsRepository) Get() KeyboardOptions {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Update mutates the record in place and marks it as unsaved when it changed
func (r *OptionsRepository) Update(fn func(*KeyboardOptions)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	before := r.current
	fn(&r.current)
	if !before.Equal(r.current) {
		r.dirty = true
	}
}

// Replace swaps in a record read from disk and clears the unsaved flag
func (r *OptionsRepository) Replace(opts KeyboardOptions) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = opts
	r.dirty = false
}

// MarkSaved clears the unsaved flag after a successful write of saved.
// Edits made after saved was taken keep the record dirty.
func (r *OptionsRepository) MarkSaved(saved KeyboardOptions) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current.Equal(saved) {
		r.dirty = false
	}
}

// Dirty reports whether the record has edits not yet written to disk
func (r *OptionsRepository) Dirty() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dirty
}
