// ABOUTME: Single-slot display region holding the page's rendered view
// ABOUTME: Last-write-wins container shared between the controller and handlers

package render

import (
	"sync"

	"mdpage-api/core/domain"
)

// Region implements interfaces.DisplayRegion as an in-process slot.
// Many readers (HTTP handlers) and one writer (the controller); a write
// replaces the previous view completely, never merges with it.
type Region struct {
	mu      sync.RWMutex
	view    domain.RenderedView
	written bool
}

// NewRegion creates an empty display region
func NewRegion() *Region {
	return &Region{}
}

// Set replaces the region's content with the given view
func (r *Region) Set(view domain.RenderedView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.view = view
	r.written = true
}

// View returns the current view and whether the region has ever been written
func (r *Region) View() (domain.RenderedView, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.view, r.written
}
