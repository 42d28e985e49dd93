// ABOUTME: Domain models for the page render cycle
// ABOUTME: Defines the content document, rendered view, and render state types

package domain

import "time"

// ContentDocument is the raw markdown text retrieved for one render cycle.
// It lives only for the duration of the cycle and is discarded once converted.
type ContentDocument struct {
	// Source is the location the document was retrieved from
	Source string

	// Text is the full markdown body
	Text string
}

// RenderedView is the HTML markup held by the display region.
// The region holds exactly one view at a time; each render overwrites it.
type RenderedView struct {
	// HTML is the markup to display
	HTML string `json:"html"`

	// Fallback is true when the view is the fixed error view
	Fallback bool `json:"fallback"`

	// RenderedAt is when the view was produced
	RenderedAt time.Time `json:"rendered_at"`
}

// RenderState tracks the one-shot render lifecycle.
// Succeeded and Failed are terminal within a single process lifetime.
type RenderState int

const (
	// RenderNotStarted means the render has not been triggered yet
	RenderNotStarted RenderState = iota

	// RenderPending means retrieval is in flight
	RenderPending

	// RenderSucceeded means the region holds converted content
	RenderSucceeded

	// RenderFailed means the region holds the fallback view
	RenderFailed
)

// String returns the state name for logging and health reporting
func (s RenderState) String() string {
	switch s {
	case RenderNotStarted:
		return "not_started"
	case RenderPending:
		return "pending"
	case RenderSucceeded:
		return "succeeded"
	case RenderFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state can no longer change
func (s RenderState) Terminal() bool {
	return s == RenderSucceeded || s == RenderFailed
}
