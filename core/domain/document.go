// ABOUTME: Domain models for library documents
// ABOUTME: Defines summaries, rendered documents, and heading outlines

package domain

import "time"

// DocumentSummary describes one markdown document in the content library
type DocumentSummary struct {
	Slug       string    `json:"slug"`
	Title      string    `json:"title"`
	Excerpt    string    `json:"excerpt,omitempty"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modified_at"`
}

// RenderedDocument is a library document converted to HTML
type RenderedDocument struct {
	Slug       string    `json:"slug"`
	Title      string    `json:"title"`
	HTML       string    `json:"html"`
	Outline    []Heading `json:"outline,omitempty"`
	ModifiedAt time.Time `json:"modified_at"`
}

// Heading is one entry in a document's heading outline
type Heading struct {
	// Level is the heading level, 1 through 6
	Level int `json:"level"`

	// Text is the heading's plain text
	Text string `json:"text"`

	// ID is the anchor id assigned by the markdown renderer
	ID string `json:"id,omitempty"`
}
