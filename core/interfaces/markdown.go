package interfaces

import "mdpage-api/core/domain"

// MarkdownRenderer converts markdown text to HTML markup.
// The conversion is treated as an opaque collaborator: synchronous, stateless
// between calls, and expected to produce output for arbitrary input text.
// Using an interface here lets tests swap in an identity or fixed-output stub
// so controller logic can be verified independently of markdown grammar.
type MarkdownRenderer interface {
	// Render converts markdown text to an HTML markup string.
	Render(text string) (string, error)
}

// DisplayRegion is the single mutable output slot for the rendered page.
// It holds exactly one view at a time with last-write-wins semantics; each
// write fully replaces the previous view.
type DisplayRegion interface {
	// Set replaces the region's content with the given view.
	Set(view domain.RenderedView)

	// View returns the current view and whether the region has ever been written.
	View() (domain.RenderedView, bool)
}
