// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"mdpage-api/core/domain"
)

// LibraryService provides access to the markdown document collection
type LibraryService interface {
	// ListDocuments returns summaries for every document in the content library
	ListDocuments(ctx context.Context) ([]domain.DocumentSummary, error)

	// GetDocument renders a single document to HTML, addressed by slug
	GetDocument(ctx context.Context, slug string) (*domain.RenderedDocument, error)
}

// OutlineService extracts heading outlines from rendered HTML
type OutlineService interface {
	// ExtractOutline returns the heading outline of an HTML document
	ExtractOutline(html string) ([]domain.Heading, error)
}
