// ABOUTME: Document handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for listing and rendering library documents

package handlers

import (
	"context"
	"net/http"

	"mdpage-api/api/dto/responses"
	"mdpage-api/core/domain"
	"mdpage-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// DocumentHandler handles document listing and rendering requests
type DocumentHandler struct {
	library interfaces.LibraryService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(library interfaces.LibraryService) *DocumentHandler {
	return &DocumentHandler{
		library: library,
	}
}

// RegisterRoutes registers all document-related routes
func (h *DocumentHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listDocuments",
		Method:      http.MethodGet,
		Path:        "/api/documents",
		Summary:     "List library documents",
		Description: "Returns summaries for every markdown document in the content library",
		Tags:        []string{"Documents"},
	}, h.ListDocuments)

	huma.Register(api, huma.Operation{
		OperationID: "getDocument",
		Method:      http.MethodGet,
		Path:        "/api/document",
		Summary:     "Render a single document",
		Description: "Renders a markdown document to HTML, addressed by its slug",
		Tags:        []string{"Documents"},
	}, h.GetDocument)
}

// ListDocumentsInput defines the input for the ListDocuments operation
type ListDocumentsInput struct{}

// ListDocumentsOutput defines the output for the ListDocuments operation
type ListDocumentsOutput struct {
	Body responses.DocumentListResponse
}

// ListDocuments handles the document listing
func (h *DocumentHandler) ListDocuments(ctx context.Context, _ *ListDocumentsInput) (*ListDocumentsOutput, error) {
	docs, err := h.library.ListDocuments(ctx)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListDocumentsOutput{
		Body: responses.DocumentListResponse{
			Documents: docs,
			Count:     len(docs),
		},
	}, nil
}

// GetDocumentInput defines the input for the GetDocument operation.
// The slug is a query parameter because slugs may contain path separators
// ("tutorials/webdev").
type GetDocumentInput struct {
	Slug string `query:"slug" required:"true" example:"tutorials/webdev" doc:"Document slug relative to the content root, without the .md extension"`
}

// GetDocumentOutput defines the output for the GetDocument operation
type GetDocumentOutput struct {
	Body domain.RenderedDocument
}

// GetDocument handles rendering of a single document
func (h *DocumentHandler) GetDocument(ctx context.Context, input *GetDocumentInput) (*GetDocumentOutput, error) {
	doc, err := h.library.GetDocument(ctx, input.Slug)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetDocumentOutput{
		Body: *doc,
	}, nil
}
