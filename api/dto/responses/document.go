// ABOUTME: Response DTOs for document API endpoints
// ABOUTME: Defines the structure for listing and rendering responses

package responses

import "mdpage-api/core/domain"

// DocumentListResponse represents the response for the document listing
type DocumentListResponse struct {
	// Documents are the library's document summaries, sorted by slug
	Documents []domain.DocumentSummary `json:"documents"`

	// Count is the number of documents returned
	Count int `json:"count"`
}
