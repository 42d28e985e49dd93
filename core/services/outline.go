// ABOUTME: Heading outline extraction from rendered HTML
// ABOUTME: Uses goquery to collect heading levels, text, and anchor ids

package services

import (
	"strings"

	"mdpage-api/core/domain"
	"mdpage-api/core/errors"

	"github.com/PuerkitoBio/goquery"
)

// OutlineService extracts heading outlines from rendered HTML documents
type OutlineService struct{}

// NewOutlineService creates a new outline service
func NewOutlineService() *OutlineService {
	return &OutlineService{}
}

// ExtractOutline returns the heading outline of an HTML document in document
// order. Anchor ids come from the id attributes the markdown renderer assigns.
func (s *OutlineService) ExtractOutline(html string) ([]domain.Heading, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, errors.WrapError(err, "failed to parse rendered HTML")
	}

	var headings []domain.Heading
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, sel *goquery.Selection) {
		level := int(sel.Get(0).Data[1] - '0')
		id, _ := sel.Attr("id")

		headings = append(headings, domain.Heading{
			Level: level,
			Text:  strings.TrimSpace(sel.Text()),
			ID:    id,
		})
	})

	return headings, nil
}
