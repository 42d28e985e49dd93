// ABOUTME: Service layer for the markdown content library
// ABOUTME: Lists documents and renders them to HTML with cache-first lookup

package library

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"mdpage-api/core/domain"
	"mdpage-api/core/errors"
	"mdpage-api/core/interfaces"
)

const renderKeyPrefix = "page:render:"

// Config holds library service configuration
type Config struct {
	// ContentDir is the root of the markdown content tree
	ContentDir string

	// RenderTTL is how long rendered HTML stays cached
	RenderTTL time.Duration
}

// Service provides listing and rendering of the markdown document collection
type Service struct {
	deps     interfaces.Dependencies
	renderer interfaces.MarkdownRenderer
	outline  interfaces.OutlineService
	cfg      Config
}

// NewService creates a library service over the given content directory
func NewService(deps interfaces.Dependencies, renderer interfaces.MarkdownRenderer, outline interfaces.OutlineService, cfg Config) *Service {
	return &Service{
		deps:     deps,
		renderer: renderer,
		outline:  outline,
		cfg:      cfg,
	}
}

// renderRecord is the cached form of one rendered document
type renderRecord struct {
	HTML    string           `json:"html"`
	Title   string           `json:"title"`
	Outline []domain.Heading `json:"outline,omitempty"`
	ModTime int64            `json:"mod_time"`
}

// ListDocuments returns summaries for every document in the content library
func (s *Service) ListDocuments(ctx context.Context) ([]domain.DocumentSummary, error) {
	entries, err := discover(s.cfg.ContentDir)
	if err != nil {
		return nil, errors.WrapError(err, "failed to discover content")
	}

	summaries := make([]domain.DocumentSummary, 0, len(entries))
	for _, e := range entries {
		rec, err := s.renderEntry(ctx, e)
		if err != nil {
			s.deps.Logger.Warn("Skipping unrenderable document", map[string]interface{}{
				"slug":  e.slug,
				"error": err.Error(),
			})
			continue
		}

		summaries = append(summaries, domain.DocumentSummary{
			Slug:       e.slug,
			Title:      rec.Title,
			Excerpt:    excerptOf(plainText(rec.HTML), excerptLength),
			Size:       e.size,
			ModifiedAt: e.modTime,
		})
	}

	return summaries, nil
}

// GetDocument renders a single document to HTML, addressed by slug
func (s *Service) GetDocument(ctx context.Context, slug string) (*domain.RenderedDocument, error) {
	if !validSlug(slug) {
		return nil, &errors.ValidationError{
			Field:   "slug",
			Message: "slug must be a relative path without traversal",
		}
	}

	path := filepath.Join(s.cfg.ContentDir, filepath.FromSlash(slug)+".md")
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, &errors.NotFoundError{Resource: "document", ID: slug}
	}

	rec, err := s.renderEntry(ctx, entry{
		slug:    slug,
		path:    path,
		size:    info.Size(),
		modTime: info.ModTime(),
	})
	if err != nil {
		return nil, err
	}

	return &domain.RenderedDocument{
		Slug:       slug,
		Title:      rec.Title,
		HTML:       rec.HTML,
		Outline:    rec.Outline,
		ModifiedAt: info.ModTime(),
	}, nil
}

// renderEntry renders one document with cache-first lookup. Cached records
// carry the source modtime; a changed file invalidates its record.
func (s *Service) renderEntry(ctx context.Context, e entry) (*renderRecord, error) {
	cacheKey := renderKeyPrefix + e.slug

	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var rec renderRecord
			if err := json.Unmarshal(data, &rec); err == nil && rec.ModTime == e.modTime.Unix() {
				return &rec, nil
			}
		}
	}

	text, err := os.ReadFile(e.path)
	if err != nil {
		return nil, errors.WrapError(err, "failed to read document")
	}

	markup, err := s.renderer.Render(string(text))
	if err != nil {
		return nil, errors.WrapError(err, "failed to render document")
	}

	rec := &renderRecord{
		HTML:    markup,
		ModTime: e.modTime.Unix(),
	}

	if s.outline != nil {
		if outline, err := s.outline.ExtractOutline(markup); err == nil {
			rec.Outline = outline
		}
	}
	rec.Title = titleFor(rec.Outline, e.slug)

	if s.deps.Cache != nil {
		if data, err := json.Marshal(rec); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, s.cfg.RenderTTL)
		}
	}

	return rec, nil
}

// titleFor picks the first top-level heading, falling back to the slug's base
func titleFor(outline []domain.Heading, slug string) string {
	for _, h := range outline {
		if h.Level == 1 {
			return h.Text
		}
	}
	if len(outline) > 0 {
		return outline[0].Text
	}
	return filepath.Base(slug)
}
