// ABOUTME: Render controller orchestrating the one-shot fetch/convert/display cycle
// ABOUTME: Writes the display region exactly once per invocation, fallback on any failure

package render

import (
	"context"
	"io"
	"sync"
	"time"

	"mdpage-api/core/domain"
	"mdpage-api/core/errors"
	"mdpage-api/core/interfaces"
)

// FallbackHTML is the fixed markup written to the display region when the
// content source cannot be retrieved. A full page reload is the only
// recovery path; no retry is offered.
const FallbackHTML = "<h1>Content unavailable</h1>\n<p>The page content could not be loaded. Please try again later.</p>"

// Controller performs the one-shot retrieval, conversion, and display of the
// content source. It is trigger-agnostic: the caller decides when to invoke
// RenderContent (in production, once the HTTP listener is ready).
type Controller struct {
	deps      interfaces.Dependencies
	renderer  interfaces.MarkdownRenderer
	sourceURL string

	mu    sync.Mutex
	state domain.RenderState
}

// NewController creates a render controller for the given content source URL
func NewController(deps interfaces.Dependencies, renderer interfaces.MarkdownRenderer, sourceURL string) *Controller {
	return &Controller{
		deps:      deps,
		renderer:  renderer,
		sourceURL: sourceURL,
		state:     domain.RenderNotStarted,
	}
}

// State returns the controller's current render state
func (c *Controller) State() domain.RenderState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) setState(s domain.RenderState) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// RenderContent retrieves the content source, converts it to HTML, and writes
// the result to the region. Every failure mode (transport error, non-success
// status, body read error) collapses to the single ResourceUnavailable kind:
// the region receives the fixed fallback view and the detail is logged. The
// region is written exactly once per invocation and errors never escape.
// The returned state is the terminal state of this cycle.
func (c *Controller) RenderContent(ctx context.Context, region interfaces.DisplayRegion) domain.RenderState {
	c.setState(domain.RenderPending)

	doc, err := c.fetch(ctx)
	if err != nil {
		return c.fail(region, err)
	}

	markup, err := c.renderer.Render(doc.Text)
	if err != nil {
		// The renderer is assumed total; a failure here is treated the same
		// as an unavailable resource rather than surfacing a distinct state.
		return c.fail(region, errors.WrapError(err, "markdown conversion failed"))
	}

	region.Set(domain.RenderedView{
		HTML:       markup,
		RenderedAt: time.Now(),
	})

	c.setState(domain.RenderSucceeded)
	c.deps.Logger.Info("Page content rendered", map[string]interface{}{
		"source": c.sourceURL,
		"bytes":  len(markup),
	})
	return domain.RenderSucceeded
}

// fetch retrieves the content source and reads its full body
func (c *Controller) fetch(ctx context.Context) (*domain.ContentDocument, error) {
	resp, err := c.deps.HTTPClient.Get(ctx, c.sourceURL)
	if err != nil {
		return nil, &errors.ResourceUnavailableError{
			Source: c.sourceURL,
			Err:    err,
		}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &errors.ResourceUnavailableError{
			Source:     c.sourceURL,
			StatusCode: resp.StatusCode(),
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &errors.ResourceUnavailableError{
			Source: c.sourceURL,
			Err:    err,
		}
	}

	return &domain.ContentDocument{
		Source: c.sourceURL,
		Text:   string(body),
	}, nil
}

// fail writes the fallback view and records the failure detail
func (c *Controller) fail(region interfaces.DisplayRegion, err error) domain.RenderState {
	region.Set(domain.RenderedView{
		HTML:       FallbackHTML,
		Fallback:   true,
		RenderedAt: time.Now(),
	})

	c.setState(domain.RenderFailed)
	c.deps.Logger.Error("Failed to render page content", map[string]interface{}{
		"source": c.sourceURL,
		"error":  err.Error(),
	})
	return domain.RenderFailed
}
