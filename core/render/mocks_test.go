package render

import (
	"context"
	"io"
	"strings"
	"sync"

	"mdpage-api/core/domain"
	"mdpage-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	bodyErr    error
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	if m.bodyErr != nil {
		return io.NopCloser(&failingReader{err: m.bodyErr})
	}
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// failingReader always returns the configured error
type failingReader struct {
	err error
}

func (r *failingReader) Read(p []byte) (int, error) {
	return 0, r.err
}

// mockRenderer is a mock implementation of the MarkdownRenderer interface
type mockRenderer struct {
	renderFunc func(text string) (string, error)
}

func (m *mockRenderer) Render(text string) (string, error) {
	if m.renderFunc != nil {
		return m.renderFunc(text)
	}
	return text, nil
}

// spyRegion records every write so tests can assert the single-write invariant
type spyRegion struct {
	mu     sync.Mutex
	views  []domain.RenderedView
	writes int
}

func (r *spyRegion) Set(view domain.RenderedView) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views = append(r.views, view)
	r.writes++
}

func (r *spyRegion) View() (domain.RenderedView, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.views) == 0 {
		return domain.RenderedView{}, false
	}
	return r.views[len(r.views)-1], true
}

// mockLogger is a no-op logger that records error messages
type mockLogger struct {
	errorMsgs []string
	infoMsgs  []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {
	m.infoMsgs = append(m.infoMsgs, msg)
}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.errorMsgs = append(m.errorMsgs, msg)
}
