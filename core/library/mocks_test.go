package library

import (
	"context"
	"strings"
	"time"

	"mdpage-api/core/domain"
)

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	getFunc    func(ctx context.Context, key string) ([]byte, error)
	setFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	deleteFunc func(ctx context.Context, key string) error
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, key)
	}
	return nil
}

// mockRenderer wraps markdown text in a fixed marker so tests can see it passed through
type mockRenderer struct {
	renderFunc func(text string) (string, error)
}

func (m *mockRenderer) Render(text string) (string, error) {
	if m.renderFunc != nil {
		return m.renderFunc(text)
	}
	return "<article>\n" + text + "\n</article>", nil
}

// mockOutline derives a trivial outline from "# " lines
type mockOutline struct {
	extractFunc func(html string) ([]domain.Heading, error)
}

func (m *mockOutline) ExtractOutline(html string) ([]domain.Heading, error) {
	if m.extractFunc != nil {
		return m.extractFunc(html)
	}
	var headings []domain.Heading
	for _, line := range strings.Split(html, "\n") {
		if strings.HasPrefix(line, "# ") {
			headings = append(headings, domain.Heading{
				Level: 1,
				Text:  strings.TrimPrefix(line, "# "),
			})
		}
	}
	return headings, nil
}

// mockLogger is a no-op logger that records warnings
type mockLogger struct {
	warnMsgs []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.warnMsgs = append(m.warnMsgs, msg)
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
