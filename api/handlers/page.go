// ABOUTME: Page handler serving the site's single HTML page
// ABOUTME: Fills the page's content region from the display region's current view

package handlers

import (
	"html/template"
	"net/http"

	"mdpage-api/core/interfaces"
)

// pageTemplate is the HTML shell around the display region. The region's
// markup is injected as-is: it is either renderer output from trusted content
// or the fixed fallback block.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body>
<main id="content">{{.Content}}</main>
</body>
</html>
`))

// pageData is the template payload for one page response
type pageData struct {
	Title   string
	Content template.HTML
}

// PageHandler serves the page whose content region mirrors the display region
type PageHandler struct {
	region interfaces.DisplayRegion
	title  string
}

// NewPageHandler creates a page handler over the given display region
func NewPageHandler(region interfaces.DisplayRegion, title string) *PageHandler {
	return &PageHandler{
		region: region,
		title:  title,
	}
}

// ServeHTTP renders the page. Before the first region write the content
// region is empty; afterwards it holds exactly the region's current view.
func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	data := pageData{Title: h.title}

	if view, ok := h.region.View(); ok {
		data.Content = template.HTML(view.HTML)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
