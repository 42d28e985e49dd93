// ABOUTME: Health handler for the Huma API
// ABOUTME: Reports render state and configured cache backend

package handlers

import (
	"context"
	"net/http"

	"mdpage-api/api/dto/responses"
	"mdpage-api/core/domain"

	"github.com/danielgtaylor/huma/v2"
)

// HealthHandler reports service liveness and render state
type HealthHandler struct {
	renderState  func() domain.RenderState
	cacheBackend string
}

// NewHealthHandler creates a new health handler. renderState is queried on
// every request so the reported state follows the controller's lifecycle.
func NewHealthHandler(renderState func() domain.RenderState, cacheBackend string) *HealthHandler {
	return &HealthHandler{
		renderState:  renderState,
		cacheBackend: cacheBackend,
	}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getHealth",
		Method:      http.MethodGet,
		Path:        "/healthz",
		Summary:     "Service health",
		Tags:        []string{"Health"},
	}, h.GetHealth)
}

// GetHealthInput defines the input for the GetHealth operation
type GetHealthInput struct{}

// GetHealthOutput defines the output for the GetHealth operation
type GetHealthOutput struct {
	Body responses.HealthResponse
}

// GetHealth handles health requests
func (h *HealthHandler) GetHealth(ctx context.Context, _ *GetHealthInput) (*GetHealthOutput, error) {
	state := domain.RenderNotStarted
	if h.renderState != nil {
		state = h.renderState()
	}

	return &GetHealthOutput{
		Body: responses.HealthResponse{
			Status:       "ok",
			RenderState:  state.String(),
			CacheBackend: h.cacheBackend,
		},
	}, nil
}
