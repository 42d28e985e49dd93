// ABOUTME: Response DTOs for the health endpoint
// ABOUTME: Reports render state and configured cache backend

package responses

// HealthResponse represents the health endpoint response
type HealthResponse struct {
	// Status is "ok" while the process is serving
	Status string `json:"status"`

	// RenderState is the page render lifecycle state
	// (not_started, pending, succeeded, failed)
	RenderState string `json:"render_state"`

	// CacheBackend is the configured cache type
	CacheBackend string `json:"cache_backend"`
}
