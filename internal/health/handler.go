package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
)

// Checker defines the interface for checking the link store.
// The in-memory store has no connection to lose, so its Ping never fails and
// it always reports healthy; the degraded status exists for other checkers.
type Checker interface {
	Ping(ctx context.Context) error
	Len() int
}

// Handler handles health check operations.
type Handler struct {
	store Checker
}

// NewHandler creates a new health handler.
func NewHandler(store Checker) *Handler {
	return &Handler{store: store}
}

// Response is the response for health check endpoint.
type Response struct {
	Body struct {
		Status string `json:"status"`
		Store  string `json:"store"`
		Links  int    `json:"links"`
	}
}

// Check reports the service status and the number of stored links.
func (h *Handler) Check(ctx context.Context, _ *struct{}) (*Response, error) {
	resp := &Response{}
	resp.Body.Status = "ok"
	resp.Body.Links = h.store.Len()

	if err := h.store.Ping(ctx); err != nil {
		resp.Body.Store = "unhealthy"
		resp.Body.Status = "degraded"
	} else {
		resp.Body.Store = "healthy"
	}

	return resp, nil
}

// RegisterRoutes registers health check routes.
func RegisterRoutes(api huma.API, h *Handler) {
	huma.Get(api, "/health", h.Check)
}
