// internal/app/features/reachable/routes.go
package reachable

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the reachability check (mounted under /reachable).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Serve)
	return r
}
