// internal/app/features/institutions/routes.go
package institutions

import "github.com/go-chi/chi/v5"

// Routes mounts the institution endpoints (typically under "/institutions").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/{id}/score", h.ServeScore)
	return r
}
