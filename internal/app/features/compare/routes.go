// internal/app/features/compare/routes.go
package compare

import "github.com/go-chi/chi/v5"

// Routes mounts the comparison endpoints (typically under "/compare").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeGroups)
	r.Get("/{group}", h.ServeGroup)
	return r
}
