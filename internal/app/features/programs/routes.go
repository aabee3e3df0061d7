// internal/app/features/programs/routes.go
package programs

import "github.com/go-chi/chi/v5"

// Routes mounts the program endpoints (typically under "/programs").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/{id}/cost", h.ServeCost)
	r.Get("/{id}/related", h.ServeRelated)
	return r
}
