// internal/app/features/reachable/handler.go
package reachable

import (
	"net/http"

	apierr "github.com/dalemusser/coursecompare/internal/app/features/errors"
	"github.com/dalemusser/coursecompare/internal/app/system/navigation"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// Handler answers path reachability checks. No DB needed.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

type reachableResponse struct {
	Path      string `json:"path"`
	Reachable bool   `json:"reachable"`
}

// Serve handles GET /reachable?path=.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	path := query.Get(r, "path")
	if path == "" {
		apierr.BadRequest(w, r, h.Log, "path is required")
		return
	}
	apierr.WriteJSON(w, reachableResponse{
		Path:      navigation.Clean(path),
		Reachable: navigation.IsReachable(path),
	})
}
