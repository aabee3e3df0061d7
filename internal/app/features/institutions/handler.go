// internal/app/features/institutions/handler.go
package institutions

import (
	"errors"
	"net/http"
	"sort"

	apierr "github.com/dalemusser/coursecompare/internal/app/features/errors"
	catalogstore "github.com/dalemusser/coursecompare/internal/app/store/catalog"
	"github.com/dalemusser/coursecompare/internal/app/system/scoring"
	"github.com/dalemusser/coursecompare/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Catalog *catalogstore.Store
	Log     *zap.Logger
}

func NewHandler(catalog *catalogstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Catalog: catalog, Log: logger}
}

type scoreRow struct {
	ID    string             `json:"id"`
	Name  string             `json:"name"`
	Score scoring.Components `json:"score"`
}

// ServeList handles GET /institutions: every institution with its score,
// best first. Equal scores keep name order.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "institution list")
	defer cancel()

	insts, err := h.Catalog.Institutions(ctx)
	if err != nil {
		apierr.Internal(w, r, h.Log, err)
		return
	}

	rows := make([]scoreRow, len(insts))
	for i := range insts {
		rows[i] = scoreRow{ID: insts[i].ID, Name: insts[i].Name, Score: scoring.Breakdown(&insts[i])}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Score.Total > rows[j].Score.Total
	})
	apierr.WriteJSON(w, rows)
}

// ServeScore handles GET /institutions/{id}/score.
func (h *Handler) ServeScore(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "institution score")
	defer cancel()

	inst, err := h.Catalog.GetInstitution(ctx, chi.URLParam(r, "id"))
	if errors.Is(err, catalogstore.ErrNotFound) {
		apierr.NotFound(w, r, h.Log, "institution")
		return
	}
	if err != nil {
		apierr.Internal(w, r, h.Log, err)
		return
	}

	apierr.WriteJSON(w, scoreRow{ID: inst.ID, Name: inst.Name, Score: scoring.Breakdown(&inst)})
}
