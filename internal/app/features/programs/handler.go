// internal/app/features/programs/handler.go
package programs

import (
	"errors"
	"net/http"
	"strconv"

	apierr "github.com/dalemusser/coursecompare/internal/app/features/errors"
	catalogstore "github.com/dalemusser/coursecompare/internal/app/store/catalog"
	"github.com/dalemusser/coursecompare/internal/app/system/classify"
	"github.com/dalemusser/coursecompare/internal/app/system/costcalc"
	"github.com/dalemusser/coursecompare/internal/app/system/htmlsanitize"
	"github.com/dalemusser/coursecompare/internal/app/system/related"
	"github.com/dalemusser/coursecompare/internal/app/system/search"
	"github.com/dalemusser/coursecompare/internal/app/system/timeouts"
	"github.com/dalemusser/coursecompare/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DefaultRelatedLimit applies when ?limit is absent.
const DefaultRelatedLimit = 4

// MaxRelatedLimit caps ?limit.
const MaxRelatedLimit = 20

type Handler struct {
	Catalog *catalogstore.Store
	Rules   *classify.Rules
	Log     *zap.Logger
}

func NewHandler(catalog *catalogstore.Store, rules *classify.Rules, logger *zap.Logger) *Handler {
	return &Handler{Catalog: catalog, Rules: rules, Log: logger}
}

type listResponse struct {
	Filters search.Filters  `json:"filters"`
	Count   int             `json:"count"`
	Results []search.Ranked `json:"results"`
}

// ServeList handles GET /programs?q=&level=&institution=&field=.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "program list")
	defer cancel()

	raw := query.Get(r, "q")
	f := search.Filters{
		Query:         htmlsanitize.CleanQuery(raw),
		Level:         query.Get(r, "level"),
		InstitutionID: query.Get(r, "institution"),
		Field:         query.Get(r, "field"),
	}
	if !htmlsanitize.IsPlainText(raw) {
		h.Log.Info("markup stripped from search query", zap.String("query", f.Query))
	}

	snap, err := h.Catalog.Snapshot(ctx)
	if err != nil {
		apierr.Internal(w, r, h.Log, err)
		return
	}

	rows := search.Rank(snap.Programs, f, snap.Institutions)
	apierr.WriteJSON(w, listResponse{Filters: f, Count: len(rows), Results: rows})
}

type costResponse struct {
	ProgramID     string             `json:"programId"`
	InstitutionID string             `json:"institutionId"`
	Breakdown     costcalc.Breakdown `json:"breakdown"`
	PerYear       []float64          `json:"perYear"`
}

// loadProgram fetches the program named by the {id} URL param and its
// owning institution. inst is nil when the owner is not in the catalog.
// ok is false when an error answer has already been written.
func (h *Handler) loadProgram(w http.ResponseWriter, r *http.Request) (models.Program, *models.Institution, bool) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "program lookup")
	defer cancel()

	id := chi.URLParam(r, "id")
	p, err := h.Catalog.GetProgram(ctx, id)
	if errors.Is(err, catalogstore.ErrNotFound) {
		apierr.NotFound(w, r, h.Log, "program")
		return models.Program{}, nil, false
	}
	if err != nil {
		apierr.Internal(w, r, h.Log, err)
		return models.Program{}, nil, false
	}

	inst, err := h.Catalog.GetInstitution(ctx, p.InstitutionID)
	switch {
	case errors.Is(err, catalogstore.ErrNotFound):
		return p, nil, true
	case err != nil:
		apierr.Internal(w, r, h.Log, err)
		return models.Program{}, nil, false
	}
	return p, &inst, true
}

// ServeCost handles GET /programs/{id}/cost.
func (h *Handler) ServeCost(w http.ResponseWriter, r *http.Request) {
	p, inst, ok := h.loadProgram(w, r)
	if !ok {
		return
	}
	apierr.WriteJSON(w, costResponse{
		ProgramID:     p.ID,
		InstitutionID: p.InstitutionID,
		Breakdown:     costcalc.TotalCost(p, inst),
		PerYear:       costcalc.PerYear(p, inst),
	})
}

type relatedResponse struct {
	ProgramID   string               `json:"programId"`
	Suggestions []related.Suggestion `json:"suggestions"`
}

// ServeRelated handles GET /programs/{id}/related?limit=.
func (h *Handler) ServeRelated(w http.ResponseWriter, r *http.Request) {
	limit := DefaultRelatedLimit
	if raw := query.Get(r, "limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			apierr.BadRequest(w, r, h.Log, "limit must be a positive integer")
			return
		}
		limit = min(n, MaxRelatedLimit)
	}

	p, _, ok := h.loadProgram(w, r)
	if !ok {
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "related programs")
	defer cancel()
	candidates, err := h.Catalog.Programs(ctx)
	if err != nil {
		apierr.Internal(w, r, h.Log, err)
		return
	}

	apierr.WriteJSON(w, relatedResponse{
		ProgramID:   p.ID,
		Suggestions: related.Suggest(h.Rules, p, candidates, limit),
	})
}
