// internal/app/features/compare/handler.go
package compare

import (
	"net/http"

	apierr "github.com/dalemusser/coursecompare/internal/app/features/errors"
	catalogstore "github.com/dalemusser/coursecompare/internal/app/store/catalog"
	"github.com/dalemusser/coursecompare/internal/app/system/classify"
	"github.com/dalemusser/coursecompare/internal/app/system/costcalc"
	"github.com/dalemusser/coursecompare/internal/app/system/scoring"
	"github.com/dalemusser/coursecompare/internal/app/system/timeouts"
	"github.com/dalemusser/coursecompare/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Catalog *catalogstore.Store
	Rules   *classify.Rules
	Log     *zap.Logger
}

func NewHandler(catalog *catalogstore.Store, rules *classify.Rules, logger *zap.Logger) *Handler {
	return &Handler{Catalog: catalog, Rules: rules, Log: logger}
}

type row struct {
	Program          models.Program     `json:"program"`
	InstitutionName  string             `json:"institutionName,omitempty"`
	InstitutionScore float64            `json:"institutionScore"`
	Cost             costcalc.Breakdown `json:"cost"`
}

type compareResponse struct {
	Group models.CourseGroup `json:"group"`
	Level models.DegreeLevel `json:"level,omitempty"`
	Rows  []row              `json:"rows"`
}

// ServeGroup handles GET /compare/{group}: the group's programs at its
// dominant degree level, each with its cost and institution score.
func (h *Handler) ServeGroup(w http.ResponseWriter, r *http.Request) {
	group, ok := h.Rules.Group(chi.URLParam(r, "group"))
	if !ok {
		apierr.NotFound(w, r, h.Log, "course group")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "compare group")
	defer cancel()
	snap, err := h.Catalog.Snapshot(ctx)
	if err != nil {
		apierr.Internal(w, r, h.Log, err)
		return
	}

	programs := h.Rules.SelectDominantLevelPrograms(snap.Programs, group.ID)
	resp := compareResponse{Group: group, Rows: make([]row, 0, len(programs))}
	if len(programs) > 0 {
		resp.Level = classify.ClassifyDegreeLevel(programs[0])
	}
	for _, p := range programs {
		inst := snap.Institution(p.InstitutionID)
		rw := row{
			Program:          p,
			InstitutionScore: scoring.Score(inst),
			Cost:             costcalc.TotalCost(p, inst),
		}
		if inst != nil {
			rw.InstitutionName = inst.Name
		}
		resp.Rows = append(resp.Rows, rw)
	}
	apierr.WriteJSON(w, resp)
}

// ServeGroups handles GET /groups: the course group table.
func (h *Handler) ServeGroups(w http.ResponseWriter, r *http.Request) {
	apierr.WriteJSON(w, h.Rules.Groups())
}
