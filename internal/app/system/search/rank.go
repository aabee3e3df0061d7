package search

import (
	"sort"
	"strings"

	"github.com/dalemusser/coursecompare/internal/app/system/classify"
	"github.com/dalemusser/coursecompare/internal/app/system/scoring"
	"github.com/dalemusser/coursecompare/internal/domain/models"
)

// Weights of the combined listing score.
const (
	RelevanceWeight   = 0.6
	InstitutionWeight = 0.4
)

// Filters narrows a program listing. Empty fields impose no constraint.
type Filters struct {
	Query         string `json:"q,omitempty"`
	Level         string `json:"level,omitempty"`
	InstitutionID string `json:"institution,omitempty"`
	Field         string `json:"field,omitempty"`
}

// Ranked is one listing row with the scores used to order it.
type Ranked struct {
	Program          models.Program `json:"program"`
	Relevance        float64        `json:"relevance"`
	InstitutionScore float64        `json:"institutionScore"`
	Combined         float64        `json:"combined"`
}

// FilterAndRank filters programs and orders them by combined score. See
// Rank for the rules; this returns only the programs.
func FilterAndRank(programs []models.Program, f Filters, institutions []models.Institution) []models.Program {
	rows := Rank(programs, f, institutions)
	out := make([]models.Program, len(rows))
	for i, r := range rows {
		out[i] = r.Program
	}
	return out
}

// Rank applies the query, level, institution and field filters in that
// order. Without an institution filter the survivors are stable-sorted by
//
//	0.6*relevance (only with a query) + 0.4*institution score (only when the owner resolves)
//
// descending. With an institution filter the survivors keep input order
// and carry no scores. Inputs are never modified; the result is a new slice.
func Rank(programs []models.Program, f Filters, institutions []models.Institution) []Ranked {
	byID := make(map[string]*models.Institution, len(institutions))
	for i := range institutions {
		if _, seen := byID[institutions[i].ID]; !seen {
			byID[institutions[i].ID] = &institutions[i]
		}
	}

	query := strings.TrimSpace(f.Query)
	level, hasLevel := models.ParseDegreeLevelLabel(f.Level)
	instFilter := strings.TrimSpace(f.InstitutionID)
	fieldFilter := strings.TrimSpace(f.Field)

	rows := make([]Ranked, 0, len(programs))
	for _, p := range programs {
		owner := byID[p.InstitutionID]
		if query != "" && !Matches(p, owner, query) {
			continue
		}
		if hasLevel && classify.ClassifyDegreeLevel(p) != level {
			continue
		}
		if instFilter != "" && p.InstitutionID != instFilter {
			continue
		}
		if fieldFilter != "" && p.Field != fieldFilter {
			continue
		}
		rows = append(rows, Ranked{Program: p})
	}

	if instFilter != "" {
		return rows
	}

	for i := range rows {
		owner := byID[rows[i].Program.InstitutionID]
		if query != "" {
			rows[i].Relevance = Relevance(rows[i].Program, owner, query)
			rows[i].Combined += RelevanceWeight * rows[i].Relevance
		}
		if owner != nil {
			rows[i].InstitutionScore = scoring.Score(owner)
			rows[i].Combined += InstitutionWeight * rows[i].InstitutionScore
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Combined > rows[j].Combined
	})
	return rows
}
