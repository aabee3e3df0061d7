// Package related scores how closely one program relates to another and
// picks suggestions for a program detail page.
package related

import (
	"sort"
	"strings"

	"github.com/dalemusser/coursecompare/internal/app/system/classify"
	"github.com/dalemusser/coursecompare/internal/domain/models"
)

const (
	SameGroupPoints        = 40.0
	SameDegreePoints       = 30.0
	SameFieldPoints        = 20.0
	OtherInstitutionPoints = 10.0
)

// Suggestion is a candidate program with its relation score.
type Suggestion struct {
	Program models.Program `json:"program"`
	Score   float64        `json:"score"`
}

// Score rates dst as a suggestion for src on a 0-100 scale. Inputs are
// ordered: Score(src, dst) need not equal Score(dst, src).
func Score(rules *classify.Rules, src, dst models.Program) float64 {
	var score float64
	if rules != nil {
		a, okA := rules.ClassifyGroup(src)
		b, okB := rules.ClassifyGroup(dst)
		if okA && okB && a == b {
			score += SameGroupPoints
		}
	}
	if sameLabel(src.Degree, dst.Degree) {
		score += SameDegreePoints
	}
	if sameLabel(src.Field, dst.Field) {
		score += SameFieldPoints
	}
	if src.InstitutionID != dst.InstitutionID {
		score += OtherInstitutionPoints
	}
	return score
}

// blank labels never match each other
func sameLabel(a, b string) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	return a != "" && strings.EqualFold(a, b)
}

// Suggest scores every candidate against src and returns the best limit
// of them, highest first. src itself (by ID) and candidates scoring 0 are
// left out; equal scores keep candidate order. limit <= 0 means no limit.
func Suggest(rules *classify.Rules, src models.Program, candidates []models.Program, limit int) []Suggestion {
	out := make([]Suggestion, 0, len(candidates))
	for _, c := range candidates {
		if c.ID == src.ID {
			continue
		}
		if s := Score(rules, src, c); s > 0 {
			out = append(out, Suggestion{Program: c, Score: s})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
