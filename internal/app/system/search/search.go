// internal/app/system/search/search.go
package search

import (
	"strings"

	"github.com/dalemusser/coursecompare/internal/domain/models"
)

// Points awarded per field when the query matches it. Fields add up.
const (
	NameExactPoints      = 100.0
	NameContainsPoints   = 50.0
	SpecializationPoints = 30.0
	DegreePoints         = 20.0
	FieldPoints          = 15.0
	InstitutionPoints    = 10.0
)

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func institutionName(inst *models.Institution) string {
	if inst == nil {
		return ""
	}
	return inst.Name
}

// Relevance scores how well a program matches a free-text query. inst is
// the owning institution and may be nil. A blank query scores 0.
func Relevance(p models.Program, inst *models.Institution, query string) float64 {
	q := normalize(query)
	if q == "" {
		return 0
	}

	var score float64
	name := normalize(p.Name)
	switch {
	case name == q:
		score += NameExactPoints
	case strings.Contains(name, q):
		score += NameContainsPoints
	}
	if containsFold(p.Specialization, q) {
		score += SpecializationPoints
	}
	if containsFold(p.Degree, q) {
		score += DegreePoints
	}
	if containsFold(p.Field, q) {
		score += FieldPoints
	}
	if containsFold(institutionName(inst), q) {
		score += InstitutionPoints
	}
	return score
}

// Matches reports whether any of the five searchable fields contains the
// query. A blank query matches everything.
func Matches(p models.Program, inst *models.Institution, query string) bool {
	q := normalize(query)
	if q == "" {
		return true
	}
	return containsFold(p.Name, q) ||
		containsFold(p.Specialization, q) ||
		containsFold(p.Degree, q) ||
		containsFold(p.Field, q) ||
		containsFold(institutionName(inst), q)
}

// containsFold expects q to be normalized already.
func containsFold(s, q string) bool {
	if s == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), q)
}
