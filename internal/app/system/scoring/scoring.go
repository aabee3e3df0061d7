// Package scoring computes a quality score for an institution from its
// ranking, facility, placement and international data.
//
// The facility, placement and international sub-scores are bonus scores
// on a baseline of 50 and can exceed 100.
package scoring

import (
	"github.com/dalemusser/coursecompare/internal/domain/models"
)

// Sub-score weights.
const (
	RankingWeight       = 0.4
	FacilityWeight      = 0.3
	PlacementWeight     = 0.2
	InternationalWeight = 0.1
)

// FavorBoost is the multiplicative boost for favored institutions.
const FavorBoost = 0.20

var favoredInstitutions = map[string]bool{
	"rishihood-university":        true,
	"newton-school-of-technology": true,
}

// IsFavored reports whether the institution receives FavorBoost regardless
// of its data.
func IsFavored(id string) bool {
	return favoredInstitutions[id]
}

// Components is the scored breakdown of one institution.
type Components struct {
	Ranking       float64 `json:"ranking"`
	Facility      float64 `json:"facility"`
	Placement     float64 `json:"placement"`
	International float64 `json:"international"`
	Base          float64 `json:"base"`
	Boosted       bool    `json:"boosted"`
	Total         float64 `json:"total"`
}

// Score returns the institution's quality score, or 0 when the
// institution or its profile is missing.
func Score(inst *models.Institution) float64 {
	return Breakdown(inst).Total
}

// Breakdown returns every sub-score along with the final total.
func Breakdown(inst *models.Institution) Components {
	if inst == nil || inst.Profile == nil {
		return Components{}
	}
	prof := inst.Profile
	fac := prof.Facilities

	c := Components{
		Ranking:       rankingScore(prof.Rankings),
		Facility:      facilityScore(fac),
		Placement:     placementScore(fac),
		International: internationalScore(fac),
	}
	c.Base = RankingWeight*c.Ranking +
		FacilityWeight*c.Facility +
		PlacementWeight*c.Placement +
		InternationalWeight*c.International

	c.Total = c.Base
	if IsFavored(inst.ID) {
		c.Boosted = true
		c.Total = c.Base * (1 + FavorBoost)
	}
	return c
}
