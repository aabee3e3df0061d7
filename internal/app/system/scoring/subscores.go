package scoring

import (
	"math"
	"strconv"
	"strings"

	"github.com/dalemusser/coursecompare/internal/domain/models"
)

// DefaultRank stands in for a missing or unparseable national ranking.
const DefaultRank = 500.0

const baseline = 50.0

var naacBonus = map[models.NAACGrade]float64{
	models.NAACAPlusPlus: 10,
	models.NAACAPlus:     7,
	models.NAACA:         5,
}

// Facility increments. Presence counts, quality does not.
const (
	campusPoints        = 5
	labsPoints          = 5
	libraryPoints       = 3
	industryPoints      = 7
	accommodationPoints = 5
	healthcarePoints    = 5
	sportsPoints        = 4
	technologyPoints    = 6
)

// topRecruiters are globally recognised employers; listing any of them
// earns the recruiter bonus once.
var topRecruiters = []string{"google", "microsoft", "amazon", "apple", "meta", "goldman sachs"}

const (
	topRecruiterPoints = 10
	packageFlagPoints  = 5
	supportPointsEach  = 2
	supportPointsCap   = 15
	achievementPoints  = 10
)

// ParseRank reads a NIRF value: a single position ("42") or a range
// ("101-150"), which is reduced to its midpoint. ok is false for anything
// else.
func ParseRank(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, "–", "-")
	if lo, hi, isRange := strings.Cut(s, "-"); isRange {
		a, errA := strconv.ParseFloat(strings.TrimSpace(lo), 64)
		b, errB := strconv.ParseFloat(strings.TrimSpace(hi), 64)
		if errA != nil || errB != nil || a <= 0 || b <= 0 {
			return 0, false
		}
		return (a + b) / 2, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// RankBand maps a rank position to a score with a piecewise-linear band
// per rank range.
func RankBand(rank float64) float64 {
	switch {
	case rank <= 50:
		return 100 - rank*0.1
	case rank <= 100:
		return 95 - (rank-50)*0.1
	case rank <= 150:
		return 90 - (rank-100)*0.2
	case rank <= 200:
		return 80 - (rank-150)*0.2
	default:
		return math.Max(50, 70-(rank-200)*0.05)
	}
}

func rankingScore(r models.Rankings) float64 {
	rank, ok := ParseRank(r.NIRF)
	if !ok {
		rank = DefaultRank
	}
	return RankBand(rank) + naacBonus[models.NAACGrade(strings.TrimSpace(string(r.NAAC)))]
}

func facilityScore(f *models.Facilities) float64 {
	score := baseline
	if f == nil {
		return score
	}
	if f.Campus != nil {
		score += campusPoints
	}
	if a := f.Academic; a != nil {
		if a.Labs {
			score += labsPoints
		}
		if a.Library {
			score += libraryPoints
		}
		if a.IndustryPartnerships {
			score += industryPoints
		}
	}
	if f.Accommodation != nil {
		score += accommodationPoints
	}
	if f.Healthcare != nil {
		score += healthcarePoints
	}
	if f.Sports != nil {
		score += sportsPoints
	}
	if t := f.Technology; t != nil && (t.WiFi || t.SmartClassrooms) {
		score += technologyPoints
	}
	return score
}

func placementScore(f *models.Facilities) float64 {
	score := baseline
	if f == nil || f.Placement == nil {
		return score
	}
	p := f.Placement

	if rate, ok := ParseCount(p.Rate); ok {
		score += (rate - 50) / 2
	}
	if n, ok := ParseCount(p.Recruiters); ok {
		switch {
		case n >= 500:
			score += 15
		case n >= 300:
			score += 10
		case n >= 100:
			score += 5
		}
	}
	if p.HighestInternationalPackage {
		score += packageFlagPoints
	}
	if p.HighestDomesticPackage {
		score += packageFlagPoints
	}
	if hasTopRecruiter(p.TopRecruiters) {
		score += topRecruiterPoints
	}
	return score
}

func hasTopRecruiter(names []string) bool {
	for _, n := range names {
		n = strings.ToLower(n)
		for _, top := range topRecruiters {
			if strings.Contains(n, top) {
				return true
			}
		}
	}
	return false
}

func internationalScore(f *models.Facilities) float64 {
	score := baseline
	if f == nil || f.International == nil {
		return score
	}
	in := f.International

	if n, ok := ParseCount(in.Students); ok {
		switch {
		case n >= 2000:
			score += 20
		case n >= 1000:
			score += 15
		case n >= 500:
			score += 10
		case n >= 100:
			score += 5
		}
	}
	score += math.Min(float64(len(in.Support)*supportPointsEach), supportPointsCap)
	if in.Achievement {
		score += achievementPoints
	}
	return score
}

// ParseCount reads the leading number of a catalog string such as "92%",
// "500+" or "1,200 students". Thousands separators are ignored.
func ParseCount(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || s[end] == '.') {
		end++
	}
	if end == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
