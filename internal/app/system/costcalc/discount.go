// Package costcalc computes the total cost of attending a program under the
// best discount its institution offers.
//
// Callers never supply an applicant's GPA, so discount resolution always
// assumes the most favourable qualifying condition.
package costcalc

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/dalemusser/coursecompare/internal/domain/models"
)

// Percentages used by degree-conditioned institutions whose catalog entry
// omits a branch.
const (
	FallbackMatchedPercent = 50.0
	FallbackOtherPercent   = 30.0
)

// defaultDegreePattern is used when a degree-conditioned rule names no
// pattern of its own.
var defaultDegreePattern = regexp.MustCompile(`b\.?\s?tech`)

var degreePatterns sync.Map // pattern string -> *regexp.Regexp

// CompileDegreePattern compiles a degree-conditioned discount pattern,
// case-insensitively. A blank pattern yields the default B.Tech pattern.
// Compiled patterns are cached.
func CompileDegreePattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return defaultDegreePattern, nil
	}
	if re, ok := degreePatterns.Load(pattern); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("degree discount pattern %q: %w", pattern, err)
	}
	degreePatterns.Store(pattern, re)
	return re, nil
}

type resolver func(p models.Program, rules models.DiscountRules) float64

// resolvers dispatches on the discount variant. An unknown or empty kind
// has no entry and resolves to zero.
var resolvers = map[models.DiscountKind]resolver{
	models.DiscountFlat:   resolveFlat,
	models.DiscountTiered: resolveTiered,
	models.DiscountDegree: resolveDegree,
}

// BestDiscount returns the largest discount percentage the institution
// offers for the program, or 0 when the institution has no rules.
func BestDiscount(p models.Program, inst *models.Institution) float64 {
	if inst == nil {
		return 0
	}
	fn, ok := resolvers[inst.Discount.Kind]
	if !ok {
		return 0
	}
	return fn(p, inst.Discount)
}

func resolveFlat(_ models.Program, rules models.DiscountRules) float64 {
	if rules.Flat == nil {
		return 0
	}
	return rules.Flat.Percent
}

func resolveTiered(p models.Program, rules models.DiscountRules) float64 {
	cat, ok := rules.Tiered.Category(p.ScholarshipCategory)
	if !ok || len(cat.Tiers) == 0 {
		return 0
	}
	best := cat.Tiers[0].Percent
	for _, t := range cat.Tiers[1:] {
		if t.Percent > best {
			best = t.Percent
		}
	}
	return best
}

func resolveDegree(p models.Program, rules models.DiscountRules) float64 {
	var d models.DegreeDiscount
	if rules.Degree != nil {
		d = *rules.Degree
	}

	// Seeded catalogs are validated; anything else with a broken pattern
	// prices against the default.
	re, err := CompileDegreePattern(d.Pattern)
	if err != nil {
		re = defaultDegreePattern
	}

	text := strings.ToLower(p.Degree + " " + p.Name)
	if re.MatchString(text) {
		if d.Matched == nil {
			return FallbackMatchedPercent
		}
		return d.Matched.Percent
	}
	if d.Other == nil {
		return FallbackOtherPercent
	}
	return d.Other.Percent
}
