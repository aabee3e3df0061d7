package classify

import (
	"regexp"
	"strings"

	"github.com/dalemusser/coursecompare/internal/domain/models"
)

var (
	lateralPattern = regexp.MustCompile(`lateral`)
	diplomaPattern = regexp.MustCompile(`\bdiploma\b`)

	// Master's prefixes and abbreviations, plus doctoral markers. Doctoral
	// programs are reported as postgraduate.
	postgraduatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bm\.?\s?(tech|sc|des|com|ed|arch|pharm|phil|plan)\b`),
		regexp.MustCompile(`\b(mba|mca|pgdm|llm|mfa|mph)\b`),
		regexp.MustCompile(`\bm\.a\b|\bma\b`),
		regexp.MustCompile(`\bmasters?\b|\bmaster of\b`),
		regexp.MustCompile(`post\s?-?graduate`),
		regexp.MustCompile(`\bph\.?\s?d\b|\bdoctor(al|ate)?\b|\bd\.?\s?phil\b`),
	}
)

func levelText(p models.Program) string {
	return strings.ToLower(p.Degree + " " + p.Name + " " + p.Specialization)
}

// ClassifyDegreeLevel derives the degree level of a program from its degree
// label, name and specialization. Checks run in priority order: lateral
// entry, diploma, postgraduate; anything else is undergraduate.
func ClassifyDegreeLevel(p models.Program) models.DegreeLevel {
	text := levelText(p)
	if lateralPattern.MatchString(text) {
		return models.LevelLateralEntry
	}
	if diplomaPattern.MatchString(text) {
		return models.LevelDiploma
	}
	for _, re := range postgraduatePatterns {
		if re.MatchString(text) {
			return models.LevelPostgraduate
		}
	}
	return models.LevelUndergraduate
}

// SelectDominantLevelPrograms keeps the programs of groupID that share the
// group's most common degree level, so one comparison view never mixes
// bachelor's and master's programs. A frequency tie goes to the level seen
// first in input order. The result is a new slice in input order.
func (r *Rules) SelectDominantLevelPrograms(programs []models.Program, groupID string) []models.Program {
	var (
		inGroup []models.Program
		levels  []models.DegreeLevel
		order   []models.DegreeLevel
		counts  = make(map[models.DegreeLevel]int)
	)
	for _, p := range programs {
		id, ok := r.ClassifyGroup(p)
		if !ok || id != groupID {
			continue
		}
		lvl := ClassifyDegreeLevel(p)
		if counts[lvl] == 0 {
			order = append(order, lvl)
		}
		counts[lvl]++
		inGroup = append(inGroup, p)
		levels = append(levels, lvl)
	}
	if len(inGroup) == 0 {
		return nil
	}

	dominant := order[0]
	for _, lvl := range order[1:] {
		if counts[lvl] > counts[dominant] {
			dominant = lvl
		}
	}

	out := make([]models.Program, 0, counts[dominant])
	for i, p := range inGroup {
		if levels[i] == dominant {
			out = append(out, p)
		}
	}
	return out
}
