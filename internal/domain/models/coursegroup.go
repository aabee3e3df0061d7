// internal/domain/models/coursegroup.go
package models

import "strings"

// CourseGroup clusters comparable programs across institutions. Include and
// Exclude are regular expressions matched case-insensitively against a
// program's name and specialization.
type CourseGroup struct {
	ID      string   `yaml:"id" json:"id"`
	Name    string   `yaml:"name" json:"name"`
	Include []string `yaml:"include" json:"include"`
	Exclude []string `yaml:"exclude,omitempty" json:"exclude,omitempty"`
}

// DegreeLevel is the academic tier of a program. It is derived from the
// program text, never stored.
type DegreeLevel string

const (
	LevelUndergraduate DegreeLevel = "undergraduate"
	LevelPostgraduate  DegreeLevel = "postgraduate"
	LevelDiploma       DegreeLevel = "diploma"
	LevelLateralEntry  DegreeLevel = "lateral-entry"
)

// DegreeLevels lists every level in display order.
var DegreeLevels = []DegreeLevel{
	LevelUndergraduate,
	LevelPostgraduate,
	LevelDiploma,
	LevelLateralEntry,
}

// Label returns the user-facing name of the level.
func (l DegreeLevel) Label() string {
	switch l {
	case LevelUndergraduate:
		return "Undergraduate"
	case LevelPostgraduate:
		return "Postgraduate"
	case LevelDiploma:
		return "Diploma"
	case LevelLateralEntry:
		return "Lateral Entry"
	}
	return string(l)
}

// ParseDegreeLevelLabel maps a user-facing label (or an internal value) back
// to a DegreeLevel. Matching ignores case and surrounding space.
func ParseDegreeLevelLabel(s string) (DegreeLevel, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	for _, l := range DegreeLevels {
		if strings.EqualFold(s, l.Label()) || strings.EqualFold(s, string(l)) {
			return l, true
		}
	}
	return "", false
}
