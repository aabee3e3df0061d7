// Package classify maps programs to course groups and degree levels.
//
// Course groups come from a static table of regular expressions (the
// embedded coursegroups.yaml unless another table is loaded). The table is
// compiled once into an immutable Rules value; every method on Rules is
// safe for concurrent use and never modifies its arguments.
package classify

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"

	"github.com/dalemusser/coursecompare/internal/domain/models"
	"gopkg.in/yaml.v3"
)

//go:embed coursegroups.yaml
var defaultTable []byte

// lateralMarker identifies lateral entry both in program text and in
// group identifiers.
const lateralMarker = "lateral"

type compiledGroup struct {
	group   models.CourseGroup
	include []*regexp.Regexp
	exclude []*regexp.Regexp
}

func (g compiledGroup) matches(text string) bool {
	hit := false
	for _, re := range g.include {
		if re.MatchString(text) {
			hit = true
			break
		}
	}
	if !hit {
		return false
	}
	for _, re := range g.exclude {
		if re.MatchString(text) {
			return false
		}
	}
	return true
}

// Rules is a compiled course group table.
type Rules struct {
	groups []compiledGroup
	byID   map[string]int
}

// NewRules compiles groups in the order given. Table order is the final
// tie-break when two candidate groups are otherwise equal.
func NewRules(groups []models.CourseGroup) (*Rules, error) {
	r := &Rules{
		groups: make([]compiledGroup, 0, len(groups)),
		byID:   make(map[string]int, len(groups)),
	}
	for _, g := range groups {
		if g.ID == "" {
			return nil, fmt.Errorf("course group %q: missing id", g.Name)
		}
		if _, dup := r.byID[g.ID]; dup {
			return nil, fmt.Errorf("course group %q: duplicate id", g.ID)
		}
		cg := compiledGroup{group: copyGroup(g)}
		for _, p := range g.Include {
			re, err := compilePattern(p)
			if err != nil {
				return nil, fmt.Errorf("course group %q include %q: %w", g.ID, p, err)
			}
			cg.include = append(cg.include, re)
		}
		for _, p := range g.Exclude {
			re, err := compilePattern(p)
			if err != nil {
				return nil, fmt.Errorf("course group %q exclude %q: %w", g.ID, p, err)
			}
			cg.exclude = append(cg.exclude, re)
		}
		r.byID[g.ID] = len(r.groups)
		r.groups = append(r.groups, cg)
	}
	return r, nil
}

// LoadRules reads a YAML course group table and compiles it.
func LoadRules(src io.Reader) (*Rules, error) {
	var groups []models.CourseGroup
	if err := yaml.NewDecoder(src).Decode(&groups); err != nil {
		return nil, fmt.Errorf("decode course groups: %w", err)
	}
	return NewRules(groups)
}

var (
	defaultOnce  sync.Once
	defaultRules *Rules
)

// DefaultRules returns the rules compiled from the embedded table.
// The embedded table is part of the build, so a compile failure panics.
func DefaultRules() *Rules {
	defaultOnce.Do(func() {
		r, err := LoadRules(bytes.NewReader(defaultTable))
		if err != nil {
			panic(fmt.Sprintf("classify: embedded course groups: %v", err))
		}
		defaultRules = r
	})
	return defaultRules
}

func compilePattern(p string) (*regexp.Regexp, error) {
	return regexp.Compile("(?i)" + p)
}

func copyGroup(g models.CourseGroup) models.CourseGroup {
	out := g
	out.Include = append([]string(nil), g.Include...)
	if g.Exclude != nil {
		out.Exclude = append([]string(nil), g.Exclude...)
	}
	return out
}

// Groups returns a copy of the table in its configured order.
func (r *Rules) Groups() []models.CourseGroup {
	out := make([]models.CourseGroup, len(r.groups))
	for i, g := range r.groups {
		out[i] = copyGroup(g.group)
	}
	return out
}

// Group looks up a single group by identifier.
func (r *Rules) Group(id string) (models.CourseGroup, bool) {
	i, ok := r.byID[id]
	if !ok {
		return models.CourseGroup{}, false
	}
	return copyGroup(r.groups[i].group), true
}

func groupText(p models.Program) string {
	return strings.ToLower(p.Name + " " + p.Specialization)
}

// ClassifyGroup returns the course group a program belongs to.
//
// When several groups match, a program whose text mentions lateral entry
// prefers lateral-entry groups; remaining ties go to the group with the
// most include patterns, then to table order.
func (r *Rules) ClassifyGroup(p models.Program) (string, bool) {
	text := groupText(p)

	var candidates []int
	for i, g := range r.groups {
		if g.matches(text) {
			candidates = append(candidates, i)
		}
	}
	switch len(candidates) {
	case 0:
		return "", false
	case 1:
		return r.groups[candidates[0]].group.ID, true
	}

	if strings.Contains(text, lateralMarker) {
		var lateral []int
		for _, i := range candidates {
			if strings.Contains(strings.ToLower(r.groups[i].group.ID), lateralMarker) {
				lateral = append(lateral, i)
			}
		}
		if len(lateral) > 0 {
			candidates = lateral
		}
	}

	best := candidates[0]
	for _, i := range candidates[1:] {
		if len(r.groups[i].include) > len(r.groups[best].include) {
			best = i
		}
	}
	return r.groups[best].group.ID, true
}
