// Package navigation classifies site paths by how easily a visitor can
// reach them from the home page.
package navigation

import (
	"strings"
)

// MaxDepth is the deepest path, in segments, assumed reachable when no
// known shape matches.
const MaxDepth = 3

var topLevel = map[string]bool{
	"/":             true,
	"/programs":     true,
	"/institutions": true,
	"/compare":      true,
	"/about":        true,
	"/contact":      true,
}

// shape is a path pattern; "*" matches any single segment.
type shape []string

var shapes = []shape{
	{"institutions", "*"},
	{"institutions", "*", "*"},
	{"compare", "*"},
	{"programs", "*"},
	{"programs", "*", "related"},
}

func (s shape) match(segs []string) bool {
	if len(s) != len(segs) {
		return false
	}
	for i, want := range s {
		if want != "*" && want != segs[i] {
			return false
		}
	}
	return true
}

// Clean drops the query string, fragment and trailing slashes from path.
func Clean(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSpace(path)
	if trimmed := strings.TrimRight(path, "/"); trimmed != "" {
		return trimmed
	}
	if path == "" {
		return ""
	}
	return "/"
}

func segments(path string) []string {
	var out []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// IsReachable reports whether path is shallow enough to count as reachable:
// a top-level page, one of the known detail shapes, or any path of at most
// MaxDepth segments. This is a depth heuristic, not a link-graph search.
func IsReachable(path string) bool {
	path = Clean(path)
	if path == "" {
		return false
	}
	if topLevel[path] {
		return true
	}
	segs := segments(path)
	for _, s := range shapes {
		if s.match(segs) {
			return true
		}
	}
	return len(segs) <= MaxDepth
}
