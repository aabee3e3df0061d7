package classify_test

import (
	"strings"
	"testing"

	"github.com/dalemusser/coursecompare/internal/app/system/classify"
	"github.com/dalemusser/coursecompare/internal/domain/models"
	"github.com/google/go-cmp/cmp"
)

func TestDefaultRules_Compiles(t *testing.T) {
	r := classify.DefaultRules()
	if r == nil {
		t.Fatal("DefaultRules() returned nil")
	}
	if len(r.Groups()) == 0 {
		t.Fatal("expected embedded course groups")
	}
	if _, ok := r.Group("btech-cse"); !ok {
		t.Error("expected btech-cse group in embedded table")
	}
}

func TestClassifyGroup(t *testing.T) {
	r := classify.DefaultRules()

	tests := []struct {
		name           string
		program        models.Program
		wantID         string
		wantClassified bool
	}{
		{"plain cse", models.Program{Name: "B.Tech Computer Science & Engineering"}, "btech-cse", true},
		{"cse via specialization", models.Program{Name: "B.Tech", Specialization: "CSE"}, "btech-cse", true},
		{"ai excluded from cse", models.Program{Name: "B.Tech CSE", Specialization: "AI & ML"}, "btech-cse-ai-ml", true},
		{"case insensitive", models.Program{Name: "b.tech computer science and engineering"}, "btech-cse", true},
		{"bachelor of technology", models.Program{Name: "Bachelor of Technology in Computer Science"}, "btech-cse", true},
		{"mtech cse is not btech", models.Program{Name: "M.Tech Computer Science and Engineering"}, "mtech", true},
		{"diploma cse is not btech", models.Program{Name: "Diploma in Computer Science and Engineering"}, "diploma-engineering", true},
		{"mba", models.Program{Name: "MBA", Specialization: "Finance"}, "mba", true},
		{"bba excludes mba text", models.Program{Name: "BBA + MBA Integrated"}, "mba", true},
		{"no match", models.Program{Name: "Bachelor of Fine Arts"}, "", false},
		{"empty program", models.Program{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.ClassifyGroup(tt.program)
			if ok != tt.wantClassified || got != tt.wantID {
				t.Errorf("ClassifyGroup(%q, %q) = (%q, %v), want (%q, %v)",
					tt.program.Name, tt.program.Specialization, got, ok, tt.wantID, tt.wantClassified)
			}
		})
	}
}

func TestClassifyGroup_LateralPreferred(t *testing.T) {
	r := classify.DefaultRules()

	// Matches both btech-cse and btech-lateral; lateral text wins.
	p := models.Program{Name: "B.Tech CSE Lateral Entry"}
	got, ok := r.ClassifyGroup(p)
	if !ok || got != "btech-lateral" {
		t.Errorf("ClassifyGroup() = (%q, %v), want btech-lateral", got, ok)
	}

	// Same program without the lateral marker stays in the regular group.
	p.Name = "B.Tech CSE"
	got, _ = r.ClassifyGroup(p)
	if got != "btech-cse" {
		t.Errorf("ClassifyGroup() = %q, want btech-cse", got)
	}
}

func TestClassifyGroup_MostSpecificWins(t *testing.T) {
	r, err := classify.NewRules([]models.CourseGroup{
		{ID: "broad", Include: []string{"engineering"}},
		{ID: "narrow", Include: []string{"engineering", "robotics", "automation"}},
		{ID: "narrow-twin", Include: []string{"engineering", "mechatronics", "control"}},
	})
	if err != nil {
		t.Fatalf("NewRules failed: %v", err)
	}

	got, ok := r.ClassifyGroup(models.Program{Name: "Robotics Engineering"})
	if !ok || got != "narrow" {
		t.Errorf("ClassifyGroup() = (%q, %v), want narrow", got, ok)
	}

	// narrow and narrow-twin tie on pattern count; table order decides.
	for i := 0; i < 5; i++ {
		got, _ = r.ClassifyGroup(models.Program{Name: "Engineering"})
		if got != "narrow" {
			t.Fatalf("run %d: ClassifyGroup() = %q, want narrow", i, got)
		}
	}
}

func TestClassifyGroup_LateralFallsBackWhenNoLateralGroup(t *testing.T) {
	r, err := classify.NewRules([]models.CourseGroup{
		{ID: "one", Include: []string{"design"}},
		{ID: "two", Include: []string{"design", "ux"}},
	})
	if err != nil {
		t.Fatalf("NewRules failed: %v", err)
	}
	got, _ := r.ClassifyGroup(models.Program{Name: "Design Lateral"})
	if got != "two" {
		t.Errorf("ClassifyGroup() = %q, want two", got)
	}
}

func TestNewRules_Errors(t *testing.T) {
	tests := []struct {
		name   string
		groups []models.CourseGroup
		want   string
	}{
		{"missing id", []models.CourseGroup{{Name: "X", Include: []string{"x"}}}, "missing id"},
		{"duplicate id", []models.CourseGroup{{ID: "a", Include: []string{"x"}}, {ID: "a"}}, "duplicate id"},
		{"bad include", []models.CourseGroup{{ID: "a", Include: []string{"("}}}, "include"},
		{"bad exclude", []models.CourseGroup{{ID: "a", Include: []string{"x"}, Exclude: []string{"[z"}}}, "exclude"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := classify.NewRules(tt.groups)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadRules(t *testing.T) {
	src := `
- id: law
  name: Law
  include: ['\bllb\b']
`
	r, err := classify.LoadRules(strings.NewReader(src))
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}
	got, ok := r.ClassifyGroup(models.Program{Name: "BA LLB (Hons)"})
	if !ok || got != "law" {
		t.Errorf("ClassifyGroup() = (%q, %v), want law", got, ok)
	}

	if _, err := classify.LoadRules(strings.NewReader("not: [valid")); err == nil {
		t.Error("expected decode error for malformed yaml")
	}
}

func TestGroups_ReturnsCopy(t *testing.T) {
	r := classify.DefaultRules()
	groups := r.Groups()
	groups[0].Include[0] = "mutated"
	groups[0].ID = "mutated"

	again := r.Groups()
	if again[0].ID == "mutated" || again[0].Include[0] == "mutated" {
		t.Error("Groups() exposed internal table")
	}
}

func TestClassifyGroup_DoesNotMutateInput(t *testing.T) {
	r := classify.DefaultRules()
	p := models.Program{
		ID:             "p1",
		Name:           "B.Tech CSE Lateral Entry",
		Specialization: "Cloud",
		AnnualFees:     []float64{1, 2, 3},
	}
	before := p
	before.AnnualFees = append([]float64(nil), p.AnnualFees...)

	r.ClassifyGroup(p)
	classify.ClassifyDegreeLevel(p)

	if diff := cmp.Diff(before, p); diff != "" {
		t.Errorf("program mutated (-before +after):\n%s", diff)
	}
}
