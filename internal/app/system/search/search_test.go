package search_test

import (
	"math"
	"testing"

	"github.com/dalemusser/coursecompare/internal/app/system/search"
	"github.com/dalemusser/coursecompare/internal/domain/models"
	"github.com/google/go-cmp/cmp"
)

func catalog() ([]models.Program, []models.Institution) {
	programs := []models.Program{
		{ID: "p1", Name: "B.Tech Computer Science", Degree: "B.Tech", Field: "Engineering", Specialization: "Computer Science", InstitutionID: "strong-u"},
		{ID: "p2", Name: "B.Tech Computer Science", Degree: "B.Tech", Field: "Engineering", Specialization: "Computer Science", InstitutionID: "weak-u"},
		{ID: "p3", Name: "MBA", Degree: "MBA", Field: "Management", Specialization: "Finance", InstitutionID: "strong-u"},
		{ID: "p4", Name: "B.Des Product Design", Degree: "B.Des", Field: "Design", InstitutionID: "orphan-u"},
		{ID: "p5", Name: "Diploma in Mechanical Engineering", Degree: "Diploma", Field: "Engineering", InstitutionID: "weak-u"},
	}
	institutions := []models.Institution{
		{ID: "strong-u", Name: "Strong University", Profile: &models.Profile{Rankings: models.Rankings{NIRF: "20", NAAC: models.NAACAPlusPlus}}},
		{ID: "weak-u", Name: "Weak Institute", Profile: &models.Profile{}},
	}
	return programs, institutions
}

func ids(ps []models.Program) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestRelevance(t *testing.T) {
	inst := &models.Institution{Name: "Engineering College of India"}
	tests := []struct {
		name  string
		p     models.Program
		query string
		want  float64
	}{
		{"blank query", models.Program{Name: "MBA"}, "  ", 0},
		{"exact name", models.Program{Name: "MBA"}, "mba", 100},
		{"exact name ignores surrounding space", models.Program{Name: " MBA "}, " MBA", 100},
		{"name contains", models.Program{Name: "Executive MBA"}, "mba", 50},
		{"field only", models.Program{Name: "B.Sc", Field: "Data Science"}, "science", 15},
		{"degree and name", models.Program{Name: "B.Tech CSE", Degree: "B.Tech"}, "b.tech", 70},
		{"specialization", models.Program{Name: "B.Tech", Specialization: "Robotics"}, "robot", 30},
		{"all fields add up", models.Program{Name: "engineering", Degree: "engineering", Field: "Engineering", Specialization: "engineering"}, "engineering", 100 + 30 + 20 + 15 + 10},
		{"no match", models.Program{Name: "MBA"}, "law", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := search.Relevance(tt.p, inst, tt.query); got != tt.want {
				t.Errorf("Relevance(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestRelevance_ExactNameBeatsField(t *testing.T) {
	exact := search.Relevance(models.Program{Name: "Design"}, nil, "design")
	field := search.Relevance(models.Program{Name: "B.Des", Field: "Design"}, nil, "design")
	if exact != 100 || field > 15 {
		t.Errorf("exact = %v field = %v, want 100 and <= 15", exact, field)
	}
}

func TestFilterAndRank_CombinedOrder(t *testing.T) {
	programs, institutions := catalog()

	got := search.FilterAndRank(programs, search.Filters{Query: "computer"}, institutions)
	want := []string{"p1", "p2"}
	if diff := cmp.Diff(want, ids(got)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestRank_CombinedNonIncreasing(t *testing.T) {
	institutions := []models.Institution{
		{ID: "strong-u", Name: "Strong University", Profile: &models.Profile{Rankings: models.Rankings{NIRF: "20", NAAC: models.NAACAPlusPlus}}},
		{ID: "mid-u", Name: "Mid Engineering College", Profile: &models.Profile{Rankings: models.Rankings{NIRF: "101-150", NAAC: models.NAACB}}},
		{ID: "weak-u", Name: "Weak Institute", Profile: &models.Profile{}},
		{ID: "rishihood-university", Name: "Rishihood University", Profile: &models.Profile{}},
	}
	programs := []models.Program{
		{ID: "a", Name: "Diploma in Engineering", Degree: "Diploma", Field: "Engineering", InstitutionID: "weak-u"},
		{ID: "b", Name: "Engineering", Degree: "B.Tech", Field: "Engineering", InstitutionID: "orphan-u"},
		{ID: "c", Name: "B.Tech Civil Engineering", Degree: "B.Tech", Field: "Engineering", InstitutionID: "mid-u"},
		{ID: "d", Name: "MBA", Degree: "MBA", Field: "Engineering Management", InstitutionID: "strong-u"},
		{ID: "e", Name: "B.Tech Mechanical Engineering", Degree: "B.Tech", Field: "Engineering", InstitutionID: "rishihood-university"},
		{ID: "f", Name: "B.Tech Mechanical Engineering", Degree: "B.Tech", Field: "Engineering", InstitutionID: "strong-u"},
		{ID: "g", Name: "BBA", Degree: "BBA", Field: "Management", InstitutionID: "mid-u"},
	}

	rows := search.Rank(programs, search.Filters{Query: "engineering"}, institutions)
	if len(rows) < 5 {
		t.Fatalf("got %d rows, want at least 5 matches", len(rows))
	}

	relevances := map[float64]bool{}
	scores := map[float64]bool{}
	for i, r := range rows {
		relevances[r.Relevance] = true
		scores[r.InstitutionScore] = true
		want := search.RelevanceWeight*r.Relevance + search.InstitutionWeight*r.InstitutionScore
		if math.Abs(r.Combined-want) > 1e-9 {
			t.Errorf("%s: combined = %v, want %v", r.Program.ID, r.Combined, want)
		}
		if i > 0 && rows[i-1].Combined < r.Combined {
			t.Errorf("rows %d (%s, %v) and %d (%s, %v) out of order",
				i-1, rows[i-1].Program.ID, rows[i-1].Combined, i, r.Program.ID, r.Combined)
		}
	}
	if len(relevances) < 2 || len(scores) < 2 {
		t.Errorf("expected varied relevance and institution scores, got %v and %v", relevances, scores)
	}
}

func TestFilterAndRank_NoQueryUsesInstitutionScore(t *testing.T) {
	programs, institutions := catalog()

	rows := search.Rank(programs, search.Filters{}, institutions)
	got := make([]string, len(rows))
	for i, r := range rows {
		got[i] = r.Program.ID
		if r.Relevance != 0 {
			t.Errorf("%s: relevance %v without a query", r.Program.ID, r.Relevance)
		}
	}
	// strong-u outranks weak-u; the orphan has no score and sorts last.
	want := []string{"p1", "p3", "p2", "p5", "p4"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterAndRank_InstitutionFilterKeepsOrder(t *testing.T) {
	programs, institutions := catalog()

	rows := search.Rank(programs, search.Filters{InstitutionID: "weak-u"}, institutions)
	var got []string
	for _, r := range rows {
		got = append(got, r.Program.ID)
		if r.Combined != 0 {
			t.Errorf("%s: combined %v, want unscored", r.Program.ID, r.Combined)
		}
	}
	if diff := cmp.Diff([]string{"p2", "p5"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterAndRank_Filters(t *testing.T) {
	programs, institutions := catalog()
	tests := []struct {
		name string
		f    search.Filters
		want []string
	}{
		{"level label", search.Filters{Level: "Postgraduate"}, []string{"p3"}},
		{"level value", search.Filters{Level: "diploma"}, []string{"p5"}},
		{"unknown level ignored", search.Filters{Level: "Doctorate-ish"}, []string{"p1", "p3", "p2", "p5", "p4"}},
		{"field exact", search.Filters{Field: "Design"}, []string{"p4"}},
		{"field is not substring", search.Filters{Field: "Engineer"}, nil},
		{"query on institution name", search.Filters{Query: "weak institute"}, []string{"p2", "p5"}},
		{"query and field", search.Filters{Query: "b.", Field: "Engineering"}, []string{"p1", "p2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(search.FilterAndRank(programs, tt.f, institutions))
			if len(got) == 0 {
				got = nil
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterAndRank_DoesNotMutateInput(t *testing.T) {
	programs, institutions := catalog()
	before, beforeInst := catalog()

	first := ids(search.FilterAndRank(programs, search.Filters{Query: "b"}, institutions))
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(first, ids(search.FilterAndRank(programs, search.Filters{Query: "b"}, institutions))); diff != "" {
			t.Fatalf("run %d not deterministic:\n%s", i, diff)
		}
	}
	if diff := cmp.Diff(before, programs); diff != "" {
		t.Errorf("programs mutated:\n%s", diff)
	}
	if diff := cmp.Diff(beforeInst, institutions); diff != "" {
		t.Errorf("institutions mutated:\n%s", diff)
	}
}
