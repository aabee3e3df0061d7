package institutions_test

import (
	"net/http"
	"testing"

	"github.com/dalemusser/coursecompare/internal/app/features/institutions"
	catalogstore "github.com/dalemusser/coursecompare/internal/app/store/catalog"
	"github.com/dalemusser/coursecompare/internal/domain/models"
	"github.com/dalemusser/coursecompare/internal/testutil"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) *institutions.Handler {
	t.Helper()
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateInstitution(ctx, models.Institution{ID: "alpha-u", Name: "Alpha University", Profile: &models.Profile{}})
	fx.CreateInstitution(ctx, testutil.SampleInstitution("rishihood-university", "Rishihood University"))
	fx.CreateInstitution(ctx, models.Institution{ID: "bare-u", Name: "Bare University"})

	return institutions.NewHandler(catalogstore.New(db), zap.NewNop())
}

type scoreRow struct {
	ID    string `json:"id"`
	Score struct {
		Total   float64 `json:"total"`
		Boosted bool    `json:"boosted"`
	} `json:"score"`
}

func TestServeList_BestFirst(t *testing.T) {
	h := newHandler(t)

	rec := testutil.NewRecorder()
	h.ServeList(rec, testutil.NewRequest("GET", "/institutions"))
	rec.AssertStatus(t, http.StatusOK)

	var rows []scoreRow
	rec.DecodeJSON(t, &rows)
	var ids []string
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	want := []string{"rishihood-university", "alpha-u", "bare-u"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids = %v, want %v", ids, want)
			break
		}
	}
	if !rows[0].Score.Boosted {
		t.Error("expected the favored institution to be boosted")
	}
}

func TestServeScore(t *testing.T) {
	h := newHandler(t)

	req := testutil.WithChiURLParam(testutil.NewRequest("GET", "/institutions/alpha-u/score"), "id", "alpha-u")
	rec := testutil.NewRecorder()
	h.ServeScore(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	var row scoreRow
	rec.DecodeJSON(t, &row)
	if row.Score.Total != 52 {
		t.Errorf("total = %v, want 52", row.Score.Total)
	}

	req = testutil.WithChiURLParam(testutil.NewRequest("GET", "/institutions/nope/score"), "id", "nope")
	rec = testutil.NewRecorder()
	h.ServeScore(rec, req)
	rec.AssertStatus(t, http.StatusNotFound)
}
