package testutil

import (
	"context"
	"net/http"
	"testing"

	"github.com/dalemusser/coursecompare/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateInstitution stores inst as-is, filling NameCI.
func (f *Fixtures) CreateInstitution(ctx context.Context, inst models.Institution) models.Institution {
	f.t.Helper()
	inst.NameCI = text.Fold(inst.Name)
	if _, err := f.db.Collection("institutions").InsertOne(ctx, inst); err != nil {
		f.t.Fatalf("failed to create test institution: %v", err)
	}
	return inst
}

// CreateProgram stores p as-is, filling NameCI.
func (f *Fixtures) CreateProgram(ctx context.Context, p models.Program) models.Program {
	f.t.Helper()
	p.NameCI = text.Fold(p.Name)
	if _, err := f.db.Collection("programs").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test program: %v", err)
	}
	return p
}

// SampleInstitution returns a fully populated institution with a flat 20%
// discount, 10000 one-time fees and a 12000 annual hostel fee.
func SampleInstitution(id, name string) models.Institution {
	return models.Institution{
		ID:   id,
		Name: name,
		Profile: &models.Profile{
			Rankings: models.Rankings{NIRF: "101-150", NAAC: models.NAACAPlus},
			Facilities: &models.Facilities{
				Campus:   &models.Campus{Area: "100 acres"},
				Academic: &models.Academic{Labs: true, Library: true},
				Placement: &models.Placement{
					Rate:       "85%",
					Recruiters: "300+",
				},
			},
		},
		Discount: models.DiscountRules{
			Kind: models.DiscountFlat,
			Flat: &models.FlatDiscount{Percent: 20},
		},
		AdditionalFees: models.AdditionalFees{
			OneTime: 10000,
			Recurring: map[string]models.RecurringFee{
				"hostel": {Amount: 12000, Frequency: "annual"},
			},
		},
	}
}

// SampleProgram returns a four-year B.Tech CSE program owned by instID.
func SampleProgram(id, instID string) models.Program {
	return models.Program{
		ID:             id,
		Name:           "B.Tech Computer Science and Engineering",
		Degree:         "B.Tech",
		Field:          "Engineering",
		Specialization: "Computer Science",
		Duration:       4,
		AnnualFees:     []float64{200000, 200000, 200000, 200000},
		InstitutionID:  instID,
	}
}
