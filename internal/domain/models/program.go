// internal/domain/models/program.go
package models

// Program is one academic offering of an institution, as loaded from the
// program catalog. Engine code treats it as a read-only snapshot.
type Program struct {
	ID                  string    `bson:"_id" json:"id"`
	Name                string    `bson:"name" json:"name"`
	NameCI              string    `bson:"name_ci" json:"-"` // ← always stored
	Degree              string    `bson:"degree" json:"degree"`
	Field               string    `bson:"field" json:"field"`
	Specialization      string    `bson:"specialization,omitempty" json:"specialization,omitempty"`
	Duration            int       `bson:"duration" json:"duration"`
	AnnualFees          []float64 `bson:"annual_fees" json:"annualFees"`
	ScholarshipCategory string    `bson:"scholarship_category,omitempty" json:"scholarshipCategory,omitempty"`
	InstitutionID       string    `bson:"institution_id" json:"institutionId"`
}

// FeeForYear returns the tuition for the given 1-based year, or 0 when the
// fee schedule is shorter than the program.
func (p Program) FeeForYear(year int) float64 {
	if year < 1 || year > len(p.AnnualFees) {
		return 0
	}
	return p.AnnualFees[year-1]
}
