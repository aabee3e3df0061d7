// internal/domain/models/institution.go
package models

// Institution is a college or university together with the profile data
// used for quality scoring and the rules used for cost calculation.
type Institution struct {
	ID             string         `bson:"_id" json:"id"`
	Name           string         `bson:"name" json:"name"`
	NameCI         string         `bson:"name_ci" json:"-"` // ← always stored
	Profile        *Profile       `bson:"profile,omitempty" json:"profile,omitempty"`
	Discount       DiscountRules  `bson:"discount" json:"discount"`
	AdditionalFees AdditionalFees `bson:"additional_fees" json:"additionalFees"`
}

// Profile groups the ranking and facility information of an institution.
type Profile struct {
	Rankings   Rankings    `bson:"rankings" json:"rankings"`
	Facilities *Facilities `bson:"facilities,omitempty" json:"facilities,omitempty"`
}

// Rankings holds the national ranking and accreditation grade.
// NIRF is either a single position ("42") or a range ("101-150").
type Rankings struct {
	NIRF string    `bson:"nirf,omitempty" json:"nirf,omitempty"`
	NAAC NAACGrade `bson:"naac,omitempty" json:"naac,omitempty"`
}

// NAACGrade is an accreditation grade. Grades are ordered best to worst.
type NAACGrade string

const (
	NAACAPlusPlus NAACGrade = "A++"
	NAACAPlus     NAACGrade = "A+"
	NAACA         NAACGrade = "A"
	NAACBPlusPlus NAACGrade = "B++"
	NAACBPlus     NAACGrade = "B+"
	NAACB         NAACGrade = "B"
	NAACC         NAACGrade = "C"
	NAACD         NAACGrade = "D"
)

// Facilities is a set of optional groups; a nil group means the catalog
// has no information for it.
type Facilities struct {
	Campus        *Campus        `bson:"campus,omitempty" json:"campus,omitempty"`
	Academic      *Academic      `bson:"academic,omitempty" json:"academic,omitempty"`
	Accommodation *Accommodation `bson:"accommodation,omitempty" json:"accommodation,omitempty"`
	Healthcare    *Healthcare    `bson:"healthcare,omitempty" json:"healthcare,omitempty"`
	Sports        *Sports        `bson:"sports,omitempty" json:"sports,omitempty"`
	Technology    *Technology    `bson:"technology,omitempty" json:"technology,omitempty"`
	Placement     *Placement     `bson:"placement,omitempty" json:"placement,omitempty"`
	International *International `bson:"international,omitempty" json:"international,omitempty"`
}

type Campus struct {
	Area     string `bson:"area,omitempty" json:"area,omitempty"`
	Location string `bson:"location,omitempty" json:"location,omitempty"`
}

type Academic struct {
	Labs                 bool `bson:"labs" json:"labs"`
	Library              bool `bson:"library" json:"library"`
	IndustryPartnerships bool `bson:"industry_partnerships" json:"industryPartnerships"`
}

type Accommodation struct {
	Hostel   bool   `bson:"hostel" json:"hostel"`
	Capacity string `bson:"capacity,omitempty" json:"capacity,omitempty"`
}

type Healthcare struct {
	Hospital bool `bson:"hospital" json:"hospital"`
}

type Sports struct {
	Facilities []string `bson:"facilities,omitempty" json:"facilities,omitempty"`
}

type Technology struct {
	WiFi            bool `bson:"wifi" json:"wifi"`
	SmartClassrooms bool `bson:"smart_classrooms" json:"smartClassrooms"`
}

// Placement values are kept as catalog strings ("92%", "500+") and parsed
// by the scoring engine.
type Placement struct {
	Rate                        string   `bson:"rate,omitempty" json:"rate,omitempty"`
	Recruiters                  string   `bson:"recruiters,omitempty" json:"recruiters,omitempty"`
	HighestInternationalPackage bool     `bson:"highest_international_package" json:"highestInternationalPackage"`
	HighestDomesticPackage      bool     `bson:"highest_domestic_package" json:"highestDomesticPackage"`
	TopRecruiters               []string `bson:"top_recruiters,omitempty" json:"topRecruiters,omitempty"`
}

type International struct {
	Students    string   `bson:"students,omitempty" json:"students,omitempty"`
	Support     []string `bson:"support,omitempty" json:"support,omitempty"`
	Achievement bool     `bson:"achievement" json:"achievement"`
}

// AdditionalFees are charged on top of tuition. OneTime is due in year 1
// only; Recurring fees are keyed by name.
type AdditionalFees struct {
	OneTime   float64                 `bson:"one_time" json:"oneTime"`
	Recurring map[string]RecurringFee `bson:"recurring,omitempty" json:"recurring,omitempty"`
}

type RecurringFee struct {
	Amount    float64 `bson:"amount" json:"amount"`
	Frequency string  `bson:"frequency" json:"frequency"`
}
