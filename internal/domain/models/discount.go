// internal/domain/models/discount.go
package models

// DiscountKind tags which payload of DiscountRules is populated.
type DiscountKind string

const (
	DiscountNone   DiscountKind = ""
	DiscountFlat   DiscountKind = "flat"
	DiscountTiered DiscountKind = "tiered"
	DiscountDegree DiscountKind = "degree"
)

// DiscountRules describes how an institution discounts tuition. Exactly one
// payload matching Kind is expected to be set; a mismatch resolves to no
// discount.
type DiscountRules struct {
	Kind   DiscountKind    `bson:"kind,omitempty" json:"kind,omitempty"`
	Flat   *FlatDiscount   `bson:"flat,omitempty" json:"flat,omitempty"`
	Tiered *TieredDiscount `bson:"tiered,omitempty" json:"tiered,omitempty"`
	Degree *DegreeDiscount `bson:"degree,omitempty" json:"degree,omitempty"`
}

type FlatDiscount struct {
	Percent float64 `bson:"percent" json:"percent"`
}

// TieredDiscount lists scholarship categories in catalog order. The first
// category is the canonical one used when a program names none.
type TieredDiscount struct {
	Categories []ScholarshipCategory `bson:"categories" json:"categories"`
}

type ScholarshipCategory struct {
	Key   string         `bson:"key" json:"key"`
	Tiers []DiscountTier `bson:"tiers" json:"tiers"`
}

// DiscountTier grants Percent to applicants whose GPA is in [MinGPA, MaxGPA].
type DiscountTier struct {
	Name    string  `bson:"name" json:"name"`
	MinGPA  float64 `bson:"min_gpa" json:"minGpa"`
	MaxGPA  float64 `bson:"max_gpa" json:"maxGpa"`
	Percent float64 `bson:"percent" json:"percent"`
}

// DegreeDiscount applies Matched when the program's degree or name matches
// Pattern (a regular expression), Other otherwise.
type DegreeDiscount struct {
	Pattern string        `bson:"pattern,omitempty" json:"pattern,omitempty"`
	Matched *FlatDiscount `bson:"matched,omitempty" json:"matched,omitempty"`
	Other   *FlatDiscount `bson:"other,omitempty" json:"other,omitempty"`
}

// Category returns the tiers for key, falling back to the first category
// when key is empty. ok is false when nothing resolves.
func (t *TieredDiscount) Category(key string) (ScholarshipCategory, bool) {
	if t == nil || len(t.Categories) == 0 {
		return ScholarshipCategory{}, false
	}
	if key == "" {
		return t.Categories[0], true
	}
	for _, c := range t.Categories {
		if c.Key == key {
			return c, true
		}
	}
	return ScholarshipCategory{}, false
}
