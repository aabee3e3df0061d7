package costcalc

import (
	"sort"
	"strings"

	"github.com/dalemusser/coursecompare/internal/domain/models"
)

// Breakdown is the cost of attendance for one program at one institution.
type Breakdown struct {
	BaseTotal       float64 `json:"baseTotal"`
	DiscountPercent float64 `json:"discountPercent"`
	AfterDiscount   float64 `json:"afterDiscount"`
	OneTimeFees     float64 `json:"oneTimeFees"`
	RecurringFees   float64 `json:"recurringFees"`
	GrandTotal      float64 `json:"grandTotal"`
	Savings         float64 `json:"savings"`
}

// annualFrequencies are the frequency labels counted as charged once a year.
var annualFrequencies = map[string]bool{
	"annual":    true,
	"annually":  true,
	"yearly":    true,
	"per year":  true,
	"per annum": true,
}

// TotalCost prices the program using BestDiscount.
func TotalCost(p models.Program, inst *models.Institution) Breakdown {
	return TotalCostAt(p, inst, BestDiscount(p, inst))
}

// TotalCostAt prices the program at an explicit discount percentage,
// clamped to [0, 100]. Recurring fees start in year 2. A program with no
// tuition entries costs nothing.
func TotalCostAt(p models.Program, inst *models.Institution, discountPercent float64) Breakdown {
	if len(p.AnnualFees) == 0 {
		return Breakdown{}
	}
	discountPercent = clampPercent(discountPercent)

	var base float64
	for _, fee := range p.AnnualFees {
		base += fee
	}
	after := base * (1 - discountPercent/100)

	var oneTime, annual float64
	if inst != nil {
		oneTime = inst.AdditionalFees.OneTime
		annual = AnnualRecurring(inst.AdditionalFees)
	}
	recurring := annual * float64(recurringYears(p.Duration))

	return Breakdown{
		BaseTotal:       base,
		DiscountPercent: discountPercent,
		AfterDiscount:   after,
		OneTimeFees:     oneTime,
		RecurringFees:   recurring,
		GrandTotal:      after + oneTime + recurring,
		Savings:         base - after,
	}
}

// AnnualRecurring sums the fees charged every year. Names are visited in
// sorted order so the float sum does not depend on map iteration.
func AnnualRecurring(fees models.AdditionalFees) float64 {
	names := make([]string, 0, len(fees.Recurring))
	for name := range fees.Recurring {
		names = append(names, name)
	}
	sort.Strings(names)

	var sum float64
	for _, name := range names {
		f := fees.Recurring[name]
		if IsAnnual(f.Frequency) {
			sum += f.Amount
		}
	}
	return sum
}

// IsAnnual reports whether a recurring fee frequency label means yearly.
func IsAnnual(frequency string) bool {
	return annualFrequencies[strings.ToLower(strings.TrimSpace(frequency))]
}

// PerYear returns what is payable in each year of the program: discounted
// tuition, the one-time fee in year 1 and recurring fees from year 2.
func PerYear(p models.Program, inst *models.Institution) []float64 {
	b := TotalCost(p, inst)
	if len(p.AnnualFees) == 0 {
		return nil
	}

	years := p.Duration
	if len(p.AnnualFees) > years {
		years = len(p.AnnualFees)
	}
	var annual float64
	if inst != nil {
		annual = AnnualRecurring(inst.AdditionalFees)
	}

	factor := 1 - b.DiscountPercent/100
	out := make([]float64, years)
	for y := 1; y <= years; y++ {
		amount := p.FeeForYear(y) * factor
		if y == 1 {
			amount += b.OneTimeFees
		} else if y <= p.Duration {
			amount += annual
		}
		out[y-1] = amount
	}
	return out
}

func recurringYears(duration int) int {
	if duration <= 1 {
		return 0
	}
	return duration - 1
}

func clampPercent(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
