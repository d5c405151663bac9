package compare

import (
	"github.com/shopspring/decimal"

	"github.com/bdtaxlab/bdtax/internal/calculation"
	"github.com/bdtaxlab/bdtax/internal/domain"
)

var comparisonYears = []domain.AssessmentYear{
	domain.AssessmentYear2025,
	domain.AssessmentYear2026,
	domain.AssessmentYear2027,
}

// CompareEngine runs one income profile through every assessment year's
// slab schedule.
type CompareEngine struct {
	CalcEngine *calculation.Engine
}

// NewCompareEngine creates a comparison engine.
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	return &CompareEngine{CalcEngine: calcEngine}
}

// Compare calculates the input under each supported year. The input's own
// year acts as the base; the remaining years become alternatives with
// deltas against it.
func (ce *CompareEngine) Compare(input domain.TaxInput) *ComparisonSet {
	base := ce.yearResult(input, input.Year)

	set := &ComparisonSet{
		BaseYear:   input.Year,
		BaseResult: base,
	}
	for _, year := range comparisonYears {
		if year == input.Year {
			continue
		}
		alt := ce.yearResult(input, year)
		alt.DiffFromBase = alt.NetTaxPayable.Sub(base.NetTaxPayable)
		if !base.NetTaxPayable.IsZero() {
			alt.PctFromBase = alt.DiffFromBase.Div(base.NetTaxPayable).Mul(decimal.NewFromInt(100)).Round(2)
		}
		set.AlternativeResults = append(set.AlternativeResults, *alt)
	}
	return set
}

func (ce *CompareEngine) yearResult(input domain.TaxInput, year domain.AssessmentYear) *YearResult {
	input.Year = year
	result := ce.CalcEngine.Calculate(input)

	yr := &YearResult{
		Year:            year,
		Result:          result,
		NetTaxPayable:   result.Summary.NetTaxPayable,
		TaxBeforeRebate: result.Summary.TaxBeforeRebate,
	}
	if !result.Summary.TotalEarnings.IsZero() {
		yr.EffectiveRate = result.Summary.NetTaxPayable.
			Div(result.Summary.TotalEarnings).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}
	return yr
}
