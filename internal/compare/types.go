package compare

import (
	"github.com/shopspring/decimal"

	"github.com/bdtaxlab/bdtax/internal/domain"
)

// YearResult holds one assessment year's liability for the compared income,
// plus its delta against the base year.
type YearResult struct {
	Year   domain.AssessmentYear `json:"year"`
	Result *domain.TaxResult     `json:"result"`

	NetTaxPayable   decimal.Decimal `json:"netTaxPayable"`
	TaxBeforeRebate decimal.Decimal `json:"taxBeforeRebate"`
	EffectiveRate   decimal.Decimal `json:"effectiveRate"` // percent of total earnings

	DiffFromBase decimal.Decimal `json:"diffFromBase"`
	PctFromBase  decimal.Decimal `json:"pctFromBase"`
}

// ComparisonSet compares one income profile across every supported
// assessment year. The base year is the input's own year.
type ComparisonSet struct {
	BaseYear           domain.AssessmentYear `json:"baseYear"`
	BaseResult         *YearResult           `json:"baseResult"`
	AlternativeResults []YearResult          `json:"alternativeResults"`
}

// CheapestYear returns the assessment year with the lowest net payable.
func (cs *ComparisonSet) CheapestYear() domain.AssessmentYear {
	best := cs.BaseResult.Year
	min := cs.BaseResult.NetTaxPayable
	for _, alt := range cs.AlternativeResults {
		if alt.NetTaxPayable.LessThan(min) {
			min = alt.NetTaxPayable
			best = alt.Year
		}
	}
	return best
}
