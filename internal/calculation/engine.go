package calculation

import (
	"github.com/bdtaxlab/bdtax/internal/domain"
	"github.com/shopspring/decimal"
)

// Minimum tax floors by zone, applied only when total earnings exceed the
// general exemption.
var minTaxByZone = map[domain.MinTaxZone]decimal.Decimal{
	domain.ZoneCity:     decimal.NewFromInt(5000),
	domain.ZoneDistrict: decimal.NewFromInt(3000),
	domain.ZoneOther:    decimal.NewFromInt(1000),
	domain.ZoneNew:      decimal.NewFromInt(1000),
}

// rebateCapFraction caps the rebate-eligible investment at a fraction of
// total earnings.
var rebateCapFraction = decimal.NewFromFloat(0.25)

var hundred = decimal.NewFromInt(100)

// MinimumTaxForZone returns the liability floor for a zone. Unrecognized
// zones take the district floor.
func MinimumTaxForZone(zone domain.MinTaxZone) decimal.Decimal {
	if m, ok := minTaxByZone[zone]; ok {
		return m
	}
	return minTaxByZone[domain.DefaultMinTaxZone]
}

// Engine computes individual income tax from a normalized input. It holds
// no state and performs no I/O, so a single Engine is safe to share across
// any number of concurrent callers.
type Engine struct{}

// NewEngine creates a tax engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Calculate runs the full pipeline: total earnings, general exemption,
// sequential slab consumption, rest-rate band, investment rebate, wealth
// surcharge, minimum-tax floor, and AIT netting, in that exact order.
// It is total over its domain and never returns an error.
func (e *Engine) Calculate(in domain.TaxInput) *domain.TaxResult {
	total := in.TotalEarnings()

	// The exemption is subtracted before any slab logic; it is not a 0% slab.
	base := total.Sub(in.GeneralExemption)
	if base.LessThan(decimal.Zero) {
		base = decimal.Zero
	}

	table := SlabTableForYear(in.Year)

	// Walk the named brackets in order, consuming the base. Brackets past
	// the point the base runs out produce no band entries at all.
	var bands []domain.BandResult
	taxBeforeRebate := decimal.Zero
	remaining := base
	for _, bracket := range table {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		portion := decimal.Min(remaining, bracket.Amount)
		tax := portion.Mul(bracket.RatePercent).Div(hundred)
		bands = append(bands, domain.BandResult{
			Portion:     portion,
			RatePercent: bracket.RatePercent,
			Tax:         tax,
		})
		taxBeforeRebate = taxBeforeRebate.Add(tax)
		remaining = remaining.Sub(portion)
	}

	// Anything above the last named bracket is taxed at the rest rate.
	if remaining.GreaterThan(decimal.Zero) {
		tax := remaining.Mul(RestRatePercent).Div(hundred)
		bands = append(bands, domain.BandResult{
			Portion:     remaining,
			RatePercent: RestRatePercent,
			Tax:         tax,
		})
		taxBeforeRebate = taxBeforeRebate.Add(tax)
	}

	// Rebate: investment is capped at a quarter of total earnings, and the
	// rebate itself can never exceed the pre-rebate tax.
	rebateCapBase := total.Mul(rebateCapFraction)
	eligibleCapped := decimal.Min(in.EligibleInvestment, rebateCapBase)
	rebate := decimal.Min(taxBeforeRebate, eligibleCapped.Mul(in.RebateRatePercent).Div(hundred))
	postRebateTax := taxBeforeRebate.Sub(rebate)

	// Wealth surcharge applies to the post-rebate liability.
	surchargeRate := SurchargeRateFor(in.NetWorth)
	surcharge := postRebateTax.Mul(surchargeRate).Div(hundred)
	gross := postRebateTax.Add(surcharge)

	// The zone floor only applies once there is income above the tax-free
	// threshold.
	if total.GreaterThan(in.GeneralExemption) {
		if floor := MinimumTaxForZone(in.MinTaxZone); gross.LessThan(floor) {
			gross = floor
		}
	}

	netPayable := gross.Sub(in.AITPaid)
	if netPayable.LessThan(decimal.Zero) {
		netPayable = decimal.Zero
	}

	slabBase := base.Sub(table.ZeroRateLimit())
	if slabBase.LessThan(decimal.Zero) {
		slabBase = decimal.Zero
	}

	result := domain.TaxResult{
		Inputs: in,
		Summary: domain.Summary{
			TotalEarnings:            total,
			GeneralExemption:         in.GeneralExemption,
			NetTaxableAfterGeneral:   base,
			ZeroRateLimit:            table.ZeroRateLimit(),
			SlabTaxableBase:          slabBase,
			TaxBeforeRebate:          taxBeforeRebate,
			EligibleInvestmentCapped: eligibleCapped,
			CalculatedTaxRebate:      rebate,
			SurchargeRate:            surchargeRate,
			SurchargeAmount:          surcharge,
			GrossTaxPayable:          gross,
			AITPaid:                  in.AITPaid,
			NetTaxPayable:            netPayable,
		},
		Bands: bands,
	}.Rounded()

	return &result
}
