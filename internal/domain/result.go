package domain

import (
	"github.com/shopspring/decimal"
)

// BandResult records one slab bracket actually consumed by the calculation:
// the portion of the taxable base that fell in the bracket, the marginal
// rate applied, and the tax it produced.
type BandResult struct {
	Portion     decimal.Decimal `json:"portion" yaml:"portion"`
	RatePercent decimal.Decimal `json:"rate" yaml:"rate"`
	Tax         decimal.Decimal `json:"tax" yaml:"tax"`
}

// Summary holds the roll-up figures of a single tax calculation.
type Summary struct {
	TotalEarnings            decimal.Decimal `json:"total_earnings" yaml:"total_earnings"`
	GeneralExemption         decimal.Decimal `json:"general_exemption" yaml:"general_exemption"`
	NetTaxableAfterGeneral   decimal.Decimal `json:"net_taxable_after_general" yaml:"net_taxable_after_general"`
	ZeroRateLimit            decimal.Decimal `json:"zero_rate_limit" yaml:"zero_rate_limit"`
	SlabTaxableBase          decimal.Decimal `json:"slab_taxable_base" yaml:"slab_taxable_base"`
	TaxBeforeRebate          decimal.Decimal `json:"tax_before_rebate" yaml:"tax_before_rebate"`
	EligibleInvestmentCapped decimal.Decimal `json:"eligible_investment_capped" yaml:"eligible_investment_capped"`
	CalculatedTaxRebate      decimal.Decimal `json:"calculated_tax_rebate" yaml:"calculated_tax_rebate"`
	SurchargeRate            decimal.Decimal `json:"surcharge_rate" yaml:"surcharge_rate"`
	SurchargeAmount          decimal.Decimal `json:"surcharge_amount" yaml:"surcharge_amount"`
	GrossTaxPayable          decimal.Decimal `json:"gross_tax_payable" yaml:"gross_tax_payable"`
	AITPaid                  decimal.Decimal `json:"ait_paid" yaml:"ait_paid"`
	NetTaxPayable            decimal.Decimal `json:"net_tax_payable" yaml:"net_tax_payable"`
}

// TaxResult is the complete output of one calculation: the normalized input
// echo, the summary figures, and the per-band breakdown in consumption order.
type TaxResult struct {
	Inputs  TaxInput     `json:"inputs" yaml:"inputs"`
	Summary Summary      `json:"summary" yaml:"summary"`
	Bands   []BandResult `json:"bands" yaml:"bands"`
}

// Rounded returns a copy with every monetary amount rounded to two decimal
// places. Rounding happens exactly once, after all arithmetic, so no
// rounding error compounds across pipeline steps. Rates are table constants
// and pass through untouched.
func (r TaxResult) Rounded() TaxResult {
	out := r
	out.Summary.TotalEarnings = round2(r.Summary.TotalEarnings)
	out.Summary.GeneralExemption = round2(r.Summary.GeneralExemption)
	out.Summary.NetTaxableAfterGeneral = round2(r.Summary.NetTaxableAfterGeneral)
	out.Summary.ZeroRateLimit = round2(r.Summary.ZeroRateLimit)
	out.Summary.SlabTaxableBase = round2(r.Summary.SlabTaxableBase)
	out.Summary.TaxBeforeRebate = round2(r.Summary.TaxBeforeRebate)
	out.Summary.EligibleInvestmentCapped = round2(r.Summary.EligibleInvestmentCapped)
	out.Summary.CalculatedTaxRebate = round2(r.Summary.CalculatedTaxRebate)
	out.Summary.SurchargeAmount = round2(r.Summary.SurchargeAmount)
	out.Summary.GrossTaxPayable = round2(r.Summary.GrossTaxPayable)
	out.Summary.AITPaid = round2(r.Summary.AITPaid)
	out.Summary.NetTaxPayable = round2(r.Summary.NetTaxPayable)

	out.Bands = make([]BandResult, len(r.Bands))
	for i, b := range r.Bands {
		out.Bands[i] = BandResult{
			Portion:     round2(b.Portion),
			RatePercent: b.RatePercent,
			Tax:         round2(b.Tax),
		}
	}
	return out
}

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
