package domain

import (
	"github.com/shopspring/decimal"
)

// AssessmentYear identifies the tax year whose slab table applies.
type AssessmentYear string

const (
	AssessmentYear2025 AssessmentYear = "2025-26"
	AssessmentYear2026 AssessmentYear = "2026-27"
	AssessmentYear2027 AssessmentYear = "2027-28"
)

// DefaultAssessmentYear is used when the year token is missing or unrecognized.
const DefaultAssessmentYear = AssessmentYear2025

// MinTaxZone selects the geographic minimum-tax floor.
type MinTaxZone string

const (
	ZoneCity     MinTaxZone = "city"
	ZoneDistrict MinTaxZone = "district"
	ZoneOther    MinTaxZone = "other"
	ZoneNew      MinTaxZone = "new"
)

// DefaultMinTaxZone is used when the zone token is missing or unrecognized.
const DefaultMinTaxZone = ZoneDistrict

// Defaults applied during normalization when a field is absent.
var (
	DefaultGeneralExemption  = decimal.NewFromInt(200000)
	DefaultRebateRatePercent = decimal.NewFromInt(15)
)

// TaxRequest is the raw, wire-level calculation request. All fields are
// optional; pointer fields distinguish "absent" from an explicit zero so
// their non-zero defaults only apply when the caller said nothing.
type TaxRequest struct {
	Year               string           `json:"year" yaml:"year"`
	BasicSalary        decimal.Decimal  `json:"basic_salary" yaml:"basic_salary"`
	HRA                decimal.Decimal  `json:"hra" yaml:"hra"`
	Conveyance         decimal.Decimal  `json:"conveyance" yaml:"conveyance"`
	Medical            decimal.Decimal  `json:"medical" yaml:"medical"`
	Bonus              decimal.Decimal  `json:"bonus" yaml:"bonus"`
	Overtime           decimal.Decimal  `json:"overtime" yaml:"overtime"`
	OtherIncome        decimal.Decimal  `json:"other_income" yaml:"other_income"`
	AITPaid            decimal.Decimal  `json:"ait_paid" yaml:"ait_paid"`
	EligibleInvestment decimal.Decimal  `json:"eligible_investment" yaml:"eligible_investment"`
	NetWorth           decimal.Decimal  `json:"net_worth" yaml:"net_worth"`
	GeneralExemption   *decimal.Decimal `json:"general_exemption,omitempty" yaml:"general_exemption,omitempty"`
	RebateRate         *decimal.Decimal `json:"rebate_rate,omitempty" yaml:"rebate_rate,omitempty"`
	MinTaxZone         string           `json:"min_tax_zone" yaml:"min_tax_zone"`
}

// TaxInput is a fully-normalized calculation input: defaults applied,
// negative amounts clamped to zero, enum tokens canonicalized. The engine
// only ever sees this type.
type TaxInput struct {
	Year               AssessmentYear  `json:"year" yaml:"year"`
	BasicSalary        decimal.Decimal `json:"basic_salary" yaml:"basic_salary"`
	HRA                decimal.Decimal `json:"hra" yaml:"hra"`
	Conveyance         decimal.Decimal `json:"conveyance" yaml:"conveyance"`
	Medical            decimal.Decimal `json:"medical" yaml:"medical"`
	Bonus              decimal.Decimal `json:"bonus" yaml:"bonus"`
	Overtime           decimal.Decimal `json:"overtime" yaml:"overtime"`
	OtherIncome        decimal.Decimal `json:"other_income" yaml:"other_income"`
	AITPaid            decimal.Decimal `json:"ait_paid" yaml:"ait_paid"`
	EligibleInvestment decimal.Decimal `json:"eligible_investment" yaml:"eligible_investment"`
	NetWorth           decimal.Decimal `json:"net_worth" yaml:"net_worth"`
	GeneralExemption   decimal.Decimal `json:"general_exemption" yaml:"general_exemption"`
	RebateRatePercent  decimal.Decimal `json:"rebate_rate" yaml:"rebate_rate"`
	MinTaxZone         MinTaxZone      `json:"min_tax_zone" yaml:"min_tax_zone"`
}

// Normalize resolves a raw request into a TaxInput the engine accepts.
// The policy is "never fail, always produce a number": missing fields take
// their documented defaults, negatives clamp to zero, and unknown enum
// tokens fall back to their defaults rather than raising an error.
func (r TaxRequest) Normalize() TaxInput {
	in := TaxInput{
		Year:               NormalizeYear(r.Year),
		BasicSalary:        clampNonNegative(r.BasicSalary),
		HRA:                clampNonNegative(r.HRA),
		Conveyance:         clampNonNegative(r.Conveyance),
		Medical:            clampNonNegative(r.Medical),
		Bonus:              clampNonNegative(r.Bonus),
		Overtime:           clampNonNegative(r.Overtime),
		OtherIncome:        clampNonNegative(r.OtherIncome),
		AITPaid:            clampNonNegative(r.AITPaid),
		EligibleInvestment: clampNonNegative(r.EligibleInvestment),
		NetWorth:           clampNonNegative(r.NetWorth),
		GeneralExemption:   DefaultGeneralExemption,
		RebateRatePercent:  DefaultRebateRatePercent,
		MinTaxZone:         NormalizeZone(r.MinTaxZone),
	}
	if r.GeneralExemption != nil {
		in.GeneralExemption = clampNonNegative(*r.GeneralExemption)
	}
	if r.RebateRate != nil {
		in.RebateRatePercent = clampNonNegative(*r.RebateRate)
	}
	return in
}

// NormalizeYear canonicalizes an assessment-year token, falling back to the
// default year for anything unrecognized.
func NormalizeYear(token string) AssessmentYear {
	switch AssessmentYear(token) {
	case AssessmentYear2025, AssessmentYear2026, AssessmentYear2027:
		return AssessmentYear(token)
	default:
		return DefaultAssessmentYear
	}
}

// NormalizeZone canonicalizes a minimum-tax zone token, falling back to the
// default zone for anything unrecognized.
func NormalizeZone(token string) MinTaxZone {
	switch MinTaxZone(token) {
	case ZoneCity, ZoneDistrict, ZoneOther, ZoneNew:
		return MinTaxZone(token)
	default:
		return DefaultMinTaxZone
	}
}

// TotalEarnings sums every income component of the input.
func (in TaxInput) TotalEarnings() decimal.Decimal {
	total := in.BasicSalary.
		Add(in.HRA).
		Add(in.Conveyance).
		Add(in.Medical).
		Add(in.Bonus).
		Add(in.Overtime).
		Add(in.OtherIncome)
	if total.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return total
}

func clampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return d
}
