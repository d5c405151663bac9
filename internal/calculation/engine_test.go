package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdtaxlab/bdtax/internal/domain"
)

func normalizedInput(mutate func(*domain.TaxRequest)) domain.TaxInput {
	req := domain.TaxRequest{}
	if mutate != nil {
		mutate(&req)
	}
	return req.Normalize()
}

func TestEngine_Calculate_MinimumTaxApplied(t *testing.T) {
	// 500000 basic, default exemption: base 300000 sits entirely in the 0%
	// bracket, but total exceeds the exemption so the district floor kicks in.
	engine := NewEngine()
	in := normalizedInput(func(r *domain.TaxRequest) {
		r.BasicSalary = decimal.NewFromInt(500000)
	})

	result := engine.Calculate(in)

	require.Len(t, result.Bands, 1, "Base below the zero-rate limit should produce one band")
	assert.True(t, result.Bands[0].Portion.Equal(decimal.NewFromInt(300000)), "Band portion should be the full base")
	assert.True(t, result.Bands[0].Tax.IsZero(), "Zero-rate band should carry no tax")
	assert.True(t, result.Summary.TaxBeforeRebate.IsZero(), "No slab tax expected")
	assert.True(t, result.Summary.GrossTaxPayable.Equal(decimal.NewFromInt(3000)), "District minimum should apply")
	assert.True(t, result.Summary.NetTaxPayable.Equal(decimal.NewFromInt(3000)), "Net payable should equal the floor")
}

func TestEngine_Calculate_SlabConsumption2025(t *testing.T) {
	// 1000000 basic, default exemption: base 800000 consumes 350000@0,
	// 100000@5 and 350000 of the 10% bracket.
	engine := NewEngine()
	in := normalizedInput(func(r *domain.TaxRequest) {
		r.BasicSalary = decimal.NewFromInt(1000000)
	})

	result := engine.Calculate(in)

	require.Len(t, result.Bands, 3, "800000 base should consume three brackets")
	assert.True(t, result.Bands[0].Portion.Equal(decimal.NewFromInt(350000)))
	assert.True(t, result.Bands[1].Portion.Equal(decimal.NewFromInt(100000)))
	assert.True(t, result.Bands[1].Tax.Equal(decimal.NewFromInt(5000)))
	assert.True(t, result.Bands[2].Portion.Equal(decimal.NewFromInt(350000)), "Last band is partial, not the full bracket width")
	assert.True(t, result.Bands[2].Tax.Equal(decimal.NewFromInt(35000)))
	assert.True(t, result.Summary.TaxBeforeRebate.Equal(decimal.NewFromInt(40000)))
	assert.True(t, result.Summary.NetTaxPayable.Equal(decimal.NewFromInt(40000)), "Above the floor, liability passes through")
}

func TestEngine_Calculate_YearSwitchChangesSchedule(t *testing.T) {
	engine := NewEngine()
	base := func(year string) *domain.TaxResult {
		return engine.Calculate(normalizedInput(func(r *domain.TaxRequest) {
			r.Year = year
			r.BasicSalary = decimal.NewFromInt(1000000)
		}))
	}

	r2025 := base("2025-26")
	r2026 := base("2026-27")

	assert.True(t, r2026.Summary.ZeroRateLimit.Equal(decimal.NewFromInt(375000)), "2026-27 zero-rate band is wider")
	assert.False(t, r2026.Summary.TaxBeforeRebate.Equal(r2025.Summary.TaxBeforeRebate), "Schedules must differ across years")

	// 800000 base on the 2026-27 table: 375000@0, 300000@10, 125000@15.
	require.Len(t, r2026.Bands, 3)
	assert.True(t, r2026.Bands[1].Tax.Equal(decimal.NewFromInt(30000)))
	assert.True(t, r2026.Bands[2].Portion.Equal(decimal.NewFromInt(125000)))
	assert.True(t, r2026.Summary.TaxBeforeRebate.Equal(decimal.NewFromInt(48750)))
}

func TestEngine_Calculate_RestRateAboveNamedBrackets(t *testing.T) {
	// Base of 4000000 exhausts all five 2025-26 brackets (3350000 total
	// width) leaving 650000 for the 30% rest band.
	engine := NewEngine()
	in := normalizedInput(func(r *domain.TaxRequest) {
		r.BasicSalary = decimal.NewFromInt(4200000)
	})

	result := engine.Calculate(in)

	require.Len(t, result.Bands, 6, "Five named brackets plus the rest band")
	rest := result.Bands[5]
	assert.True(t, rest.RatePercent.Equal(decimal.NewFromInt(30)))
	assert.True(t, rest.Portion.Equal(decimal.NewFromInt(650000)))
	assert.True(t, rest.Tax.Equal(decimal.NewFromInt(195000)))
}

func TestEngine_Calculate_BandPortionsSumToBase(t *testing.T) {
	engine := NewEngine()
	for _, salary := range []int64{250000, 500000, 800000, 1234567, 5000000, 25000000} {
		in := normalizedInput(func(r *domain.TaxRequest) {
			r.BasicSalary = decimal.NewFromInt(salary)
			r.Bonus = decimal.NewFromInt(75000)
		})

		result := engine.Calculate(in)

		sum := decimal.Zero
		for _, b := range result.Bands {
			sum = sum.Add(b.Portion)
		}
		assert.True(t, sum.Equal(result.Summary.NetTaxableAfterGeneral),
			"Band portions must sum to the post-exemption base for salary %d", salary)
	}
}

func TestEngine_Calculate_BelowExemptionShortCircuits(t *testing.T) {
	engine := NewEngine()
	in := normalizedInput(func(r *domain.TaxRequest) {
		r.BasicSalary = decimal.NewFromInt(150000)
		r.MinTaxZone = "city"
	})

	result := engine.Calculate(in)

	assert.Empty(t, result.Bands, "No income above the exemption means no bands")
	assert.True(t, result.Summary.TaxBeforeRebate.IsZero())
	assert.True(t, result.Summary.NetTaxPayable.IsZero(), "Minimum tax must not apply below the exemption")
}

func TestEngine_Calculate_TotalEqualToExemptionSkipsFloor(t *testing.T) {
	engine := NewEngine()
	in := normalizedInput(func(r *domain.TaxRequest) {
		r.BasicSalary = decimal.NewFromInt(200000)
	})

	result := engine.Calculate(in)

	assert.True(t, result.Summary.NetTaxPayable.IsZero(), "The floor requires income strictly above the exemption")
}

func TestEngine_Calculate_RebateCappedByInvestmentFraction(t *testing.T) {
	// Total 1000000: the rebate cap base is 250000, below the 400000
	// claimed investment.
	engine := NewEngine()
	in := normalizedInput(func(r *domain.TaxRequest) {
		r.BasicSalary = decimal.NewFromInt(1000000)
		r.EligibleInvestment = decimal.NewFromInt(400000)
	})

	result := engine.Calculate(in)

	assert.True(t, result.Summary.EligibleInvestmentCapped.Equal(decimal.NewFromInt(250000)))
	// 250000 at the default 15% rate.
	assert.True(t, result.Summary.CalculatedTaxRebate.Equal(decimal.NewFromInt(37500)))
	assert.True(t, result.Summary.NetTaxPayable.Equal(decimal.NewFromInt(3000)),
		"Post-rebate liability of 2500 falls below the district floor")
}

func TestEngine_Calculate_RebateNeverExceedsTax(t *testing.T) {
	engine := NewEngine()
	in := normalizedInput(func(r *domain.TaxRequest) {
		r.BasicSalary = decimal.NewFromInt(600000)
		r.EligibleInvestment = decimal.NewFromInt(150000)
		rate := decimal.NewFromInt(100)
		r.RebateRate = &rate
	})

	result := engine.Calculate(in)

	assert.True(t, result.Summary.CalculatedTaxRebate.Equal(result.Summary.TaxBeforeRebate),
		"Rebate is clamped to the pre-rebate tax")
	assert.True(t, result.Summary.GrossTaxPayable.GreaterThanOrEqual(decimal.Zero))
}

func TestEngine_Calculate_SurchargeOnPostRebateTax(t *testing.T) {
	engine := NewEngine()
	in := normalizedInput(func(r *domain.TaxRequest) {
		r.BasicSalary = decimal.NewFromInt(1000000)
		r.NetWorth = decimal.NewFromInt(150000000)
	})

	result := engine.Calculate(in)

	assert.True(t, result.Summary.SurchargeRate.Equal(decimal.NewFromInt(20)))
	assert.True(t, result.Summary.SurchargeAmount.Equal(decimal.NewFromInt(8000)), "20 percent of the 40000 post-rebate tax")
	assert.True(t, result.Summary.GrossTaxPayable.Equal(decimal.NewFromInt(48000)))
}

func TestEngine_Calculate_AITNettingNeverGoesNegative(t *testing.T) {
	engine := NewEngine()
	in := normalizedInput(func(r *domain.TaxRequest) {
		r.BasicSalary = decimal.NewFromInt(1000000)
		r.AITPaid = decimal.NewFromInt(100000)
	})

	result := engine.Calculate(in)

	assert.True(t, result.Summary.GrossTaxPayable.Equal(decimal.NewFromInt(40000)))
	assert.True(t, result.Summary.NetTaxPayable.IsZero(), "Excess AIT produces zero payable, not a refund")
}

func TestEngine_Calculate_ZoneFloors(t *testing.T) {
	engine := NewEngine()
	cases := []struct {
		zone string
		want int64
	}{
		{"city", 5000},
		{"district", 3000},
		{"other", 1000},
		{"new", 1000},
		{"metaverse", 3000}, // unknown zone falls back to district
	}
	for _, tc := range cases {
		in := normalizedInput(func(r *domain.TaxRequest) {
			r.BasicSalary = decimal.NewFromInt(400000)
			r.MinTaxZone = tc.zone
		})

		result := engine.Calculate(in)

		assert.True(t, result.Summary.NetTaxPayable.Equal(decimal.NewFromInt(tc.want)),
			"Zone %q should floor at %d", tc.zone, tc.want)
	}
}

func TestEngine_Calculate_Idempotent(t *testing.T) {
	engine := NewEngine()
	in := normalizedInput(func(r *domain.TaxRequest) {
		r.BasicSalary = decimal.NewFromInt(2345678)
		r.HRA = decimal.NewFromInt(480000)
		r.EligibleInvestment = decimal.NewFromInt(200000)
		r.NetWorth = decimal.NewFromInt(60000000)
		r.AITPaid = decimal.NewFromInt(15000)
	})

	first := engine.Calculate(in)
	second := engine.Calculate(in)

	assert.Equal(t, first, second, "The pipeline is pure; identical input must yield identical output")
}

func TestEngine_Calculate_NonNegativeOutputs(t *testing.T) {
	engine := NewEngine()
	inputs := []domain.TaxRequest{
		{},
		{BasicSalary: decimal.NewFromInt(1)},
		{BasicSalary: decimal.NewFromInt(99999999), NetWorth: decimal.NewFromInt(999999999)},
		{OtherIncome: decimal.NewFromInt(300000), AITPaid: decimal.NewFromInt(500000)},
	}
	for _, req := range inputs {
		result := engine.Calculate(req.Normalize())

		s := result.Summary
		for name, v := range map[string]decimal.Decimal{
			"total_earnings":    s.TotalEarnings,
			"tax_before_rebate": s.TaxBeforeRebate,
			"rebate":            s.CalculatedTaxRebate,
			"surcharge":         s.SurchargeAmount,
			"gross":             s.GrossTaxPayable,
			"net":               s.NetTaxPayable,
		} {
			assert.True(t, v.GreaterThanOrEqual(decimal.Zero), "%s must be non-negative", name)
		}
	}
}

func TestMinimumTaxForZone_Fallback(t *testing.T) {
	assert.True(t, MinimumTaxForZone("nowhere").Equal(decimal.NewFromInt(3000)), "Unknown zone takes the district floor")
}
