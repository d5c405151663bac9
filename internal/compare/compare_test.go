package compare

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdtaxlab/bdtax/internal/calculation"
	"github.com/bdtaxlab/bdtax/internal/domain"
)

func compareInput(t *testing.T) domain.TaxInput {
	t.Helper()
	return domain.TaxRequest{
		Year:        "2025-26",
		BasicSalary: decimal.NewFromInt(1000000),
	}.Normalize()
}

func TestCompareEngine_Compare(t *testing.T) {
	engine := NewCompareEngine(calculation.NewEngine())
	set := engine.Compare(compareInput(t))

	require.NotNil(t, set.BaseResult)
	assert.Equal(t, domain.AssessmentYear2025, set.BaseYear)
	require.Len(t, set.AlternativeResults, 2, "The two other supported years become alternatives")

	assert.True(t, set.BaseResult.NetTaxPayable.Equal(decimal.NewFromInt(40000)))
	// 2026-27 and 2027-28 share a schedule: 48750 each on this income.
	for _, alt := range set.AlternativeResults {
		assert.True(t, alt.NetTaxPayable.Equal(decimal.NewFromInt(48750)), "Year %s", alt.Year)
		assert.True(t, alt.DiffFromBase.Equal(decimal.NewFromInt(8750)))
	}
}

func TestCompareEngine_EffectiveRate(t *testing.T) {
	engine := NewCompareEngine(calculation.NewEngine())
	set := engine.Compare(compareInput(t))

	// 40000 on 1000000 of earnings.
	assert.True(t, set.BaseResult.EffectiveRate.Equal(decimal.NewFromInt(4)))
}

func TestComparisonSet_CheapestYear(t *testing.T) {
	engine := NewCompareEngine(calculation.NewEngine())
	set := engine.Compare(compareInput(t))

	assert.Equal(t, domain.AssessmentYear2025, set.CheapestYear())
}

func TestCompareEngine_ZeroIncome(t *testing.T) {
	engine := NewCompareEngine(calculation.NewEngine())
	set := engine.Compare(domain.TaxRequest{}.Normalize())

	assert.True(t, set.BaseResult.NetTaxPayable.IsZero())
	for _, alt := range set.AlternativeResults {
		assert.True(t, alt.PctFromBase.IsZero(), "No percentage delta against a zero base")
	}
}

func TestTableFormatter_Format(t *testing.T) {
	engine := NewCompareEngine(calculation.NewEngine())
	set := engine.Compare(compareInput(t))

	text := (&TableFormatter{}).Format(set)

	assert.Contains(t, text, "ASSESSMENT YEAR COMPARISON")
	assert.Contains(t, text, "2025-26")
	assert.Contains(t, text, "+8750.00")
	assert.Contains(t, text, "Lowest liability: 2025-26")
}

func TestJSONFormatter_Format(t *testing.T) {
	engine := NewCompareEngine(calculation.NewEngine())
	set := engine.Compare(compareInput(t))

	out, err := (&JSONFormatter{Pretty: true}).Format(set)

	require.NoError(t, err)
	var decoded ComparisonSet
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, set.BaseYear, decoded.BaseYear)
}

func TestCSVFormatter_Format(t *testing.T) {
	engine := NewCompareEngine(calculation.NewEngine())
	set := engine.Compare(compareInput(t))

	out, err := (&CSVFormatter{}).Format(set)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4, "Header plus one row per year")
	assert.Contains(t, lines[1], "yes")
}
