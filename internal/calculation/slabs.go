package calculation

import (
	"github.com/bdtaxlab/bdtax/internal/domain"
	"github.com/shopspring/decimal"
)

// SlabBracket is one named slab of the progressive schedule: a bracket
// width and the marginal rate applied to income falling inside it.
type SlabBracket struct {
	Amount      decimal.Decimal
	RatePercent decimal.Decimal
}

// SlabTable is the ordered sequence of named brackets for one assessment
// year. The unbounded "rest" bracket is not part of the table; the engine
// applies RestRatePercent to whatever remains after the table is consumed.
type SlabTable []SlabBracket

// RestRatePercent taxes income above the last named bracket.
var RestRatePercent = decimal.NewFromInt(30)

// Slab schedules per assessment year. These mirror the published NBR
// schedules and are fixed at compile time; they are not configurable
// beyond the year selector.
var slabTables = map[domain.AssessmentYear]SlabTable{
	domain.AssessmentYear2025: {
		{Amount: decimal.NewFromInt(350000), RatePercent: decimal.NewFromInt(0)},
		{Amount: decimal.NewFromInt(100000), RatePercent: decimal.NewFromInt(5)},
		{Amount: decimal.NewFromInt(400000), RatePercent: decimal.NewFromInt(10)},
		{Amount: decimal.NewFromInt(500000), RatePercent: decimal.NewFromInt(15)},
		{Amount: decimal.NewFromInt(2000000), RatePercent: decimal.NewFromInt(20)},
	},
	domain.AssessmentYear2026: {
		{Amount: decimal.NewFromInt(375000), RatePercent: decimal.NewFromInt(0)},
		{Amount: decimal.NewFromInt(300000), RatePercent: decimal.NewFromInt(10)},
		{Amount: decimal.NewFromInt(400000), RatePercent: decimal.NewFromInt(15)},
		{Amount: decimal.NewFromInt(500000), RatePercent: decimal.NewFromInt(20)},
		{Amount: decimal.NewFromInt(2000000), RatePercent: decimal.NewFromInt(25)},
	},
	domain.AssessmentYear2027: {
		{Amount: decimal.NewFromInt(375000), RatePercent: decimal.NewFromInt(0)},
		{Amount: decimal.NewFromInt(300000), RatePercent: decimal.NewFromInt(10)},
		{Amount: decimal.NewFromInt(400000), RatePercent: decimal.NewFromInt(15)},
		{Amount: decimal.NewFromInt(500000), RatePercent: decimal.NewFromInt(20)},
		{Amount: decimal.NewFromInt(2000000), RatePercent: decimal.NewFromInt(25)},
	},
}

// SlabTableForYear returns the slab schedule for the given assessment year.
// Unrecognized years fall back to the default year's table rather than
// erroring. The returned slice is a copy so callers cannot mutate the
// package tables.
func SlabTableForYear(year domain.AssessmentYear) SlabTable {
	table, ok := slabTables[year]
	if !ok {
		table = slabTables[domain.DefaultAssessmentYear]
	}
	out := make(SlabTable, len(table))
	copy(out, table)
	return out
}

// ZeroRateLimit returns the width of the 0% bracket of the table.
func (t SlabTable) ZeroRateLimit() decimal.Decimal {
	if len(t) == 0 {
		return decimal.Zero
	}
	return t[0].Amount
}
