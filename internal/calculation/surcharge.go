package calculation

import (
	"github.com/shopspring/decimal"
)

// SurchargeBracket maps a net-worth ceiling (inclusive) to the surcharge
// rate applied to the post-rebate tax liability.
type SurchargeBracket struct {
	UpperBound  decimal.Decimal
	RatePercent decimal.Decimal
}

// surchargeUnbounded stands in for +infinity on the top bracket so every
// non-negative net worth matches some bracket.
var surchargeUnbounded = decimal.New(1, 18)

// Net-worth surcharge schedule in ascending bound order.
var surchargeBrackets = []SurchargeBracket{
	{UpperBound: decimal.NewFromInt(40000000), RatePercent: decimal.NewFromInt(0)},
	{UpperBound: decimal.NewFromInt(100000000), RatePercent: decimal.NewFromInt(10)},
	{UpperBound: decimal.NewFromInt(200000000), RatePercent: decimal.NewFromInt(20)},
	{UpperBound: decimal.NewFromInt(500000000), RatePercent: decimal.NewFromInt(30)},
	{UpperBound: surchargeUnbounded, RatePercent: decimal.NewFromInt(35)},
}

// SurchargeRateFor returns the surcharge percentage for the given net
// worth: the rate of the first bracket whose inclusive bound covers it.
// Negative net worth is treated as zero.
func SurchargeRateFor(netWorth decimal.Decimal) decimal.Decimal {
	if netWorth.LessThan(decimal.Zero) {
		netWorth = decimal.Zero
	}
	for _, b := range surchargeBrackets {
		if netWorth.LessThanOrEqual(b.UpperBound) {
			return b.RatePercent
		}
	}
	// Unreachable: the top bracket bound exceeds any realistic net worth.
	return surchargeBrackets[len(surchargeBrackets)-1].RatePercent
}
