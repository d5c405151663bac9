package compare

import (
	"fmt"
	"strings"
)

// TableFormatter formats year comparison results as a console table.
type TableFormatter struct{}

// Format generates a formatted table comparing assessment years.
func (tf *TableFormatter) Format(set *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("ASSESSMENT YEAR COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("Base Year: %s\n\n", set.BaseYear))

	yearWidth := 10
	numWidth := 16

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		yearWidth, "Year",
		numWidth, "Before Rebate",
		numWidth, "Net Payable",
		numWidth, "Effective %",
		numWidth, "vs Base"))
	sb.WriteString(strings.Repeat("-", 72) + "\n")

	sb.WriteString(tf.formatRow(set.BaseResult, yearWidth, numWidth, true))
	for i := range set.AlternativeResults {
		sb.WriteString(tf.formatRow(&set.AlternativeResults[i], yearWidth, numWidth, false))
	}

	sb.WriteString(strings.Repeat("-", 72) + "\n")
	sb.WriteString(fmt.Sprintf("Lowest liability: %s\n", set.CheapestYear()))

	return sb.String()
}

func (tf *TableFormatter) formatRow(yr *YearResult, yearWidth, numWidth int, isBase bool) string {
	diff := "-"
	if !isBase {
		diff = yr.DiffFromBase.StringFixed(2)
		if yr.DiffFromBase.Sign() > 0 {
			diff = "+" + diff
		}
	}
	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		yearWidth, string(yr.Year),
		numWidth, yr.TaxBeforeRebate.StringFixed(2),
		numWidth, yr.NetTaxPayable.StringFixed(2),
		numWidth, yr.EffectiveRate.StringFixed(2),
		numWidth, diff)
}
