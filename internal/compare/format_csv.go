package compare

import (
	"encoding/csv"
	"strings"
)

// CSVFormatter formats comparison results as CSV.
type CSVFormatter struct{}

// Format generates CSV output for comparison results.
func (cf *CSVFormatter) Format(set *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Year",
		"Base",
		"Tax Before Rebate",
		"Net Tax Payable",
		"Effective Rate %",
		"Diff From Base",
		"Pct From Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	writeRow := func(yr *YearResult, isBase bool) error {
		base := ""
		if isBase {
			base = "yes"
		}
		return writer.Write([]string{
			string(yr.Year),
			base,
			yr.TaxBeforeRebate.StringFixed(2),
			yr.NetTaxPayable.StringFixed(2),
			yr.EffectiveRate.StringFixed(2),
			yr.DiffFromBase.StringFixed(2),
			yr.PctFromBase.StringFixed(2),
		})
	}

	if err := writeRow(set.BaseResult, true); err != nil {
		return "", err
	}
	for i := range set.AlternativeResults {
		if err := writeRow(&set.AlternativeResults[i], false); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
