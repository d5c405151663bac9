package output

import (
	"fmt"
	"strings"

	"github.com/bdtaxlab/bdtax/internal/domain"
)

// TableFormatter renders the band breakdown as a fixed-width console table.
type TableFormatter struct{}

func (tf TableFormatter) Name() string { return "table" }

func (tf TableFormatter) Format(result *domain.TaxResult) ([]byte, error) {
	var sb strings.Builder

	portionWidth := 18
	rateWidth := 8
	taxWidth := 18

	sb.WriteString(fmt.Sprintf("TAX BANDS (%s)\n", result.Inputs.Year))
	sb.WriteString(strings.Repeat("=", portionWidth+rateWidth+taxWidth+2) + "\n")
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s\n",
		portionWidth, "Portion",
		rateWidth, "Rate",
		taxWidth, "Tax"))
	sb.WriteString(strings.Repeat("-", portionWidth+rateWidth+taxWidth+2) + "\n")

	for _, b := range result.Bands {
		sb.WriteString(fmt.Sprintf("%-*s %*s %*s\n",
			portionWidth, b.Portion.StringFixed(2),
			rateWidth, FormatPercentage(b.RatePercent),
			taxWidth, b.Tax.StringFixed(2)))
	}

	sb.WriteString(strings.Repeat("-", portionWidth+rateWidth+taxWidth+2) + "\n")
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s\n",
		portionWidth, "Before rebate",
		rateWidth, "",
		taxWidth, result.Summary.TaxBeforeRebate.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("%-*s %*s %*s\n",
		portionWidth, "Net payable",
		rateWidth, "",
		taxWidth, result.Summary.NetTaxPayable.StringFixed(2)))

	return []byte(sb.String()), nil
}
