package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/bdtaxlab/bdtax/internal/domain"
)

// ConsoleFormatter renders the detailed console report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.TaxResult) ([]byte, error) {
	var buf bytes.Buffer
	s := result.Summary

	fmt.Fprintln(&buf, "=================================================================")
	fmt.Fprintln(&buf, "BANGLADESH INDIVIDUAL INCOME TAX CALCULATION")
	fmt.Fprintln(&buf, "=================================================================")
	fmt.Fprintf(&buf, "Assessment Year: %s\n", result.Inputs.Year)
	fmt.Fprintf(&buf, "Minimum Tax Zone: %s\n", result.Inputs.MinTaxZone)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "INCOME")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "  Basic Salary:        %s\n", FormatCurrency(result.Inputs.BasicSalary))
	fmt.Fprintf(&buf, "  House Rent:          %s\n", FormatCurrency(result.Inputs.HRA))
	fmt.Fprintf(&buf, "  Conveyance:          %s\n", FormatCurrency(result.Inputs.Conveyance))
	fmt.Fprintf(&buf, "  Medical:             %s\n", FormatCurrency(result.Inputs.Medical))
	fmt.Fprintf(&buf, "  Bonus:               %s\n", FormatCurrency(result.Inputs.Bonus))
	fmt.Fprintf(&buf, "  Overtime:            %s\n", FormatCurrency(result.Inputs.Overtime))
	fmt.Fprintf(&buf, "  Other Income:        %s\n", FormatCurrency(result.Inputs.OtherIncome))
	fmt.Fprintf(&buf, "  TOTAL EARNINGS:      %s\n", FormatCurrency(s.TotalEarnings))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "TAXABLE BASE")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "  General Exemption:   %s\n", FormatCurrency(s.GeneralExemption))
	fmt.Fprintf(&buf, "  Net Taxable:         %s\n", FormatCurrency(s.NetTaxableAfterGeneral))
	fmt.Fprintf(&buf, "  Zero-Rate Limit:     %s\n", FormatCurrency(s.ZeroRateLimit))
	fmt.Fprintf(&buf, "  Above Zero Rate:     %s\n", FormatCurrency(s.SlabTaxableBase))
	fmt.Fprintln(&buf)

	if len(result.Bands) > 0 {
		fmt.Fprintln(&buf, "SLAB BREAKDOWN")
		fmt.Fprintln(&buf, strings.Repeat("-", 40))
		for _, b := range result.Bands {
			fmt.Fprintf(&buf, "  %s @ %s = %s\n",
				FormatCurrency(b.Portion), FormatPercentage(b.RatePercent), FormatCurrency(b.Tax))
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, "LIABILITY")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "  Tax Before Rebate:   %s\n", FormatCurrency(s.TaxBeforeRebate))
	fmt.Fprintf(&buf, "  Capped Investment:   %s\n", FormatCurrency(s.EligibleInvestmentCapped))
	fmt.Fprintf(&buf, "  Investment Rebate:   %s\n", FormatCurrency(s.CalculatedTaxRebate))
	fmt.Fprintf(&buf, "  Surcharge (%s):  %s\n", FormatPercentage(s.SurchargeRate), FormatCurrency(s.SurchargeAmount))
	fmt.Fprintf(&buf, "  Gross Tax Payable:   %s\n", FormatCurrency(s.GrossTaxPayable))
	fmt.Fprintf(&buf, "  Advance Tax Paid:    %s\n", FormatCurrency(s.AITPaid))
	fmt.Fprintf(&buf, "  NET TAX PAYABLE:     %s\n", FormatCurrency(s.NetTaxPayable))

	return buf.Bytes(), nil
}
