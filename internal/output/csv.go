package output

import (
	"encoding/csv"
	"strings"

	"github.com/bdtaxlab/bdtax/internal/domain"
)

// CSVFormatter formats the summary and band breakdown as CSV.
type CSVFormatter struct{}

func (cf CSVFormatter) Name() string { return "csv" }

func (cf CSVFormatter) Format(result *domain.TaxResult) ([]byte, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	s := result.Summary
	summaryRows := [][]string{
		{"Field", "Value"},
		{"Assessment Year", string(result.Inputs.Year)},
		{"Total Earnings", s.TotalEarnings.StringFixed(2)},
		{"General Exemption", s.GeneralExemption.StringFixed(2)},
		{"Net Taxable After General", s.NetTaxableAfterGeneral.StringFixed(2)},
		{"Zero Rate Limit", s.ZeroRateLimit.StringFixed(2)},
		{"Slab Taxable Base", s.SlabTaxableBase.StringFixed(2)},
		{"Tax Before Rebate", s.TaxBeforeRebate.StringFixed(2)},
		{"Eligible Investment (Capped)", s.EligibleInvestmentCapped.StringFixed(2)},
		{"Tax Rebate", s.CalculatedTaxRebate.StringFixed(2)},
		{"Surcharge Rate", s.SurchargeRate.StringFixed(2)},
		{"Surcharge Amount", s.SurchargeAmount.StringFixed(2)},
		{"Gross Tax Payable", s.GrossTaxPayable.StringFixed(2)},
		{"AIT Paid", s.AITPaid.StringFixed(2)},
		{"Net Tax Payable", s.NetTaxPayable.StringFixed(2)},
	}
	if err := writer.WriteAll(summaryRows); err != nil {
		return nil, err
	}

	if err := writer.Write([]string{}); err != nil {
		return nil, err
	}
	if err := writer.Write([]string{"Band Portion", "Rate", "Tax"}); err != nil {
		return nil, err
	}
	for _, b := range result.Bands {
		row := []string{b.Portion.StringFixed(2), b.RatePercent.StringFixed(2), b.Tax.StringFixed(2)}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}
