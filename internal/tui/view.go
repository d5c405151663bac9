package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bdtaxlab/bdtax/internal/output"
)

// View renders the form on the left and the live result on the right.
func (m Model) View() string {
	var form strings.Builder
	form.WriteString(TitleStyle.Render("Bangladesh Income Tax Calculator") + "\n\n")

	for i, field := range amountFields {
		label := FieldLabelStyle
		if i == m.focus {
			label = FocusedLabelStyle
		}
		form.WriteString(label.Render(field.label) + m.inputs[i].View() + "\n")
	}

	form.WriteString("\n")
	form.WriteString(m.renderSelector("Assessment Year", string(yearChoices[m.yearIndex]), focusYear))
	form.WriteString(m.renderSelector("Minimum Tax Zone", string(zoneChoices[m.zoneIndex]), focusZone))
	form.WriteString("\n" + HelpStyle.Render("tab/↑↓ move · ←→ change selection · esc quit"))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		PanelStyle.Render(form.String()),
		" ",
		PanelStyle.Render(m.renderResult()),
	)
	return AppStyle.Render(body)
}

func (m Model) renderSelector(label, value string, position int) string {
	style := FieldLabelStyle
	if m.selectorFocus() == position {
		style = FocusedLabelStyle
	}
	return style.Render(label) + "< " + value + " >\n"
}

func (m Model) renderResult() string {
	if m.result == nil {
		return "..."
	}
	s := m.result.Summary

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render("Summary") + "\n\n")
	row := func(label string, value string) {
		sb.WriteString(SummaryLabelStyle.Render(label) + SummaryValueStyle.Render(value) + "\n")
	}
	row("Total Earnings", output.FormatCurrency(s.TotalEarnings))
	row("General Exemption", output.FormatCurrency(s.GeneralExemption))
	row("Net Taxable", output.FormatCurrency(s.NetTaxableAfterGeneral))
	row("Tax Before Rebate", output.FormatCurrency(s.TaxBeforeRebate))
	row("Investment Rebate", output.FormatCurrency(s.CalculatedTaxRebate))
	row("Surcharge", fmt.Sprintf("%s (%s)",
		output.FormatCurrency(s.SurchargeAmount), output.FormatPercentage(s.SurchargeRate)))
	row("Gross Payable", output.FormatCurrency(s.GrossTaxPayable))
	row("AIT Paid", output.FormatCurrency(s.AITPaid))
	sb.WriteString(SummaryLabelStyle.Render("Net Tax Payable") +
		NetPayableStyle.Render(output.FormatCurrency(s.NetTaxPayable)) + "\n")

	if len(m.result.Bands) > 0 {
		sb.WriteString("\n" + BandHeaderStyle.Render("Slab Breakdown") + "\n")
		for _, b := range m.result.Bands {
			sb.WriteString(fmt.Sprintf("%16s @ %5s = %s\n",
				b.Portion.StringFixed(2),
				output.FormatPercentage(b.RatePercent),
				b.Tax.StringFixed(2)))
		}
	}
	return sb.String()
}
