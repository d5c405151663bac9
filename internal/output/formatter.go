package output

import (
	"github.com/shopspring/decimal"

	"github.com/bdtaxlab/bdtax/internal/domain"
)

// Formatter renders a calculation result in one output format.
type Formatter interface {
	Name() string
	Format(result *domain.TaxResult) ([]byte, error)
}

var formatters = []Formatter{
	ConsoleFormatter{},
	TableFormatter{},
	JSONFormatter{Pretty: true},
	CSVFormatter{},
}

// GetFormatterByName returns the named formatter, or nil when no formatter
// carries that name.
func GetFormatterByName(name string) Formatter {
	for _, f := range formatters {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// FormatterNames lists the registered formatter names in registry order.
func FormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for _, f := range formatters {
		names = append(names, f.Name())
	}
	return names
}

// FormatCurrency formats a decimal as Bangladeshi Taka.
func FormatCurrency(amount decimal.Decimal) string {
	return "BDT " + amount.StringFixed(2)
}

// FormatPercentage formats a decimal as a percentage.
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}
