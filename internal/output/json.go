package output

import (
	"encoding/json"

	"github.com/bdtaxlab/bdtax/internal/domain"
)

// JSONFormatter formats a calculation result as JSON.
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

func (jf JSONFormatter) Name() string { return "json" }

func (jf JSONFormatter) Format(result *domain.TaxResult) ([]byte, error) {
	if jf.Pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}
