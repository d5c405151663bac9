package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bdtaxlab/bdtax/internal/domain"
)

// InputParser loads calculation scenario files from disk.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile reads a YAML scenario file and returns the normalized input.
// Missing fields take their documented defaults; the file only needs the
// fields the scenario cares about.
func (ip *InputParser) LoadFromFile(filename string) (domain.TaxInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return domain.TaxInput{}, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes YAML scenario bytes into a normalized input. Amount fields
// that fail to decode surface as an error here, at the boundary; the engine
// itself never sees unvalidated data.
func (ip *InputParser) Parse(data []byte) (domain.TaxInput, error) {
	var req domain.TaxRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return domain.TaxInput{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return req.Normalize(), nil
}
