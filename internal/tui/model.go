package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/bdtaxlab/bdtax/internal/calculation"
	"github.com/bdtaxlab/bdtax/internal/domain"
)

// Ordered amount fields of the form; index doubles as focus position.
var amountFields = []struct {
	label string
	set   func(*domain.TaxRequest, decimal.Decimal)
}{
	{"Basic Salary", func(r *domain.TaxRequest, d decimal.Decimal) { r.BasicSalary = d }},
	{"House Rent (HRA)", func(r *domain.TaxRequest, d decimal.Decimal) { r.HRA = d }},
	{"Conveyance", func(r *domain.TaxRequest, d decimal.Decimal) { r.Conveyance = d }},
	{"Medical", func(r *domain.TaxRequest, d decimal.Decimal) { r.Medical = d }},
	{"Bonus", func(r *domain.TaxRequest, d decimal.Decimal) { r.Bonus = d }},
	{"Overtime", func(r *domain.TaxRequest, d decimal.Decimal) { r.Overtime = d }},
	{"Other Income", func(r *domain.TaxRequest, d decimal.Decimal) { r.OtherIncome = d }},
	{"Eligible Investment", func(r *domain.TaxRequest, d decimal.Decimal) { r.EligibleInvestment = d }},
	{"Net Worth", func(r *domain.TaxRequest, d decimal.Decimal) { r.NetWorth = d }},
	{"AIT Paid", func(r *domain.TaxRequest, d decimal.Decimal) { r.AITPaid = d }},
}

var yearChoices = []domain.AssessmentYear{
	domain.AssessmentYear2025,
	domain.AssessmentYear2026,
	domain.AssessmentYear2027,
}

var zoneChoices = []domain.MinTaxZone{
	domain.ZoneCity,
	domain.ZoneDistrict,
	domain.ZoneOther,
	domain.ZoneNew,
}

// Model is the interactive calculator state: one text input per amount
// field, cyclable year and zone selectors, and the live result.
type Model struct {
	inputs    []textinput.Model
	focus     int
	yearIndex int
	zoneIndex int

	engine *calculation.Engine
	result *domain.TaxResult

	width  int
	height int
}

// NewModel creates the calculator model with empty fields and a result for
// the all-defaults input.
func NewModel() Model {
	inputs := make([]textinput.Model, len(amountFields))
	for i := range amountFields {
		ti := textinput.New()
		ti.Placeholder = "0"
		ti.CharLimit = 15
		ti.Width = 16
		inputs[i] = ti
	}
	inputs[0].Focus()

	m := Model{
		inputs:    inputs,
		zoneIndex: indexOfZone(domain.DefaultMinTaxZone),
		engine:    calculation.NewEngine(),
	}
	m.recalculate()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// request assembles the raw request from the current field values. Invalid
// numbers coerce to zero, matching the calculator's boundary policy.
func (m Model) request() domain.TaxRequest {
	req := domain.TaxRequest{
		Year:       string(yearChoices[m.yearIndex]),
		MinTaxZone: string(zoneChoices[m.zoneIndex]),
	}
	for i, field := range amountFields {
		value := m.inputs[i].Value()
		if value == "" {
			continue
		}
		d, err := decimal.NewFromString(value)
		if err != nil {
			continue
		}
		field.set(&req, d)
	}
	return req
}

func (m *Model) recalculate() {
	m.result = m.engine.Calculate(m.request().Normalize())
}

func indexOfZone(zone domain.MinTaxZone) int {
	for i, z := range zoneChoices {
		if z == zone {
			return i
		}
	}
	return 0
}
