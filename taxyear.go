package trabalhista

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v2"
)

//go:embed tables/*.yaml
var tables embed.FS

// DefaultTaxYear is the tax year used when none is selected explicitly.
const DefaultTaxYear = 2026

// Transition describes the phase-out band above the IRRF exemption threshold.
//
// For a gross base in (ExemptionThreshold, Upper] the tax is reduced by
// Intercept - Slope*base, never below zero.
type Transition struct {
	Upper     Money `json:"upper"`
	Intercept Money `json:"intercept"`
	Slope     Rate  `json:"slope"`
}

// TaxYear gathers every constant needed to compute INSS and IRRF for one revision of the
// legislation. Constants from different revisions must never be mixed: each TaxYear comes
// from a single table file.
type TaxYear struct {
	Year        int    `json:"year"`
	Description string `json:"description,omitempty"`

	INSS BracketTable `json:"inss"` // closed table, the last bound is the contribution ceiling.
	IRRF BracketTable `json:"irrf"` // open table, with per-bracket deductions.

	ExemptionThreshold Money       `json:"exemptionThreshold"` // gross base at or below which no IRRF is due.
	DependentDeduction Money       `json:"dependentDeduction"` // legal deduction per dependent.
	SimplifiedDiscount Money       `json:"simplifiedDiscount"` // flat deduction used when larger than INSS + dependents.
	Transition         *Transition `json:"transition,omitempty"`
}

// INSSCeiling returns the maximum INSS contribution of the year.
func (ty *TaxYear) INSSCeiling() Money {
	return ty.INSS.Cumulative(ty.INSS.Ceiling()).Round()
}

// Validate asserts the invariants of the tables and constants of the year.
func (ty *TaxYear) Validate() error {
	if err := ty.INSS.Validate(); err != nil {
		return fmt.Errorf("INSS %d: %w", ty.Year, err)
	}
	if ty.INSS.Open() {
		return fmt.Errorf("INSS %d: %w: the last bracket must be the contribution ceiling", ty.Year, ErrInvalidTable)
	}
	if err := ty.IRRF.Validate(); err != nil {
		return fmt.Errorf("IRRF %d: %w", ty.Year, err)
	}
	if !ty.IRRF.Open() {
		return fmt.Errorf("IRRF %d: %w: the last bracket must be open", ty.Year, ErrInvalidTable)
	}
	if err := ty.IRRF.ValidateContinuity(); err != nil {
		return fmt.Errorf("IRRF %d: %w", ty.Year, err)
	}
	for name, m := range map[string]Money{
		"exemption_threshold": ty.ExemptionThreshold,
		"dependent_deduction": ty.DependentDeduction,
		"simplified_discount": ty.SimplifiedDiscount,
	} {
		if m.IsNegative() {
			return fmt.Errorf("tax year %d: %s is negative: %s", ty.Year, name, m)
		}
	}
	if tr := ty.Transition; tr != nil {
		if !tr.Upper.GreaterThan(ty.ExemptionThreshold) {
			return fmt.Errorf("tax year %d: transition upper bound %s must be above the exemption threshold %s", ty.Year, tr.Upper, ty.ExemptionThreshold)
		}
		if tr.Intercept.IsNegative() || tr.Slope.IsNegative() {
			return fmt.Errorf("tax year %d: transition constants must be non-negative", ty.Year)
		}
	}
	return nil
}

// yamlTaxYear is the file format of a tax year table.
type yamlTaxYear struct {
	Year               int           `yaml:"year"`
	Description        string        `yaml:"description"`
	INSS               []yamlBracket `yaml:"inss"`
	IRRF               []yamlBracket `yaml:"irrf"`
	ExemptionThreshold float64       `yaml:"exemption_threshold"`
	DependentDeduction float64       `yaml:"dependent_deduction"`
	SimplifiedDiscount float64       `yaml:"simplified_discount"`
	Transition         *struct {
		Upper     float64 `yaml:"upper"`
		Intercept float64 `yaml:"intercept"`
		Slope     float64 `yaml:"slope"`
	} `yaml:"transition,omitempty"`
}

type yamlBracket struct {
	Upper     float64 `yaml:"upper,omitempty"`
	Rate      float64 `yaml:"rate"`
	Deduction float64 `yaml:"deduction,omitempty"`
}

func brackets(src []yamlBracket) BracketTable {
	return lo.Map(src, func(b yamlBracket, _ int) Bracket {
		return Bracket{UpperBound: M(b.Upper), Rate: R(b.Rate), Deduction: M(b.Deduction)}
	})
}

// LoadTaxYear decodes and validates a tax year table in YAML.
//
// INSS brackets are given by bound and rate only, their deductions are derived so that the
// single-rate formula and the cumulative one agree. An INSS bracket with a deduction is
// rejected.
func LoadTaxYear(r io.Reader) (*TaxYear, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read tax year table: %w", err)
	}
	var y yamlTaxYear
	if err := yaml.UnmarshalStrict(content, &y); err != nil {
		return nil, fmt.Errorf("invalid tax year table: %w", err)
	}
	if _, i, found := lo.FindIndexOf(y.INSS, func(b yamlBracket) bool { return b.Deduction != 0 }); found {
		return nil, fmt.Errorf("INSS %d: %w: bracket %d sets a deduction, INSS deductions are derived from bounds and rates", y.Year, ErrInvalidTable, i+1)
	}
	ty := &TaxYear{
		Year:               y.Year,
		Description:        y.Description,
		INSS:               brackets(y.INSS).WithDeductions(),
		IRRF:               brackets(y.IRRF),
		ExemptionThreshold: M(y.ExemptionThreshold),
		DependentDeduction: M(y.DependentDeduction),
		SimplifiedDiscount: M(y.SimplifiedDiscount),
	}
	if t := y.Transition; t != nil {
		ty.Transition = &Transition{Upper: M(t.Upper), Intercept: M(t.Intercept), Slope: R(t.Slope)}
	}
	if err := ty.Validate(); err != nil {
		return nil, err
	}
	return ty, nil
}

// LookupTaxYear returns the built-in table of the given year.
func LookupTaxYear(year int) (*TaxYear, error) {
	f, err := tables.Open(path.Join("tables", strconv.Itoa(year)+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("no table for tax year %d (available: %v): %w", year, TaxYears(), err)
	}
	defer f.Close()
	ty, err := LoadTaxYear(f)
	if err != nil {
		return nil, err
	}
	if ty.Year != year {
		return nil, fmt.Errorf("table file for %d declares the year %d", year, ty.Year)
	}
	return ty, nil
}

// TaxYears returns the years of the built-in tables, in ascending order.
func TaxYears() []int {
	entries, err := fs.ReadDir(tables, "tables")
	if err != nil {
		// the directory is embedded, this cannot happen.
		panic(err)
	}
	years := lo.FilterMap(entries, func(e fs.DirEntry, _ int) (int, bool) {
		y, err := strconv.Atoi(strings.TrimSuffix(e.Name(), ".yaml"))
		return y, err == nil
	})
	sort.Ints(years)
	return years
}
