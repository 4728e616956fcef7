package trabalhista

import (
	"errors"
	"fmt"
)

// ErrPrecondition is wrapped by every error caused by an invalid input: a non-positive
// salary, a day or month count out of range, a negative amount or dependent count.
var ErrPrecondition = errors.New("invalid input")

// Engine computes INSS and IRRF withholdings, and the benefits built on them, for a single
// tax year. It holds no mutable state and can be shared between goroutines.
type Engine struct {
	year *TaxYear
}

// NewEngine returns an Engine bound to the tables of ty.
func NewEngine(ty *TaxYear) (*Engine, error) {
	if ty == nil {
		return nil, fmt.Errorf("%w: missing tax year", ErrInvalidTable)
	}
	if err := ty.Validate(); err != nil {
		return nil, err
	}
	return &Engine{year: ty}, nil
}

// NewEngineForYear returns an Engine bound to the built-in tables of year.
func NewEngineForYear(year int) (*Engine, error) {
	ty, err := LookupTaxYear(year)
	if err != nil {
		return nil, err
	}
	return NewEngine(ty)
}

// TaxYear returns the tables the engine is bound to.
func (e *Engine) TaxYear() *TaxYear { return e.year }

func preconditionf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPrecondition, fmt.Sprintf(format, args...))
}

// INSS returns the social security contribution due on base.
//
// Each bracket's rate applies only to the slice of base it covers. Above the table's
// ceiling the contribution stays at its maximum.
func (e *Engine) INSS(base Money) (Money, error) {
	if base.IsNegative() {
		return Money{}, preconditionf("negative INSS base %s", base)
	}
	return e.year.INSS.Cumulative(base).Round(), nil
}

// IRRF returns the income tax withheld on base, once inss has been withheld.
//
// The deduction is the best of inss plus the dependents' allowance, and the simplified
// discount. Bases at or below the exemption threshold pay nothing; bases inside the
// transition band get the legislated abatement.
func (e *Engine) IRRF(base, inss Money, dependents int) (Money, error) {
	switch {
	case base.IsNegative():
		return Money{}, preconditionf("negative IRRF base %s", base)
	case inss.IsNegative():
		return Money{}, preconditionf("negative INSS %s", inss)
	case dependents < 0:
		return Money{}, preconditionf("negative number of dependents %d", dependents)
	}
	ty := e.year
	if base.LessThanOrEqual(ty.ExemptionThreshold) {
		return Money{}, nil
	}

	itemized := inss.Add(ty.DependentDeduction.Prorate(dependents, 1))
	taxable := base.Sub(MaxMoney(itemized, ty.SimplifiedDiscount))
	tax := MaxMoney(Money{}, ty.IRRF.Flat(taxable))

	if tr := ty.Transition; tr != nil && base.LessThanOrEqual(tr.Upper) {
		abatement := MaxMoney(Money{}, tr.Intercept.Sub(base.Mul(tr.Slope)))
		tax = MaxMoney(Money{}, tax.Sub(abatement))
	}
	return tax.Round(), nil
}

// withholdings computes INSS then IRRF on the same taxable base.
func (e *Engine) withholdings(base Money, dependents int) (inss, irrf Money, err error) {
	inss, err = e.INSS(base)
	if err != nil {
		return
	}
	irrf, err = e.IRRF(base, inss, dependents)
	return
}
