package trabalhista

import "github.com/gildoamaral/o-trabalhante-calculadora-trabalhista/date"

// ThirteenthInput holds the parameters of a thirteenth salary payment.
type ThirteenthInput struct {
	Salary            Money // gross monthly salary
	Months            int   // months worked in the year, within [1, 12]
	Dependents        int
	SingleInstallment bool // paid at once in December instead of two installments
}

// ThirteenthResult is the breakdown of a thirteenth salary payment.
type ThirteenthResult struct {
	Salary                 Money
	Months                 int
	ProportionalValue      Money // salary/12 per month worked
	FirstInstallmentGross  Money
	SecondInstallmentGross Money
	INSS                   Money
	IRRF                   Money
	NetTotal               Money
	SingleInstallment      bool
}

// FirstInstallmentNet returns the amount paid by November 30th. The advance carries no
// withholding, and nothing is advanced for a single installment.
func (r *ThirteenthResult) FirstInstallmentNet() Money {
	if r.SingleInstallment {
		return Money{}
	}
	return r.FirstInstallmentGross
}

// SecondInstallmentNet returns the amount paid by December 20th, where all the
// withholdings are discounted.
func (r *ThirteenthResult) SecondInstallmentNet() Money {
	if r.SingleInstallment {
		return r.NetTotal
	}
	return r.SecondInstallmentGross.Sub(r.INSS).Sub(r.IRRF)
}

// Thirteenth computes the thirteenth salary of in.
//
// The proportional value is split in two equal installments, but INSS and IRRF are
// computed on the whole proportional value.
func (e *Engine) Thirteenth(in ThirteenthInput) (*ThirteenthResult, error) {
	switch {
	case !in.Salary.IsPositive():
		return nil, preconditionf("salary must be positive, got %s", in.Salary)
	case in.Months < 1 || in.Months > 12:
		return nil, preconditionf("months worked must be within [1, 12], got %d", in.Months)
	case in.Dependents < 0:
		return nil, preconditionf("negative number of dependents %d", in.Dependents)
	}

	r := &ThirteenthResult{
		Salary:            in.Salary,
		Months:            in.Months,
		SingleInstallment: in.SingleInstallment,
	}
	r.ProportionalValue = in.Salary.Prorate(in.Months, 12)
	r.FirstInstallmentGross = r.ProportionalValue.Prorate(1, 2)
	r.SecondInstallmentGross = r.ProportionalValue.Prorate(1, 2)

	var err error
	r.INSS, r.IRRF, err = e.withholdings(r.ProportionalValue, in.Dependents)
	if err != nil {
		return nil, err
	}
	r.NetTotal = r.ProportionalValue.Sub(r.INSS).Sub(r.IRRF)
	return r, nil
}

func (r *ThirteenthResult) MarshalJSON() ([]byte, error) {
	var w orderedObject
	w.Set("grossMonthlySalary", r.Salary)
	w.Set("monthsWorked", r.Months)
	w.Set("proportionalValue", r.ProportionalValue)
	w.Set("firstInstallmentGross", r.FirstInstallmentGross)
	w.Set("secondInstallmentGross", r.SecondInstallmentGross)
	w.Set("inss", r.INSS)
	w.Set("irrf", r.IRRF)
	w.Set("netTotal", r.NetTotal)
	if r.SingleInstallment {
		w.Set("singleInstallment", true)
	}
	return w.MarshalJSON()
}

// MonthsWorked counts the months of until's year in which the employee, admitted on
// admission, worked at least 15 days (Lei 4.090/1962 art. 1 §2). The count stops at until.
func MonthsWorked(admission, until date.Date) int {
	if until.Before(admission) {
		return 0
	}
	months := 0
	for m := date.New(until.Year(), 1, 1); !m.After(until); m = m.AddMonths(1) {
		worked := date.Range{From: m, To: m.EndOfMonth()}
		if admission.After(worked.From) {
			worked.From = admission
		}
		if until.Before(worked.To) {
			worked.To = until
		}
		if worked.Days() >= 15 {
			months++
		}
	}
	return months
}
