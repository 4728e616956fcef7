package trabalhista

// SoldDays is the fixed number of vacation days converted into the cash allowance.
const SoldDays = 10

// MaxVacationDays is the longest vacation period of an acquisition period (CLT art. 130).
const MaxVacationDays = 30

// VacationInput holds the parameters of a vacation payment.
type VacationInput struct {
	Salary     Money // gross monthly salary
	Days       int   // vacation days taken, within [1, 30]
	SellDays   bool  // convert SoldDays days into the cash allowance (abono pecuniário)
	Dependents int
}

// VacationResult is the breakdown of a vacation payment.
type VacationResult struct {
	Salary              Money
	Days                int
	VacationBase        Money // salary prorated over the vacation days
	ConstitutionalThird Money // one third of VacationBase
	CashAllowance       Money // abono pecuniário, exempt from withholding
	AllowanceThird      Money // one third of CashAllowance, exempt from withholding
	GrossTotal          Money
	INSS                Money
	IRRF                Money
	NetTotal            Money
}

// TaxableBase returns the part of the payment subject to INSS and IRRF.
func (r *VacationResult) TaxableBase() Money {
	return r.VacationBase.Add(r.ConstitutionalThird)
}

// Exempt returns the part of the payment excluded from withholding.
func (r *VacationResult) Exempt() Money {
	return r.CashAllowance.Add(r.AllowanceThird)
}

// Discounts returns the total withheld.
func (r *VacationResult) Discounts() Money {
	return r.INSS.Add(r.IRRF)
}

// Vacation computes the vacation pay of in.
//
// The salary is prorated per calendar day (salary/30 * days) and increased by the
// constitutional third. Selling days always converts exactly SoldDays days, and that cash
// allowance and its third are not subject to withholding.
func (e *Engine) Vacation(in VacationInput) (*VacationResult, error) {
	switch {
	case !in.Salary.IsPositive():
		return nil, preconditionf("salary must be positive, got %s", in.Salary)
	case in.Days < 1 || in.Days > MaxVacationDays:
		return nil, preconditionf("vacation days must be within [1, %d], got %d", MaxVacationDays, in.Days)
	case in.Dependents < 0:
		return nil, preconditionf("negative number of dependents %d", in.Dependents)
	}

	r := &VacationResult{
		Salary: in.Salary,
		Days:   in.Days,
	}
	r.VacationBase = in.Salary.Prorate(in.Days, 30)
	r.ConstitutionalThird = r.VacationBase.Prorate(1, 3)
	if in.SellDays {
		r.CashAllowance = in.Salary.Prorate(SoldDays, 30)
		r.AllowanceThird = r.CashAllowance.Prorate(1, 3)
	}
	r.GrossTotal = r.TaxableBase().Add(r.Exempt())

	var err error
	r.INSS, r.IRRF, err = e.withholdings(r.TaxableBase(), in.Dependents)
	if err != nil {
		return nil, err
	}
	r.NetTotal = r.GrossTotal.Sub(r.Discounts())
	return r, nil
}

func (r *VacationResult) MarshalJSON() ([]byte, error) {
	var w orderedObject
	w.Set("grossMonthlySalary", r.Salary)
	w.Set("vacationDays", r.Days)
	w.Set("vacationBase", r.VacationBase)
	w.Set("constitutionalThird", r.ConstitutionalThird)
	w.Set("cashAllowance", r.CashAllowance)
	w.Set("allowanceThird", r.AllowanceThird)
	w.Set("grossTotal", r.GrossTotal)
	w.Set("taxableBase", r.TaxableBase())
	w.Set("inss", r.INSS)
	w.Set("irrf", r.IRRF)
	w.Set("netTotal", r.NetTotal)
	return w.MarshalJSON()
}

// VacationEntitlement returns the vacation days earned over an acquisition period with the
// given number of unjustified absences (CLT art. 130).
func VacationEntitlement(absences int) (int, error) {
	switch {
	case absences < 0:
		return 0, preconditionf("negative number of absences %d", absences)
	case absences <= 5:
		return 30, nil
	case absences <= 14:
		return 24, nil
	case absences <= 23:
		return 18, nil
	case absences <= 32:
		return 12, nil
	default:
		return 0, nil
	}
}
