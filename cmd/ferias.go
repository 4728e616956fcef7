package cmd

import (
	"context"
	"flag"
	"fmt"

	trabalhista "github.com/gildoamaral/o-trabalhante-calculadora-trabalhista"
	"github.com/gildoamaral/o-trabalhante-calculadora-trabalhista/date"
	"github.com/gildoamaral/o-trabalhante-calculadora-trabalhista/renderer"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

type feriasCmd struct {
	salary     trabalhista.Money
	days       int
	sell       bool
	dependents int
	start      date.Date
	end        date.Date
	absences   int
}

func (*feriasCmd) Name() string     { return "ferias" }
func (*feriasCmd) Synopsis() string { return "calculate vacation pay with its withholdings" }
func (*feriasCmd) Usage() string {
	return `clt ferias -salario <valor> [-dias <n> | -inicio <data> -fim <data>] [-vender] [-dependentes <n>] [-faltas <n>]

  Computes the vacation pay of an employee: the salary prorated over the vacation
  days, the constitutional third, the optional cash allowance for 10 sold days,
  and the INSS and IRRF withheld on the taxable part.

  The vacation days come from -dias, or from the inclusive -inicio..-fim range.
  With -faltas, the days are capped by the entitlement of the acquisition period.

Usage Examples:
$ clt ferias -salario 3000 -dias 30
$ clt ferias -salario 3.000,00 -dias 20 -vender
$ clt ferias -salario 3000 -inicio 01/07/2025 -fim 20/07/2025 -faltas 8
`
}

func (c *feriasCmd) SetFlags(f *flag.FlagSet) {
	f.Var(moneyValue{&c.salary}, "salario", "Gross monthly salary.")
	f.IntVar(&c.days, "dias", trabalhista.MaxVacationDays, "Number of vacation days.")
	f.BoolVar(&c.sell, "vender", false, fmt.Sprintf("Sell %d vacation days (abono pecuniário).", trabalhista.SoldDays))
	f.IntVar(&c.dependents, "dependentes", 0, "Number of dependents for IRRF.")
	f.Var(dateValue{&c.start}, "inicio", "First vacation day. Requires -fim.")
	f.Var(dateValue{&c.end}, "fim", "Last vacation day. Requires -inicio.")
	f.IntVar(&c.absences, "faltas", -1, "Unjustified absences in the acquisition period.")
}

// vacationDays resolves the number of vacation days from the flags.
func (c *feriasCmd) vacationDays() (int, error) {
	days := c.days
	if !c.start.IsZero() || !c.end.IsZero() {
		if c.start.IsZero() || c.end.IsZero() {
			return 0, fmt.Errorf("%w: -inicio and -fim go together", trabalhista.ErrPrecondition)
		}
		r := date.Range{From: c.start, To: c.end}
		if err := r.Validate(); err != nil {
			return 0, fmt.Errorf("%w: %v", trabalhista.ErrPrecondition, err)
		}
		days = r.Days()
		log.Debugf("vacation %s lasts %d days", r, days)
	}

	limit := trabalhista.MaxVacationDays
	if c.absences >= 0 {
		entitled, err := trabalhista.VacationEntitlement(c.absences)
		if err != nil {
			return 0, err
		}
		if entitled == 0 {
			return 0, fmt.Errorf("%w: %d absences forfeit the vacation of the period", trabalhista.ErrPrecondition, c.absences)
		}
		limit = entitled
	}
	if days > limit {
		log.Warnf("%d vacation days requested, limited to %d", days, limit)
		days = limit
	}
	if c.sell && days+trabalhista.SoldDays > limit {
		log.Warnf("%d days taken and %d sold exceed the %d days of the period", days, trabalhista.SoldDays, limit)
	}
	return days, nil
}

func (c *feriasCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	engine, err := NewEngine()
	if err != nil {
		return fail(err)
	}
	days, err := c.vacationDays()
	if err != nil {
		return fail(err)
	}

	r, err := engine.Vacation(trabalhista.VacationInput{
		Salary:     c.salary,
		Days:       days,
		SellDays:   c.sell,
		Dependents: c.dependents,
	})
	if err != nil {
		return fail(err)
	}
	return report(func() string { return renderer.VacationMarkdown(r, engine.TaxYear()) }, r)
}
