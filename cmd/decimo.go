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

type decimoCmd struct {
	salary     trabalhista.Money
	months     int
	dependents int
	admission  date.Date
	until      date.Date
	single     bool
}

func (*decimoCmd) Name() string     { return "decimo" }
func (*decimoCmd) Synopsis() string { return "calculate the thirteenth salary and its installments" }
func (*decimoCmd) Usage() string {
	return `clt decimo -salario <valor> [-meses <n> | -admissao <data> [-ate <data>]] [-dependentes <n>] [-parcela-unica]

  Computes the thirteenth salary: 1/12 of the salary per month worked, paid in two
  equal installments. INSS and IRRF are computed on the whole value and withheld
  from the second installment.

  With -admissao, the months worked are counted from the admission date up to -ate
  (today by default): a month counts when at least 15 days were worked in it.

Usage Examples:
$ clt decimo -salario 6000 -meses 6
$ clt decimo -salario 6000 -admissao 10/03/2025 -ate 31/12/2025
$ clt decimo -salario 6000 -meses 12 -parcela-unica
`
}

func (c *decimoCmd) SetFlags(f *flag.FlagSet) {
	f.Var(moneyValue{&c.salary}, "salario", "Gross monthly salary.")
	f.IntVar(&c.months, "meses", 12, "Months worked in the year.")
	f.IntVar(&c.dependents, "dependentes", 0, "Number of dependents for IRRF.")
	f.Var(dateValue{&c.admission}, "admissao", "Admission date. Overrides -meses.")
	f.Var(dateValue{&c.until}, "ate", "End of the counted period with -admissao (defaults to today).")
	f.BoolVar(&c.single, "parcela-unica", false, "Pay in a single installment.")
}

// monthsWorked resolves the number of months worked from the flags.
func (c *decimoCmd) monthsWorked() (int, error) {
	if c.admission.IsZero() {
		return c.months, nil
	}
	until := c.until
	if until.IsZero() {
		until = date.Today()
	}
	months := trabalhista.MonthsWorked(c.admission, until)
	if months == 0 {
		return 0, fmt.Errorf("%w: no month with 15 days worked between %s and %s", trabalhista.ErrPrecondition, c.admission, until)
	}
	log.Debugf("%d months worked from %s to %s", months, c.admission, until)
	return months, nil
}

func (c *decimoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	engine, err := NewEngine()
	if err != nil {
		return fail(err)
	}
	months, err := c.monthsWorked()
	if err != nil {
		return fail(err)
	}

	r, err := engine.Thirteenth(trabalhista.ThirteenthInput{
		Salary:            c.salary,
		Months:            months,
		Dependents:        c.dependents,
		SingleInstallment: c.single,
	})
	if err != nil {
		return fail(err)
	}
	return report(func() string { return renderer.ThirteenthMarkdown(r, engine.TaxYear()) }, r)
}
