package cmd

import (
	"context"
	"flag"

	trabalhista "github.com/gildoamaral/o-trabalhante-calculadora-trabalhista"
	"github.com/gildoamaral/o-trabalhante-calculadora-trabalhista/renderer"
	"github.com/google/subcommands"
)

type inssCmd struct {
	base trabalhista.Money
}

func (*inssCmd) Name() string     { return "inss" }
func (*inssCmd) Synopsis() string { return "calculate the INSS contribution on a base" }
func (*inssCmd) Usage() string {
	return `clt inss -base <valor>

  Computes the social security contribution due on a gross base, bracket by
  bracket, capped at the ceiling of the year.

Usage Examples:
$ clt inss -base 4000
$ clt -ano 2024 inss -base 4.000,00
`
}

func (c *inssCmd) SetFlags(f *flag.FlagSet) {
	f.Var(moneyValue{&c.base}, "base", "Gross base.")
}

func (c *inssCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	engine, err := NewEngine()
	if err != nil {
		return fail(err)
	}
	inss, err := engine.INSS(c.base)
	if err != nil {
		return fail(err)
	}
	w := renderer.Withholding{Year: engine.TaxYear().Year, Base: c.base, INSS: inss}
	return report(func() string { return renderer.WithholdingMarkdown(w) }, w)
}

type irrfCmd struct {
	base       trabalhista.Money
	inss       trabalhista.Money
	dependents int
}

func (*irrfCmd) Name() string     { return "irrf" }
func (*irrfCmd) Synopsis() string { return "calculate the income tax withheld on a base" }
func (*irrfCmd) Usage() string {
	return `clt irrf -base <valor> [-inss <valor>] [-dependentes <n>]

  Computes the income tax withheld at source on a gross base. Without -inss, the
  INSS contribution is computed on the same base first.

Usage Examples:
$ clt irrf -base 4000
$ clt irrf -base 4000 -inss 378,82 -dependentes 2
`
}

func (c *irrfCmd) SetFlags(f *flag.FlagSet) {
	f.Var(moneyValue{&c.base}, "base", "Gross base.")
	f.Var(moneyValue{&c.inss}, "inss", "INSS already withheld on the base (computed when omitted).")
	f.IntVar(&c.dependents, "dependentes", 0, "Number of dependents.")
}

func (c *irrfCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	engine, err := NewEngine()
	if err != nil {
		return fail(err)
	}

	inss := c.inss
	if !isFlagSet(f, "inss") {
		if inss, err = engine.INSS(c.base); err != nil {
			return fail(err)
		}
	}
	irrf, err := engine.IRRF(c.base, inss, c.dependents)
	if err != nil {
		return fail(err)
	}
	w := renderer.Withholding{Year: engine.TaxYear().Year, Base: c.base, INSS: inss, IRRF: irrf, Dependents: c.dependents}
	return report(func() string { return renderer.WithholdingMarkdown(w) }, w)
}

func isFlagSet(f *flag.FlagSet, name string) (set bool) {
	f.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return
}
