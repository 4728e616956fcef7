package cmd

import (
	"context"
	"flag"

	"github.com/gildoamaral/o-trabalhante-calculadora-trabalhista/renderer"
	"github.com/google/subcommands"
)

type tabelasCmd struct{}

func (*tabelasCmd) Name() string     { return "tabelas" }
func (*tabelasCmd) Synopsis() string { return "show the INSS and IRRF tables of a tax year" }
func (*tabelasCmd) Usage() string {
	return `clt [-ano <ano> | -tabela <arquivo.yaml>] tabelas

  Shows the brackets, deductions and constants used for a tax year.

Usage Examples:
$ clt -ano 2025 tabelas
$ clt -tabela minha-tabela.yaml tabelas
`
}

func (c *tabelasCmd) SetFlags(f *flag.FlagSet) {}

func (c *tabelasCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	engine, err := NewEngine()
	if err != nil {
		return fail(err)
	}
	ty := engine.TaxYear()
	return report(func() string { return renderer.TaxYearMarkdown(ty) }, ty)
}
