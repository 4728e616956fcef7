package renderer

import (
	"bytes"
	"fmt"

	trabalhista "github.com/gildoamaral/o-trabalhante-calculadora-trabalhista"
	md "github.com/nao1215/markdown"
)

// ThirteenthMarkdown renders the breakdown of a thirteenth salary payment.
func ThirteenthMarkdown(r *trabalhista.ThirteenthResult, ty *trabalhista.TaxYear) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("13º salário: %d/12 avos", r.Months))
	doc.PlainText(fmt.Sprintf("Salário bruto: %s. Tabelas de %d.", r.Salary, ty.Year))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Valor proporcional"), md.Bold(r.ProportionalValue.String())},
		Rows: [][]string{
			{"INSS", negative(r.INSS)},
			{"IRRF", negative(r.IRRF)},
			{md.Bold("Total líquido"), md.Bold(r.NetTotal.String())},
		},
	})

	if r.SingleInstallment {
		doc.H2("Parcela única")
		doc.PlainText(fmt.Sprintf("Paga até 20 de dezembro: %s.", r.SecondInstallmentNet()))
		return doc.String()
	}

	doc.H2("Parcelas")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Parcela", "Bruto", "Líquido"},
		Rows: [][]string{
			{"1ª (até 30/11)", r.FirstInstallmentGross.String(), r.FirstInstallmentNet().String()},
			{"2ª (até 20/12)", r.SecondInstallmentGross.String(), r.SecondInstallmentNet().String()},
		},
	})
	doc.PlainText(md.Italic("INSS e IRRF incidem sobre o valor integral e são descontados na 2ª parcela."))

	return doc.String()
}
