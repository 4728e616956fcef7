package renderer

import (
	"bytes"
	"fmt"

	trabalhista "github.com/gildoamaral/o-trabalhante-calculadora-trabalhista"
	md "github.com/nao1215/markdown"
)

// VacationMarkdown renders the breakdown of a vacation payment.
func VacationMarkdown(r *trabalhista.VacationResult, ty *trabalhista.TaxYear) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Férias de %d dias", r.Days))
	doc.PlainText(fmt.Sprintf("Salário bruto: %s. Tabelas de %d.", r.Salary, ty.Year))

	rows := [][]string{
		{fmt.Sprintf("Férias (%d dias)", r.Days), r.VacationBase.String()},
		{"1/3 constitucional", r.ConstitutionalThird.String()},
	}
	if !r.CashAllowance.IsZero() {
		rows = append(rows,
			[]string{fmt.Sprintf("Abono pecuniário (%d dias)", trabalhista.SoldDays), r.CashAllowance.String()},
			[]string{"1/3 sobre abono", r.AllowanceThird.String()},
		)
	}
	doc.H2("Proventos")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Total bruto"), md.Bold(r.GrossTotal.String())},
		Rows:      rows,
	})

	doc.H2("Descontos")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Base de cálculo", r.TaxableBase().String()},
		Rows: [][]string{
			{"INSS", negative(r.INSS)},
			{"IRRF", negative(r.IRRF)},
		},
	})
	if !r.CashAllowance.IsZero() {
		doc.PlainText(md.Italic("O abono pecuniário e seu 1/3 são isentos de INSS e IRRF."))
	}

	doc.H2(fmt.Sprintf("Total líquido: %s", r.NetTotal))

	return doc.String()
}

// negative formats a discount, zero is shown as a dash.
func negative(m trabalhista.Money) string {
	if m.IsZero() {
		return "-"
	}
	return "-" + m.String()
}
