package renderer

import (
	"bytes"
	"fmt"

	trabalhista "github.com/gildoamaral/o-trabalhante-calculadora-trabalhista"
	md "github.com/nao1215/markdown"
)

// TaxYearMarkdown renders the INSS and IRRF tables of a tax year.
func TaxYearMarkdown(ty *trabalhista.TaxYear) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Tabelas de %d", ty.Year))
	if ty.Description != "" {
		doc.PlainText(ty.Description)
	}

	doc.H2("INSS")
	doc.Table(bracketTable(ty.INSS, "Contribuição máxima: "+ty.INSSCeiling().String()))

	doc.H2("IRRF")
	doc.Table(bracketTable(ty.IRRF, ""))

	items := []string{
		fmt.Sprintf("Isenção até %s de rendimentos", ty.ExemptionThreshold),
		fmt.Sprintf("Dedução por dependente: %s", ty.DependentDeduction),
		fmt.Sprintf("Desconto simplificado: %s", ty.SimplifiedDiscount),
	}
	if tr := ty.Transition; tr != nil {
		items = append(items, fmt.Sprintf("Redução até %s de rendimentos: %s - %s x rendimentos", tr.Upper, tr.Intercept, tr.Slope.Decimal()))
	}
	doc.BulletList(items...)

	return doc.String()
}

func bracketTable(t trabalhista.BracketTable, footer string) md.TableSet {
	set := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Faixa", "Alíquota", "Parcela a deduzir"},
	}
	from := trabalhista.Money{}
	for i, b := range t {
		band := fmt.Sprintf("até %s", b.UpperBound)
		switch {
		case b.UpperBound.IsZero() && i == len(t)-1:
			band = fmt.Sprintf("acima de %s", from)
		case i > 0:
			band = fmt.Sprintf("de %s até %s", from.Add(trabalhista.M(0.01)), b.UpperBound)
		}
		set.Rows = append(set.Rows, []string{band, b.Rate.String(), b.Deduction.Round().String()})
		from = b.UpperBound
	}
	if footer != "" {
		set.Rows = append(set.Rows, []string{md.Italic(footer), "", ""})
	}
	return set
}
