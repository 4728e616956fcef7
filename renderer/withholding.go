package renderer

import (
	"bytes"
	"fmt"

	trabalhista "github.com/gildoamaral/o-trabalhante-calculadora-trabalhista"
	md "github.com/nao1215/markdown"
)

// Withholding is the result of a standalone INSS or IRRF computation.
type Withholding struct {
	Year       int               `json:"taxYear"`
	Base       trabalhista.Money `json:"base"`
	INSS       trabalhista.Money `json:"inss"`
	IRRF       trabalhista.Money `json:"irrf"`
	Dependents int               `json:"dependents,omitempty"`
}

// WithholdingMarkdown renders the withholdings computed on a single base.
func WithholdingMarkdown(w Withholding) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Descontos sobre %s", w.Base))
	rows := [][]string{
		{"INSS", negative(w.INSS)},
		{"IRRF", negative(w.IRRF)},
	}
	if w.Dependents > 0 {
		rows = append(rows, []string{"Dependentes", fmt.Sprint(w.Dependents)})
	}
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{fmt.Sprintf("Tabelas de %d", w.Year), ""},
		Rows:      rows,
	})
	doc.PlainText(fmt.Sprintf("Líquido: %s", w.Base.Sub(w.INSS).Sub(w.IRRF)))
	return doc.String()
}
