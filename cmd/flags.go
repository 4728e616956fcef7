package cmd

import (
	trabalhista "github.com/gildoamaral/o-trabalhante-calculadora-trabalhista"
	"github.com/gildoamaral/o-trabalhante-calculadora-trabalhista/date"
)

// moneyValue is a flag.Value accepting amounts like "3000", "3.000,00" or "R$ 3.000,00".
type moneyValue struct{ m *trabalhista.Money }

func (v moneyValue) String() string {
	if v.m == nil {
		return ""
	}
	return v.m.String()
}

func (v moneyValue) Set(s string) error {
	m, err := trabalhista.ParseMoney(s)
	if err != nil {
		return err
	}
	*v.m = m
	return nil
}

// dateValue is a flag.Value accepting "2025-01-31" or "31/01/2025".
type dateValue struct{ d *date.Date }

func (v dateValue) String() string {
	if v.d == nil || v.d.IsZero() {
		return ""
	}
	return v.d.String()
}

func (v dateValue) Set(s string) error {
	d, err := date.Parse(s)
	if err != nil {
		return err
	}
	*v.d = d
	return nil
}
