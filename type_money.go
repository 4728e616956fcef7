package trabalhista

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the only currency handled by the calculators.
const Currency = money.BRL

// centsPlaces is the number of fractional digits of a BRL amount.
const centsPlaces = 2

// Money represents an amount of Brazilian reais.
//
// The value is kept with full precision so that chained prorations (salary/30*days, /3)
// do not accumulate rounding errors. Rounding to cents happens explicitly with Round, and
// implicitly when the value is displayed or persisted.
type Money struct {
	value decimal.Decimal
}

// M returns the Money for value, expressed in reais (major unit).
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// String returns the pt-BR representation of the amount, e.g. "R$1.234,56".
func (m Money) String() string {
	// the Money constructor is the only way to get a never nil currency
	cur := money.New(0, Currency).Currency()
	return cur.Formatter().Format(m.value.Shift(centsPlaces).Round(0).IntPart())
}

func (m Money) Decimal() decimal.Decimal     { return m.value }
func (m Money) Equal(n Money) bool           { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                 { return m.value.IsZero() }
func (m Money) IsPositive() bool             { return m.value.IsPositive() }
func (m Money) IsNegative() bool             { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool        { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool     { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                   { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money            { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money            { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(r Rate) Money             { return Money{value: m.value.Mul(r.value)} }

// Prorate returns m * num / den. The multiplication is done first to keep exact results
// whenever the division is exact (e.g. 3000 * 20 / 30).
func (m Money) Prorate(num, den int) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(int64(num))).Div(decimal.NewFromInt(int64(den)))}
}

// Round returns m rounded to cents, half away from zero.
func (m Money) Round() Money { return Money{value: m.value.Round(centsPlaces)} }

// MaxMoney returns the greatest of a and b.
func MaxMoney(a, b Money) Money {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// MinMoney returns the lowest of a and b.
func MinMoney(a, b Money) Money {
	if a.LessThan(b) {
		return a
	}
	return b
}

// amountFormat matches a pt-BR amount once the currency symbol and spaces are removed: dots
// only between groups of three digits, and an optional decimal comma.
var amountFormat = regexp.MustCompile(`^-?(\d{1,3}(\.\d{3})+|\d+)(,\d+)?$`)

// ParseMoney parses a pt-BR formatted amount like "1.234,56" or "R$ 1.234,56".
//
// Dots are thousands separators and the comma is the decimal separator. A dot that does not
// separate groups of three digits, as in "3000.50", is an error.
func ParseMoney(s string) (Money, error) {
	str := strings.TrimSpace(s)
	str = strings.TrimPrefix(str, "R$")
	str = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\u00a0':
			return -1
		}
		return r
	}, str)
	if str == "" {
		return Money{}, fmt.Errorf("invalid amount %q: empty", s)
	}
	if !amountFormat.MatchString(str) {
		return Money{}, fmt.Errorf("invalid amount %q: want a format like 1.234,56", s)
	}
	str = strings.ReplaceAll(str, ".", "")
	str = strings.Replace(str, ",", ".", 1)
	d, err := decimal.NewFromString(str)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: d}, nil
}

// MarshalJSON writes the amount as a JSON number with two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(json.Number(m.value.StringFixed(centsPlaces)))
}
