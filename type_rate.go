package trabalhista

import (
	"strings"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Rate is a fraction applied to a Money amount, 0.075 stands for 7.5%.
type Rate struct {
	value decimal.Decimal
}

// R returns the Rate for the given fraction.
func R[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Rate {
	return Rate{value: newDecimal(value)}
}

func (r Rate) Decimal() decimal.Decimal { return r.value }
func (r Rate) Equal(s Rate) bool        { return r.value.Equal(s.value) }
func (r Rate) LessThan(s Rate) bool     { return r.value.LessThan(s.value) }
func (r Rate) IsNegative() bool         { return r.value.IsNegative() }

// String returns the rate as a pt-BR percentage, e.g. "7,5%".
func (r Rate) String() string {
	return strings.Replace(r.value.Shift(2).String(), ".", ",", 1) + "%"
}

func (r Rate) MarshalJSON() ([]byte, error) {
	return []byte(r.value.String()), nil
}
