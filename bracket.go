package trabalhista

import (
	"errors"
	"fmt"
)

// ErrInvalidTable is returned when a bracket table breaks one of its invariants.
var ErrInvalidTable = errors.New("invalid bracket table")

// Bracket is one band of a progressive table.
//
// A Bracket covers the amounts from the previous bracket's UpperBound (excluded) up to
// its own UpperBound (included). A zero UpperBound on the last bracket means the band is
// open ended.
type Bracket struct {
	UpperBound Money `json:"upperBound"`
	Rate       Rate  `json:"rate"`
	Deduction  Money `json:"deduction"` // amount to deduct when the whole base is taxed at Rate
}

// BracketTable is an ordered list of brackets, ascending by UpperBound.
type BracketTable []Bracket

// Open reports whether the last bracket is unbounded.
func (t BracketTable) Open() bool {
	return len(t) > 0 && t[len(t)-1].UpperBound.IsZero()
}

// Ceiling returns the highest bound of a closed table, and zero for an open one.
func (t BracketTable) Ceiling() Money {
	if len(t) == 0 {
		return Money{}
	}
	return t[len(t)-1].UpperBound
}

// Find returns the index of the bracket covering base.
//
// The scan is ascending and stops at the first bracket whose bound is greater than or
// equal to base. Amounts above a closed table fall into its last bracket.
func (t BracketTable) Find(base Money) int {
	for i, b := range t {
		if b.UpperBound.IsZero() && i == len(t)-1 {
			return i
		}
		if base.LessThanOrEqual(b.UpperBound) {
			return i
		}
	}
	return len(t) - 1
}

// lower returns the lower bound of the i-th bracket.
func (t BracketTable) lower(i int) Money {
	if i == 0 {
		return Money{}
	}
	return t[i-1].UpperBound
}

// Cumulative applies each bracket's rate to the slice of base it covers and sums the
// results. Above a closed table only the slices up to the ceiling are taxed.
func (t BracketTable) Cumulative(base Money) Money {
	var total Money
	for i, b := range t {
		lo := t.lower(i)
		if !base.GreaterThan(lo) {
			break
		}
		hi := base
		if !(b.UpperBound.IsZero() && i == len(t)-1) {
			hi = MinMoney(base, b.UpperBound)
		}
		total = total.Add(hi.Sub(lo).Mul(b.Rate))
	}
	return total
}

// Flat taxes the whole base at the rate of the bracket covering it, minus that bracket's
// deduction. The result can be negative, callers clamp it.
func (t BracketTable) Flat(base Money) Money {
	if len(t) == 0 {
		return Money{}
	}
	b := t[t.Find(base)]
	return base.Mul(b.Rate).Sub(b.Deduction)
}

// Deductions derives, for each bracket, the deduction that makes Flat equal to
// Cumulative inside that bracket.
func (t BracketTable) Deductions() []Money {
	res := make([]Money, len(t))
	for i := 1; i < len(t); i++ {
		step := t[i].Rate.Decimal().Sub(t[i-1].Rate.Decimal())
		res[i] = res[i-1].Add(t[i-1].UpperBound.Mul(Rate{value: step}))
	}
	return res
}

// WithDeductions returns a copy of t where every bracket carries the deduction derived
// by Deductions.
func (t BracketTable) WithDeductions() BracketTable {
	ded := t.Deductions()
	res := make(BracketTable, len(t))
	for i, b := range t {
		b.Deduction = ded[i]
		res[i] = b
	}
	return res
}

// Validate checks the structural invariants of the table: at least one bracket, strictly
// increasing bounds, rates within [0, 1] and non-decreasing.
func (t BracketTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: no brackets", ErrInvalidTable)
	}
	for i, b := range t {
		if b.Rate.IsNegative() || b.Rate.Decimal().GreaterThan(newDecimal(1)) {
			return fmt.Errorf("%w: bracket %d has rate %s outside [0%%, 100%%]", ErrInvalidTable, i, b.Rate)
		}
		if b.Deduction.IsNegative() {
			return fmt.Errorf("%w: bracket %d has a negative deduction %s", ErrInvalidTable, i, b.Deduction)
		}
		if b.UpperBound.IsZero() {
			if i != len(t)-1 {
				return fmt.Errorf("%w: only the last bracket can be open, got bracket %d", ErrInvalidTable, i)
			}
		} else if !b.UpperBound.IsPositive() {
			return fmt.Errorf("%w: bracket %d has a negative bound %s", ErrInvalidTable, i, b.UpperBound)
		}
		if i == 0 {
			continue
		}
		prev := t[i-1]
		if !b.UpperBound.IsZero() && !b.UpperBound.GreaterThan(prev.UpperBound) {
			return fmt.Errorf("%w: bound %s of bracket %d is not greater than %s", ErrInvalidTable, b.UpperBound, i, prev.UpperBound)
		}
		if b.Rate.LessThan(prev.Rate) {
			return fmt.Errorf("%w: rate %s of bracket %d is lower than %s", ErrInvalidTable, b.Rate, i, prev.Rate)
		}
	}
	return nil
}

// ValidateContinuity checks that Flat does not jump at any boundary: both neighbouring
// brackets must produce the same tax, within a cent, on the shared bound.
func (t BracketTable) ValidateContinuity() error {
	cent := M(0.01)
	for i := 0; i < len(t)-1; i++ {
		bound := t[i].UpperBound
		left := bound.Mul(t[i].Rate).Sub(t[i].Deduction)
		right := bound.Mul(t[i+1].Rate).Sub(t[i+1].Deduction)
		diff := left.Sub(right)
		if diff.IsNegative() {
			diff = diff.Neg()
		}
		if diff.GreaterThan(cent) {
			return fmt.Errorf("%w: deductions of brackets %d and %d disagree by %s at %s", ErrInvalidTable, i, i+1, diff, bound)
		}
	}
	return nil
}
