package trabalhista

import (
	"errors"
	"testing"
)

func TestEngine_INSS(t *testing.T) {
	testCases := []struct {
		name string
		year int
		base float64
		want float64
	}{
		{name: "zero", year: 2024, base: 0, want: 0},
		{name: "first bracket", year: 2024, base: 1000, want: 75},
		{name: "first bound", year: 2024, base: 1412, want: 105.90},
		{name: "second bracket", year: 2024, base: 2000, want: 158.82},
		{name: "third bracket", year: 2024, base: 4000, want: 378.82},
		{name: "fourth bracket", year: 2024, base: 6000, want: 658.82},
		{name: "ceiling", year: 2024, base: 7786.02, want: 908.86},
		{name: "above ceiling", year: 2024, base: 20000, want: 908.86},
		{name: "2025 ceiling", year: 2025, base: 8157.41, want: 951.63},
		{name: "2026 vacation base", year: 2026, base: 4000, want: 368.60},
		{name: "2026 thirteenth base", year: 2026, base: 3000, want: 248.60},
		{name: "2026 above ceiling", year: 2026, base: 12000, want: 988.09},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine(t, tc.year)
			got, err := e.INSS(M(tc.base))
			if err != nil {
				t.Fatalf("INSS(%v) unexpected error: %v", tc.base, err)
			}
			assertMoney(t, "INSS", got, M(tc.want))
		})
	}
}

func TestEngine_INSS_Properties(t *testing.T) {
	for _, year := range TaxYears() {
		e := newTestEngine(t, year)
		ceiling := e.TaxYear().INSSCeiling()

		// non-negative and non-decreasing
		prev := Money{}
		for base := M(0); base.LessThan(M(10000)); base = base.Add(M(12.34)) {
			got, err := e.INSS(base)
			if err != nil {
				t.Fatalf("%d: INSS(%s) unexpected error: %v", year, base, err)
			}
			if got.IsNegative() {
				t.Errorf("%d: INSS(%s) = %s is negative", year, base, got)
			}
			if got.LessThan(prev) {
				t.Errorf("%d: INSS(%s) = %s is lower than the previous value %s", year, base, got, prev)
			}
			if got.GreaterThan(ceiling) {
				t.Errorf("%d: INSS(%s) = %s is above the ceiling %s", year, base, got, ceiling)
			}
			prev = got
		}

		// continuous at every boundary
		for _, b := range e.TaxYear().INSS {
			at, _ := e.INSS(b.UpperBound)
			before, _ := e.INSS(b.UpperBound.Sub(M(0.01)))
			if jump := at.Sub(before); jump.GreaterThan(M(0.01)) {
				t.Errorf("%d: INSS jumps by %s at %s", year, jump, b.UpperBound)
			}
		}

		// constant above the ceiling
		for _, far := range []float64{1, 1000, 1e6} {
			got, _ := e.INSS(e.TaxYear().INSS.Ceiling().Add(M(far)))
			if !got.Equal(ceiling) {
				t.Errorf("%d: INSS(ceiling+%v) = %s, want %s", year, far, got, ceiling)
			}
		}
	}
}

func TestEngine_IRRF(t *testing.T) {
	testCases := []struct {
		name       string
		year       int
		base       float64
		inss       float64
		dependents int
		want       float64
	}{
		{name: "exempt", year: 2024, base: 2000, inss: 158.82, want: 0},
		{name: "at exemption threshold", year: 2024, base: 2824, inss: 241.26, want: 0},
		{name: "simplified discount wins", year: 2024, base: 3000, inss: 258.82, want: 13.20},
		{name: "vacation of 3000", year: 2024, base: 4000, inss: 378.82, want: 133.84},
		{name: "dependents win over simplified discount", year: 2024, base: 4000, inss: 378.82, dependents: 2, want: 104.86},
		{name: "2026 below new exemption", year: 2026, base: 4999.99, inss: 501.52, want: 0},
		{name: "2026 right above the exemption", year: 2026, base: 5000.01, inss: 501.52, want: 0},
		{name: "2026 transition band", year: 2026, base: 6000, inss: 641.51, want: 385.10},
		{name: "2026 above the transition band", year: 2026, base: 10000, inss: 988.09, want: 1569.55},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine(t, tc.year)
			got, err := e.IRRF(M(tc.base), M(tc.inss), tc.dependents)
			if err != nil {
				t.Fatalf("IRRF() unexpected error: %v", err)
			}
			assertMoney(t, "IRRF", got, M(tc.want))
		})
	}
}

func TestEngine_IRRF_Properties(t *testing.T) {
	for _, year := range TaxYears() {
		e := newTestEngine(t, year)
		threshold := e.TaxYear().ExemptionThreshold
		for base := M(0); base.LessThan(M(15000)); base = base.Add(M(23.45)) {
			inss, _ := e.INSS(base)
			for dependents := 0; dependents < 4; dependents++ {
				got, err := e.IRRF(base, inss, dependents)
				if err != nil {
					t.Fatalf("%d: IRRF(%s) unexpected error: %v", year, base, err)
				}
				if got.IsNegative() {
					t.Errorf("%d: IRRF(%s, %s, %d) = %s is negative", year, base, inss, dependents, got)
				}
				if base.LessThanOrEqual(threshold) && !got.IsZero() {
					t.Errorf("%d: IRRF(%s) = %s, want 0 at or below %s", year, base, got, threshold)
				}
			}
		}
	}
}

func TestEngine_Preconditions(t *testing.T) {
	e := newTestEngine(t, DefaultTaxYear)
	if _, err := e.INSS(M(-1)); !errors.Is(err, ErrPrecondition) {
		t.Errorf("INSS(-1) error = %v, want ErrPrecondition", err)
	}
	if _, err := e.IRRF(M(-1), M(0), 0); !errors.Is(err, ErrPrecondition) {
		t.Errorf("IRRF(-1) error = %v, want ErrPrecondition", err)
	}
	if _, err := e.IRRF(M(1000), M(-1), 0); !errors.Is(err, ErrPrecondition) {
		t.Errorf("IRRF with negative INSS error = %v, want ErrPrecondition", err)
	}
	if _, err := e.IRRF(M(1000), M(0), -1); !errors.Is(err, ErrPrecondition) {
		t.Errorf("IRRF with negative dependents error = %v, want ErrPrecondition", err)
	}
}

func TestNewEngine(t *testing.T) {
	if _, err := NewEngine(nil); !errors.Is(err, ErrInvalidTable) {
		t.Errorf("NewEngine(nil) error = %v, want ErrInvalidTable", err)
	}
	if _, err := NewEngineForYear(1999); err == nil {
		t.Error("NewEngineForYear(1999) expected an error")
	}
	broken := &TaxYear{
		Year: 2000,
		INSS: BracketTable{{UpperBound: M(2000), Rate: R(0.09)}, {UpperBound: M(1000), Rate: R(0.12)}},
		IRRF: BracketTable{{Rate: R(0.1)}},
	}
	if _, err := NewEngine(broken); !errors.Is(err, ErrInvalidTable) {
		t.Errorf("NewEngine(broken) error = %v, want ErrInvalidTable", err)
	}
}
