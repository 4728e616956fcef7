package trabalhista

import (
	"errors"
	"testing"
)

func TestEngine_Vacation(t *testing.T) {
	testCases := []struct {
		name string
		year int
		in   VacationInput
		want VacationResult
	}{
		{
			name: "full month without selling days",
			year: 2024,
			in:   VacationInput{Salary: M(3000), Days: 30},
			want: VacationResult{
				VacationBase:        M(3000),
				ConstitutionalThird: M(1000),
				GrossTotal:          M(4000),
				INSS:                M(378.82),
				IRRF:                M(133.84),
				NetTotal:            M(3487.34),
			},
		},
		{
			name: "full month under the 2026 exemption",
			year: 2026,
			in:   VacationInput{Salary: M(3000), Days: 30},
			want: VacationResult{
				VacationBase:        M(3000),
				ConstitutionalThird: M(1000),
				GrossTotal:          M(4000),
				INSS:                M(368.60),
				NetTotal:            M(3631.40),
			},
		},
		{
			name: "twenty days and ten sold",
			year: 2024,
			in:   VacationInput{Salary: M(3000), Days: 20, SellDays: true},
			want: VacationResult{
				VacationBase:        M(2000),
				ConstitutionalThird: M(666.67),
				CashAllowance:       M(1000),
				AllowanceThird:      M(333.33),
				GrossTotal:          M(4000),
				INSS:                M(218.82),
				NetTotal:            M(3781.18),
			},
		},
		{
			name: "twenty days and ten sold in 2026",
			year: 2026,
			in:   VacationInput{Salary: M(3000), Days: 20, SellDays: true},
			want: VacationResult{
				VacationBase:        M(2000),
				ConstitutionalThird: M(666.67),
				CashAllowance:       M(1000),
				AllowanceThird:      M(333.33),
				GrossTotal:          M(4000),
				INSS:                M(215.69),
				NetTotal:            M(3784.31),
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine(t, tc.year)
			got, err := e.Vacation(tc.in)
			if err != nil {
				t.Fatalf("Vacation() unexpected error: %v", err)
			}
			if !got.Salary.Equal(tc.in.Salary) || got.Days != tc.in.Days {
				t.Errorf("Vacation() does not echo its input: %s, %d", got.Salary, got.Days)
			}
			assertMoney(t, "VacationBase", got.VacationBase, tc.want.VacationBase)
			assertMoney(t, "ConstitutionalThird", got.ConstitutionalThird, tc.want.ConstitutionalThird)
			assertMoney(t, "CashAllowance", got.CashAllowance, tc.want.CashAllowance)
			assertMoney(t, "AllowanceThird", got.AllowanceThird, tc.want.AllowanceThird)
			assertMoney(t, "GrossTotal", got.GrossTotal, tc.want.GrossTotal)
			assertMoney(t, "INSS", got.INSS, tc.want.INSS)
			assertMoney(t, "IRRF", got.IRRF, tc.want.IRRF)
			assertMoney(t, "NetTotal", got.NetTotal, tc.want.NetTotal)

			if want := got.GrossTotal.Sub(got.INSS).Sub(got.IRRF); !got.NetTotal.Equal(want) {
				t.Errorf("NetTotal = %s, want GrossTotal - INSS - IRRF = %s", got.NetTotal, want)
			}
		})
	}
}

func TestEngine_Vacation_AllowanceIsExempt(t *testing.T) {
	e := newTestEngine(t, 2024)
	for _, salary := range []float64{1412, 3000, 5500.55, 12000} {
		for days := 1; days <= MaxVacationDays; days++ {
			kept, err := e.Vacation(VacationInput{Salary: M(salary), Days: days})
			if err != nil {
				t.Fatalf("Vacation() unexpected error: %v", err)
			}
			if !kept.CashAllowance.IsZero() || !kept.AllowanceThird.IsZero() {
				t.Errorf("salary %v, %d days: allowance %s + %s without selling days", salary, days, kept.CashAllowance, kept.AllowanceThird)
			}

			sold, err := e.Vacation(VacationInput{Salary: M(salary), Days: days, SellDays: true})
			if err != nil {
				t.Fatalf("Vacation() unexpected error: %v", err)
			}
			// selling days never changes the withholdings
			if !sold.INSS.Equal(kept.INSS) || !sold.IRRF.Equal(kept.IRRF) {
				t.Errorf("salary %v, %d days: selling days changed withholdings: %s/%s vs %s/%s", salary, days, sold.INSS, sold.IRRF, kept.INSS, kept.IRRF)
			}
			if !sold.CashAllowance.Equal(M(salary).Prorate(SoldDays, 30)) {
				t.Errorf("salary %v, %d days: CashAllowance = %s", salary, days, sold.CashAllowance)
			}
		}
	}
}

func TestEngine_Vacation_Idempotent(t *testing.T) {
	e := newTestEngine(t, DefaultTaxYear)
	in := VacationInput{Salary: M(7777.77), Days: 17, SellDays: true, Dependents: 1}
	a, err := e.Vacation(in)
	if err != nil {
		t.Fatalf("Vacation() unexpected error: %v", err)
	}
	b, _ := e.Vacation(in)
	ja, _ := a.MarshalJSON()
	jb, _ := b.MarshalJSON()
	if string(ja) != string(jb) {
		t.Errorf("Vacation() is not idempotent:\n%s\n%s", ja, jb)
	}
}

func TestEngine_Vacation_Preconditions(t *testing.T) {
	e := newTestEngine(t, DefaultTaxYear)
	for _, in := range []VacationInput{
		{Salary: M(0), Days: 30},
		{Salary: M(-100), Days: 30},
		{Salary: M(3000), Days: 0},
		{Salary: M(3000), Days: 31},
		{Salary: M(3000), Days: 30, Dependents: -1},
	} {
		if _, err := e.Vacation(in); !errors.Is(err, ErrPrecondition) {
			t.Errorf("Vacation(%+v) error = %v, want ErrPrecondition", in, err)
		}
	}
}

func TestVacationResult_MarshalJSON(t *testing.T) {
	e := newTestEngine(t, 2024)
	r, err := e.Vacation(VacationInput{Salary: M(3000), Days: 20, SellDays: true})
	if err != nil {
		t.Fatalf("Vacation() unexpected error: %v", err)
	}
	got, err := r.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() unexpected error: %v", err)
	}
	want := `{"grossMonthlySalary":3000.00,"vacationDays":20,"vacationBase":2000.00,"constitutionalThird":666.67,` +
		`"cashAllowance":1000.00,"allowanceThird":333.33,"grossTotal":4000.00,"taxableBase":2666.67,` +
		`"inss":218.82,"irrf":0.00,"netTotal":3781.18}`
	if string(got) != want {
		t.Errorf("MarshalJSON() =\n%s\nwant\n%s", got, want)
	}
}

func TestVacationEntitlement(t *testing.T) {
	cases := []struct {
		absences int
		want     int
	}{
		{0, 30}, {5, 30}, {6, 24}, {14, 24}, {15, 18}, {23, 18}, {24, 12}, {32, 12}, {33, 0}, {100, 0},
	}
	for _, tc := range cases {
		got, err := VacationEntitlement(tc.absences)
		if err != nil {
			t.Fatalf("absences=%d unexpected error: %v", tc.absences, err)
		}
		if got != tc.want {
			t.Errorf("absences=%d want=%d got=%d", tc.absences, tc.want, got)
		}
	}
	if _, err := VacationEntitlement(-1); !errors.Is(err, ErrPrecondition) {
		t.Errorf("VacationEntitlement(-1) error = %v, want ErrPrecondition", err)
	}
}
