package trabalhista

import "testing"

// newTestEngine returns an Engine bound to the built-in tables of year.
func newTestEngine(t *testing.T, year int) *Engine {
	t.Helper()
	e, err := NewEngineForYear(year)
	if err != nil {
		t.Fatalf("NewEngineForYear(%d) failed: %v", year, err)
	}
	return e
}

// assertMoney fails when got is not want, compared to the cent.
func assertMoney(t *testing.T, name string, got, want Money) {
	t.Helper()
	if !got.Round().Equal(want.Round()) {
		t.Errorf("%s = %s (%s), want %s", name, got, got.Decimal(), want)
	}
}
