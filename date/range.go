package date

import "fmt"

// Range represents a range of dates, both boundaries included.
type Range struct{ From, To Date }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days returns the number of calendar days in the range, boundaries included. It is zero
// or negative when To is before From.
func (r Range) Days() int { return r.To.Sub(r.From) + 1 }

// Validate checks that the range is not reversed.
func (r Range) Validate() error {
	if r.To.Before(r.From) {
		return fmt.Errorf("invalid range: end %s is before start %s", r.To, r.From)
	}
	return nil
}

func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
