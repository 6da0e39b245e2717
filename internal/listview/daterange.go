package listview

import "time"

// DateRange bounds a createdAt filter by calendar day. A nil bound is open.
// From is inclusive of the day's start (00:00:00.000); To is inclusive of the
// day's end (23:59:59.999).
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// ParseDateRange builds a range from YYYY-MM-DD strings; empty strings leave
// the bound open.
func ParseDateRange(from, to string) (DateRange, error) {
	var r DateRange
	if from != "" {
		parsed, err := time.Parse("2006-01-02", from)
		if err != nil {
			return DateRange{}, err
		}
		r.From = &parsed
	}
	if to != "" {
		parsed, err := time.Parse("2006-01-02", to)
		if err != nil {
			return DateRange{}, err
		}
		r.To = &parsed
	}
	return r, nil
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	if r.From != nil {
		start := time.Date(r.From.Year(), r.From.Month(), r.From.Day(), 0, 0, 0, 0, r.From.Location())
		if t.Before(start) {
			return false
		}
	}
	if r.To != nil {
		end := time.Date(r.To.Year(), r.To.Month(), r.To.Day(), 23, 59, 59, 999000000, r.To.Location())
		if t.After(end) {
			return false
		}
	}
	return true
}

// IsZero reports whether both bounds are open.
func (r DateRange) IsZero() bool {
	return r.From == nil && r.To == nil
}
