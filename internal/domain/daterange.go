package domain

import (
	"fmt"
	"time"

	"github.com/mkravets/portfolio-api/internal/errors"
)

// DateRange spans Start to End; a nil End means the range is still open
// ("Present"). An End before Start is not rejected here; the source data
// is trusted to be sane and duration calculations clamp at zero.
type DateRange struct {
	Start time.Time
	End   *time.Time
}

func NewDateRange(start time.Time, end *time.Time) (DateRange, error) {
	if start.IsZero() {
		return DateRange{}, &errors.ValidationError{Field: "start", Message: "start date is required"}
	}
	return DateRange{Start: start, End: end}, nil
}

// ParseDateRange builds a DateRange from ISO-8601 date strings.
// An empty end string means ongoing.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := parseISODate(start)
	if err != nil {
		return DateRange{}, &errors.ValidationError{Field: "start", Message: "invalid start date: " + start}
	}
	if end == "" {
		return NewDateRange(s, nil)
	}
	e, err := parseISODate(end)
	if err != nil {
		return DateRange{}, &errors.ValidationError{Field: "end", Message: "invalid end date: " + end}
	}
	return NewDateRange(s, &e)
}

func parseISODate(v string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}

func (r DateRange) IsOngoing() bool {
	return r.End == nil
}

// Format renders a display string like "Jan 2023 – Present".
func (r DateRange) Format() string {
	start := r.Start.Format("Jan 2006")
	if r.End == nil {
		return start + " – Present"
	}
	return start + " – " + r.End.Format("Jan 2006")
}

// Months counts whole calendar months between Start and the end of the
// range (or now for an open range), adjusting for the day of month.
// Never negative.
func (r DateRange) Months(now time.Time) int {
	end := now
	if r.End != nil {
		end = *r.End
	}
	months := (end.Year()-r.Start.Year())*12 + int(end.Month()) - int(r.Start.Month())
	if end.Day() < r.Start.Day() {
		months--
	}
	return max(0, months)
}

// FormatDuration renders elapsed time in whole years and months,
// e.g. "2 yrs 3 mos", "1 yr", "5 mos".
func (r DateRange) FormatDuration(now time.Time) string {
	months := r.Months(now)
	years := months / 12
	rem := months % 12

	switch {
	case years == 0 && rem == 0:
		return "less than a month"
	case years == 0:
		return pluralize(rem, "mo")
	case rem == 0:
		return pluralize(years, "yr")
	default:
		return pluralize(years, "yr") + " " + pluralize(rem, "mo")
	}
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
