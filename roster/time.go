package roster

import "time"

// =============================================================================
// DAY - Day-granular calendar date (local calendar fields, no timezone math)
// =============================================================================

// Day is a calendar date. Only year/month/day matter; the engine does no
// timezone conversion beyond reading local calendar fields.
type Day struct {
	Time time.Time
}

// Epoch anchors the rotation phase. Fixed so the phase is stable across
// reloads and across machines. 2024-01-01 is a Monday.
var Epoch = NewDay(2024, time.January, 1)

// Constructors
func NewDay(year int, month time.Month, day int) Day {
	return Day{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func Today() Day {
	now := time.Now()
	return NewDay(now.Year(), now.Month(), now.Day())
}

// ParseDay parses an ISO YYYY-MM-DD date string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Day{}, err
	}
	return NewDay(t.Year(), t.Month(), t.Day()), nil
}

// ISO formats the date as zero-padded YYYY-MM-DD.
func (d Day) ISO() string { return d.Time.Format("2006-01-02") }

func (d Day) String() string { return d.ISO() }

// Comparison
func (d Day) Before(other Day) bool { return d.Time.Before(other.Time) }
func (d Day) After(other Day) bool  { return d.Time.After(other.Time) }
func (d Day) Equal(other Day) bool  { return d.Time.Equal(other.Time) }

// Arithmetic
func (d Day) AddDays(n int) Day {
	t := d.Time.AddDate(0, 0, n)
	return NewDay(t.Year(), t.Month(), t.Day())
}

// Properties
func (d Day) Weekday() time.Weekday { return d.Time.Weekday() }
func (d Day) IsZero() bool          { return d.Time.IsZero() }

// =============================================================================
// WEEK ARITHMETIC - Monday-start weeks, ISO numbering
// =============================================================================

// WeekStart returns the Monday on or before d. Sunday counts as day 7
// of its week, so it maps back to the preceding Monday.
func (d Day) WeekStart() Day {
	wd := int(d.Weekday()) // Sunday == 0
	offset := 1 - wd
	if wd == 0 {
		offset = -6
	}
	return d.AddDays(offset)
}

// WeekDates returns the seven dates Monday..Sunday of the week containing d.
func (d Day) WeekDates() []Day {
	monday := d.WeekStart()
	dates := make([]Day, 7)
	for i := range dates {
		dates[i] = monday.AddDays(i)
	}
	return dates
}

// ISOWeek returns the ISO-8601 week number: week 1 is the week containing
// the year's first Thursday.
func (d Day) ISOWeek() int {
	_, week := d.Time.ISOWeek()
	return week
}

// =============================================================================
// EPOCH DISTANCE - Rotation phase input
// =============================================================================

// DaysSinceEpoch counts whole days from the fixed epoch to d.
// Negative for dates before the epoch.
func DaysSinceEpoch(d Day) int {
	return int(d.Time.Sub(Epoch.Time).Hours() / 24)
}

// WeeksSinceEpoch counts whole weeks from the fixed epoch to d,
// flooring toward negative infinity so pre-epoch dates land in the
// correct week bucket.
func WeeksSinceEpoch(d Day) int {
	return floorDiv(DaysSinceEpoch(d), 7)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
