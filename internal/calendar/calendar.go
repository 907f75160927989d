package calendar

import (
	"time"
)

type Status string

const (
	StatusBefore Status = "before"
	StatusDuring Status = "during"
	StatusAfter  Status = "after"
)

const (
	// TotalUnits is the number of content units read over the campaign.
	TotalUnits = 30
	// AfterDay is returned by DayIndex once the campaign is over.
	AfterDay = 30

	DefaultDays = 29
)

// DefaultStart is the first day of Ramadan 2026 in Turkey (UTC+3).
var DefaultStart = time.Date(2026, time.February, 19, 0, 0, 0, 0, time.FixedZone("TRT", 3*60*60))

// Calendar describes a fixed campaign window. End is the last instant of the
// final day, inclusive.
type Calendar struct {
	Start time.Time
	End   time.Time
	Days  int
}

func New(start time.Time, days int) Calendar {
	if days <= 0 {
		days = DefaultDays
	}
	end := start.AddDate(0, 0, days).Add(-time.Second)
	return Calendar{Start: start, End: end, Days: days}
}

func Default() Calendar {
	return New(DefaultStart, DefaultDays)
}

// DayIndex returns the 1-based campaign day for now, 0 before the start and
// AfterDay once the window has closed.
func (c Calendar) DayIndex(now time.Time) int {
	if now.Before(c.Start) {
		return 0
	}
	if now.After(c.End) {
		return AfterDay
	}
	return int(now.Sub(c.Start)/(24*time.Hour)) + 1
}

func (c Calendar) Status(now time.Time) Status {
	if now.Before(c.Start) {
		return StatusBefore
	}
	if now.After(c.End) {
		return StatusAfter
	}
	return StatusDuring
}

// DaysUntilStart rounds up; it is 0 once the campaign has started.
func (c Calendar) DaysUntilStart(now time.Time) int {
	if !now.Before(c.Start) {
		return 0
	}
	d := c.Start.Sub(now)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// UnitsForDay maps a campaign day to the content units read that day. The
// last day of a 29-day window covers two units so all 30 are read.
func (c Calendar) UnitsForDay(day int) []int {
	if day < 1 || day > c.Days {
		return []int{}
	}
	if day == c.Days && c.Days < TotalUnits {
		units := make([]int, 0, TotalUnits-c.Days+1)
		for u := day; u <= TotalUnits; u++ {
			units = append(units, u)
		}
		return units
	}
	return []int{day}
}
