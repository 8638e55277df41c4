// Package reports aggregates costed recipes and vendor prices into the
// figures the reporting endpoints serve. Like costing, it is pure: the
// service layer fetches rows and hands them in.
package reports

import "time"

// UnscheduledKey buckets recipes that have no week assigned.
const UnscheduledKey = "Unscheduled"

// weekKeyLayout formats a week-start date as a grouping key.
const weekKeyLayout = "2006-01-02"

// WeekStartOf normalizes a date to midnight of the Sunday at or before
// it, in the date's location.
func WeekStartOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// WeekKey returns the grouping key for an optional week date.
func WeekKey(week *time.Time) string {
	if week == nil {
		return UnscheduledKey
	}
	return WeekStartOf(*week).Format(weekKeyLayout)
}
