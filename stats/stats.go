// Package stats computes derived workout statistics from an in-memory
// snapshot of sessions. Everything here is pure: no store access, no
// clock reads.
package stats

import (
	"sort"

	"treadmill/models"
)

// SeriesPoint is one chart bucket: a label and the distance covered.
type SeriesPoint struct {
	Label    string  `json:"label"`
	Distance float64 `json:"distance"`
}

// TotalDistance sums the distance of all sessions.
func TotalDistance(sessions []models.Session) float64 {
	var total float64
	for _, s := range sessions {
		total += s.Distance
	}
	return total
}

// TotalDuration sums the duration (minutes) of all sessions.
func TotalDuration(sessions []models.Session) float64 {
	var total float64
	for _, s := range sessions {
		total += s.Duration
	}
	return total
}

// AverageDistance is the mean distance per session, 0 for no sessions.
func AverageDistance(sessions []models.Session) float64 {
	if len(sessions) == 0 {
		return 0
	}
	return TotalDistance(sessions) / float64(len(sessions))
}

// Speed converts a session to miles per hour (duration is in minutes).
func Speed(s models.Session) float64 {
	if s.Duration == 0 {
		return 0
	}
	return s.Distance / s.Duration * 60
}

// CurrentStreak counts consecutive calendar days with at least one
// session, anchored at the most recent session date. Multiple sessions on
// one date count that date once. Sessions with unparseable dates are
// skipped.
func CurrentStreak(sessions []models.Session) int {
	seen := make(map[Date]bool, len(sessions))
	dates := make([]Date, 0, len(sessions))
	for _, s := range sessions {
		d, err := ParseDate(s.Date)
		if err != nil || seen[d] {
			continue
		}
		seen[d] = true
		dates = append(dates, d)
	}
	if len(dates) == 0 {
		return 0
	}

	sort.Slice(dates, func(i, j int) bool { return dates[j].Before(dates[i]) })

	streak := 1
	cursor := dates[0]
	for _, d := range dates[1:] {
		if d != cursor.AddDays(-1) {
			break
		}
		streak++
		cursor = d
	}
	return streak
}

// WeekTotal sums distances for the Monday-through-Sunday week containing
// the reference date.
func WeekTotal(sessions []models.Session, ref Date) float64 {
	start := ref.WeekStart()
	return rangeTotal(sessions, start, start.AddDays(6))
}

// MonthTotal sums distances for the calendar month of the reference date.
func MonthTotal(sessions []models.Session, ref Date) float64 {
	var total float64
	for _, s := range sessions {
		d, err := ParseDate(s.Date)
		if err != nil {
			continue
		}
		if d.Year == ref.Year && d.Month == ref.Month {
			total += s.Distance
		}
	}
	return total
}

// WeeklySeries returns one point per calendar week for the n most recent
// weeks ending with the week containing the reference date, oldest first.
func WeeklySeries(sessions []models.Session, ref Date, n int) []SeriesPoint {
	series := make([]SeriesPoint, 0, n)
	current := ref.WeekStart()
	for i := n - 1; i >= 0; i-- {
		start := current.AddDays(-7 * i)
		series = append(series, SeriesPoint{
			Label:    "Week " + start.Time().Format("Jan 2"),
			Distance: rangeTotal(sessions, start, start.AddDays(6)),
		})
	}
	return series
}

// MonthlySeries returns one point per calendar month for the n most
// recent months ending with the reference date's month, oldest first.
func MonthlySeries(sessions []models.Session, ref Date, n int) []SeriesPoint {
	series := make([]SeriesPoint, 0, n)
	for i := n - 1; i >= 0; i-- {
		start := ref.MonthStart().AddMonths(-i)
		series = append(series, SeriesPoint{
			Label:    start.Time().Format("Jan 06"),
			Distance: MonthTotal(sessions, start),
		})
	}
	return series
}

// rangeTotal sums distances for sessions dated within [start, end].
func rangeTotal(sessions []models.Session, start, end Date) float64 {
	var total float64
	for _, s := range sessions {
		d, err := ParseDate(s.Date)
		if err != nil {
			continue
		}
		if !d.Before(start) && !d.After(end) {
			total += s.Distance
		}
	}
	return total
}
