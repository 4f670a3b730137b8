package stats

import (
	"math"
	"testing"

	"treadmill/models"
)

func session(date string, distance, duration float64) models.Session {
	return models.Session{Date: date, Distance: distance, Duration: duration}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTotalsAndAverage(t *testing.T) {
	sessions := []models.Session{
		session("2024-06-01", 3.0, 30),
		session("2024-06-02", 5.0, 45),
	}
	if got := TotalDistance(sessions); !almostEqual(got, 8.0) {
		t.Errorf("TotalDistance = %v, want 8.0", got)
	}
	if got := TotalDuration(sessions); !almostEqual(got, 75) {
		t.Errorf("TotalDuration = %v, want 75", got)
	}
	if got := AverageDistance(sessions); !almostEqual(got, 4.0) {
		t.Errorf("AverageDistance = %v, want 4.0", got)
	}
}

func TestAverageDistanceEmptyIsZero(t *testing.T) {
	if got := AverageDistance(nil); got != 0 {
		t.Errorf("AverageDistance(nil) = %v, want 0", got)
	}
}

func TestSpeed(t *testing.T) {
	if got := Speed(session("2024-06-01", 3.0, 30)); !almostEqual(got, 6.0) {
		t.Errorf("Speed = %v, want 6.0 mph", got)
	}
	if got := Speed(models.Session{}); got != 0 {
		t.Errorf("Speed of zero-duration session = %v, want 0", got)
	}
}

func TestCurrentStreakConsecutiveDays(t *testing.T) {
	sessions := []models.Session{
		session("2024-06-03", 2, 20),
		session("2024-06-02", 3, 30),
		session("2024-06-01", 4, 40),
	}
	if got := CurrentStreak(sessions); got != 3 {
		t.Errorf("CurrentStreak = %d, want 3", got)
	}
}

func TestCurrentStreakGapBreaksChain(t *testing.T) {
	sessions := []models.Session{
		session("2024-06-04", 2, 20),
		session("2024-06-01", 3, 30),
	}
	if got := CurrentStreak(sessions); got != 1 {
		t.Errorf("CurrentStreak = %d, want 1", got)
	}
}

func TestCurrentStreakEdges(t *testing.T) {
	if got := CurrentStreak(nil); got != 0 {
		t.Errorf("CurrentStreak(nil) = %d, want 0", got)
	}
	if got := CurrentStreak([]models.Session{session("2024-06-01", 3, 30)}); got != 1 {
		t.Errorf("single session streak = %d, want 1", got)
	}
}

func TestCurrentStreakSameDayCountsOnce(t *testing.T) {
	// Two runs on the anchor day, then the day before: streak is 2, and
	// the duplicate neither double-counts nor breaks the chain.
	sessions := []models.Session{
		session("2024-06-02", 2, 20),
		session("2024-06-02", 1, 10),
		session("2024-06-01", 3, 30),
	}
	if got := CurrentStreak(sessions); got != 2 {
		t.Errorf("CurrentStreak = %d, want 2", got)
	}
}

func TestCurrentStreakUnsortedInput(t *testing.T) {
	sessions := []models.Session{
		session("2024-06-01", 4, 40),
		session("2024-06-03", 2, 20),
		session("2024-06-02", 3, 30),
	}
	if got := CurrentStreak(sessions); got != 3 {
		t.Errorf("CurrentStreak = %d, want 3", got)
	}
}

func TestWeekTotalMondayThroughSunday(t *testing.T) {
	// Reference 2024-06-12 is a Wednesday; its week is Mon 06-10 through
	// Sun 06-16.
	ref := Date{Year: 2024, Month: 6, Day: 12}
	sessions := []models.Session{
		session("2024-06-09", 9, 90),  // prior Sunday, out
		session("2024-06-10", 2, 20),  // Monday, in
		session("2024-06-12", 3, 30),  // reference day, in
		session("2024-06-16", 4, 40),  // Sunday, in
		session("2024-06-17", 10, 50), // next Monday, out
	}
	if got := WeekTotal(sessions, ref); !almostEqual(got, 9.0) {
		t.Errorf("WeekTotal = %v, want 9.0", got)
	}
}

func TestWeekTotalSundayReference(t *testing.T) {
	// A Sunday reference still anchors to the Monday six days earlier.
	ref := Date{Year: 2024, Month: 6, Day: 16}
	sessions := []models.Session{
		session("2024-06-10", 2, 20),
		session("2024-06-16", 4, 40),
	}
	if got := WeekTotal(sessions, ref); !almostEqual(got, 6.0) {
		t.Errorf("WeekTotal = %v, want 6.0", got)
	}
}

func TestMonthTotal(t *testing.T) {
	ref := Date{Year: 2024, Month: 6, Day: 15}
	sessions := []models.Session{
		session("2024-05-31", 9, 90),
		session("2024-06-01", 2, 20),
		session("2024-06-30", 3, 30),
		session("2024-07-01", 9, 90),
	}
	if got := MonthTotal(sessions, ref); !almostEqual(got, 5.0) {
		t.Errorf("MonthTotal = %v, want 5.0", got)
	}
}

func TestWeeklySeriesShapeAndOrder(t *testing.T) {
	ref := Date{Year: 2024, Month: 6, Day: 12}
	sessions := []models.Session{
		session("2024-06-10", 2, 20), // current week
		session("2024-06-05", 5, 50), // previous week
	}
	series := WeeklySeries(sessions, ref, 12)
	if len(series) != 12 {
		t.Fatalf("len(series) = %d, want 12", len(series))
	}
	if !almostEqual(series[11].Distance, 2.0) {
		t.Errorf("newest week distance = %v, want 2.0", series[11].Distance)
	}
	if !almostEqual(series[10].Distance, 5.0) {
		t.Errorf("previous week distance = %v, want 5.0", series[10].Distance)
	}
	if series[11].Label != "Week Jun 10" {
		t.Errorf("newest label = %q, want %q", series[11].Label, "Week Jun 10")
	}
	if series[10].Label != "Week Jun 3" {
		t.Errorf("previous label = %q, want %q", series[10].Label, "Week Jun 3")
	}
}

func TestMonthlySeriesShapeAndOrder(t *testing.T) {
	ref := Date{Year: 2024, Month: 6, Day: 15}
	sessions := []models.Session{
		session("2024-06-02", 3, 30),
		session("2024-05-20", 7, 70),
		session("2023-07-01", 100, 60), // oldest month still inside the window
	}
	series := MonthlySeries(sessions, ref, 12)
	if len(series) != 12 {
		t.Fatalf("len(series) = %d, want 12", len(series))
	}
	if series[0].Label != "Jul 23" {
		t.Errorf("oldest label = %q, want %q", series[0].Label, "Jul 23")
	}
	if series[11].Label != "Jun 24" {
		t.Errorf("newest label = %q, want %q", series[11].Label, "Jun 24")
	}
	if !almostEqual(series[11].Distance, 3.0) {
		t.Errorf("June total = %v, want 3.0", series[11].Distance)
	}
	if !almostEqual(series[10].Distance, 7.0) {
		t.Errorf("May total = %v, want 7.0", series[10].Distance)
	}
	if !almostEqual(series[0].Distance, 100.0) {
		t.Errorf("Jul 23 total = %v, want 100.0", series[0].Distance)
	}
}

func TestScenarioTwoConsecutiveSessions(t *testing.T) {
	sessions := []models.Session{
		session("2024-06-01", 3.0, 30),
		session("2024-06-02", 5.0, 45),
	}
	if got := TotalDistance(sessions); !almostEqual(got, 8.0) {
		t.Errorf("TotalDistance = %v, want 8.0", got)
	}
	if got := AverageDistance(sessions); !almostEqual(got, 4.0) {
		t.Errorf("AverageDistance = %v, want 4.0", got)
	}
	if got := CurrentStreak(sessions); got != 2 {
		t.Errorf("CurrentStreak = %d, want 2", got)
	}
}
