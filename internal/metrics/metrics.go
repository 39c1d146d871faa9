// Package metrics computes derived attendance and effort figures from raw
// record collections. Every function is pure: inputs are never mutated, the
// reference clock is passed explicitly, and malformed data degrades to a zero
// contribution instead of an error, so one corrupt record cannot poison the
// rest of a computation.
package metrics

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"teamops-backend/internal/database/models"

	"github.com/google/uuid"
)

// DateLayout is the timezone-naive calendar-date format used by attendance records.
const DateLayout = "2006-01-02"

// QualifyingHours is the minimum session length for a day to count toward the streak.
const QualifyingHours = 4.0

// LeaveDayHours is the fixed per-day cost of an "On Leave" record. Partial-day
// leave is not representable.
const LeaveDayHours = 8

// LocalDateString formats t as a timezone-naive calendar date.
func LocalDateString(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseClock converts a "HH:MM AM|PM" time-of-day string to decimal hours
// ("09:30 AM" -> 9.5). Hour 12 AM maps to 0 and hours 1-11 PM add 12.
// Returns ok=false for an empty or malformed string.
func ParseClock(s string) (float64, bool) {
	parts := strings.Fields(s)
	if len(parts) < 2 {
		return 0, false
	}
	clock, meridiem := parts[0], parts[1]
	if meridiem != "AM" && meridiem != "PM" {
		return 0, false
	}

	hm := strings.Split(clock, ":")
	if len(hm) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(hm[0])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(hm[1])
	if err != nil {
		return 0, false
	}

	if meridiem == "PM" && hours < 12 {
		hours += 12
	}
	if meridiem == "AM" && hours == 12 {
		hours = 0
	}
	return float64(hours) + float64(minutes)/60, true
}

// SessionHours computes the length of one attendance session in decimal hours.
// An unparseable check-in yields 0. A missing check-out yields 0 for a past
// day (abandoned session) but is measured against the live clock when the
// record is for today. A check-out earlier than the check-in clamps to 0
// rather than wrapping past midnight.
func SessionHours(checkIn, checkOut *string, isToday bool, now time.Time) float64 {
	if checkIn == nil {
		return 0
	}
	start, ok := ParseClock(*checkIn)
	if !ok {
		return 0
	}

	var end float64
	ended := false
	if checkOut != nil {
		if v, ok := ParseClock(*checkOut); ok {
			end = v
			ended = true
		}
	}
	if !ended && isToday {
		end = float64(now.Hour()) + float64(now.Minute())/60
		ended = true
	}
	if !ended {
		return 0
	}
	return math.Max(0, end-start)
}

// StreakDays returns the cumulative count of qualifying days for one member
// between missionStart and now inclusive. A day qualifies when an attendance
// record exists for it and its session length is at least QualifyingHours.
// Every calendar day is walked, weekends included, and the count never resets
// on a gap: it is a running total of qualifying days, not a contiguous run.
func StreakDays(records []models.AttendanceRecord, memberID uuid.UUID, missionStart, now time.Time) int {
	byDate := make(map[string]*models.AttendanceRecord)
	for i := range records {
		if records[i].MemberID != memberID {
			continue
		}
		if _, seen := byDate[records[i].Date]; !seen {
			byDate[records[i].Date] = &records[i]
		}
	}

	todayStr := LocalDateString(now)
	qualified := 0
	for cursor := midnight(missionStart); !cursor.After(midnight(now)); cursor = cursor.AddDate(0, 0, 1) {
		dateStr := LocalDateString(cursor)
		record, ok := byDate[dateStr]
		if !ok {
			continue
		}
		if SessionHours(record.CheckIn, record.CheckOut, dateStr == todayStr, now) >= QualifyingHours {
			qualified++
		}
	}
	return qualified
}

// CumulativeEffortHours sums session length over every attendance record the
// member has, with no date restriction. Open sessions dated today count up to
// the live clock.
func CumulativeEffortHours(records []models.AttendanceRecord, memberID uuid.UUID, now time.Time) float64 {
	todayStr := LocalDateString(now)
	total := 0.0
	for i := range records {
		if records[i].MemberID != memberID {
			continue
		}
		total += SessionHours(records[i].CheckIn, records[i].CheckOut, records[i].Date == todayStr, now)
	}
	return total
}

// AbsenceHours returns the fixed-rate cost of the member's "On Leave" records.
func AbsenceHours(records []models.AttendanceRecord, memberID uuid.UUID) int {
	days := 0
	for i := range records {
		if records[i].MemberID == memberID && records[i].Location == models.WorkLocationOnLeave {
			days++
		}
	}
	return days * LeaveDayHours
}

// CategoryEffort is one category's share of logged work.
type CategoryEffort struct {
	Category models.TaskCategory `json:"category"`
	Minutes  int                 `json:"minutes"`
	Hours    float64             `json:"hours"`
	Percent  int                 `json:"percent"`
}

// CategoryDistribution groups the given work logs by category and reports
// each category's minutes, hours and rounded percentage share of the total.
// Categories with no logged time are excluded and the result is ordered by
// descending minutes.
func CategoryDistribution(logs []models.WorkLogEntry) []CategoryEffort {
	minutesByCategory := make(map[models.TaskCategory]int)
	total := 0
	for i := range logs {
		minutesByCategory[logs[i].Category] += logs[i].DurationMinutes
		total += logs[i].DurationMinutes
	}

	var out []CategoryEffort
	for _, cat := range models.AllTaskCategories {
		mins := minutesByCategory[cat]
		if mins <= 0 {
			continue
		}
		out = append(out, CategoryEffort{
			Category: cat,
			Minutes:  mins,
			Hours:    float64(mins) / 60,
			Percent:  int(math.Round(float64(mins) / float64(total) * 100)),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Minutes > out[j].Minutes })
	return out
}

// DoneCount returns how many of the given logs are finished.
func DoneCount(logs []models.WorkLogEntry) int {
	n := 0
	for i := range logs {
		if logs[i].Status == models.TaskStatusDone {
			n++
		}
	}
	return n
}

// DistinctCategories returns the number of categories the given logs touch.
func DistinctCategories(logs []models.WorkLogEntry) int {
	seen := make(map[models.TaskCategory]struct{})
	for i := range logs {
		seen[logs[i].Category] = struct{}{}
	}
	return len(seen)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
