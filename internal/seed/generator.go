// Package seed produces a plausible multi-week attendance and work-log
// history for a fixed roster. It runs once per fresh installation to give the
// dashboard something to show before real records accumulate. Content is
// randomized but the shape is deterministic: all draws go through an injected
// rand source so property tests can replay a generation pass under a fixed
// seed.
package seed

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"teamops-backend/internal/database/models"
	"teamops-backend/internal/metrics"
)

// StatusMessage marks synthetic attendance rows. Nothing else distinguishes
// seeded records from live-entered ones.
const StatusMessage = "Duty logged."

// Config tunes a generation pass. Zero values are filled by Defaults.
type Config struct {
	MissionStart time.Time
	Today        time.Time

	// One member is hard-capped at CapDays total check-ins regardless of how
	// many eligible days exist; CoreCodes members check in with
	// CoreProbability per eligible day, everyone else with BaseProbability.
	CappedCode      string
	CapDays         int
	CoreCodes       []string
	CoreProbability float64
	BaseProbability float64

	// Check-in hour is CheckInBaseHour + uniform(0, CheckInHourSpread).
	CheckInBaseHour    int
	CheckInHourSpread  int
	InternTaskCount    int
	DefaultTaskCount   int
	ProjectSuffix      string
	BurnoutProbability float64
}

// Defaults returns the reference generation parameters for the given range.
func Defaults(missionStart, today time.Time) Config {
	return Config{
		MissionStart:       missionStart,
		Today:              today,
		CappedCode:         "RAVEN",
		CapDays:            8,
		CoreCodes:          []string{"ROMEO", "FRANKIE", "ARNAZ", "RONIO"},
		CoreProbability:    0.95,
		BaseProbability:    0.70,
		CheckInBaseHour:    8,
		CheckInHourSpread:  1,
		InternTaskCount:    12,
		DefaultTaskCount:   30,
		ProjectSuffix:      " - Project Tea",
		BurnoutProbability: 0.05,
	}
}

// Generator synthesizes history for one roster.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// New creates a generator over the given rand source.
func New(cfg Config, rng *rand.Rand) *Generator {
	return &Generator{cfg: cfg, rng: rng}
}

// AttendanceHistory walks every calendar day from mission start through today,
// skipping weekends and skipping today itself (today's attendance must come
// from live check-in), and decides per member whether they showed up. Each
// produced record gets a RefCode monotonically increasing within this pass.
func (g *Generator) AttendanceHistory(roster []models.TeamMember) []models.AttendanceRecord {
	var records []models.AttendanceRecord

	todayStr := metrics.LocalDateString(g.cfg.Today)
	refSeq := 0
	cappedCount := 0

	for day := dateOnly(g.cfg.MissionStart); !day.After(dateOnly(g.cfg.Today)); day = day.AddDate(0, 0, 1) {
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		dateStr := metrics.LocalDateString(day)
		if dateStr == todayStr {
			continue
		}

		for _, member := range roster {
			checksIn := false
			switch {
			case member.Code == g.cfg.CappedCode:
				if cappedCount < g.cfg.CapDays {
					checksIn = true
					cappedCount++
				}
			case g.isCore(member.Code):
				checksIn = g.rng.Float64() < g.cfg.CoreProbability
			default:
				checksIn = g.rng.Float64() < g.cfg.BaseProbability
			}
			if !checksIn {
				continue
			}

			inHour := g.cfg.CheckInBaseHour + g.rng.Intn(max(1, g.cfg.CheckInHourSpread))
			inMin := g.rng.Intn(60)
			duration := g.sessionHours(member.Code)
			checkIn := fmt.Sprintf("%02d:%02d AM", inHour, inMin)
			checkOut := formatClock(float64(inHour) + float64(inMin)/60 + duration)

			refSeq++
			records = append(records, models.AttendanceRecord{
				MemberID:      member.ID,
				MemberName:    member.Name,
				Date:          dateStr,
				CheckIn:       &checkIn,
				CheckOut:      &checkOut,
				Location:      seedLocations[g.rng.Intn(len(seedLocations))],
				Vibe:          vibes[g.rng.Intn(len(vibes))],
				StatusMessage: StatusMessage,
				RefCode:       fmt.Sprintf("AT-%04d", refSeq),
			})
		}
	}
	return records
}

// WorkLogs generates tasks for every member that has at least one attendance
// day, placing each task on one of that member's own attendance dates so logs
// never appear on days the member was absent. The result is sorted descending
// by timestamp.
func (g *Generator) WorkLogs(roster []models.TeamMember, attendance []models.AttendanceRecord) []models.WorkLogEntry {
	// Done carries double weight in the draw.
	statuses := []models.TaskStatus{
		models.TaskStatusDone,
		models.TaskStatusDone,
		models.TaskStatusInProgress,
		models.TaskStatusNotStarted,
		models.TaskStatusOverdue,
	}

	var logs []models.WorkLogEntry
	refSeq := 0

	for _, member := range roster {
		var memberDates []string
		for i := range attendance {
			if attendance[i].MemberID == member.ID {
				memberDates = append(memberDates, attendance[i].Date)
			}
		}
		if len(memberDates) == 0 {
			continue
		}

		taskCount := g.cfg.DefaultTaskCount
		if strings.Contains(strings.ToLower(member.Role), "intern") {
			taskCount = g.cfg.InternTaskCount
		}
		templates, ok := taskTemplates[member.Role]
		if !ok {
			templates = taskTemplates[fallbackTemplateRole]
		}

		for i := 0; i < taskCount; i++ {
			date := memberDates[g.rng.Intn(len(memberDates))]
			day, err := time.Parse(metrics.DateLayout, date)
			if err != nil {
				continue
			}
			// Log time-of-day falls in the 9 AM - 5 PM window.
			timestamp := day.Add(time.Duration(9+g.rng.Intn(8))*time.Hour + time.Duration(g.rng.Intn(60))*time.Minute)

			risk := models.BurnoutRiskLow
			if g.rng.Float64() < g.cfg.BurnoutProbability {
				risk = models.BurnoutRiskHigh
			}

			refSeq++
			logs = append(logs, models.WorkLogEntry{
				MemberID:        member.ID,
				MemberName:      member.Name,
				TaskName:        templates[g.rng.Intn(len(templates))] + g.cfg.ProjectSuffix,
				Category:        models.AllTaskCategories[g.rng.Intn(len(models.AllTaskCategories))],
				Status:          statuses[g.rng.Intn(len(statuses))],
				DurationMinutes: 45 + g.rng.Intn(90),
				Description:     fmt.Sprintf("Operational trace for mission Node %s.", member.Code),
				Timestamp:       timestamp,
				BurnoutRisk:     &risk,
				RefCode:         fmt.Sprintf("LOG-%04d", refSeq),
			})
		}
	}

	sort.SliceStable(logs, func(i, j int) bool { return logs[i].Timestamp.After(logs[j].Timestamp) })
	return logs
}

func (g *Generator) isCore(code string) bool {
	for _, c := range g.cfg.CoreCodes {
		if c == code {
			return true
		}
	}
	return false
}

// sessionHours draws a role-dependent session length: the capped member works
// a fixed 8.5h day, core members 8.2h plus up to an hour, everyone else a
// short-to-full day between 3.5h and 9.5h.
func (g *Generator) sessionHours(code string) float64 {
	switch {
	case code == g.cfg.CappedCode:
		return 8.5
	case g.isCore(code):
		return 8.2 + g.rng.Float64()
	default:
		return 3.5 + g.rng.Float64()*6
	}
}

// formatClock renders decimal hours as "HH:MM AM|PM" with hour wraparound
// past 12.
func formatClock(decimal float64) string {
	hour := int(math.Floor(decimal))
	minute := int(math.Floor((decimal - float64(hour)) * 60))
	displayHour := hour
	if hour > 12 {
		displayHour = hour - 12
	}
	meridiem := "AM"
	if hour >= 12 {
		meridiem = "PM"
	}
	return fmt.Sprintf("%02d:%02d %s", displayHour, minute, meridiem)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
