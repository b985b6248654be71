// Package stats turns an athlete's diary into completion and wellness
// figures. Everything here is a pure function of the entries and a clock.
package stats

import (
	"fmt"
	"math"
	"sort"
	"time"

	"alcyxob/training-diary/internal/calendar"
	"alcyxob/training-diary/internal/domain"
)

type TimeRange string

const (
	RangeWeek  TimeRange = "week"
	RangeMonth TimeRange = "month"
)

// MaxDailyPoints caps the daily series used for charts.
const MaxDailyPoints = 14

func ParseTimeRange(s string) (TimeRange, error) {
	switch TimeRange(s) {
	case RangeWeek, RangeMonth:
		return TimeRange(s), nil
	}
	return "", fmt.Errorf("unknown time range %q", s)
}

// RangeStart is now minus seven days for a week, and the same day number of
// the previous month for a month. The month case uses time.AddDate, so a day
// the previous month lacks overflows forward: March 31 gives March 3
// (or March 2 in a leap year).
func RangeStart(r TimeRange, now time.Time) time.Time {
	if r == RangeMonth {
		return now.AddDate(0, -1, 0)
	}
	return now.AddDate(0, 0, -7)
}

type DayCounts struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
	Partial   int    `json:"partial"`
	Skipped   int    `json:"skipped"`
}

type Statistics struct {
	TimeRange          TimeRange   `json:"timeRange"`
	RangeStart         time.Time   `json:"rangeStart"`
	TotalTrainings     int         `json:"totalTrainings"`
	CompletedTrainings int         `json:"completedTrainings"`
	PartialTrainings   int         `json:"partialTrainings"`
	SkippedTrainings   int         `json:"skippedTrainings"`
	CompletionRate     int         `json:"completionRate"`
	AverageFeeling     float64     `json:"averageFeeling"`
	AverageSleepHours  float64     `json:"averageSleepHours"`
	Daily              []DayCounts `json:"daily"`
}

// Compute aggregates the entries created at or after RangeStart(r, now).
//
// Feeling and sleep averages only look at completed and partial entries.
// Sleep is averaged over the entries that report it; a missing value is not zero.
func Compute(entries []domain.DiaryEntry, r TimeRange, now time.Time) Statistics {
	start := RangeStart(r, now)
	result := Statistics{
		TimeRange:  r,
		RangeStart: start,
		Daily:      []DayCounts{},
	}

	var (
		feelingSum   float64
		feelingCount int
		sleepSum     float64
		sleepCount   int
	)
	byDay := make(map[string]*DayCounts)

	for i := range entries {
		e := &entries[i]
		if e.CreatedAt.Before(start) {
			continue
		}
		result.TotalTrainings++

		key := calendar.DayKey(e.CreatedAt)
		day, ok := byDay[key]
		if !ok {
			day = &DayCounts{Date: key}
			byDay[key] = day
		}

		switch e.Status() {
		case domain.StatusCompleted:
			result.CompletedTrainings++
			day.Completed++
		case domain.StatusPartial:
			result.PartialTrainings++
			day.Partial++
		default:
			result.SkippedTrainings++
			day.Skipped++
			continue
		}

		feelingSum += float64(e.Feeling)
		feelingCount++
		if e.SleepHours != nil {
			sleepSum += *e.SleepHours
			sleepCount++
		}
	}

	if result.TotalTrainings > 0 {
		result.CompletionRate = int(math.Round(
			float64(result.CompletedTrainings) / float64(result.TotalTrainings) * 100,
		))
	}
	if feelingCount > 0 {
		result.AverageFeeling = roundToTenth(feelingSum / float64(feelingCount))
	}
	if sleepCount > 0 {
		result.AverageSleepHours = roundToTenth(sleepSum / float64(sleepCount))
	}

	result.Daily = dailySeries(byDay)
	return result
}

// dailySeries sorts the days ascending and keeps the most recent
// MaxDailyPoints of them. Days without entries are never added.
func dailySeries(byDay map[string]*DayCounts) []DayCounts {
	keys := make([]string, 0, len(byDay))
	for k := range byDay {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > MaxDailyPoints {
		keys = keys[len(keys)-MaxDailyPoints:]
	}

	series := make([]DayCounts, 0, len(keys))
	for _, k := range keys {
		series = append(series, *byDay[k])
	}
	return series
}

func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
