package utils

import (
	"time"

	"nutritrack/models"
)

const DateLayout = "2006-01-02"

// DateKey formats the local calendar day of t as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseDateKey(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Monday of t's week.
func StartOfWeek(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return DayStart(t).AddDate(0, 0, -(wd - 1))
}

// TimeframeWindow lists the days a timeframe covers around date: the day
// itself, the Monday-based week, or the calendar month containing date.
func TimeframeWindow(date time.Time, timeframe string) []time.Time {
	var start, end time.Time
	switch timeframe {
	case TimeframeWeek:
		start = StartOfWeek(date)
		end = start.AddDate(0, 0, 6)
	case TimeframeMonth:
		start = time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
		end = start.AddDate(0, 1, -1)
	default:
		start = DayStart(date)
		end = start
	}
	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// MealTimeAt buckets the hour of t: before 11 breakfast, before 15 lunch,
// before 20 dinner, otherwise snack.
func MealTimeAt(t time.Time) models.MealTime {
	h := t.Hour()
	switch {
	case h < 11:
		return models.Breakfast
	case h < 15:
		return models.Lunch
	case h < 20:
		return models.Dinner
	default:
		return models.Snack
	}
}

func MealTimeLabel(m models.MealTime) string {
	switch m {
	case models.Breakfast:
		return "Breakfast"
	case models.Lunch:
		return "Lunch"
	case models.Dinner:
		return "Dinner"
	case models.Snack:
		return "Snack"
	default:
		return "Meal"
	}
}

func IsKnownMealTime(m models.MealTime) bool {
	switch m {
	case models.Breakfast, models.Lunch, models.Dinner, models.Snack:
		return true
	}
	return false
}
