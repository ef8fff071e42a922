package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"nutritrack/models"
	"nutritrack/utils"
)

var ErrInvalidRange = errors.New("`to` must be on/after `from`")

// maxRangeDays bounds one analytics request.
const maxRangeDays = 366

type AnalyticsService struct {
	foods    *FoodLogService
	profiles *ProfileService
}

func NewAnalyticsService(foods *FoodLogService, profiles *ProfileService) *AnalyticsService {
	return &AnalyticsService{foods: foods, profiles: profiles}
}

type DayRow struct {
	Date      string                `json:"date"`
	Eaten     models.NutrientTotals `json:"eaten"`
	Projected models.NutrientTotals `json:"projected"`
	Percent   map[string]float64    `json:"percent"`
	Logged    int                   `json:"logged"`
}

type NutrAvg struct {
	AvgEaten   float64 `json:"avg_eaten"`
	AvgGoal    float64 `json:"avg_goal"`
	AvgPercent float64 `json:"avg_percent"`
	Unit       string  `json:"unit"`
}

type RangeReport struct {
	From   string             `json:"from"`
	To     string             `json:"to"`
	Goal   models.GoalSet     `json:"goal"`
	Days   []DayRow           `json:"days"`
	Macros map[string]NutrAvg `json:"macros"`

	DaysLogged int `json:"days_logged"`
	// DaysOnTarget counts days where eaten calories stayed within the goal.
	DaysOnTarget int `json:"days_on_target"`
}

// Range compares each day's eaten totals against the current daily goal.
// Days with nothing logged count toward the averages as zero.
func (s *AnalyticsService) Range(ctx context.Context, from, to time.Time) (*RangeReport, error) {
	from, to = utils.DayStart(from), utils.DayStart(to)
	if to.Before(from) {
		return nil, ErrInvalidRange
	}
	if to.Sub(from) > maxRangeDays*24*time.Hour {
		return nil, fmt.Errorf("range longer than %d days", maxRangeDays)
	}

	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	goal := utils.CalcGoals(profile)

	type acc struct{ sum, psum float64 }
	m := map[string]*acc{"calories": {}, "protein": {}, "carbs": {}, "fat": {}}

	out := &RangeReport{From: utils.DateKey(from), To: utils.DateKey(to), Goal: goal}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		foods, err := s.foods.List(ctx, d)
		if err != nil {
			return nil, err
		}
		eaten := utils.Eaten(foods)
		row := DayRow{
			Date:      utils.DateKey(d),
			Eaten:     eaten,
			Projected: utils.Projected(foods),
			Logged:    len(foods),
			Percent: map[string]float64{
				"calories": pct(eaten.Cal, goal.Cal),
				"protein":  pct(eaten.Protein, goal.Protein),
				"carbs":    pct(eaten.Carbs, goal.Carbs),
				"fat":      pct(eaten.Fat, goal.Fat),
			},
		}
		out.Days = append(out.Days, row)

		if len(foods) > 0 {
			out.DaysLogged++
			if eaten.Cal <= goal.Cal {
				out.DaysOnTarget++
			}
		}

		m["calories"].sum += eaten.Cal
		m["protein"].sum += eaten.Protein
		m["carbs"].sum += eaten.Carbs
		m["fat"].sum += eaten.Fat
		for k, p := range row.Percent {
			m[k].psum += p
		}
	}

	n := len(out.Days)
	out.Macros = map[string]NutrAvg{
		"calories": {AvgEaten: avg(m["calories"].sum, n), AvgGoal: goal.Cal, AvgPercent: avg(m["calories"].psum, n), Unit: "kcal"},
		"protein":  {AvgEaten: avg(m["protein"].sum, n), AvgGoal: goal.Protein, AvgPercent: avg(m["protein"].psum, n), Unit: "g"},
		"carbs":    {AvgEaten: avg(m["carbs"].sum, n), AvgGoal: goal.Carbs, AvgPercent: avg(m["carbs"].psum, n), Unit: "g"},
		"fat":      {AvgEaten: avg(m["fat"].sum, n), AvgGoal: goal.Fat, AvgPercent: avg(m["fat"].psum, n), Unit: "g"},
	}
	return out, nil
}

const exportSheet = "History"

// Export writes the Range report as an xlsx workbook.
func (s *AnalyticsService) Export(ctx context.Context, from, to time.Time, w io.Writer) error {
	report, err := s.Range(ctx, from, to)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return fmt.Errorf("error creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	f.SetCellValue(exportSheet, "A1", fmt.Sprintf("Period: %s - %s", report.From, report.To))
	f.SetCellValue(exportSheet, "A2", fmt.Sprintf("Daily goal: %.0f kcal, %.0fg protein, %.0fg carbs, %.0fg fat",
		report.Goal.Cal, report.Goal.Protein, report.Goal.Carbs, report.Goal.Fat))

	headers := []string{"Date", "Calories", "Protein (g)", "Carbs (g)", "Fat (g)", "Planned kcal", "Calories %", "Items"}
	headerStyle, styleErr := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		f.SetCellValue(exportSheet, cell, h)
		if styleErr == nil {
			f.SetCellStyle(exportSheet, cell, cell, headerStyle)
		}
	}

	for r, day := range report.Days {
		row := []any{
			day.Date,
			day.Eaten.Cal,
			day.Eaten.Protein,
			day.Eaten.Carbs,
			day.Eaten.Fat,
			day.Projected.Cal - day.Eaten.Cal,
			day.Percent["calories"],
			day.Logged,
		}
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+5)
			f.SetCellValue(exportSheet, cell, v)
		}
	}

	_, err = f.WriteTo(w)
	return err
}

func pct(actual, goal float64) float64 {
	if goal <= 0 {
		if actual <= 0 {
			return 0
		}
		return 100
	}
	return utils.Round2((actual / goal) * 100.0)
}

func avg(sum float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return utils.Round2(sum / float64(n))
}
