package utils

import (
	"math"

	"nutritrack/models"
)

const (
	lbToKg = 0.453592
	inToCm = 2.54

	defaultActivityMult = 1.55

	proteinPerLb  = 1.0
	fatShare      = 0.27
	kcalPerGFat   = 9.0
	kcalPerGCarbs = 4.0
	kcalPerGProt  = 4.0
)

// FallbackGoals is used until a profile with a weight exists.
var FallbackGoals = models.GoalSet{Cal: 2000, Protein: 150, Carbs: 200, Fat: 67}

type ActivityInfo struct {
	Key   models.ActivityLevel `json:"key"`
	Label string               `json:"label"`
	Desc  string               `json:"desc"`
	Mult  float64              `json:"mult"`
}

type GoalInfo struct {
	Key     models.GoalType `json:"key"`
	Label   string          `json:"label"`
	Deficit float64         `json:"deficit"`
}

var activityLevels = []ActivityInfo{
	{Key: models.Sedentary, Label: "Sedentary", Desc: "Desk job", Mult: 1.2},
	{Key: models.Light, Label: "Light", Desc: "1-3x/week exercise", Mult: 1.375},
	{Key: models.Moderate, Label: "Moderate", Desc: "3-5x/week", Mult: 1.55},
	{Key: models.Active, Label: "Very Active", Desc: "6-7x/week", Mult: 1.725},
}

// deficit in kcal/day; negative is a surplus
var goalTypes = []GoalInfo{
	{Key: models.LoseFast, Label: "Lose faster", Deficit: 750},
	{Key: models.Lose, Label: "Lose weight", Deficit: 500},
	{Key: models.Maintain, Label: "Maintain", Deficit: 0},
	{Key: models.Gain, Label: "Build muscle", Deficit: -500},
}

// ActivityLevels returns the activity picker entries in display order.
func ActivityLevels() []ActivityInfo {
	out := make([]ActivityInfo, len(activityLevels))
	copy(out, activityLevels)
	return out
}

// Goals returns the goal picker entries in display order.
func Goals() []GoalInfo {
	out := make([]GoalInfo, len(goalTypes))
	copy(out, goalTypes)
	return out
}

// ActivityMultiplier returns the TDEE multiplier, 1.55 for unknown levels.
func ActivityMultiplier(level models.ActivityLevel) float64 {
	for _, a := range activityLevels {
		if a.Key == level {
			return a.Mult
		}
	}
	return defaultActivityMult
}

// GoalDeficit returns the daily deficit for goal, 0 for unknown goals.
func GoalDeficit(goal models.GoalType) float64 {
	for _, g := range goalTypes {
		if g.Key == goal {
			return g.Deficit
		}
	}
	return 0
}

func IsKnownActivity(level models.ActivityLevel) bool {
	for _, a := range activityLevels {
		if a.Key == level {
			return true
		}
	}
	return false
}

func IsKnownGoal(goal models.GoalType) bool {
	for _, g := range goalTypes {
		if g.Key == goal {
			return true
		}
	}
	return false
}

// CalcBMR applies Mifflin-St Jeor to imperial inputs. Inputs are not
// validated, so nonsense in gives nonsense (possibly negative) out.
func CalcBMR(weightLb, heightIn float64, age int, sex models.Sex) float64 {
	kg := weightLb * lbToKg
	cm := heightIn * inToCm
	base := 10*kg + 6.25*cm - 5*float64(age)
	if sex == models.Male {
		return base + 5
	}
	return base - 161
}

// CalcTDEE is BMR times the activity multiplier.
func CalcTDEE(p models.UserProfile) float64 {
	return CalcBMR(p.Weight, p.Height, p.Age, p.Sex) * ActivityMultiplier(p.Activity)
}

// CalcGoals derives daily targets from a profile. A nil profile or one
// without a weight gets FallbackGoals. Neither calories nor carbs are
// clamped: a steep deficit on a heavy, inactive profile can push carbs
// below zero.
func CalcGoals(p *models.UserProfile) models.GoalSet {
	if p == nil || p.Weight == 0 || math.IsNaN(p.Weight) {
		return FallbackGoals
	}

	cal := roundHalfUp(CalcTDEE(*p) - GoalDeficit(p.Goal))
	protein := roundHalfUp(p.Weight * proteinPerLb)
	fat := roundHalfUp(cal * fatShare / kcalPerGFat)
	carbs := roundHalfUp((cal - protein*kcalPerGProt - fat*kcalPerGFat) / kcalPerGCarbs)

	return models.GoalSet{Cal: cal, Protein: protein, Carbs: carbs, Fat: fat}
}

const (
	TimeframeDay   = "day"
	TimeframeWeek  = "week"
	TimeframeMonth = "month"
)

// TimeframeDays maps a timeframe to its goal multiplier; unknown is a day.
func TimeframeDays(timeframe string) int {
	switch timeframe {
	case TimeframeWeek:
		return 7
	case TimeframeMonth:
		return 30
	default:
		return 1
	}
}

// GoalsFor returns CalcGoals scaled to the timeframe.
func GoalsFor(p *models.UserProfile, timeframe string) models.GoalSet {
	return CalcGoals(p).Scale(float64(TimeframeDays(timeframe)))
}

// roundHalfUp rounds .5 toward +Inf, so -2.5 becomes -2.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
