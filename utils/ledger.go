package utils

import "nutritrack/models"

const (
	ViewLeft    = "left"
	ViewEaten   = "eaten"
	ViewPlanned = "planned"
	ViewTotal   = "total"
)

// SumNutrients adds up the four nutrients of entries. With confirmedOnly
// only eaten entries count. An empty list sums to zero.
func SumNutrients(entries []models.FoodEntry, confirmedOnly bool) models.NutrientTotals {
	var t models.NutrientTotals
	for _, e := range entries {
		if confirmedOnly && !e.Confirmed {
			continue
		}
		t.Cal += e.Cal
		t.Protein += e.Protein
		t.Carbs += e.Carbs
		t.Fat += e.Fat
	}
	return t
}

// Unconfirmed returns the planned entries as a new slice.
func Unconfirmed(entries []models.FoodEntry) []models.FoodEntry {
	out := make([]models.FoodEntry, 0, len(entries))
	for _, e := range entries {
		if !e.Confirmed {
			out = append(out, e)
		}
	}
	return out
}

func Eaten(entries []models.FoodEntry) models.NutrientTotals {
	return SumNutrients(entries, true)
}

func Planned(entries []models.FoodEntry) models.NutrientTotals {
	return SumNutrients(Unconfirmed(entries), false)
}

// Projected is eaten plus planned.
func Projected(entries []models.FoodEntry) models.NutrientTotals {
	return SumNutrients(entries, false)
}

// Remaining is the calorie budget left after everything eaten or planned.
// Negative means over budget.
func Remaining(goal models.GoalSet, entries []models.FoodEntry) float64 {
	return goal.Cal - Projected(entries).Cal
}

func Ledger(goal models.GoalSet, entries []models.FoodEntry) models.LedgerView {
	projected := Projected(entries)
	return models.LedgerView{
		Goal:      goal,
		Eaten:     Eaten(entries),
		Planned:   Planned(entries),
		Projected: projected,
		Remaining: goal.Cal - projected.Cal,
	}
}

// DisplayValue picks the headline calorie number for a view mode.
// Unknown modes show what is left.
func DisplayValue(v models.LedgerView, mode string) float64 {
	switch mode {
	case ViewEaten:
		return v.Eaten.Cal
	case ViewPlanned:
		return v.Planned.Cal
	case ViewTotal:
		return v.Projected.Cal
	default:
		return v.Remaining
	}
}

// Progress is consumed/goal clamped to [0,1]; 0 when there is no goal.
func Progress(consumed, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	p := consumed / goal
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}
