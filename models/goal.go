package models

// GoalSet holds calorie (kcal) and macro (g) targets.
type GoalSet struct {
	Cal     float64 `json:"cal"`
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// Scale returns the targets for n days, e.g. Scale(7) for a week.
func (g GoalSet) Scale(n float64) GoalSet {
	return GoalSet{
		Cal:     g.Cal * n,
		Protein: g.Protein * n,
		Carbs:   g.Carbs * n,
		Fat:     g.Fat * n,
	}
}

// NutrientTotals is an unrounded sum over food entries.
type NutrientTotals struct {
	Cal     float64 `json:"cal"`
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// LedgerView is the set of derived totals shown on the day screen.
type LedgerView struct {
	Goal      GoalSet        `json:"goal"`
	Eaten     NutrientTotals `json:"eaten"`
	Planned   NutrientTotals `json:"planned"`
	Projected NutrientTotals `json:"projected"`
	Remaining float64        `json:"remaining"`
}
