package utils

import (
	"fmt"
	"math"

	"nutritrack/models"
)

// WarningSeverity categorizes how serious the flag is.
type WarningSeverity string

const (
	Info    WarningSeverity = "info"
	Caution WarningSeverity = "caution"
	High    WarningSeverity = "high"
)

// Warning is a structured finding about a day's intake.
type Warning struct {
	Code      string          `json:"code"`
	Severity  WarningSeverity `json:"severity"`
	Message   string          `json:"message"`
	Metric    string          `json:"metric,omitempty"`
	Value     float64         `json:"value,omitempty"`
	Reference string          `json:"reference,omitempty"`
}

// AssessBalance checks macro distribution (AMDR) of totals and whether the
// calorie goal is exceeded. Only emits findings when there is something eaten
// or planned.
func AssessBalance(totals models.NutrientTotals, goal models.GoalSet) []Warning {
	warnings := []Warning{}

	totalFromMacros := kcalPerGCarbs*totals.Carbs + kcalPerGProt*totals.Protein + kcalPerGFat*totals.Fat
	if totalFromMacros > 0 {
		cPct := (kcalPerGCarbs * totals.Carbs) / totalFromMacros
		pPct := (kcalPerGProt * totals.Protein) / totalFromMacros
		fPct := (kcalPerGFat * totals.Fat) / totalFromMacros

		if cPct < 0.45 || cPct > 0.65 {
			warnings = append(warnings, Warning{
				Code:      "amdr_carbs_out_of_range",
				Severity:  Info,
				Message:   fmt.Sprintf("Carbohydrates ~%.0f%% of macro calories (AMDR 45–65%%).", cPct*100),
				Metric:    "carb_%_of_macro_kcal",
				Value:     round2(cPct * 100),
				Reference: dgaRef("AMDR: Carbs 45–65% kcal"),
			})
		}
		if pPct < 0.10 || pPct > 0.35 {
			warnings = append(warnings, Warning{
				Code:      "amdr_protein_out_of_range",
				Severity:  Info,
				Message:   fmt.Sprintf("Protein ~%.0f%% of macro calories (AMDR 10–35%%).", pPct*100),
				Metric:    "protein_%_of_macro_kcal",
				Value:     round2(pPct * 100),
				Reference: dgaRef("AMDR: Protein 10–35% kcal"),
			})
		}
		if fPct < 0.20 || fPct > 0.35 {
			warnings = append(warnings, Warning{
				Code:      "amdr_fat_out_of_range",
				Severity:  Info,
				Message:   fmt.Sprintf("Fat ~%.0f%% of macro calories (AMDR 20–35%%).", fPct*100),
				Metric:    "fat_%_of_macro_kcal",
				Value:     round2(fPct * 100),
				Reference: dgaRef("AMDR: Fat 20–35% kcal"),
			})
		}
	}

	if goal.Cal > 0 && totals.Cal > goal.Cal {
		over := totals.Cal - goal.Cal
		severity := Caution
		if over >= 0.2*goal.Cal {
			severity = High
		}
		warnings = append(warnings, Warning{
			Code:     "calories_over_goal",
			Severity: severity,
			Message:  fmt.Sprintf("About %.0f kcal over the calorie goal.", over),
			Metric:   "kcal_over_goal",
			Value:    round2(over),
		})
	}

	return warnings
}

func dgaRef(where string) string {
	return "Dietary Guidelines for Americans, 2020-2025, " + where
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// Round2 rounds to two decimals for display.
func Round2(f float64) float64 { return round2(f) }
