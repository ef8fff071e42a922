package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"nutritrack/models"
	"nutritrack/utils"
)

var goalsFlags struct {
	weight    float64
	height    float64
	age       int
	sex       string
	activity  string
	goal      string
	timeframe string
}

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Print calorie and macro goals for a profile",
	Long: `Print the calorie and macro goals for a body profile as JSON.

Weight is in pounds and height in inches. Unknown activity levels count
as moderate and unknown goals as maintain.`,
	RunE: runGoals,
}

func init() {
	f := goalsCmd.Flags()
	f.Float64Var(&goalsFlags.weight, "weight", 180, "weight in pounds")
	f.Float64Var(&goalsFlags.height, "height", 70, "height in inches")
	f.IntVar(&goalsFlags.age, "age", 30, "age in years")
	f.StringVar(&goalsFlags.sex, "sex", string(models.Male), "male or female")
	f.StringVar(&goalsFlags.activity, "activity", string(models.Moderate), "sedentary, light, moderate or active")
	f.StringVar(&goalsFlags.goal, "goal", string(models.Lose), "lose_fast, lose, maintain or gain")
	f.StringVar(&goalsFlags.timeframe, "timeframe", utils.TimeframeDay, "day, week or month")
}

func runGoals(cmd *cobra.Command, _ []string) error {
	switch models.Sex(goalsFlags.sex) {
	case models.Male, models.Female:
	default:
		return fmt.Errorf("unknown sex %q", goalsFlags.sex)
	}
	p := models.UserProfile{
		Weight:   goalsFlags.weight,
		Height:   goalsFlags.height,
		Age:      goalsFlags.age,
		Sex:      models.Sex(goalsFlags.sex),
		Activity: models.ActivityLevel(goalsFlags.activity),
		Goal:     models.GoalType(goalsFlags.goal),
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"timeframe": goalsFlags.timeframe,
		"bmr":       utils.Round2(utils.CalcBMR(p.Weight, p.Height, p.Age, p.Sex)),
		"tdee":      utils.Round2(utils.CalcTDEE(p)),
		"goals":     utils.GoalsFor(&p, goalsFlags.timeframe),
	})
}
