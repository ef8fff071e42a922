package models

type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

type ActivityLevel string

const (
	Sedentary ActivityLevel = "sedentary"
	Light     ActivityLevel = "light"
	Moderate  ActivityLevel = "moderate"
	Active    ActivityLevel = "active"
)

type GoalType string

const (
	LoseFast GoalType = "lose_fast"
	Lose     GoalType = "lose"
	Maintain GoalType = "maintain"
	Gain     GoalType = "gain"
)

// UserProfile is the onboarding result. Weight is in pounds, height in inches.
type UserProfile struct {
	Name      string        `json:"name"`
	Weight    float64       `json:"weight"`
	Height    float64       `json:"height"`
	Age       int           `json:"age"`
	Sex       Sex           `json:"sex"`
	Activity  ActivityLevel `json:"activity"`
	Goal      GoalType      `json:"goal"`
	Onboarded bool          `json:"onboarded"`
}
