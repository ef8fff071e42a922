package models

import "time"

// MealTime is the slot a food was logged in: breakfast, lunch, dinner or snack.
type MealTime string

const (
	Breakfast MealTime = "B"
	Lunch     MealTime = "L"
	Dinner    MealTime = "D"
	Snack     MealTime = "S"
)

// FoodEntry is one logged (Confirmed) or planned food for a day.
type FoodEntry struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Cal       float64   `json:"cal"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
	Confirmed bool      `json:"confirmed"`
	Time      MealTime  `json:"time,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// CatalogFood is a quick-add food without any log state.
type CatalogFood struct {
	Name    string  `json:"name" yaml:"name"`
	Cal     float64 `json:"cal" yaml:"cal"`
	Protein float64 `json:"protein" yaml:"protein"`
	Carbs   float64 `json:"carbs" yaml:"carbs"`
	Fat     float64 `json:"fat" yaml:"fat"`
}
