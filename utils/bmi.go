package utils

import (
	"errors"

	"nutritrack/models"
)

// CalculateBMI expects height in inches and weight in pounds.
func CalculateBMI(heightIn, weightLb float64) (float64, error) {
	if heightIn <= 0 || weightLb <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	heightCm := heightIn * inToCm
	weightKg := weightLb * lbToKg
	// Sanity checks to avoid garbage input
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}

	h := heightCm / 100.0
	return weightKg / (h * h), nil
}

func ProfileBMI(p models.UserProfile) (float64, error) {
	return CalculateBMI(p.Height, p.Weight)
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}
