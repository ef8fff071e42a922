package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(70, 180)
	require.NoError(t, err)
	assert.InDelta(t, 25.83, bmi, 0.01)
	assert.Equal(t, "Overweight", BMICategory(bmi))

	_, err = CalculateBMI(0, 180)
	assert.Error(t, err)

	_, err = CalculateBMI(5, 180)
	assert.Error(t, err)
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(17))
	assert.Equal(t, "Normal weight", BMICategory(22))
	assert.Equal(t, "Obesity class I", BMICategory(32))
	assert.Equal(t, "Obesity class III", BMICategory(45))
}
