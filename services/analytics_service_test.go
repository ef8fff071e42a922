package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestAnalytics_Range(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.onboard(t)

	_, err := env.foods.Add(ctx, day("2024-03-01"), FoodInput{Name: "Chicken", Cal: 300, Protein: 55, Fat: 6}, false)
	require.NoError(t, err)
	_, err = env.foods.Add(ctx, day("2024-03-01"), FoodInput{Name: "Yogurt", Cal: 150, Protein: 15, Carbs: 20}, true)
	require.NoError(t, err)
	_, err = env.foods.Add(ctx, day("2024-03-03"), FoodInput{Name: "Feast", Cal: 3000}, false)
	require.NoError(t, err)

	r, err := env.analytics.Range(ctx, day("2024-03-01"), day("2024-03-04"))
	require.NoError(t, err)
	require.Len(t, r.Days, 4)

	assert.Equal(t, 300.0, r.Days[0].Eaten.Cal)
	assert.Equal(t, 450.0, r.Days[0].Projected.Cal)
	assert.Equal(t, 2, r.Days[0].Logged)
	assert.Equal(t, 13.26, r.Days[0].Percent["calories"])
	assert.Equal(t, 2, r.DaysLogged)
	assert.Equal(t, 1, r.DaysOnTarget)
	assert.Equal(t, 825.0, r.Macros["calories"].AvgEaten)
	assert.Equal(t, 2263.0, r.Macros["calories"].AvgGoal)
}

func TestAnalytics_InvalidRange(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.analytics.Range(context.Background(), day("2024-03-04"), day("2024-03-01"))
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = env.analytics.Range(context.Background(), day("2023-01-01"), day("2024-06-01"))
	assert.Error(t, err)
}

func TestAnalytics_Export(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	_, err := env.foods.Add(ctx, day("2024-03-02"), FoodInput{Name: "Banana", Cal: 105, Carbs: 27}, false)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, env.analytics.Export(ctx, day("2024-03-01"), day("2024-03-03"), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(exportSheet, "A4")
	require.NoError(t, err)
	assert.Equal(t, "Date", header)

	date, err := f.GetCellValue(exportSheet, "A6")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-02", date)

	cal, err := f.GetCellValue(exportSheet, "B6")
	require.NoError(t, err)
	assert.Equal(t, "105", cal)
}
