package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutritrack/models"
	"nutritrack/utils"
)

func TestFoodLog_AddEatenAndPlanned(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	d := day("2024-03-09")

	res, err := env.foods.Add(ctx, d, FoodInput{Name: "Chicken breast (6oz)", Cal: 300, Protein: 55, Fat: 6}, false)
	require.NoError(t, err)
	assert.True(t, res.Food.Confirmed)
	assert.NotEmpty(t, res.Food.ID)
	assert.Equal(t, models.Lunch, res.Food.Time)
	assert.Equal(t, models.CharacterMessage{Mood: models.MoodHappy, Message: "Logged!", Coins: 5}, res.Character)
	assert.Equal(t, 5, res.Coins)

	res, err = env.foods.Add(ctx, d, FoodInput{Name: "Greek yogurt", Cal: 150, Protein: 15, Carbs: 20, Time: models.Snack}, true)
	require.NoError(t, err)
	assert.False(t, res.Food.Confirmed)
	assert.Equal(t, models.Snack, res.Food.Time)
	assert.Equal(t, models.MoodCalm, res.Character.Mood)

	balance, err := env.coins.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, balance, "planned foods earn nothing")

	foods, err := env.foods.List(ctx, d)
	require.NoError(t, err)
	require.Len(t, foods, 2)
	assert.Equal(t, models.NutrientTotals{Cal: 300, Protein: 55, Fat: 6}, utils.Eaten(foods))
	assert.Equal(t, models.NutrientTotals{Cal: 450, Protein: 70, Carbs: 20, Fat: 6}, utils.Projected(foods))
}

func TestFoodLog_AddValidates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.foods.Add(ctx, day("2024-03-09"), FoodInput{Name: " "}, false)
	assert.ErrorIs(t, err, ErrInvalidFood)

	_, err = env.foods.Add(ctx, day("2024-03-09"), FoodInput{Name: "x", Cal: -1}, false)
	assert.ErrorIs(t, err, ErrInvalidFood)

	_, err = env.foods.Add(ctx, day("2024-03-09"), FoodInput{Name: "x", Time: "Z"}, false)
	assert.ErrorIs(t, err, ErrInvalidFood)
}

func TestFoodLog_ConfirmAndDelete(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	d := day("2024-03-09")

	res, err := env.foods.Add(ctx, d, FoodInput{Name: "Banana", Cal: 105, Protein: 1, Carbs: 27}, true)
	require.NoError(t, err)
	id := res.Food.ID

	conf, err := env.foods.Confirm(ctx, d, id)
	require.NoError(t, err)
	assert.True(t, conf.Food.Confirmed)
	assert.Equal(t, "Nice!", conf.Character.Message)
	assert.Equal(t, 5, conf.Coins)

	_, err = env.foods.Confirm(ctx, d, "missing")
	assert.ErrorIs(t, err, ErrFoodNotFound)

	require.NoError(t, env.foods.Delete(ctx, d, id))
	foods, err := env.foods.List(ctx, d)
	require.NoError(t, err)
	assert.Empty(t, foods)

	assert.ErrorIs(t, env.foods.Delete(ctx, d, id), ErrFoodNotFound)
}

func TestFoodLog_DaysAreSeparate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.foods.Add(ctx, day("2024-03-09"), FoodInput{Name: "Eggs (2)", Cal: 140}, false)
	require.NoError(t, err)

	foods, err := env.foods.List(ctx, day("2024-03-10"))
	require.NoError(t, err)
	assert.Empty(t, foods)
}

func TestFoodLog_SummaryBeforeOnboarding(t *testing.T) {
	env := newTestEnv(t)
	s, err := env.foods.Summary(context.Background(), day("2024-03-09"), "", "")
	require.NoError(t, err)

	assert.Equal(t, utils.FallbackGoals, s.Ledger.Goal)
	assert.Equal(t, 2000.0, s.DisplayValue)
	assert.Equal(t, utils.TimeframeDay, s.Timeframe)
	assert.Equal(t, utils.ViewLeft, s.Mode)
	assert.Empty(t, s.Foods)
	assert.Empty(t, s.Warnings)
}

func TestFoodLog_SummaryModes(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.onboard(t)
	d := day("2024-03-09")

	_, err := env.foods.Add(ctx, d, FoodInput{Name: "Chicken breast (6oz)", Cal: 300, Protein: 55, Fat: 6}, false)
	require.NoError(t, err)
	_, err = env.foods.Add(ctx, d, FoodInput{Name: "Greek yogurt", Cal: 150, Protein: 15, Carbs: 20}, true)
	require.NoError(t, err)

	cases := map[string]float64{
		utils.ViewLeft:    2263 - 450,
		utils.ViewEaten:   300,
		utils.ViewPlanned: 150,
		utils.ViewTotal:   450,
	}
	for mode, want := range cases {
		s, err := env.foods.Summary(ctx, d, utils.TimeframeDay, mode)
		require.NoError(t, err)
		assert.Equal(t, want, s.DisplayValue, mode)
	}

	s, err := env.foods.Summary(ctx, d, utils.TimeframeDay, utils.ViewLeft)
	require.NoError(t, err)
	assert.Equal(t, 2263.0, s.Ledger.Goal.Cal)
	assert.Equal(t, utils.Round2(450.0/2263.0), s.Progress["calories"].Percent)
	assert.NotEmpty(t, s.Warnings)
}

func TestFoodLog_SummaryWeekAggregates(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.onboard(t)

	_, err := env.foods.Add(ctx, day("2024-03-04"), FoodInput{Name: "Banana", Cal: 105}, false)
	require.NoError(t, err)
	_, err = env.foods.Add(ctx, day("2024-03-10"), FoodInput{Name: "Banana", Cal: 105}, false)
	require.NoError(t, err)
	_, err = env.foods.Add(ctx, day("2024-03-11"), FoodInput{Name: "Banana", Cal: 105}, false)
	require.NoError(t, err)

	s, err := env.foods.Summary(ctx, day("2024-03-09"), utils.TimeframeWeek, utils.ViewEaten)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-04", s.From)
	assert.Equal(t, "2024-03-10", s.To)
	assert.Equal(t, 210.0, s.DisplayValue)
	assert.Equal(t, 2263.0*7, s.Ledger.Goal.Cal)
}

func TestFoodLog_SummaryMonthIncludesLastDay(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.onboard(t)

	_, err := env.foods.Add(ctx, day("2024-01-31"), FoodInput{Name: "Pasta", Cal: 800}, false)
	require.NoError(t, err)
	_, err = env.foods.Add(ctx, day("2024-02-01"), FoodInput{Name: "Toast", Cal: 90}, false)
	require.NoError(t, err)

	s, err := env.foods.Summary(ctx, day("2024-01-31"), utils.TimeframeMonth, utils.ViewEaten)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", s.From)
	assert.Equal(t, "2024-01-31", s.To)
	assert.Equal(t, 800.0, s.DisplayValue)

	s, err = env.foods.Summary(ctx, day("2024-02-10"), utils.TimeframeMonth, utils.ViewEaten)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", s.To)
	assert.Equal(t, 90.0, s.DisplayValue)
}

func TestFoodLog_ConfirmTwicePaysOnce(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	d := day("2024-03-09")

	res, err := env.foods.Add(ctx, d, FoodInput{Name: "Greek yogurt", Cal: 150}, true)
	require.NoError(t, err)

	first, err := env.foods.Confirm(ctx, d, res.Food.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, first.Coins)

	again, err := env.foods.Confirm(ctx, d, res.Food.ID)
	require.NoError(t, err)
	assert.True(t, again.Food.Confirmed)
	assert.Equal(t, 5, again.Coins)
	assert.Zero(t, again.Character.Coins)

	balance, err := env.coins.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, balance)
}
