package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nutritrack/models"
)

func sampleEntries() []models.FoodEntry {
	return []models.FoodEntry{
		{Name: "Chicken breast (6oz)", Cal: 300, Protein: 55, Carbs: 0, Fat: 6, Confirmed: true},
		{Name: "Greek yogurt", Cal: 150, Protein: 15, Carbs: 20, Fat: 0, Confirmed: false},
	}
}

func TestSumNutrients_Empty(t *testing.T) {
	zero := models.NutrientTotals{}
	assert.Equal(t, zero, SumNutrients(nil, true))
	assert.Equal(t, zero, SumNutrients(nil, false))
	assert.Equal(t, zero, SumNutrients([]models.FoodEntry{}, true))
}

func TestSumNutrients_ConfirmedFilter(t *testing.T) {
	entries := sampleEntries()

	assert.Equal(t, models.NutrientTotals{Cal: 300, Protein: 55, Carbs: 0, Fat: 6}, SumNutrients(entries, true))
	assert.Equal(t, models.NutrientTotals{Cal: 450, Protein: 70, Carbs: 20, Fat: 6}, SumNutrients(entries, false))
}

func TestSumNutrients_MissingFieldsCountAsZero(t *testing.T) {
	entries := []models.FoodEntry{{Name: "water", Confirmed: true}, {Name: "apple", Cal: 95}}
	assert.Equal(t, models.NutrientTotals{Cal: 95}, SumNutrients(entries, false))
}

func TestSumNutrients_OrderIndependent(t *testing.T) {
	entries := sampleEntries()
	reversed := []models.FoodEntry{entries[1], entries[0]}
	assert.Equal(t, SumNutrients(entries, false), SumNutrients(reversed, false))
}

func TestSumNutrients_DoesNotMutate(t *testing.T) {
	entries := sampleEntries()
	snapshot := append([]models.FoodEntry(nil), entries...)

	first := SumNutrients(entries, true)
	second := SumNutrients(entries, true)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, entries)
	_ = Planned(entries)
	assert.Equal(t, snapshot, entries)
}

func TestDerivedViews(t *testing.T) {
	entries := sampleEntries()
	goal := models.GoalSet{Cal: 400}

	assert.Equal(t, 300.0, Eaten(entries).Cal)
	assert.Equal(t, models.NutrientTotals{Cal: 150, Protein: 15, Carbs: 20}, Planned(entries))
	assert.Equal(t, 450.0, Projected(entries).Cal)
	assert.Equal(t, -50.0, Remaining(goal, entries))

	v := Ledger(goal, entries)
	assert.Equal(t, -50.0, v.Remaining)
	assert.Equal(t, Eaten(entries), v.Eaten)
	assert.Equal(t, Planned(entries), v.Planned)

	assert.Equal(t, -50.0, DisplayValue(v, ViewLeft))
	assert.Equal(t, 300.0, DisplayValue(v, ViewEaten))
	assert.Equal(t, 150.0, DisplayValue(v, ViewPlanned))
	assert.Equal(t, 450.0, DisplayValue(v, ViewTotal))
	assert.Equal(t, -50.0, DisplayValue(v, "sideways"))
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 0.0, Progress(100, 0))
	assert.Equal(t, 0.5, Progress(100, 200))
	assert.Equal(t, 1.0, Progress(300, 200))
	assert.Equal(t, 0.0, Progress(-5, 200))
}
