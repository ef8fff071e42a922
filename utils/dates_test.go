package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutritrack/models"
)

func TestDateKeyRoundTrip(t *testing.T) {
	d, err := ParseDateKey("2024-03-09")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", DateKey(d))

	_, err = ParseDateKey("03/09/2024")
	assert.Error(t, err)
}

func TestStartOfWeek(t *testing.T) {
	sunday := time.Date(2024, 3, 10, 18, 0, 0, 0, time.Local)
	assert.Equal(t, "2024-03-04", DateKey(StartOfWeek(sunday)))

	monday := time.Date(2024, 3, 4, 8, 0, 0, 0, time.Local)
	assert.Equal(t, "2024-03-04", DateKey(StartOfWeek(monday)))
}

func TestTimeframeWindow(t *testing.T) {
	d := time.Date(2024, 3, 9, 12, 0, 0, 0, time.Local)

	day := TimeframeWindow(d, TimeframeDay)
	require.Len(t, day, 1)
	assert.Equal(t, "2024-03-09", DateKey(day[0]))

	week := TimeframeWindow(d, TimeframeWeek)
	require.Len(t, week, 7)
	assert.Equal(t, "2024-03-04", DateKey(week[0]))
	assert.Equal(t, "2024-03-10", DateKey(week[6]))

	month := TimeframeWindow(d, TimeframeMonth)
	require.Len(t, month, 31)
	assert.Equal(t, "2024-03-01", DateKey(month[0]))
	assert.Equal(t, "2024-03-31", DateKey(month[30]))
}

func TestTimeframeWindow_MonthBounds(t *testing.T) {
	tests := []struct {
		date     string
		n        int
		from, to string
	}{
		{"2024-01-31", 31, "2024-01-01", "2024-01-31"},
		{"2024-02-15", 29, "2024-02-01", "2024-02-29"},
		{"2023-02-28", 28, "2023-02-01", "2023-02-28"},
		{"2024-04-30", 30, "2024-04-01", "2024-04-30"},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			d, err := ParseDateKey(tt.date)
			require.NoError(t, err)
			days := TimeframeWindow(d, TimeframeMonth)
			require.Len(t, days, tt.n)
			assert.Equal(t, tt.from, DateKey(days[0]))
			assert.Equal(t, tt.to, DateKey(days[len(days)-1]))
		})
	}
}

func TestMealTimeAt(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2024, 1, 1, h, 30, 0, 0, time.Local) }
	assert.Equal(t, models.Breakfast, MealTimeAt(at(7)))
	assert.Equal(t, models.Lunch, MealTimeAt(at(11)))
	assert.Equal(t, models.Dinner, MealTimeAt(at(19)))
	assert.Equal(t, models.Snack, MealTimeAt(at(20)))

	assert.Equal(t, "Lunch", MealTimeLabel(models.Lunch))
	assert.Equal(t, "Meal", MealTimeLabel(""))
	assert.False(t, IsKnownMealTime("X"))
}
