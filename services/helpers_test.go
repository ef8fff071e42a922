package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"nutritrack/models"
	"nutritrack/store"
)

type testEnv struct {
	st         *store.MemoryStore
	profiles   *ProfileService
	coins      *CoinService
	foods      *FoodLogService
	onboarding *OnboardingService
	coach      *CoachService
	analytics  *AnalyticsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log := zap.NewNop()
	st := store.NewMemoryStore()
	events := NewEventBus(nil, log)
	profiles := NewProfileService(st, log)
	coins := NewCoinService(st, log)
	foods := NewFoodLogService(st, profiles, coins, events, log)
	foods.now = func() time.Time { return time.Date(2024, 3, 9, 12, 30, 0, 0, time.Local) }
	return &testEnv{
		st:         st,
		profiles:   profiles,
		coins:      coins,
		foods:      foods,
		onboarding: NewOnboardingService(profiles, coins, events, log),
		coach:      NewCoachService(coins, events, log),
		analytics:  NewAnalyticsService(foods, profiles),
	}
}

func testProfile() models.UserProfile {
	return models.UserProfile{
		Name:     "Sam",
		Weight:   180,
		Height:   70,
		Age:      30,
		Sex:      models.Male,
		Activity: models.Moderate,
		Goal:     models.Lose,
	}
}

func (e *testEnv) onboard(t *testing.T) {
	t.Helper()
	_, err := e.onboarding.Complete(context.Background(), testProfile())
	require.NoError(t, err)
}

func day(s string) time.Time {
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return d
}
