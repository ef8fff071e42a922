package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoins_Award(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	amount, balance, err := env.coins.Award(ctx, RewardWeeklyGoal)
	require.NoError(t, err)
	assert.Equal(t, 50, amount)
	assert.Equal(t, 50, balance)

	_, balance, err = env.coins.Award(ctx, RewardDailyGoal)
	require.NoError(t, err)
	assert.Equal(t, 70, balance)

	_, _, err = env.coins.Award(ctx, "bribe")
	assert.ErrorIs(t, err, ErrUnknownReward)
}

func TestCoins_ConcurrentAwards(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, _ = env.coins.Award(ctx, RewardLogFood)
		}()
	}
	wg.Wait()

	balance, err := env.coins.Balance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 125, balance)
}

func TestRewardAmount(t *testing.T) {
	n, ok := RewardAmount(RewardCheckIn)
	assert.True(t, ok)
	assert.Equal(t, 10, n)
	_, ok = RewardAmount("nope")
	assert.False(t, ok)
}
