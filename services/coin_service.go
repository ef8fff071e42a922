package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"nutritrack/metrics"
	"nutritrack/store"
)

const (
	RewardOnboarding  = "onboarding"
	RewardLogFood     = "logFood"
	RewardConfirmFood = "confirmFood"
	RewardCheckIn     = "checkIn"
	RewardDailyGoal   = "dailyGoal"
	RewardWeeklyGoal  = "weeklyGoal"
)

var ErrUnknownReward = errors.New("unknown reward")

var coinRewards = map[string]int{
	RewardOnboarding:  10,
	RewardLogFood:     5,
	RewardConfirmFood: 5,
	RewardCheckIn:     10,
	RewardDailyGoal:   20,
	RewardWeeklyGoal:  50,
}

func RewardAmount(reason string) (int, bool) {
	n, ok := coinRewards[reason]
	return n, ok
}

type CoinService struct {
	st  store.Store
	log *zap.Logger
	mu  sync.Mutex
}

func NewCoinService(st store.Store, log *zap.Logger) *CoinService {
	return &CoinService{st: st, log: log}
}

// Balance returns the coin total; zero when nothing was ever awarded.
func (s *CoinService) Balance(ctx context.Context) (int, error) {
	var n int
	if _, err := store.GetJSON(ctx, s.st, store.KeyCoins, &n); err != nil {
		return 0, err
	}
	return n, nil
}

// Award adds the reward for reason and returns the amount and new balance.
func (s *CoinService) Award(ctx context.Context, reason string) (amount, balance int, err error) {
	amount, ok := coinRewards[reason]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s", ErrUnknownReward, reason)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	balance, err = s.Balance(ctx)
	if err != nil {
		return 0, 0, err
	}
	balance += amount
	if err := store.SetJSON(ctx, s.st, store.KeyCoins, balance); err != nil {
		return 0, 0, err
	}

	metrics.AddCoins(reason, amount)
	s.log.Info("coins awarded", zap.String("reason", reason), zap.Int("amount", amount), zap.Int("balance", balance))
	return amount, balance, nil
}
