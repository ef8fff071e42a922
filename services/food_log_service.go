package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nutritrack/metrics"
	"nutritrack/models"
	"nutritrack/store"
	"nutritrack/utils"
)

var (
	ErrFoodNotFound = errors.New("food not found")
	ErrInvalidFood  = errors.New("invalid food")
	ErrInvalidDate  = errors.New("invalid date, want YYYY-MM-DD")
)

// FoodInput is what a client sends to log or plan a food.
type FoodInput struct {
	Name    string          `json:"name"`
	Cal     float64         `json:"cal"`
	Protein float64         `json:"protein"`
	Carbs   float64         `json:"carbs"`
	Fat     float64         `json:"fat"`
	Time    models.MealTime `json:"time,omitempty"`
}

func (in FoodInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidFood)
	}
	if in.Cal < 0 || in.Protein < 0 || in.Carbs < 0 || in.Fat < 0 {
		return fmt.Errorf("%w: nutrients must not be negative", ErrInvalidFood)
	}
	if in.Time != "" && !utils.IsKnownMealTime(in.Time) {
		return fmt.Errorf("%w: unknown meal time %q", ErrInvalidFood, in.Time)
	}
	return nil
}

type FoodLogService struct {
	st       store.Store
	profiles *ProfileService
	coins    *CoinService
	events   *EventBus
	log      *zap.Logger
	now      func() time.Time

	mu sync.Mutex
}

func NewFoodLogService(st store.Store, profiles *ProfileService, coins *CoinService, events *EventBus, log *zap.Logger) *FoodLogService {
	return &FoodLogService{
		st:       st,
		profiles: profiles,
		coins:    coins,
		events:   events,
		log:      log,
		now:      time.Now,
	}
}

// List returns the foods stored for date's day, empty when none.
func (s *FoodLogService) List(ctx context.Context, date time.Time) ([]models.FoodEntry, error) {
	foods := []models.FoodEntry{}
	if _, err := store.GetJSON(ctx, s.st, store.FoodsKey(utils.DateKey(date)), &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

func (s *FoodLogService) save(ctx context.Context, date time.Time, foods []models.FoodEntry) error {
	return store.SetJSON(ctx, s.st, store.FoodsKey(utils.DateKey(date)), foods)
}

// FoodResult is the outcome of a mutation, with the mascot reaction the
// client shows.
type FoodResult struct {
	Food      *models.FoodEntry       `json:"food,omitempty"`
	Character models.CharacterMessage `json:"character"`
	Coins     int                     `json:"coins,omitempty"`
}

// Add logs (planned=false) or plans a food on date. Eaten foods earn the
// logFood reward; planned ones earn nothing until confirmed.
func (s *FoodLogService) Add(ctx context.Context, date time.Time, in FoodInput, planned bool) (*FoodResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	now := s.now()
	entry := models.FoodEntry{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Cal:       in.Cal,
		Protein:   in.Protein,
		Carbs:     in.Carbs,
		Fat:       in.Fat,
		Confirmed: !planned,
		Time:      in.Time,
		Timestamp: now,
	}
	if entry.Time == "" {
		entry.Time = utils.MealTimeAt(now)
	}

	s.mu.Lock()
	foods, err := s.List(ctx, date)
	if err == nil {
		foods = append(foods, entry)
		err = s.save(ctx, date, foods)
	}
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("add food: %w", err)
	}
	metrics.IncFoodLogged(planned)

	res := &FoodResult{Food: &entry}
	if planned {
		res.Character = models.CharacterMessage{Mood: models.MoodCalm, Message: "Planned for later!"}
	} else {
		amount, balance, err := s.coins.Award(ctx, RewardLogFood)
		if err != nil {
			return nil, err
		}
		res.Coins = balance
		res.Character = models.CharacterMessage{Mood: models.MoodHappy, Message: "Logged!", Coins: amount}
	}
	s.afterChange(ctx, date, res.Character)
	return res, nil
}

// Confirm marks a planned food as eaten and pays the confirmFood reward.
// Confirming an eaten food changes nothing and pays nothing.
func (s *FoodLogService) Confirm(ctx context.Context, date time.Time, id string) (*FoodResult, error) {
	s.mu.Lock()
	foods, err := s.List(ctx, date)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	idx := indexOf(foods, id)
	if idx < 0 {
		s.mu.Unlock()
		return nil, ErrFoodNotFound
	}
	if foods[idx].Confirmed {
		s.mu.Unlock()
		done := foods[idx]
		balance, err := s.coins.Balance(ctx)
		if err != nil {
			return nil, err
		}
		return &FoodResult{
			Food:      &done,
			Coins:     balance,
			Character: models.CharacterMessage{Mood: models.MoodCalm, Message: "Already logged."},
		}, nil
	}
	foods[idx].Confirmed = true
	confirmed := foods[idx]
	err = s.save(ctx, date, foods)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("confirm food: %w", err)
	}
	metrics.IncFoodConfirmed()

	amount, balance, err := s.coins.Award(ctx, RewardConfirmFood)
	if err != nil {
		return nil, err
	}
	res := &FoodResult{
		Food:      &confirmed,
		Coins:     balance,
		Character: models.CharacterMessage{Mood: models.MoodHappy, Message: "Nice!", Coins: amount},
	}
	s.afterChange(ctx, date, res.Character)
	return res, nil
}

func (s *FoodLogService) Delete(ctx context.Context, date time.Time, id string) error {
	s.mu.Lock()
	foods, err := s.List(ctx, date)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	idx := indexOf(foods, id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrFoodNotFound
	}
	foods = append(foods[:idx], foods[idx+1:]...)
	err = s.save(ctx, date, foods)
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("delete food: %w", err)
	}
	metrics.IncFoodDeleted()

	if summary, err := s.Summary(ctx, date, utils.TimeframeDay, utils.ViewLeft); err == nil {
		s.events.DayUpdated(summary)
	}
	return nil
}

func (s *FoodLogService) afterChange(ctx context.Context, date time.Time, msg models.CharacterMessage) {
	s.events.Character(msg.Mood, msg.Message, msg.Coins)
	summary, err := s.Summary(ctx, date, utils.TimeframeDay, utils.ViewLeft)
	if err != nil {
		s.log.Warn("summary after change failed", zap.Error(err))
		return
	}
	s.events.DayUpdated(summary)
}

func indexOf(foods []models.FoodEntry, id string) int {
	for i, f := range foods {
		if f.ID == id {
			return i
		}
	}
	return -1
}

type MacroProgress struct {
	Consumed float64 `json:"consumed"`
	Goal     float64 `json:"goal"`
	Percent  float64 `json:"percent"`
}

// DaySummary is the day screen: goals for the timeframe against what was
// eaten and planned in that timeframe's days.
type DaySummary struct {
	Date         string                   `json:"date"`
	Timeframe    string                   `json:"timeframe"`
	Mode         string                   `json:"mode"`
	From         string                   `json:"from"`
	To           string                   `json:"to"`
	Ledger       models.LedgerView        `json:"ledger"`
	DisplayValue float64                  `json:"display_value"`
	Progress     map[string]MacroProgress `json:"progress"`
	Warnings     []utils.Warning          `json:"warnings"`
	Foods        []models.FoodEntry       `json:"foods"`
}

func (s *FoodLogService) Summary(ctx context.Context, date time.Time, timeframe, mode string) (*DaySummary, error) {
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	switch timeframe {
	case utils.TimeframeDay, utils.TimeframeWeek, utils.TimeframeMonth:
	default:
		timeframe = utils.TimeframeDay
	}
	switch mode {
	case utils.ViewLeft, utils.ViewEaten, utils.ViewPlanned, utils.ViewTotal:
	default:
		mode = utils.ViewLeft
	}

	days := utils.TimeframeWindow(date, timeframe)
	var foods []models.FoodEntry
	for _, d := range days {
		dayFoods, err := s.List(ctx, d)
		if err != nil {
			return nil, err
		}
		foods = append(foods, dayFoods...)
	}
	if foods == nil {
		foods = []models.FoodEntry{}
	}

	goal := utils.GoalsFor(profile, timeframe)
	view := utils.Ledger(goal, foods)

	pct := func(consumed, target float64) MacroProgress {
		return MacroProgress{Consumed: consumed, Goal: target, Percent: utils.Round2(utils.Progress(consumed, target))}
	}

	return &DaySummary{
		Date:         utils.DateKey(date),
		Timeframe:    timeframe,
		Mode:         mode,
		From:         utils.DateKey(days[0]),
		To:           utils.DateKey(days[len(days)-1]),
		Ledger:       view,
		DisplayValue: utils.DisplayValue(view, mode),
		Progress: map[string]MacroProgress{
			"calories": pct(view.Projected.Cal, goal.Cal),
			"protein":  pct(view.Projected.Protein, goal.Protein),
			"carbs":    pct(view.Projected.Carbs, goal.Carbs),
			"fat":      pct(view.Projected.Fat, goal.Fat),
		},
		Warnings: utils.AssessBalance(view.Projected, goal),
		Foods:    foods,
	}, nil
}
