package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"nutritrack/models"
	"nutritrack/utils"
)

type Stage string

const (
	StageWelcome      Stage = "welcome"
	StageName         Stage = "name"
	StageBasics       Stage = "basics"
	StageMeasurements Stage = "measurements"
	StageActivity     Stage = "activity"
	StageGoal         Stage = "goal"
	StageSummary      Stage = "summary"
)

var OnboardingStages = []Stage{
	StageWelcome, StageName, StageBasics, StageMeasurements, StageActivity, StageGoal, StageSummary,
}

// DefaultDraft is the profile the wizard starts from.
func DefaultDraft() models.UserProfile {
	return models.UserProfile{
		Age:      30,
		Sex:      models.Male,
		Height:   70,
		Weight:   180,
		Activity: models.Moderate,
		Goal:     models.Lose,
	}
}

// Wizard walks the onboarding stages. The index never leaves [0, N-1].
type Wizard struct {
	step  int
	Draft models.UserProfile `json:"draft"`
}

func NewWizard() *Wizard {
	return &Wizard{Draft: DefaultDraft()}
}

func (w *Wizard) Stage() Stage { return OnboardingStages[w.step] }

func (w *Wizard) Index() int { return w.step }

func (w *Wizard) IsLast() bool { return w.step == len(OnboardingStages)-1 }

// Next advances one stage; it reports false at the last stage.
func (w *Wizard) Next() bool {
	if w.IsLast() {
		return false
	}
	w.step++
	return true
}

// Back goes back one stage; it reports false at the first stage.
func (w *Wizard) Back() bool {
	if w.step == 0 {
		return false
	}
	w.step--
	return true
}

// CanProceed gates the continue button for the current stage.
func (w *Wizard) CanProceed() bool {
	switch w.Stage() {
	case StageName:
		return strings.TrimSpace(w.Draft.Name) != ""
	case StageBasics:
		return w.Draft.Age > 0 && w.Draft.Age < 120
	case StageMeasurements:
		return w.Draft.Height > 0 && w.Draft.Weight > 0
	default:
		return true
	}
}

// Progress is the fraction of the bar filled, (i+1)/N.
func (w *Wizard) Progress() float64 {
	return float64(w.step+1) / float64(len(OnboardingStages))
}

// ProfilePatch carries the fields a stage edits; nil fields are kept.
type ProfilePatch struct {
	Name     *string               `json:"name,omitempty"`
	Age      *int                  `json:"age,omitempty"`
	Sex      *models.Sex           `json:"sex,omitempty"`
	Height   *float64              `json:"height,omitempty"`
	Weight   *float64              `json:"weight,omitempty"`
	Activity *models.ActivityLevel `json:"activity,omitempty"`
	Goal     *models.GoalType      `json:"goal,omitempty"`
}

func (w *Wizard) Update(p ProfilePatch) {
	if p.Name != nil {
		w.Draft.Name = *p.Name
	}
	if p.Age != nil {
		w.Draft.Age = *p.Age
	}
	if p.Sex != nil {
		w.Draft.Sex = *p.Sex
	}
	if p.Height != nil {
		w.Draft.Height = *p.Height
	}
	if p.Weight != nil {
		w.Draft.Weight = *p.Weight
	}
	if p.Activity != nil {
		w.Draft.Activity = *p.Activity
	}
	if p.Goal != nil {
		w.Draft.Goal = *p.Goal
	}
}

// Walk advances from the current stage to the last one, stopping at the
// first stage whose input is incomplete.
func (w *Wizard) Walk() error {
	for {
		if !w.CanProceed() {
			return fmt.Errorf("%w: %s stage incomplete", utils.ErrInvalidProfile, w.Stage())
		}
		if !w.Next() {
			return nil
		}
	}
}

// Preview shows the goals the current draft would get.
func (w *Wizard) Preview() models.GoalSet {
	d := w.Draft
	return utils.CalcGoals(&d)
}

type OnboardingService struct {
	profiles *ProfileService
	coins    *CoinService
	events   *EventBus
	log      *zap.Logger
}

func NewOnboardingService(profiles *ProfileService, coins *CoinService, events *EventBus, log *zap.Logger) *OnboardingService {
	return &OnboardingService{profiles: profiles, coins: coins, events: events, log: log}
}

type OnboardingResult struct {
	Profile models.UserProfile `json:"profile"`
	Goals   models.GoalSet     `json:"goals"`
	Coins   int                `json:"coins"`
	Awarded int                `json:"awarded"`
}

// OnboardingPreview reports how far a draft gets through the wizard.
type OnboardingPreview struct {
	Draft    models.UserProfile `json:"draft"`
	Stage    Stage              `json:"stage"`
	Progress float64            `json:"progress"`
	Ready    bool               `json:"ready"`
	Goals    models.GoalSet     `json:"goals"`
}

// Preview applies patch to the default draft and walks the wizard over it.
func (s *OnboardingService) Preview(patch ProfilePatch) *OnboardingPreview {
	w := NewWizard()
	w.Update(patch)
	err := w.Walk()
	return &OnboardingPreview{
		Draft:    w.Draft,
		Stage:    w.Stage(),
		Progress: w.Progress(),
		Ready:    err == nil,
		Goals:    w.Preview(),
	}
}

// Complete walks the draft through every wizard stage, stores it as the
// onboarded profile and pays the onboarding reward the first time only.
func (s *OnboardingService) Complete(ctx context.Context, draft models.UserProfile) (*OnboardingResult, error) {
	w := &Wizard{Draft: draft}
	if err := w.Walk(); err != nil {
		return nil, err
	}
	draft = w.Draft

	existing, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	draft.Onboarded = true
	if err := s.profiles.Save(ctx, draft); err != nil {
		return nil, err
	}

	res := &OnboardingResult{Profile: draft, Goals: utils.CalcGoals(&draft)}
	if existing != nil && existing.Onboarded {
		if res.Coins, err = s.coins.Balance(ctx); err != nil {
			return nil, err
		}
		s.log.Info("profile re-onboarded without reward")
		return res, nil
	}

	res.Awarded, res.Coins, err = s.coins.Award(ctx, RewardOnboarding)
	if err != nil {
		return nil, err
	}
	s.events.Character(models.MoodWelcome, "Welcome aboard, "+draft.Name+"!", res.Awarded)
	s.log.Info("onboarding complete")
	return res, nil
}
