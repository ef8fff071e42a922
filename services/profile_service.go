package services

import (
	"context"

	"go.uber.org/zap"

	"nutritrack/models"
	"nutritrack/store"
	"nutritrack/utils"
)

type ProfileService struct {
	st  store.Store
	log *zap.Logger
}

func NewProfileService(st store.Store, log *zap.Logger) *ProfileService {
	return &ProfileService{st: st, log: log}
}

// Get returns the stored profile, or nil before onboarding.
func (s *ProfileService) Get(ctx context.Context) (*models.UserProfile, error) {
	var p models.UserProfile
	found, err := store.GetJSON(ctx, s.st, store.KeyUser, &p)
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

func (s *ProfileService) Save(ctx context.Context, p models.UserProfile) error {
	if err := utils.ValidateProfile(p); err != nil {
		return err
	}
	if err := store.SetJSON(ctx, s.st, store.KeyUser, p); err != nil {
		return err
	}
	s.log.Info("profile saved", zap.String("activity", string(p.Activity)), zap.String("goal", string(p.Goal)))
	return nil
}

type ProfileSummary struct {
	Profile     *models.UserProfile `json:"profile"`
	Daily       models.GoalSet      `json:"daily"`
	Weekly      models.GoalSet      `json:"weekly"`
	Monthly     models.GoalSet      `json:"monthly"`
	BMR         float64             `json:"bmr,omitempty"`
	TDEE        float64             `json:"tdee,omitempty"`
	BMI         float64             `json:"bmi,omitempty"`
	BMICategory string              `json:"bmi_category,omitempty"`
}

// Summary reports goals for every timeframe plus the numbers behind them.
func (s *ProfileService) Summary(ctx context.Context) (*ProfileSummary, error) {
	p, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	daily := utils.CalcGoals(p)
	out := &ProfileSummary{
		Profile: p,
		Daily:   daily,
		Weekly:  daily.Scale(7),
		Monthly: daily.Scale(30),
	}
	if p == nil || p.Weight == 0 {
		return out, nil
	}

	out.BMR = utils.Round2(utils.CalcBMR(p.Weight, p.Height, p.Age, p.Sex))
	out.TDEE = utils.Round2(utils.CalcTDEE(*p))
	if bmi, err := utils.ProfileBMI(*p); err == nil {
		out.BMI = utils.Round2(bmi)
		out.BMICategory = utils.BMICategory(bmi)
	}
	return out, nil
}
