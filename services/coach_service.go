package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"nutritrack/metrics"
	"nutritrack/models"
)

var ErrUnknownFlow = errors.New("unknown check-in flow")

const defaultStreak = 7

var checkInFlows = []models.CheckInFlow{
	{
		Key:   "progress",
		Title: "Progress Check-In",
		Mood:  models.MoodSupportive,
		Steps: []models.CheckInStep{{
			Question: "How are you feeling about progress?",
			Options: []models.CheckInOption{
				{Text: "Frustrated", Val: "frustrated"},
				{Text: "Okay", Val: "okay"},
				{Text: "Good", Val: "good"},
				{Text: "Great!", Val: "great"},
			},
		}},
	},
	{
		Key:   "craving",
		Title: "Craving SOS",
		Mood:  models.MoodCalm,
		Steps: []models.CheckInStep{{
			Question: "What's pulling at you?",
			Options: []models.CheckInOption{
				{Text: "Something sweet", Val: "sweet"},
				{Text: "Something salty", Val: "salty"},
				{Text: "Just want to eat", Val: "emotional"},
			},
		}},
	},
	{
		Key:   "guilt",
		Title: "Let's Talk",
		Mood:  models.MoodSupportive,
		Steps: []models.CheckInStep{{
			Question: "What happened?",
			Options: []models.CheckInOption{
				{Text: "Ate way more than planned", Val: "overate"},
				{Text: "Binged", Val: "binge"},
			},
		}},
	},
}

var cravingReplies = map[string]models.CoachReply{
	"sweet": {
		Msg:  "Sweet cravings often signal low energy.",
		Tip:  "Try protein shake with cocoa, Greek yogurt, or dark chocolate.",
		Mood: models.MoodCalm,
	},
	"salty": {
		Msg:  "Salty cravings can mean stress.",
		Tip:  "Pickles, seaweed snacks, or popcorn work well.",
		Mood: models.MoodCalm,
	},
	"emotional": {
		Msg:  "Emotional hunger is human.",
		Tip:  "What's actually going on? Try addressing the root.",
		Mood: models.MoodSupportive,
	},
}

// CheckInStats is context the progress flow can quote back.
type CheckInStats struct {
	Streak int `json:"streak"`
}

type CoachService struct {
	coins  *CoinService
	events *EventBus
	log    *zap.Logger
}

func NewCoachService(coins *CoinService, events *EventBus, log *zap.Logger) *CoachService {
	return &CoachService{coins: coins, events: events, log: log}
}

func (s *CoachService) Flows() []models.CheckInFlow {
	out := make([]models.CheckInFlow, len(checkInFlows))
	copy(out, checkInFlows)
	return out
}

type CheckInResult struct {
	Reply   models.CoachReply `json:"reply"`
	Awarded int               `json:"awarded"`
	Coins   int               `json:"coins"`
}

// Respond answers a finished check-in and pays the checkIn reward.
func (s *CoachService) Respond(ctx context.Context, flow string, answers []string, stats CheckInStats) (*CheckInResult, error) {
	reply, err := CoachReply(flow, answers, stats)
	if err != nil {
		return nil, err
	}
	awarded, balance, err := s.coins.Award(ctx, RewardCheckIn)
	if err != nil {
		return nil, err
	}
	metrics.IncCheckIn(flow)
	s.events.Character(reply.Mood, reply.Msg, awarded)
	return &CheckInResult{Reply: reply, Awarded: awarded, Coins: balance}, nil
}

// CoachReply picks the mascot's answer from the first answer of a flow.
func CoachReply(flow string, answers []string, stats CheckInStats) (models.CoachReply, error) {
	first := ""
	if len(answers) > 0 {
		first = answers[0]
	}
	switch flow {
	case "progress":
		return progressReply(first, stats), nil
	case "craving":
		if r, ok := cravingReplies[first]; ok {
			return r, nil
		}
		return cravingReplies["emotional"], nil
	case "guilt":
		if first == "binge" {
			return models.CoachReply{
				Msg:  "Thank you for being here. That takes courage.",
				Tip:  "Drink water, take a walk, be gentle. Tomorrow isn't punishment day.",
				Mood: models.MoodSupportive,
			}, nil
		}
		return models.CoachReply{
			Msg:  "One meal is a tiny blip. What matters is weeks.",
			Tip:  "Log it, then close the app. No guilt.",
			Mood: models.MoodSupportive,
		}, nil
	default:
		return models.CoachReply{}, fmt.Errorf("%w: %s", ErrUnknownFlow, flow)
	}
}

func progressReply(answer string, stats CheckInStats) models.CoachReply {
	switch answer {
	case "frustrated":
		streak := stats.Streak
		if streak <= 0 {
			streak = defaultStreak
		}
		return models.CoachReply{
			Msg:  fmt.Sprintf("Weight loss isn't linear. You've been consistent for %d days. That matters.", streak),
			Tip:  "Focus on non-scale wins: energy, clothes fit, strength.",
			Mood: models.MoodSupportive,
		}
	case "good", "great":
		return models.CoachReply{
			Msg:  "That's what I like to hear! Keep protein high.",
			Tip:  "You're doing great!",
			Mood: models.MoodProud,
		}
	default:
		return models.CoachReply{
			Msg:  "Every day you show up matters.",
			Tip:  "Small consistent actions beat sporadic perfection.",
			Mood: models.MoodCalm,
		}
	}
}
