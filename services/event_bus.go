package services

import (
	"go.uber.org/zap"

	"nutritrack/models"
)

// EventBus publishes app events to live sockets. A nil hub makes every
// call a no-op, so services can emit unconditionally.
type EventBus struct {
	rt  *RealtimeHub
	log *zap.Logger
}

func NewEventBus(rt *RealtimeHub, log *zap.Logger) *EventBus {
	if log == nil {
		log = zap.NewNop()
	}
	return &EventBus{rt: rt, log: log}
}

func (b *EventBus) Character(mood models.Mood, message string, coins int) {
	if b == nil || b.rt == nil {
		return
	}
	b.log.Debug("character message", zap.String("mood", string(mood)), zap.String("message", message))
	b.rt.Broadcast(map[string]any{
		"kind": "character.message",
		"character": models.CharacterMessage{
			Mood:    mood,
			Message: message,
			Coins:   coins,
		},
	})
}

func (b *EventBus) DayUpdated(summary *DaySummary) {
	if b == nil || b.rt == nil || summary == nil {
		return
	}
	b.rt.Broadcast(map[string]any{
		"kind":    "day.updated",
		"summary": summary,
	})
}
