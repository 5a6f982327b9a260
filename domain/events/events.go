package events

import (
	"time"
)

// DomainEvent is the base interface for all domain events.
// Events represent something that has happened in the past.
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
}

// BaseEvent provides common event fields
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }

// InsightSaved is raised when a generated analysis is persisted
type InsightSaved struct {
	BaseEvent
	InsightID string `json:"insight_id"`
	UserID    string `json:"user_id"`
	Kind      string `json:"kind"`
}

// NewInsightSaved creates an InsightSaved event
func NewInsightSaved(insightID, userID, kind string, timestamp time.Time) InsightSaved {
	return InsightSaved{
		BaseEvent: BaseEvent{
			AggregateID: insightID,
			EventType:   "insight.saved",
			Timestamp:   timestamp,
		},
		InsightID: insightID,
		UserID:    userID,
		Kind:      kind,
	}
}

// InsightDeleted is raised when a saved analysis is removed
type InsightDeleted struct {
	BaseEvent
	InsightID string `json:"insight_id"`
	UserID    string `json:"user_id"`
}

// NewInsightDeleted creates an InsightDeleted event
func NewInsightDeleted(insightID, userID string, timestamp time.Time) InsightDeleted {
	return InsightDeleted{
		BaseEvent: BaseEvent{
			AggregateID: insightID,
			EventType:   "insight.deleted",
			Timestamp:   timestamp,
		},
		InsightID: insightID,
		UserID:    userID,
	}
}
