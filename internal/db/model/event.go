package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const EventOutboxCollection = "event_outbox"

// EventDocument is one ledger event persisted to the outbox before it is
// published to the queue. Payload holds the JSON encoding of the event with
// the exact wire field names the indexer consumes.
type EventDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	EventType string             `bson:"event_type"`
	Payload   string             `bson:"payload"`
	Published bool               `bson:"published"`
	CreatedAt int64              `bson:"created_at"`
}

func NewEventDocument(eventType, payload string, createdAt int64) *EventDocument {
	return &EventDocument{
		ID:        primitive.NewObjectID(),
		EventType: eventType,
		Payload:   payload,
		CreatedAt: createdAt,
	}
}
