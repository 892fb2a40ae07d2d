package amqp

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/product_transactions/internal/core/domain"
)

// SeededEventName identifies dataset replacement events.
const SeededEventName = "dataset.seeded"

// SeededMessage is published after the stored dataset has been replaced.
type SeededMessage struct {
	Event    string    `json:"event"`
	Count    int       `json:"count"`
	SeededAt time.Time `json:"seededAt"`
}

// NewSeededMessage builds the event body for a seed result.
func NewSeededMessage(result domain.SeedResult) *SeededMessage {
	return &SeededMessage{
		Event:    SeededEventName,
		Count:    result.Count,
		SeededAt: result.SeededAt.UTC(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *SeededMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// SeededMessageFromJSON decodes a message produced by ToJSON.
func SeededMessageFromJSON(data []byte) (*SeededMessage, error) {
	var msg SeededMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
