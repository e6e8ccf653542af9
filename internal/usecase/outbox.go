package usecase

import (
	"time"

	"github.com/DRSN-tech/watch-store/pkg/e"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// NewOutboxEvent собирает событие каталога. Payload: protobuf Struct вида
// {event_id, event_type, aggregate_id, occurred_at, data}.
func NewOutboxEvent(eventType OutboxEventType, aggregateID int64, data map[string]any) (*OutboxEvent, error) {
	const op = "NewOutboxEvent"

	eventID := uuid.NewString()
	now := time.Now().UTC()

	body, err := structpb.NewStruct(map[string]any{
		"event_id":     eventID,
		"event_type":   string(eventType),
		"aggregate_id": aggregateID,
		"occurred_at":  now.Format(time.RFC3339Nano),
		"data":         data,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	payload, err := proto.Marshal(body)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &OutboxEvent{
		EventID:     eventID,
		EventType:   eventType,
		AggregateID: aggregateID,
		Payload:     payload,
		Status:      Pending,
		CreatedAt:   now,
	}, nil
}

// DecodeOutboxPayload разбирает payload события обратно в Struct.
func DecodeOutboxPayload(payload []byte) (*structpb.Struct, error) {
	var body structpb.Struct
	if err := proto.Unmarshal(payload, &body); err != nil {
		return nil, e.Wrap("DecodeOutboxPayload", err)
	}
	return &body, nil
}
