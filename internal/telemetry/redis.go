package telemetry

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// EventStream is the Redis stream all lifecycle events are appended to.
const EventStream = "estimator:events"

// RedisSink appends events to a Redis stream so external monitoring consumers
// can tail them. A failed append is logged and dropped, never surfaced.
type RedisSink struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisSink(client *redis.Client, logger *zap.Logger) *RedisSink {
	return &RedisSink{client: client, logger: logger}
}

func (s *RedisSink) Emit(ctx context.Context, ev Event) {
	fields, err := json.Marshal(ev.Fields)
	if err != nil {
		fields = []byte("{}")
	}

	err = s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: EventStream,
		Values: map[string]any{
			"id":     ev.ID,
			"kind":   string(ev.Kind),
			"at":     ev.At.Format("2006-01-02T15:04:05.000Z07:00"),
			"fields": string(fields),
		},
	}).Err()
	if err != nil && s.logger != nil {
		s.logger.Warn("telemetry event dropped",
			zap.String("kind", string(ev.Kind)),
			zap.Error(err),
		)
	}
}
