package integration

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ghanabuild/estimator-backend/internal/telemetry"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	ctx := context.Background()
	err = client.Ping(ctx).Err()
	require.NoError(t, err)

	return client, mr
}

func TestRedisSink_AppendsEvents(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	sink := telemetry.NewRedisSink(client, zap.NewNop())
	ctx := context.Background()

	sink.Emit(ctx, telemetry.NewEvent(telemetry.EventSubmitted, map[string]any{
		"region": "Greater Accra",
	}))
	sink.Emit(ctx, telemetry.NewEvent(telemetry.EventRequestSucceeded, map[string]any{
		"totalCost": 144000,
	}))

	entries, err := client.XRange(ctx, telemetry.EventStream, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, string(telemetry.EventSubmitted), entries[0].Values["kind"])
	assert.NotEmpty(t, entries[0].Values["id"])
	assert.NotEmpty(t, entries[0].Values["at"])
	assert.Contains(t, entries[0].Values["fields"], "Greater Accra")

	assert.Equal(t, string(telemetry.EventRequestSucceeded), entries[1].Values["kind"])
}

func TestRedisSink_BackendDownIsSwallowed(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer client.Close()
	mr.Close() // backend gone before the first emit

	sink := telemetry.NewRedisSink(client, zap.NewNop())

	// must not panic or surface the failure
	sink.Emit(context.Background(), telemetry.NewEvent(telemetry.EventRetried, nil))
}

func TestMultiSink_FansOut(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	redisSink := telemetry.NewRedisSink(client, zap.NewNop())
	logSink := telemetry.NewLogSink(zap.NewNop())
	multi := telemetry.NewMultiSink(logSink, redisSink)

	ctx := context.Background()
	multi.Emit(ctx, telemetry.NewEvent(telemetry.EventValidationFailed, map[string]any{
		"violations": []string{"x"},
	}))

	count, err := client.XLen(ctx, telemetry.EventStream).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
