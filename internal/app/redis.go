package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"ridefare/internal/config"
)

// NewRedisClient creates a new Redis client with optional New Relic instrumentation.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig, nrApp *newrelic.Application) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if nrApp != nil {
		client.AddHook(&nrRedisHook{app: nrApp})
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// nrRedisHook records Redis calls as datastore segments on the request's
// New Relic transaction, grouped by the key's prefix.
type nrRedisHook struct {
	app *newrelic.Application
}

func (h *nrRedisHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h *nrRedisHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		segment := startSegment(ctx, cmd.Name(), keyCollection(cmd))
		err := next(ctx, cmd)
		segment.End()
		return err
	}
}

func (h *nrRedisHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		collection := defaultCollection
		if len(cmds) > 0 {
			collection = keyCollection(cmds[0])
		}
		segment := startSegment(ctx, "pipeline", collection)
		err := next(ctx, cmds)
		segment.End()
		return err
	}
}

const defaultCollection = "redis"

// startSegment returns a nil segment when ctx carries no transaction;
// ending a nil segment is a no-op.
func startSegment(ctx context.Context, operation, collection string) *newrelic.DatastoreSegment {
	txn := newrelic.FromContext(ctx)
	if txn == nil {
		return nil
	}
	return &newrelic.DatastoreSegment{
		StartTime:  txn.StartSegmentNow(),
		Product:    newrelic.DatastoreRedis,
		Operation:  operation,
		Collection: collection,
	}
}

// keyCollection names the collection after the key prefix, so
// "idempotency:abc" reports as "idempotency".
func keyCollection(cmd redis.Cmder) string {
	args := cmd.Args()
	if len(args) < 2 {
		return defaultCollection
	}
	key, ok := args[1].(string)
	if !ok {
		return defaultCollection
	}
	prefix, _, found := strings.Cut(key, ":")
	if !found || prefix == "" {
		return defaultCollection
	}
	return prefix
}
