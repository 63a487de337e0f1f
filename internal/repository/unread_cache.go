package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/redis/go-redis/v9"
)

const (
	unreadKeyPrefix    = "notifications:unread:"
	unreadGenKeyPrefix = "notifications:unread-gen:"
)

var errGenerationChanged = errors.New("unread generation changed")

// UnreadCache keeps per-user unread notification counters in Redis. Every invalidation
// advances a per-user generation, and counters are only written under the generation
// observed before counting.
type UnreadCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewUnreadCache(rdb *redis.Client, ttl time.Duration) *UnreadCache {
	return &UnreadCache{rdb: rdb, ttl: ttl}
}

func unreadKey(userID uuid.UUID) string {
	return unreadKeyPrefix + userID.String()
}

func unreadGenKey(userID uuid.UUID) string {
	return unreadGenKeyPrefix + userID.String()
}

// Get returns the cached counter and the current generation; ok is false on a cache miss.
func (c *UnreadCache) Get(ctx context.Context, userID uuid.UUID) (count, generation int64, ok bool, err error) {
	var countCmd, genCmd *redis.StringCmd

	_, err = c.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		countCmd = pipe.Get(ctx, unreadKey(userID))
		genCmd = pipe.Get(ctx, unreadGenKey(userID))

		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, 0, false, err
	}

	generation, err = int64OrZero(genCmd)
	if err != nil {
		return 0, 0, false, err
	}

	count, err = countCmd.Int64()
	if errors.Is(err, redis.Nil) {
		return 0, generation, false, nil
	}

	if err != nil {
		return 0, 0, false, err
	}

	return count, generation, true, nil
}

// SetIfGeneration stores count unless the user's generation moved past generation.
// It reports whether the counter was written.
func (c *UnreadCache) SetIfGeneration(ctx context.Context, userID uuid.UUID, generation, count int64) (bool, error) {
	genKey := unreadGenKey(userID)

	err := c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := int64OrZero(tx.Get(ctx, genKey))
		if err != nil {
			return err
		}

		if current != generation {
			return errGenerationChanged
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, unreadKey(userID), count, c.ttl)
			return nil
		})

		return err
	}, genKey)

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errGenerationChanged), errors.Is(err, redis.TxFailedErr):
		return false, nil
	default:
		return false, err
	}
}

// Invalidate drops the counter and advances the generation in one transaction.
func (c *UnreadCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, unreadKey(userID))
		pipe.Incr(ctx, unreadGenKey(userID))

		return nil
	})

	return err
}

func int64OrZero(cmd *redis.StringCmd) (int64, error) {
	v, err := cmd.Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	return v, err
}
