package planilla

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-shiftplan/internal/hours"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = 24 * time.Hour

// CacheKey is the hash holding every cached month of a schedule.
func CacheKey(scheduleID string) string {
	return fmt.Sprintf("planilla:%s", scheduleID)
}

// CacheField identifies one month and policy inside the schedule hash.
func CacheField(year, month int, policy hours.Policy) string {
	return fmt.Sprintf("%d-%d-%s", year, month, policy)
}

func sedeIndexKey(sede string) string {
	return fmt.Sprintf("planilla:sede:%s", sede)
}

// sedeGenerationKey counts invalidations of a sede. A report built from
// data read under one generation is only kept if no invalidation happened
// before it was written.
func sedeGenerationKey(sede string) string {
	return fmt.Sprintf("planilla:sede:%s:gen", sede)
}

// ErrStaleReport means the sede was invalidated while the report was being
// built; the write was discarded.
var ErrStaleReport = errors.New("planilla: sede invalidated during build")

//go:generate mockgen -source=planilla_cache.go -destination=mock/planilla_cache_mock.go -package=mock
type Cache interface {
	Get(ctx context.Context, scheduleID, field string) (*Report, error)
	// Generation must be read before the data the report is built from.
	Generation(ctx context.Context, sede string) (int64, error)
	Set(ctx context.Context, r Report, field string, gen int64) error
	InvalidateSede(ctx context.Context, sede string) error
}

type redisCache struct {
	rdb *redis.Client
}

func NewRedisCache(rdb *redis.Client) Cache {
	if rdb == nil {
		return NoopCache{}
	}
	return &redisCache{rdb: rdb}
}

// Get returns nil, nil on a miss.
func (c *redisCache) Get(ctx context.Context, scheduleID, field string) (*Report, error) {
	raw, err := c.rdb.HGet(ctx, CacheKey(scheduleID), field).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var r Report
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *redisCache) Generation(ctx context.Context, sede string) (int64, error) {
	gen, err := c.rdb.Get(ctx, sedeGenerationKey(sede)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Set stores r and then rechecks the sede generation. When it moved past
// gen the field is removed again and ErrStaleReport is returned. An
// invalidation landing after the recheck deletes the entry through the sede
// index, so no stale report survives either way.
func (c *redisCache) Set(ctx context.Context, r Report, field string, gen int64) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return err
	}

	key := CacheKey(r.ScheduleID)
	pipe := c.rdb.TxPipeline()
	pipe.HSet(ctx, key, field, payload)
	pipe.Expire(ctx, key, cacheTTL)
	pipe.SAdd(ctx, sedeIndexKey(r.Sede), key)
	pipe.Expire(ctx, sedeIndexKey(r.Sede), cacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}

	current, err := c.Generation(ctx, r.Sede)
	if err != nil {
		return err
	}
	if current != gen {
		if err := c.rdb.HDel(ctx, key, field).Err(); err != nil {
			return err
		}
		return ErrStaleReport
	}
	return nil
}

// InvalidateSede bumps the sede generation and drops every cached planilla
// of the sede's schedules. The bump comes first so builds racing with the
// delete notice it.
func (c *redisCache) InvalidateSede(ctx context.Context, sede string) error {
	if err := c.rdb.Incr(ctx, sedeGenerationKey(sede)).Err(); err != nil {
		return err
	}

	index := sedeIndexKey(sede)
	keys, err := c.rdb.SMembers(ctx, index).Result()
	if err != nil {
		return err
	}
	return c.rdb.Del(ctx, append(keys, index)...).Err()
}

// NoopCache never stores anything.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string, string) (*Report, error) { return nil, nil }
func (NoopCache) Generation(context.Context, string) (int64, error)    { return 0, nil }
func (NoopCache) Set(context.Context, Report, string, int64) error     { return nil }
func (NoopCache) InvalidateSede(context.Context, string) error         { return nil }
