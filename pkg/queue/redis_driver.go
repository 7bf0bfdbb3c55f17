package queue

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// popTimeout bounds each BRPOP so workers notice context cancellation.
	popTimeout = 5 * time.Second
	// promoteBatch caps how many delayed jobs one sweep moves at once.
	promoteBatch = 128
)

// RedisDriver is a durable queue driver backed by Redis. Immediate jobs live
// on a list; delayed jobs sit in a sorted set scored by their due time and a
// background sweep moves them over once due.
type RedisDriver struct {
	rdb      *redis.Client
	jobsKey  string
	delayKey string
	stop     chan struct{}
}

// NewRedisDriver creates a Redis-backed queue driver on the shop's keyspace.
// Pass the same *redis.Client used by pkg/cache.
func NewRedisDriver(rdb *redis.Client) *RedisDriver {
	d := &RedisDriver{
		rdb:      rdb,
		jobsKey:  "shop:queue:jobs",
		delayKey: "shop:queue:delayed",
		stop:     make(chan struct{}),
	}
	go d.sweepDelayed()
	return d
}

// Close stops the delayed-job sweep. The Redis client itself belongs to
// pkg/cache and is not closed here.
func (d *RedisDriver) Close() {
	close(d.stop)
}

// Push enqueues a job payload for immediate processing.
func (d *RedisDriver) Push(payload []byte) error {
	if err := d.rdb.LPush(context.Background(), d.jobsKey, payload).Err(); err != nil {
		return fmt.Errorf("queue/redis: push: %w", err)
	}
	return nil
}

// Pop blocks until a job is available or the timeout elapses. A nil payload
// with a nil error means no job was ready.
func (d *RedisDriver) Pop(ctx context.Context) ([]byte, error) {
	vals, err := d.rdb.BRPop(ctx, popTimeout, d.jobsKey).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("queue/redis: pop: %w", err)
	case len(vals) < 2:
		return nil, nil
	}
	return []byte(vals[1]), nil
}

// PushDelayed schedules a job to become available after delay. The sorted-set
// score is the Unix timestamp at which the job falls due.
func (d *RedisDriver) PushDelayed(payload []byte, delay time.Duration) error {
	member := redis.Z{
		Score:  float64(time.Now().Add(delay).Unix()),
		Member: string(payload),
	}
	if err := d.rdb.ZAdd(context.Background(), d.delayKey, member).Err(); err != nil {
		return fmt.Errorf("queue/redis: push delayed: %w", err)
	}
	return nil
}

// sweepDelayed promotes due jobs from the delayed set to the main queue,
// once a second, until Close is called.
func (d *RedisDriver) sweepDelayed() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-d.stop:
			return
		case now := <-ticker.C:
			d.promoteDue(now)
		}
	}
}

func (d *RedisDriver) promoteDue(now time.Time) {
	ctx := context.Background()

	due, err := d.rdb.ZRangeByScore(ctx, d.delayKey, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatInt(now.Unix(), 10),
		Count: promoteBatch,
	}).Result()
	if err != nil || len(due) == 0 {
		return
	}

	// ZRem + LPush atomically per sweep, so a job is never on both keys.
	pipe := d.rdb.TxPipeline()
	for _, payload := range due {
		pipe.ZRem(ctx, d.delayKey, payload)
		pipe.LPush(ctx, d.jobsKey, []byte(payload))
	}
	pipe.Exec(ctx) //nolint:errcheck
}
