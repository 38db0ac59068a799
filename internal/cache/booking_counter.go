package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const bookingCountTTL = 10 * time.Minute

// 只有 key 已存在（由 Mongo count 預熱過）才遞增，避免把快取初始化成 1
var incrIfExistsScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
	return redis.call("INCR", KEYS[1])
end
return 0
`)

type BookingCounter interface {
	// Get 讀取快取的報名數，第二個回傳值代表是否命中
	Get(ctx context.Context, eventID string) (int64, bool, error)
	// Set 以 Mongo 的計數預熱快取
	Set(ctx context.Context, eventID string, count int64) error
	// Incr 報名成功後遞增快取計數
	Incr(ctx context.Context, eventID string) error
}

type RedisBookingCounter struct {
	client *redis.Client
}

func NewRedisBookingCounter(client *redis.Client) BookingCounter {
	return &RedisBookingCounter{client: client}
}

func (c *RedisBookingCounter) key(eventID string) string {
	return fmt.Sprintf("event:%s:bookings", eventID)
}

func (c *RedisBookingCounter) Get(ctx context.Context, eventID string) (int64, bool, error) {
	count, err := c.client.Get(ctx, c.key(eventID)).Int64()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return count, true, nil
}

func (c *RedisBookingCounter) Set(ctx context.Context, eventID string, count int64) error {
	return c.client.Set(ctx, c.key(eventID), count, bookingCountTTL).Err()
}

func (c *RedisBookingCounter) Incr(ctx context.Context, eventID string) error {
	return incrIfExistsScript.Run(ctx, c.client, []string{c.key(eventID)}).Err()
}
