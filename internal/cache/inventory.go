package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

const (
	VehicleKeyPrefix = "vehicle:%d"
	MakesKey         = "vehicles:makes"
	UserKeyPrefix    = "user:clerk:%s"
)

// Vehicles are reference data and change only when reseeded, so they tolerate
// long TTLs. Users change on webhook delivery, so they stay short.
const (
	VehicleTTL = 30 * time.Minute
	MakesTTL   = 30 * time.Minute
	UserTTL    = 5 * time.Minute
)

func VehicleKey(vehicleID uint) string {
	return fmt.Sprintf(VehicleKeyPrefix, vehicleID)
}

func UserKey(clerkID string) string {
	return fmt.Sprintf(UserKeyPrefix, clerkID)
}

// GetJSON attempts to get the key from Redis and unmarshal into dest.
// Returns (true, nil) if found and unmarshaled, (false, nil) if not found.
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if client == nil {
		return false, nil
	}
	s, err := client.Get(ctx, key).Result()
	if err != nil {
		// redis.Nil and transport errors alike fall back to the source.
		return false, nil
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		return false, nil
	}
	return true, nil
}

// SetJSON marshals v and sets the key with TTL. Best effort.
func SetJSON(ctx context.Context, key string, v any, ttl time.Duration) {
	if client == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = client.Set(ctx, key, b, ttl).Err()
}

// Aside tries Redis first, on miss calls fetch (which must populate dest),
// then stores the result with ttl. Cache failures never fail the read.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	if found, _ := GetJSON(ctx, key, dest); found {
		return nil
	}
	if err := fetch(); err != nil {
		return err
	}
	SetJSON(ctx, key, dest, ttl)
	return nil
}

// Invalidate removes a key. Best effort.
func Invalidate(ctx context.Context, key string) {
	if client == nil {
		return
	}
	_ = client.Del(ctx, key).Err()
}

// InvalidateUser removes the cached user entry for a clerk ID.
func InvalidateUser(ctx context.Context, clerkID string) {
	Invalidate(ctx, UserKey(clerkID))
}
