package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"route-planner-service/internal/domain"
	"route-planner-service/internal/platform/obs"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "geocode:"

type redisEntry struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// RedisGeocodeCache stores geocoding results in Redis with a fixed TTL.
type RedisGeocodeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisGeocodeCache wraps an existing client. A zero ttl keeps entries forever.
func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{client: client, ttl: ttl}
}

// DialRedis connects to addr and verifies the connection.
func DialRedis(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connect %s: %w", addr, err)
	}
	return client, nil
}

func (c *RedisGeocodeCache) GetMany(
	ctx context.Context,
	queries []string,
) (_ map[string]domain.GeocodeResult, err error) {
	defer obs.Time(ctx, "geocode.cache.redis.GetMany")(&err)

	if c.client == nil {
		return nil, errors.New("geocode cache: redis client is nil")
	}

	uniq := uniqueKeys(queries)
	if len(uniq) == 0 {
		return map[string]domain.GeocodeResult{}, nil
	}

	keys := make([]string, len(uniq))
	for i, q := range uniq {
		keys[i] = redisKeyPrefix + q
	}

	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get geocode cache: mget: %w", err)
	}

	out := make(map[string]domain.GeocodeResult, len(uniq))
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			// nil for missing keys
			continue
		}
		var e redisEntry
		if err := json.Unmarshal([]byte(s), &e); err != nil {
			return nil, fmt.Errorf("get geocode cache: decode %q: %w", uniq[i], err)
		}
		out[uniq[i]] = domain.GeocodeResult{
			Address:  e.Address,
			Location: domain.GeoPoint{Lat: e.Lat, Lng: e.Lng},
		}
	}

	recordLookup("redis", len(uniq), len(out))
	return out, nil
}

func (c *RedisGeocodeCache) PutMany(ctx context.Context, results map[string]domain.GeocodeResult) (err error) {
	defer obs.Time(ctx, "geocode.cache.redis.PutMany")(&err)

	if c.client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	if len(results) == 0 {
		return nil
	}

	pipe := c.client.TxPipeline()
	for key, res := range results {
		if strings.TrimSpace(key) == "" {
			return errors.New("insert geocode cache: empty query key")
		}

		b, err := json.Marshal(redisEntry{
			Address: res.Address,
			Lat:     res.Location.Lat,
			Lng:     res.Location.Lng,
		})
		if err != nil {
			return fmt.Errorf("insert geocode cache: encode %q: %w", key, err)
		}
		pipe.Set(ctx, redisKeyPrefix+key, b, c.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert geocode cache: exec pipeline: %w", err)
	}
	return nil
}
