package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/agrinet/internal/config"
	"github.com/yungbote/agrinet/internal/diagnosis"
	"github.com/yungbote/agrinet/internal/platform/logger"
)

// PredictionCache stores predictions in redis keyed by image digest.
type PredictionCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

// NewPredictionCache connects to cfg.Addr and pings it before returning.
func NewPredictionCache(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) (*PredictionCache, error) {
	if cfg.Addr == "" {
		return nil, errors.New("missing redis addr")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewFromClient(rdb, cfg.TTL.Duration, log), nil
}

func NewFromClient(rdb *goredis.Client, ttl time.Duration, log *logger.Logger) *PredictionCache {
	if log == nil {
		log = logger.NewNop()
	}
	return &PredictionCache{
		log: log.With("service", "PredictionCache"),
		rdb: rdb,
		ttl: ttl,
	}
}

func (c *PredictionCache) Get(ctx context.Context, key string) (*diagnosis.Prediction, bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var p diagnosis.Prediction
	if err := json.Unmarshal(raw, &p); err != nil {
		// A corrupt entry behaves like a miss and is dropped.
		_ = c.rdb.Del(ctx, key).Err()
		return nil, false, nil
	}
	return &p, true, nil
}

func (c *PredictionCache) Set(ctx context.Context, key string, p *diagnosis.Prediction) error {
	if p == nil {
		return nil
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, c.ttl).Err()
}

func (c *PredictionCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *PredictionCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
