package similarity

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const DefaultCacheTTL = 24 * time.Hour

// RedisStore is the part of a redis client the embedding cache uses.
type RedisStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

type CacheOptions struct {
	// Namespace separates vectors of different models.
	Namespace string
	// Redis is the optional second tier. Nil keeps the cache in memory only.
	Redis  RedisStore
	TTL    time.Duration
	Logger *zap.Logger
}

// CachedEmbedder keeps vectors in memory and, when configured, in Redis.
// Cache failures are logged and never fail an embedding.
type CachedEmbedder struct {
	next      Embedder
	namespace string
	l1        sync.Map // key -> []float32
	rdb       RedisStore
	ttl       time.Duration
	logger    *zap.Logger
}

func NewCachedEmbedder(next Embedder, opts CacheOptions) *CachedEmbedder {
	c := &CachedEmbedder{
		next:      next,
		namespace: opts.Namespace,
		rdb:       opts.Redis,
		ttl:       opts.TTL,
		logger:    opts.Logger,
	}
	if c.ttl <= 0 {
		c.ttl = DefaultCacheTTL
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	return c
}

// CacheKey builds a deterministic key from the namespace and the text.
func CacheKey(namespace, text string) string {
	hash := sha256.Sum256([]byte(namespace + "|" + text))
	return fmt.Sprintf("jm:emb:%x", hash[:16])
}

func (c *CachedEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	key := CacheKey(c.namespace, text)

	if v, ok := c.l1.Load(key); ok {
		return v.([]float32), nil
	}

	if c.rdb != nil {
		data, err := c.rdb.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			var vec []float32
			if err := json.Unmarshal(data, &vec); err == nil && len(vec) > 0 {
				c.l1.Store(key, vec)
				return vec, nil
			}
			c.logger.Debug("cache: corrupt L2 entry", zap.String("key", key))
		case !errors.Is(err, redis.Nil):
			c.logger.Debug("cache: L2 get failed", zap.String("key", key), zap.Error(err))
		}
	}

	vec, err := c.next.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	c.l1.Store(key, vec)
	if c.rdb != nil {
		data, err := json.Marshal(vec)
		if err == nil {
			err = c.rdb.Set(ctx, key, data, c.ttl).Err()
		}
		if err != nil {
			c.logger.Debug("cache: L2 set failed", zap.String("key", key), zap.Error(err))
		}
	}

	return vec, nil
}

// ConnectRedis parses url and pings the server.
func ConnectRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	rdb := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", opts.Addr, err)
	}
	return rdb, nil
}
