package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/service-on-wheel/internal/config"
	"github.com/BruksfildServices01/service-on-wheel/internal/domain/catalog"
	"github.com/BruksfildServices01/service-on-wheel/internal/logger"
	"github.com/BruksfildServices01/service-on-wheel/internal/metrics"
	"github.com/BruksfildServices01/service-on-wheel/internal/models"
)

const (
	keyAllServices = "catalog:services:all"
	keyServicePfx  = "catalog:services:"
)

// Store is the subset of *redis.Client used here.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
}

func Ping(ctx context.Context, client *redis.Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("cache: redis ping: %w", err)
	}
	return nil
}

// Catalog is a read-through cache in front of catalog.Repository. A nil
// *Catalog or one without a store passes everything through.
type Catalog struct {
	store Store
	ttl   time.Duration
}

func NewCatalog(store Store, ttl time.Duration) *Catalog {
	return &Catalog{store: store, ttl: ttl}
}

func (c *Catalog) Wrap(next catalog.Repository) catalog.Repository {
	if c == nil || c.store == nil {
		return next
	}
	return &cachedCatalog{cache: c, next: next}
}

// Invalidate drops the cached listing. Per-service entries expire on their
// own; services are never deleted through the API.
func (c *Catalog) Invalidate(ctx context.Context) error {
	if c == nil || c.store == nil {
		return nil
	}
	return c.store.Del(ctx, keyAllServices).Err()
}

func (c *Catalog) get(ctx context.Context, key string, dest any) bool {
	val, err := c.store.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.WithCtx(ctx).Warn("catalog cache read failed", "key", key, "error", err)
		}
		metrics.CacheMisses.WithLabelValues(label(key)).Inc()
		return false
	}
	if err := json.Unmarshal(val, dest); err != nil {
		metrics.CacheMisses.WithLabelValues(label(key)).Inc()
		return false
	}
	metrics.CacheHits.WithLabelValues(label(key)).Inc()
	return true
}

func (c *Catalog) set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.store.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logger.WithCtx(ctx).Warn("catalog cache write failed", "key", key, "error", err)
	}
}

func label(key string) string {
	if key == keyAllServices {
		return "all"
	}
	return "service"
}

type cachedCatalog struct {
	cache *Catalog
	next  catalog.Repository
}

func (r *cachedCatalog) ListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if r.cache.get(ctx, keyAllServices, &services) {
		return services, nil
	}

	services, err := r.next.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	r.cache.set(ctx, keyAllServices, services)
	return services, nil
}

func (r *cachedCatalog) GetService(ctx context.Context, id uint) (*models.Service, error) {
	key := fmt.Sprintf("%s%d", keyServicePfx, id)

	var svc models.Service
	if r.cache.get(ctx, key, &svc) {
		return &svc, nil
	}

	found, err := r.next.GetService(ctx, id)
	if err != nil {
		return nil, err
	}
	r.cache.set(ctx, key, found)
	return found, nil
}

// SearchServices is never cached.
func (r *cachedCatalog) SearchServices(ctx context.Context, term string) ([]models.Service, error) {
	return r.next.SearchServices(ctx, term)
}
