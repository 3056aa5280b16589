package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
)

const (
	productKeyPrefix = "product:"
	statsKey         = "dashboard:stats"
)

// Redis is a read-through cache for product detail and dashboard stats.
// Callers invalidate explicitly after each relevant mutation; the TTL is a
// backstop, not the consistency mechanism. Every error degrades to a miss.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger *log.Logger
}

func NewRedis(client *redis.Client, ttl time.Duration, logger *log.Logger) *Redis {
	if logger == nil {
		logger = log.Default()
	}
	return &Redis{client: client, ttl: ttl, logger: logger}
}

func (r *Redis) GetProduct(ctx context.Context, id string) (*domain.Product, bool) {
	payload, err := r.client.Get(ctx, productKeyPrefix+id).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.logger.Printf("WARN: cache get product %s: %v", id, err)
		}
		return nil, false
	}

	var product domain.Product
	if err := json.Unmarshal(payload, &product); err != nil {
		r.logger.Printf("WARN: cache decode product %s: %v", id, err)
		return nil, false
	}
	return &product, true
}

func (r *Redis) SetProduct(ctx context.Context, product domain.Product) {
	payload, err := json.Marshal(product)
	if err != nil {
		r.logger.Printf("WARN: cache encode product %s: %v", product.ID, err)
		return
	}
	if err := r.client.Set(ctx, productKeyPrefix+product.ID, payload, r.ttl).Err(); err != nil {
		r.logger.Printf("WARN: cache set product %s: %v", product.ID, err)
	}
}

func (r *Redis) InvalidateProduct(ctx context.Context, id string) {
	if err := r.client.Del(ctx, productKeyPrefix+id).Err(); err != nil {
		r.logger.Printf("WARN: cache invalidate product %s: %v", id, err)
	}
}

func (r *Redis) GetStats(ctx context.Context) (*domain.DashboardStats, bool) {
	payload, err := r.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.logger.Printf("WARN: cache get stats: %v", err)
		}
		return nil, false
	}

	var stats domain.DashboardStats
	if err := json.Unmarshal(payload, &stats); err != nil {
		r.logger.Printf("WARN: cache decode stats: %v", err)
		return nil, false
	}
	return &stats, true
}

func (r *Redis) SetStats(ctx context.Context, stats domain.DashboardStats) {
	payload, err := json.Marshal(stats)
	if err != nil {
		r.logger.Printf("WARN: cache encode stats: %v", err)
		return
	}
	if err := r.client.Set(ctx, statsKey, payload, r.ttl).Err(); err != nil {
		r.logger.Printf("WARN: cache set stats: %v", err)
	}
}

func (r *Redis) InvalidateStats(ctx context.Context) {
	if err := r.client.Del(ctx, statsKey).Err(); err != nil {
		r.logger.Printf("WARN: cache invalidate stats: %v", err)
	}
}
