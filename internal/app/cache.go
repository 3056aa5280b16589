package app

import (
	"context"

	"github.com/seveneightfive/warehouse-414-vintage-finds/internal/domain"
)

// ProductCache is a read cache for product detail lookups. Mutating services
// call InvalidateProduct explicitly after every write that touches a product;
// there is no implicit subscription or TTL reliance for correctness.
type ProductCache interface {
	GetProduct(ctx context.Context, id string) (*domain.Product, bool)
	SetProduct(ctx context.Context, product domain.Product)
	InvalidateProduct(ctx context.Context, id string)
}

// StatsCache caches the admin dashboard counters, invalidated after every
// submission or transition that changes them.
type StatsCache interface {
	GetStats(ctx context.Context) (*domain.DashboardStats, bool)
	SetStats(ctx context.Context, stats domain.DashboardStats)
	InvalidateStats(ctx context.Context)
}
