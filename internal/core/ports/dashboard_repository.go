package ports

import (
	"context"
	"time"

	"github.com/tradeco/marketplace-api/internal/core/domain"
)

// UserStats aggregates user counts for the dashboard.
type UserStats struct {
	Total    int64
	Active   int64
	NewSince int64
}

// ProductStats aggregates product counts for the dashboard.
type ProductStats struct {
	Total     int64
	Available int64
	Sold      int64
	NewSince  int64
}

// CategoryCount is one row of the products-by-category aggregation.
type CategoryCount struct {
	Categoria   string
	Total       int64
	Disponibles int64
}

// RecentUser is the trimmed user view used in the recent-activity feed.
type RecentUser struct {
	ID        string
	Username  string
	Email     string
	CreatedAt time.Time
}

// MonthCount is one bucket of the users-growth aggregation.
type MonthCount struct {
	Year  int
	Month int // 1-12
	Count int64
}

// TopSeller is one row of the top-sellers aggregation.
type TopSeller struct {
	UserID        string
	Username      string
	TotalProducts int64
	Available     int64
}

// PriceStats holds the price aggregation over all products.
type PriceStats struct {
	Average float64
	Minimum float64
	Maximum float64
}

// DashboardRepository defines the aggregation queries behind the admin
// dashboard. All heavy lifting is delegated to the document store.
type DashboardRepository interface {
	UserCounts(ctx context.Context, since time.Time) (UserStats, error)
	ProductCounts(ctx context.Context, since time.Time) (ProductStats, error)
	ProductsByCategory(ctx context.Context) ([]CategoryCount, error)
	RecentUsers(ctx context.Context, limit int) ([]RecentUser, error)
	RecentProducts(ctx context.Context, limit int) ([]*domain.Product, error)
	UsersGrowth(ctx context.Context, maxBuckets int) ([]MonthCount, error)
	TopSellers(ctx context.Context, limit int) ([]TopSeller, error)
	PriceStats(ctx context.Context) (PriceStats, error)
}
