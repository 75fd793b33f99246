package ports

import (
	"context"

	"github.com/tradeco/marketplace-api/internal/core/domain"
)

// DashboardStats is the general statistics block.
type DashboardStats struct {
	Users    UserStats
	Products ProductStats
}

// RecentActivity bundles the latest registrations and listings.
type RecentActivity struct {
	RecentUsers    []RecentUser
	RecentProducts []*domain.Product
}

// GrowthPoint is a month bucket with a display label (e.g. "Ene 2026").
type GrowthPoint struct {
	Month string
	Count int64
}

// DashboardService defines the admin aggregate views. All operations are
// admin-only; the role check lives in the middleware chain, not here.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
	ProductsByCategory(ctx context.Context) ([]CategoryCount, error)
	RecentActivity(ctx context.Context) (*RecentActivity, error)
	UsersGrowth(ctx context.Context) ([]GrowthPoint, error)
	TopSellers(ctx context.Context) ([]TopSeller, error)
	PriceStats(ctx context.Context) (PriceStats, error)
}
