package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradeco/marketplace-api/internal/core/ports"
)

const (
	recentActivityLimit = 10
	topSellersLimit     = 10
	growthBuckets       = 12
	statsWindow         = 30 * 24 * time.Hour
)

// monthNames are the Spanish month abbreviations used in growth labels.
var monthNames = [12]string{
	"Ene", "Feb", "Mar", "Abr", "May", "Jun",
	"Jul", "Ago", "Sep", "Oct", "Nov", "Dic",
}

// DashboardService shapes the admin aggregates. The store does the counting
// and grouping; this layer only fixes windows, limits and labels.
type DashboardService struct {
	repo ports.DashboardRepository
	log  zerolog.Logger
}

func NewDashboardService(repo ports.DashboardRepository, log zerolog.Logger) *DashboardService {
	return &DashboardService{repo: repo, log: log}
}

// Stats returns the general user and product counters, with "new" meaning
// created within the last 30 days.
func (s *DashboardService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	since := time.Now().UTC().Add(-statsWindow)

	users, err := s.repo.UserCounts(ctx, since)
	if err != nil {
		return nil, err
	}
	products, err := s.repo.ProductCounts(ctx, since)
	if err != nil {
		return nil, err
	}

	return &ports.DashboardStats{Users: users, Products: products}, nil
}

func (s *DashboardService) ProductsByCategory(ctx context.Context) ([]ports.CategoryCount, error) {
	return s.repo.ProductsByCategory(ctx)
}

func (s *DashboardService) RecentActivity(ctx context.Context) (*ports.RecentActivity, error) {
	users, err := s.repo.RecentUsers(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	products, err := s.repo.RecentProducts(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	return &ports.RecentActivity{RecentUsers: users, RecentProducts: products}, nil
}

// UsersGrowth returns registration counts bucketed per month, labelled for
// display ("Ene 2026").
func (s *DashboardService) UsersGrowth(ctx context.Context) ([]ports.GrowthPoint, error) {
	buckets, err := s.repo.UsersGrowth(ctx, growthBuckets)
	if err != nil {
		return nil, err
	}

	points := make([]ports.GrowthPoint, 0, len(buckets))
	for _, b := range buckets {
		label := fmt.Sprintf("%d-%02d", b.Year, b.Month)
		if b.Month >= 1 && b.Month <= 12 {
			label = fmt.Sprintf("%s %d", monthNames[b.Month-1], b.Year)
		}
		points = append(points, ports.GrowthPoint{Month: label, Count: b.Count})
	}
	return points, nil
}

func (s *DashboardService) TopSellers(ctx context.Context) ([]ports.TopSeller, error) {
	return s.repo.TopSellers(ctx, topSellersLimit)
}

func (s *DashboardService) PriceStats(ctx context.Context) (ports.PriceStats, error) {
	return s.repo.PriceStats(ctx)
}
