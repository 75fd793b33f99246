package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradeco/marketplace-api/internal/core/domain"
	"github.com/tradeco/marketplace-api/internal/core/ports"
)

// stubDashboardRepo returns canned aggregates and records the arguments it
// was called with.
type stubDashboardRepo struct {
	userStats    ports.UserStats
	productStats ports.ProductStats
	growth       []ports.MonthCount

	since        time.Time
	recentLimits []int
	maxBuckets   int
}

func (r *stubDashboardRepo) UserCounts(_ context.Context, since time.Time) (ports.UserStats, error) {
	r.since = since
	return r.userStats, nil
}

func (r *stubDashboardRepo) ProductCounts(_ context.Context, since time.Time) (ports.ProductStats, error) {
	return r.productStats, nil
}

func (r *stubDashboardRepo) ProductsByCategory(context.Context) ([]ports.CategoryCount, error) {
	return []ports.CategoryCount{{Categoria: "Remeras", Total: 4, Disponibles: 2}}, nil
}

func (r *stubDashboardRepo) RecentUsers(_ context.Context, limit int) ([]ports.RecentUser, error) {
	r.recentLimits = append(r.recentLimits, limit)
	return []ports.RecentUser{{ID: "u1", Username: "ana"}}, nil
}

func (r *stubDashboardRepo) RecentProducts(_ context.Context, limit int) ([]*domain.Product, error) {
	r.recentLimits = append(r.recentLimits, limit)
	return []*domain.Product{{ID: "p1", Nombre: "Campera"}}, nil
}

func (r *stubDashboardRepo) UsersGrowth(_ context.Context, maxBuckets int) ([]ports.MonthCount, error) {
	r.maxBuckets = maxBuckets
	return r.growth, nil
}

func (r *stubDashboardRepo) TopSellers(_ context.Context, limit int) ([]ports.TopSeller, error) {
	return []ports.TopSeller{{UserID: "u1", Username: "ana", TotalProducts: 7, Available: 3}}, nil
}

func (r *stubDashboardRepo) PriceStats(context.Context) (ports.PriceStats, error) {
	return ports.PriceStats{Average: 120.5, Minimum: 10, Maximum: 900}, nil
}

func TestDashboardService_Stats(t *testing.T) {
	repo := &stubDashboardRepo{
		userStats:    ports.UserStats{Total: 12, Active: 11, NewSince: 3},
		productStats: ports.ProductStats{Total: 5, Available: 2, Sold: 3, NewSince: 1},
	}
	svc := NewDashboardService(repo, zerolog.Nop())

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats returned error: %v", err)
	}
	if stats.Users.Total != 12 || stats.Users.NewSince != 3 {
		t.Fatalf("unexpected user stats: %+v", stats.Users)
	}
	if stats.Products.Available != 2 || stats.Products.Sold != 3 {
		t.Fatalf("unexpected product stats: %+v", stats.Products)
	}

	// "New" means the trailing 30-day window.
	wantSince := time.Now().UTC().Add(-30 * 24 * time.Hour)
	if diff := repo.since.Sub(wantSince); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("unexpected stats window start: %v", repo.since)
	}
}

func TestDashboardService_RecentActivity(t *testing.T) {
	repo := &stubDashboardRepo{}
	svc := NewDashboardService(repo, zerolog.Nop())

	activity, err := svc.RecentActivity(context.Background())
	if err != nil {
		t.Fatalf("RecentActivity returned error: %v", err)
	}
	if len(activity.RecentUsers) != 1 || len(activity.RecentProducts) != 1 {
		t.Fatalf("unexpected activity: %+v", activity)
	}
	for _, limit := range repo.recentLimits {
		if limit != recentActivityLimit {
			t.Fatalf("expected limit %d, got %d", recentActivityLimit, limit)
		}
	}
}

func TestDashboardService_UsersGrowth_Labels(t *testing.T) {
	repo := &stubDashboardRepo{growth: []ports.MonthCount{
		{Year: 2025, Month: 12, Count: 4},
		{Year: 2026, Month: 1, Count: 9},
	}}
	svc := NewDashboardService(repo, zerolog.Nop())

	points, err := svc.UsersGrowth(context.Background())
	if err != nil {
		t.Fatalf("UsersGrowth returned error: %v", err)
	}
	if repo.maxBuckets != growthBuckets {
		t.Fatalf("expected %d buckets requested, got %d", growthBuckets, repo.maxBuckets)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Month != "Dic 2025" || points[0].Count != 4 {
		t.Fatalf("unexpected first point: %+v", points[0])
	}
	if points[1].Month != "Ene 2026" || points[1].Count != 9 {
		t.Fatalf("unexpected second point: %+v", points[1])
	}
}
