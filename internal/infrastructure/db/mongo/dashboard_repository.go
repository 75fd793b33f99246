package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tradeco/marketplace-api/internal/core/domain"
	"github.com/tradeco/marketplace-api/internal/core/ports"
)

// DashboardRepository answers the admin aggregates straight from the users
// and products collections; counting and grouping stay inside MongoDB.
type DashboardRepository struct {
	users    *mongo.Collection
	products *mongo.Collection
}

func NewDashboardRepository(db *mongo.Database) *DashboardRepository {
	return &DashboardRepository{
		users:    db.Collection(usersCollection),
		products: db.Collection(productsCollection),
	}
}

func (r *DashboardRepository) UserCounts(ctx context.Context, since time.Time) (ports.UserStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var stats ports.UserStats
	var err error

	if stats.Total, err = r.users.CountDocuments(ctx, bson.M{}); err != nil {
		return stats, fmt.Errorf("count users: %w", err)
	}
	if stats.Active, err = r.users.CountDocuments(ctx, bson.M{"active": true}); err != nil {
		return stats, fmt.Errorf("count active users: %w", err)
	}
	newFilter := bson.M{"created_at": bson.M{"$gte": since}}
	if stats.NewSince, err = r.users.CountDocuments(ctx, newFilter); err != nil {
		return stats, fmt.Errorf("count new users: %w", err)
	}

	return stats, nil
}

func (r *DashboardRepository) ProductCounts(ctx context.Context, since time.Time) (ports.ProductStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var stats ports.ProductStats
	var err error

	if stats.Total, err = r.products.CountDocuments(ctx, bson.M{}); err != nil {
		return stats, fmt.Errorf("count products: %w", err)
	}
	available := bson.M{"estado": string(domain.StatusDisponible)}
	if stats.Available, err = r.products.CountDocuments(ctx, available); err != nil {
		return stats, fmt.Errorf("count available products: %w", err)
	}
	sold := bson.M{"estado": string(domain.StatusVendido)}
	if stats.Sold, err = r.products.CountDocuments(ctx, sold); err != nil {
		return stats, fmt.Errorf("count sold products: %w", err)
	}
	newFilter := bson.M{"created_at": bson.M{"$gte": since}}
	if stats.NewSince, err = r.products.CountDocuments(ctx, newFilter); err != nil {
		return stats, fmt.Errorf("count new products: %w", err)
	}

	return stats, nil
}

func (r *DashboardRepository) ProductsByCategory(ctx context.Context) ([]ports.CategoryCount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$categoria",
			"total": bson.M{"$sum": 1},
			"disponibles": bson.M{"$sum": bson.M{
				"$cond": bson.A{
					bson.M{"$eq": bson.A{"$estado", string(domain.StatusDisponible)}}, 1, 0,
				},
			}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "total", Value: -1}}}},
	}

	cur, err := r.products.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("products by category: %w", err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		Categoria   string `bson:"_id"`
		Total       int64  `bson:"total"`
		Disponibles int64  `bson:"disponibles"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("products by category decode: %w", err)
	}

	counts := make([]ports.CategoryCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, ports.CategoryCount{
			Categoria:   row.Categoria,
			Total:       row.Total,
			Disponibles: row.Disponibles,
		})
	}
	return counts, nil
}

func (r *DashboardRepository) RecentUsers(ctx context.Context, limit int) ([]ports.RecentUser, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.users.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("recent users: %w", err)
	}
	defer cur.Close(ctx)

	var users []ports.RecentUser
	for cur.Next(ctx) {
		var row struct {
			ID        primitive.ObjectID `bson:"_id"`
			Username  string             `bson:"username"`
			Email     string             `bson:"email"`
			CreatedAt time.Time          `bson:"created_at"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("recent users decode: %w", err)
		}
		users = append(users, ports.RecentUser{
			ID:        row.ID.Hex(),
			Username:  row.Username,
			Email:     row.Email,
			CreatedAt: row.CreatedAt.UTC(),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("recent users: %w", err)
	}
	return users, nil
}

func (r *DashboardRepository) RecentProducts(ctx context.Context, limit int) ([]*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.products.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("recent products: %w", err)
	}
	defer cur.Close(ctx)

	return decodeProducts(ctx, cur)
}

func (r *DashboardRepository) UsersGrowth(ctx context.Context, maxBuckets int) ([]ports.MonthCount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$created_at"},
				"month": bson.M{"$month": "$created_at"},
			},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "_id.year", Value: 1},
			{Key: "_id.month", Value: 1},
		}}},
		{{Key: "$limit", Value: maxBuckets}},
	}

	cur, err := r.users.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("users growth: %w", err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		ID struct {
			Year  int `bson:"year"`
			Month int `bson:"month"`
		} `bson:"_id"`
		Count int64 `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("users growth decode: %w", err)
	}

	buckets := make([]ports.MonthCount, 0, len(rows))
	for _, row := range rows {
		buckets = append(buckets, ports.MonthCount{
			Year:  row.ID.Year,
			Month: row.ID.Month,
			Count: row.Count,
		})
	}
	return buckets, nil
}

func (r *DashboardRepository) TopSellers(ctx context.Context, limit int) ([]ports.TopSeller, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":            "$user_id",
			"username":       bson.M{"$first": "$username"},
			"total_products": bson.M{"$sum": 1},
			"available": bson.M{"$sum": bson.M{
				"$cond": bson.A{
					bson.M{"$eq": bson.A{"$estado", string(domain.StatusDisponible)}}, 1, 0,
				},
			}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "total_products", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cur, err := r.products.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("top sellers: %w", err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		UserID        string `bson:"_id"`
		Username      string `bson:"username"`
		TotalProducts int64  `bson:"total_products"`
		Available     int64  `bson:"available"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("top sellers decode: %w", err)
	}

	sellers := make([]ports.TopSeller, 0, len(rows))
	for _, row := range rows {
		sellers = append(sellers, ports.TopSeller{
			UserID:        row.UserID,
			Username:      row.Username,
			TotalProducts: row.TotalProducts,
			Available:     row.Available,
		})
	}
	return sellers, nil
}

func (r *DashboardRepository) PriceStats(ctx context.Context) (ports.PriceStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":       nil,
			"avg_price": bson.M{"$avg": "$precio"},
			"min_price": bson.M{"$min": "$precio"},
			"max_price": bson.M{"$max": "$precio"},
		}}},
	}

	cur, err := r.products.Aggregate(ctx, pipeline)
	if err != nil {
		return ports.PriceStats{}, fmt.Errorf("price stats: %w", err)
	}
	defer cur.Close(ctx)

	var rows []struct {
		Avg float64 `bson:"avg_price"`
		Min float64 `bson:"min_price"`
		Max float64 `bson:"max_price"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return ports.PriceStats{}, fmt.Errorf("price stats decode: %w", err)
	}
	if len(rows) == 0 {
		// No products yet.
		return ports.PriceStats{}, nil
	}

	return ports.PriceStats{
		Average: rows[0].Avg,
		Minimum: rows[0].Min,
		Maximum: rows[0].Max,
	}, nil
}
