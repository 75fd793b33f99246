package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tradeco/marketplace-api/internal/core/domain"
	"github.com/tradeco/marketplace-api/internal/core/ports"
)

const productsCollection = "products"

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productsCollection)}
}

type mongoProduct struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Nombre      string             `bson:"nombre"`
	Descripcion string             `bson:"descripcion"`
	Precio      float64            `bson:"precio"`
	Talla       string             `bson:"talla"`
	Categoria   string             `bson:"categoria"`
	ImagenURL   string             `bson:"imagen_url"`
	UserID      string             `bson:"user_id"`
	Username    string             `bson:"username"`
	Estado      string             `bson:"estado"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (mp *mongoProduct) toDomain() *domain.Product {
	return &domain.Product{
		ID:          mp.ID.Hex(),
		Nombre:      mp.Nombre,
		Descripcion: mp.Descripcion,
		Precio:      mp.Precio,
		Talla:       mp.Talla,
		Categoria:   mp.Categoria,
		ImagenURL:   mp.ImagenURL,
		UserID:      mp.UserID,
		Username:    mp.Username,
		Estado:      domain.ProductStatus(mp.Estado),
		CreatedAt:   mp.CreatedAt.UTC(),
		UpdatedAt:   mp.UpdatedAt.UTC(),
	}
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := mongoProduct{
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Precio:      p.Precio,
		Talla:       p.Talla,
		Categoria:   p.Categoria,
		ImagenURL:   p.ImagenURL,
		UserID:      p.UserID,
		Username:    p.Username,
		Estado:      string(p.Estado),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	created := *p
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	created.CreatedAt = now
	created.UpdatedAt = now
	return &created, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoProduct
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return mp.toDomain(), nil
}

// List returns a page of available products plus the total count under the
// same filter. A text search uses the nombre/descripcion text index.
func (r *ProductRepository) List(ctx context.Context, filter ports.ListProductsFilter) ([]*domain.Product, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"estado": string(domain.StatusDisponible)}
	if filter.Categoria != "" {
		query["categoria"] = filter.Categoria
	}
	if filter.Search != "" {
		query["$text"] = bson.M{"$search": filter.Search}
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer cur.Close(ctx)

	products, err := decodeProducts(ctx, cur)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *ProductRepository) FindByUser(ctx context.Context, userID string, page, limit int) ([]*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list user products: %w", err)
	}
	defer cur.Close(ctx)

	return decodeProducts(ctx, cur)
}

// Update applies a partial $set by _id. Ownership is the service's decision;
// filtering by user here would silently break the admin override.
func (r *ProductRepository) Update(ctx context.Context, id string, upd ports.ProductUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProductNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Nombre != nil {
		set["nombre"] = *upd.Nombre
	}
	if upd.Descripcion != nil {
		set["descripcion"] = *upd.Descripcion
	}
	if upd.Precio != nil {
		set["precio"] = *upd.Precio
	}
	if upd.Talla != nil {
		set["talla"] = *upd.Talla
	}
	if upd.Categoria != nil {
		set["categoria"] = *upd.Categoria
	}
	if upd.ImagenURL != nil {
		set["imagen_url"] = *upd.ImagenURL
	}
	if upd.Estado != nil {
		set["estado"] = string(*upd.Estado)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProductNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func decodeProducts(ctx context.Context, cur *mongo.Cursor) ([]*domain.Product, error) {
	var products []*domain.Product
	for cur.Next(ctx) {
		var mp mongoProduct
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

// EnsureIndexes creates the lookup and text-search indexes on the products
// collection.
func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "categoria", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
		{Keys: bson.D{
			{Key: "nombre", Value: "text"},
			{Key: "descripcion", Value: "text"},
		}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
