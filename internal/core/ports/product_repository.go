package ports

import (
	"context"

	"github.com/tradeco/marketplace-api/internal/core/domain"
)

// ListProductsFilter carries the query parameters for the public listing.
// The repository scopes both the page and the total count to available
// products so pagination never disagrees with the visible rows.
type ListProductsFilter struct {
	Categoria string // optional: exact category match
	Search    string // optional: text search on nombre/descripcion
	Page      int    // 1-based
	Limit     int    // rows per page
}

// ProductUpdate is a partial update of a product document. Nil means "leave
// unchanged". The repository applies it by _id only; ownership is decided by
// the service before the mutation is issued.
type ProductUpdate struct {
	Nombre      *string
	Descripcion *string
	Precio      *float64
	Talla       *string
	Categoria   *string
	ImagenURL   *string
	Estado      *domain.ProductStatus
}

// Empty reports whether the update carries no changes.
func (u ProductUpdate) Empty() bool {
	return u.Nombre == nil && u.Descripcion == nil && u.Precio == nil &&
		u.Talla == nil && u.Categoria == nil && u.ImagenURL == nil && u.Estado == nil
}

// ProductRepository defines persistence operations for product documents.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// List returns a page of available products matching filter, newest
	// first, plus the total count under the same filter.
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, int64, error)
	// FindByUser returns a user's products regardless of estado.
	FindByUser(ctx context.Context, userID string, page, limit int) ([]*domain.Product, error)
	Update(ctx context.Context, id string, upd ProductUpdate) error
	Delete(ctx context.Context, id string) error
}
