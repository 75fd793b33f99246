package ports

import (
	"context"
	"io"

	"github.com/tradeco/marketplace-api/internal/core/domain"
)

// Identity is the verified requester, as injected by the auth middleware.
type Identity struct {
	UserID string
	Role   domain.Role
}

// FileUpload is an incoming image. Filename is the client-supplied name used
// only for extension checking and sanitization; Content is read exactly once.
type FileUpload struct {
	Filename string
	Content  io.Reader
}

// CreateProductInput carries the multipart create form. Precio is the raw
// form value; the service validates and parses it.
type CreateProductInput struct {
	Actor       Identity
	Nombre      string
	Descripcion string
	Precio      string
	Talla       string
	Categoria   string
	Imagen      *FileUpload
}

// UpdateProductInput is the partial multipart update form. Nil fields were
// absent from the request and stay untouched.
type UpdateProductInput struct {
	Actor       Identity
	Nombre      *string
	Descripcion *string
	Precio      *string
	Talla       *string
	Categoria   *string
	Estado      *string
	Imagen      *FileUpload
}

// ListProductsInput carries the public listing query.
type ListProductsInput struct {
	Page      int
	Limit     int
	Categoria string
	Search    string
}

// ProductList is one page of the public listing.
type ProductList struct {
	Products   []*domain.Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ProductService defines the product use cases. Reads are unauthenticated;
// Create requires a valid identity; Update and Delete additionally apply the
// owner-or-admin policy after fetching the target.
type ProductService interface {
	List(ctx context.Context, in ListProductsInput) (*ProductList, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	ListByUser(ctx context.Context, userID string, page, limit int) ([]*domain.Product, error)
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string, actor Identity) error
}
