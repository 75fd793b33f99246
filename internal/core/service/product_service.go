package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tradeco/marketplace-api/internal/api/metrics"
	"github.com/tradeco/marketplace-api/internal/core/domain"
	"github.com/tradeco/marketplace-api/internal/core/ports"
	"github.com/tradeco/marketplace-api/internal/core/validate"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ProductService implements the product use cases: public reads, owner
// writes, and the image lifecycle tied to the document lifecycle.
type ProductService struct {
	products ports.ProductRepository
	users    ports.UserRepository
	files    ports.FileStore
	log      zerolog.Logger
}

func NewProductService(products ports.ProductRepository, users ports.UserRepository, files ports.FileStore, log zerolog.Logger) *ProductService {
	return &ProductService{products: products, users: users, files: files, log: log}
}

// List returns a page of available products, optionally filtered by category
// or text search.
func (s *ProductService) List(ctx context.Context, in ports.ListProductsInput) (*ports.ProductList, error) {
	page, limit := normalizePage(in.Page, in.Limit)

	items, total, err := s.products.List(ctx, ports.ListProductsFilter{
		Categoria: in.Categoria,
		Search:    in.Search,
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return nil, err
	}

	return &ports.ProductList{
		Products:   items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *ProductService) ListByUser(ctx context.Context, userID string, page, limit int) ([]*domain.Product, error) {
	page, limit = normalizePage(page, limit)
	return s.products.FindByUser(ctx, userID, page, limit)
}

// Create validates the form, stores the image (if any) and inserts the
// document with the owner's username snapshotted onto it.
func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	if reasons := validate.Product(in.Nombre, in.Categoria, in.Precio); len(reasons) > 0 {
		return nil, domain.NewValidationError(reasons...)
	}

	owner, err := s.users.FindByID(ctx, in.Actor.UserID)
	if err != nil {
		return nil, err
	}

	imagenURL := ""
	if in.Imagen != nil {
		imagenURL, err = s.saveImage(in.Imagen)
		if err != nil {
			return nil, err
		}
	}

	precio := 0.0
	if in.Precio != "" {
		precio, _ = strconv.ParseFloat(in.Precio, 64) // validated above
	}

	product := &domain.Product{
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Precio:      precio,
		Talla:       in.Talla,
		Categoria:   in.Categoria,
		ImagenURL:   imagenURL,
		UserID:      owner.ID,
		Username:    owner.Username,
		Estado:      domain.StatusDisponible,
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		// The document failed; the stored image would dangle. Cleanup is
		// best-effort and idempotent.
		if imagenURL != "" {
			_ = s.files.Remove(imagenURL)
		}
		return nil, err
	}

	metrics.ProductsCreatedTotal.WithLabelValues(created.Categoria).Inc()
	s.log.Info().Str("product_id", created.ID).Str("user_id", owner.ID).Msg("product created")

	return created, nil
}

// Update applies a partial update after the owner-or-admin check. When a new
// image arrives it is persisted first, then the document is updated, and
// only then is the previous file removed (best-effort), so a mid-flight
// failure never leaves the document pointing at a deleted file.
func (s *ProductService) Update(ctx context.Context, id string, in ports.UpdateProductInput) (*domain.Product, error) {
	current, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.CanBeModifiedBy(in.Actor.UserID, in.Actor.Role) {
		return nil, domain.ErrForbidden
	}

	upd, err := buildProductUpdate(in)
	if err != nil {
		return nil, err
	}

	oldImage := ""
	if in.Imagen != nil {
		url, err := s.saveImage(in.Imagen)
		if err != nil {
			return nil, err
		}
		upd.ImagenURL = &url
		oldImage = current.ImagenURL
	}

	if !upd.Empty() {
		if err := s.products.Update(ctx, id, upd); err != nil {
			if upd.ImagenURL != nil {
				_ = s.files.Remove(*upd.ImagenURL)
			}
			return nil, err
		}
	}

	if oldImage != "" {
		if err := s.files.Remove(oldImage); err != nil {
			s.log.Warn().Err(err).Str("url", oldImage).Msg("failed to remove replaced image")
		}
	}

	return s.products.FindByID(ctx, id)
}

// Delete removes the document first and then its image best-effort, so a
// failing file removal can never orphan a live listing.
func (s *ProductService) Delete(ctx context.Context, id string, actor ports.Identity) error {
	current, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !current.CanBeModifiedBy(actor.UserID, actor.Role) {
		return domain.ErrForbidden
	}

	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}

	if current.ImagenURL != "" {
		if err := s.files.Remove(current.ImagenURL); err != nil {
			s.log.Warn().Err(err).Str("url", current.ImagenURL).Msg("failed to remove product image")
		}
	}

	metrics.ProductsDeletedTotal.Inc()
	s.log.Info().Str("product_id", id).Str("requested_by", actor.UserID).Msg("product deleted")

	return nil
}

func (s *ProductService) saveImage(up *ports.FileUpload) (string, error) {
	if !validate.AllowedFile(up.Filename) {
		return "", domain.NewValidationError("file type not allowed")
	}
	url, err := s.files.Save(validate.SanitizeFilename(up.Filename), up.Content)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("error").Inc()
		return "", err
	}
	metrics.UploadsTotal.WithLabelValues("ok").Inc()
	return url, nil
}

// buildProductUpdate validates the provided fields and converts them into a
// repository-level partial update. Absent fields stay nil.
func buildProductUpdate(in ports.UpdateProductInput) (ports.ProductUpdate, error) {
	var upd ports.ProductUpdate
	var reasons []string

	if in.Nombre != nil {
		if strings.TrimSpace(*in.Nombre) == "" {
			reasons = append(reasons, "product name is required")
		} else {
			upd.Nombre = in.Nombre
		}
	}
	if in.Descripcion != nil {
		upd.Descripcion = in.Descripcion
	}
	if in.Talla != nil {
		upd.Talla = in.Talla
	}
	if in.Categoria != nil {
		if !domain.ValidCategory(*in.Categoria) {
			reasons = append(reasons, "unknown category")
		} else {
			upd.Categoria = in.Categoria
		}
	}
	if in.Precio != nil {
		v, err := strconv.ParseFloat(*in.Precio, 64)
		switch {
		case err != nil:
			reasons = append(reasons, "price must be a valid number")
		case v < 0:
			reasons = append(reasons, "price cannot be negative")
		default:
			upd.Precio = &v
		}
	}
	if in.Estado != nil {
		estado, err := domain.ParseProductStatus(*in.Estado)
		if err != nil {
			reasons = append(reasons, "invalid product status")
		} else {
			upd.Estado = &estado
		}
	}

	if len(reasons) > 0 {
		return ports.ProductUpdate{}, domain.NewValidationError(reasons...)
	}
	return upd, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
