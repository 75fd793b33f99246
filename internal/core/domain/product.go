package domain

import "time"

// ProductStatus represents the listing state of a product. Transitions are
// deliberately free-form: an owner may move a product between any of these
// values (e.g. vendido back to disponible) — there is no state machine.
type ProductStatus string

const (
	StatusDisponible ProductStatus = "disponible"
	StatusVendido    ProductStatus = "vendido"
	StatusReservado  ProductStatus = "reservado"
)

// ParseProductStatus validates a raw estado value.
func ParseProductStatus(s string) (ProductStatus, error) {
	switch ProductStatus(s) {
	case StatusDisponible, StatusVendido, StatusReservado:
		return ProductStatus(s), nil
	}
	return "", ErrInvalidStatus
}

// Categories is the fixed category catalogue, in display order.
var Categories = []string{
	"Remeras",
	"Abrigos",
	"Pantalones",
	"Vestidos",
	"Calzado",
	"Accesorios",
}

// ValidCategory reports whether categoria belongs to the catalogue.
func ValidCategory(categoria string) bool {
	for _, c := range Categories {
		if c == categoria {
			return true
		}
	}
	return false
}

// Product is a marketplace listing. Username is a denormalized snapshot of
// the owner's username taken at creation time.
type Product struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	Nombre      string        `json:"nombre" bson:"nombre"`
	Descripcion string        `json:"descripcion" bson:"descripcion"`
	Precio      float64       `json:"precio" bson:"precio"`
	Talla       string        `json:"talla" bson:"talla"`
	Categoria   string        `json:"categoria" bson:"categoria"`
	ImagenURL   string        `json:"imagen_url" bson:"imagen_url"`
	UserID      string        `json:"user_id" bson:"user_id"`
	Username    string        `json:"username" bson:"username"`
	Estado      ProductStatus `json:"estado" bson:"estado"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}

// CanBeModifiedBy is the write/delete policy for products: the owner or an
// admin. It is always evaluated after the document has been fetched, so a
// missing product surfaces as not-found before any permission decision.
func (p *Product) CanBeModifiedBy(userID string, role Role) bool {
	return p.UserID == userID || role == RoleAdmin
}
