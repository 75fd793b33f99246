package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradeco/marketplace-api/internal/core/domain"
	"github.com/tradeco/marketplace-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for product operations. Create and
// Update accept multipart forms because they may carry an image.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

type productListData struct {
	Products   []*domain.Product  `json:"products"`
	Pagination paginationResponse `json:"pagination"`
}

// List handles GET /products — public listing with pagination and filters.
//
// @Summary      List available products
// @Tags         products
// @Produce      json
// @Param        page       query     int     false  "Page (1-based)"
// @Param        limit      query     int     false  "Page size"
// @Param        categoria  query     string  false  "Category filter"
// @Param        search     query     string  false  "Text search"
// @Success      200        {object}  response
// @Router       /products/ [get]
func (h *ProductHandler) List(c echo.Context) error {
	page, limit := pageParams(c)

	result, err := h.service.List(c.Request().Context(), ports.ListProductsInput{
		Page:      page,
		Limit:     limit,
		Categoria: c.QueryParam("categoria"),
		Search:    c.QueryParam("search"),
	})
	if err != nil {
		return err
	}

	products := result.Products
	if products == nil {
		products = []*domain.Product{}
	}

	return respond(c, http.StatusOK, "", productListData{
		Products: products,
		Pagination: paginationResponse{
			Page:  result.Page,
			Limit: result.Limit,
			Total: result.Total,
			Pages: result.TotalPages,
		},
	})
}

// Get handles GET /products/:id.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  response
// @Failure      404  {object}  response
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "", product)
}

// Categories handles GET /products/categories.
//
// @Summary      List the category catalogue
// @Tags         products
// @Produce      json
// @Success      200  {object}  response
// @Router       /products/categories [get]
func (h *ProductHandler) Categories(c echo.Context) error {
	return respond(c, http.StatusOK, "", domain.Categories)
}

// ByUser handles GET /products/user/:user_id.
//
// @Summary      List a user's products
// @Tags         products
// @Produce      json
// @Param        user_id  path      string  true  "User id"
// @Success      200      {object}  response
// @Router       /products/user/{user_id} [get]
func (h *ProductHandler) ByUser(c echo.Context) error {
	page, limit := pageParams(c)

	products, err := h.service.ListByUser(c.Request().Context(), c.Param("user_id"), page, limit)
	if err != nil {
		return err
	}
	if products == nil {
		products = []*domain.Product{}
	}
	return respond(c, http.StatusOK, "", products)
}

// Create handles POST /products — multipart form with an optional image.
//
// @Summary      Publish a product
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        nombre     formData  string  true   "Name"
// @Param        categoria  formData  string  true   "Category"
// @Param        precio     formData  string  false  "Price"
// @Param        imagen     formData  file    false  "Image"
// @Success      201  {object}  response
// @Failure      400  {object}  response
// @Failure      401  {object}  response
// @Router       /products/ [post]
func (h *ProductHandler) Create(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	in := ports.CreateProductInput{
		Actor:       actor,
		Nombre:      c.FormValue("nombre"),
		Descripcion: c.FormValue("descripcion"),
		Precio:      c.FormValue("precio"),
		Talla:       c.FormValue("talla"),
		Categoria:   c.FormValue("categoria"),
	}

	upload, src, err := openUpload(c)
	if err != nil {
		return err
	}
	if src != nil {
		defer src.Close()
		in.Imagen = upload
	}

	product, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, "product published successfully", product)
}

// Update handles PUT /products/:id — partial multipart update, owner or
// admin only.
//
// @Summary      Update a product
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  response
// @Failure      400  {object}  response
// @Failure      403  {object}  response
// @Failure      404  {object}  response
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	in := ports.UpdateProductInput{
		Actor:       actor,
		Nombre:      formField(c, "nombre"),
		Descripcion: formField(c, "descripcion"),
		Precio:      formField(c, "precio"),
		Talla:       formField(c, "talla"),
		Categoria:   formField(c, "categoria"),
		Estado:      formField(c, "estado"),
	}

	upload, src, err := openUpload(c)
	if err != nil {
		return err
	}
	if src != nil {
		defer src.Close()
		in.Imagen = upload
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "product updated successfully", product)
}

// Delete handles DELETE /products/:id — owner or admin only.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  response
// @Failure      403  {object}  response
// @Failure      404  {object}  response
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), actor); err != nil {
		return err
	}

	return respond(c, http.StatusOK, "product deleted successfully", nil)
}

// formField returns a pointer to the form value when the field was present
// in the request, nil when it was absent. Presence matters: the update is
// partial and an absent field must stay untouched.
func formField(c echo.Context, name string) *string {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	values, ok := form.Value[name]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

// openUpload returns the optional "imagen" file. The caller owns the close.
func openUpload(c echo.Context) (*ports.FileUpload, multipart.File, error) {
	fh, err := c.FormFile("imagen")
	if err != nil {
		// Absent file field: not an error, the image is optional.
		return nil, nil, nil
	}
	src, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}
	return &ports.FileUpload{Filename: fh.Filename, Content: src}, src, nil
}
