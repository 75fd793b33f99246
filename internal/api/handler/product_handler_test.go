package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tradeco/marketplace-api/internal/api/middleware"
	"github.com/tradeco/marketplace-api/internal/core/domain"
	"github.com/tradeco/marketplace-api/internal/core/ports"
)

type stubProductService struct {
	createFn func(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error)
	updateFn func(ctx context.Context, id string, in ports.UpdateProductInput) (*domain.Product, error)
	deleteFn func(ctx context.Context, id string, actor ports.Identity) error
}

func (s *stubProductService) List(context.Context, ports.ListProductsInput) (*ports.ProductList, error) {
	return &ports.ProductList{}, nil
}

func (s *stubProductService) Get(_ context.Context, id string) (*domain.Product, error) {
	return &domain.Product{ID: id}, nil
}

func (s *stubProductService) ListByUser(context.Context, string, int, int) ([]*domain.Product, error) {
	return nil, nil
}

func (s *stubProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, in)
}

func (s *stubProductService) Update(ctx context.Context, id string, in ports.UpdateProductInput) (*domain.Product, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubProductService) Delete(ctx context.Context, id string, actor ports.Identity) error {
	return s.deleteFn(ctx, id, actor)
}

func multipartBody(t *testing.T, fields map[string]string, filename string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("writing field %s: %v", k, err)
		}
	}
	if filename != "" {
		fw, err := w.CreateFormFile("imagen", filename)
		if err != nil {
			t.Fatalf("creating file part: %v", err)
		}
		if _, err := fw.Write([]byte("img")); err != nil {
			t.Fatalf("writing file part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func newProductContext(t *testing.T, method, target string, body io.Reader, contentType string, authed bool) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if authed {
		c.Set(middleware.ContextUserID, "u1")
		c.Set(middleware.ContextRole, domain.RoleUser)
	}
	return c, rec
}

func TestProductHandler_Create(t *testing.T) {
	stub := &stubProductService{
		createFn: func(_ context.Context, in ports.CreateProductInput) (*domain.Product, error) {
			if in.Actor.UserID != "u1" {
				t.Fatalf("unexpected actor: %+v", in.Actor)
			}
			if in.Nombre != "Campera" || in.Categoria != "Abrigos" || in.Precio != "15000" {
				t.Fatalf("unexpected form values: %+v", in)
			}
			if in.Imagen == nil || in.Imagen.Filename != "foto.png" {
				t.Fatalf("expected image upload, got %+v", in.Imagen)
			}
			return &domain.Product{ID: "p1", Nombre: in.Nombre}, nil
		},
	}
	h := NewProductHandler(stub)

	body, contentType := multipartBody(t, map[string]string{
		"nombre":    "Campera",
		"categoria": "Abrigos",
		"precio":    "15000",
	}, "foto.png")
	c, rec := newProductContext(t, http.MethodPost, "/api/products", body, contentType, true)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestProductHandler_Create_Unauthenticated(t *testing.T) {
	h := NewProductHandler(&stubProductService{
		createFn: func(context.Context, ports.CreateProductInput) (*domain.Product, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	})

	body, contentType := multipartBody(t, map[string]string{"nombre": "Campera"}, "")
	c, _ := newProductContext(t, http.MethodPost, "/api/products", body, contentType, false)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestProductHandler_Update_PartialFields(t *testing.T) {
	stub := &stubProductService{
		updateFn: func(_ context.Context, id string, in ports.UpdateProductInput) (*domain.Product, error) {
			if id != "p1" {
				t.Fatalf("unexpected id: %s", id)
			}
			// Only the submitted fields arrive as non-nil.
			if in.Precio == nil || *in.Precio != "9999" {
				t.Fatalf("expected precio set, got %v", in.Precio)
			}
			if in.Estado == nil || *in.Estado != "vendido" {
				t.Fatalf("expected estado set, got %v", in.Estado)
			}
			if in.Nombre != nil || in.Categoria != nil || in.Talla != nil || in.Descripcion != nil {
				t.Fatalf("absent fields must stay nil: %+v", in)
			}
			if in.Imagen != nil {
				t.Fatalf("no image submitted, got %+v", in.Imagen)
			}
			return &domain.Product{ID: id}, nil
		},
	}
	h := NewProductHandler(stub)

	body, contentType := multipartBody(t, map[string]string{
		"precio": "9999",
		"estado": "vendido",
	}, "")
	c, rec := newProductContext(t, http.MethodPut, "/api/products/p1", body, contentType, true)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Delete(t *testing.T) {
	called := false
	stub := &stubProductService{
		deleteFn: func(_ context.Context, id string, actor ports.Identity) error {
			called = true
			if id != "p1" || actor.UserID != "u1" {
				t.Fatalf("unexpected args: %s %+v", id, actor)
			}
			return nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newProductContext(t, http.MethodDelete, "/api/products/p1", nil, "", true)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("service not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
