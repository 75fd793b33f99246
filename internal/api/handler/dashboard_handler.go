package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tradeco/marketplace-api/internal/core/domain"
	"github.com/tradeco/marketplace-api/internal/core/ports"
)

// DashboardHandler exposes the admin aggregates. Every route is wired behind
// Auth + RBAC(admin) in the router.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

type userStatsData struct {
	Total         int64 `json:"total"`
	Active        int64 `json:"active"`
	NewLast30Days int64 `json:"new_last_30_days"`
}

type productStatsData struct {
	Total         int64 `json:"total"`
	Available     int64 `json:"available"`
	Sold          int64 `json:"sold"`
	NewLast30Days int64 `json:"new_last_30_days"`
}

type statsData struct {
	Users    userStatsData    `json:"users"`
	Products productStatsData `json:"products"`
}

type categoryCountData struct {
	Categoria   string `json:"categoria"`
	Total       int64  `json:"total"`
	Disponibles int64  `json:"disponibles"`
}

type recentUserData struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type recentActivityData struct {
	RecentUsers    []recentUserData  `json:"recent_users"`
	RecentProducts []*domain.Product `json:"recent_products"`
}

type growthPointData struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type topSellerData struct {
	UserID        string `json:"user_id"`
	Username      string `json:"username"`
	TotalProducts int64  `json:"total_products"`
	Available     int64  `json:"available"`
}

type priceStatsData struct {
	Average float64 `json:"average"`
	Minimum float64 `json:"minimum"`
	Maximum float64 `json:"maximum"`
}

// Stats handles GET /dashboard/stats.
//
// @Summary      General statistics
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response
// @Failure      401  {object}  response
// @Failure      403  {object}  response
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "", statsData{
		Users: userStatsData{
			Total:         stats.Users.Total,
			Active:        stats.Users.Active,
			NewLast30Days: stats.Users.NewSince,
		},
		Products: productStatsData{
			Total:         stats.Products.Total,
			Available:     stats.Products.Available,
			Sold:          stats.Products.Sold,
			NewLast30Days: stats.Products.NewSince,
		},
	})
}

// ProductsByCategory handles GET /dashboard/products-by-category.
//
// @Summary      Products grouped by category
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response
// @Router       /dashboard/products-by-category [get]
func (h *DashboardHandler) ProductsByCategory(c echo.Context) error {
	counts, err := h.service.ProductsByCategory(c.Request().Context())
	if err != nil {
		return err
	}

	data := make([]categoryCountData, 0, len(counts))
	for _, cc := range counts {
		data = append(data, categoryCountData{
			Categoria:   cc.Categoria,
			Total:       cc.Total,
			Disponibles: cc.Disponibles,
		})
	}
	return respond(c, http.StatusOK, "", data)
}

// RecentActivity handles GET /dashboard/recent-activity.
//
// @Summary      Latest registrations and listings
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response
// @Router       /dashboard/recent-activity [get]
func (h *DashboardHandler) RecentActivity(c echo.Context) error {
	activity, err := h.service.RecentActivity(c.Request().Context())
	if err != nil {
		return err
	}

	users := make([]recentUserData, 0, len(activity.RecentUsers))
	for _, u := range activity.RecentUsers {
		users = append(users, recentUserData{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			CreatedAt: u.CreatedAt,
		})
	}
	products := activity.RecentProducts
	if products == nil {
		products = []*domain.Product{}
	}

	return respond(c, http.StatusOK, "", recentActivityData{
		RecentUsers:    users,
		RecentProducts: products,
	})
}

// UsersGrowth handles GET /dashboard/users-growth.
//
// @Summary      Registrations per month
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response
// @Router       /dashboard/users-growth [get]
func (h *DashboardHandler) UsersGrowth(c echo.Context) error {
	points, err := h.service.UsersGrowth(c.Request().Context())
	if err != nil {
		return err
	}

	data := make([]growthPointData, 0, len(points))
	for _, p := range points {
		data = append(data, growthPointData{Month: p.Month, Count: p.Count})
	}
	return respond(c, http.StatusOK, "", data)
}

// TopSellers handles GET /dashboard/top-sellers.
//
// @Summary      Users with the most listings
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response
// @Router       /dashboard/top-sellers [get]
func (h *DashboardHandler) TopSellers(c echo.Context) error {
	sellers, err := h.service.TopSellers(c.Request().Context())
	if err != nil {
		return err
	}

	data := make([]topSellerData, 0, len(sellers))
	for _, s := range sellers {
		data = append(data, topSellerData{
			UserID:        s.UserID,
			Username:      s.Username,
			TotalProducts: s.TotalProducts,
			Available:     s.Available,
		})
	}
	return respond(c, http.StatusOK, "", data)
}

// PriceStats handles GET /dashboard/price-stats.
//
// @Summary      Price aggregates over all products
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response
// @Router       /dashboard/price-stats [get]
func (h *DashboardHandler) PriceStats(c echo.Context) error {
	stats, err := h.service.PriceStats(c.Request().Context())
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "", priceStatsData{
		Average: stats.Average,
		Minimum: stats.Minimum,
		Maximum: stats.Maximum,
	})
}
