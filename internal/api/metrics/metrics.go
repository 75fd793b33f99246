// Package metrics defines and registers all custom Prometheus metrics for
// the marketplace API. It is the single source of truth for metric names,
// labels, and help strings; request-level metrics come from the
// echoprometheus middleware instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// UsersRegisteredTotal counts successful registrations.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of successfully registered users.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "failure", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ProductsCreatedTotal counts newly published products.
// Label:
//   - categoria: the product category
var ProductsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products published, by category.",
	},
	[]string{"categoria"},
)

// ProductsDeletedTotal counts deleted products.
var ProductsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_deleted_total",
		Help:      "Total number of products deleted.",
	},
)

// UploadsTotal counts image uploads.
// Label:
//   - result: "ok" or "error"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of image uploads, labelled by result.",
	},
	[]string{"result"},
)
