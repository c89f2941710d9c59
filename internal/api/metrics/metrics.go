// Package metrics defines and registers all custom Prometheus metrics for
// the products-catalog API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "ok", "conflict", "rejected" (forbidden role / bad input) or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts across both login endpoints.
// Labels:
//   - endpoint: "user" or "admin"
//   - result: "ok", "invalid_credentials", "rejected" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by endpoint and result.",
	},
	[]string{"endpoint", "result"},
)

// TokenValidationsTotal counts bearer-token checks performed by the
// authorization gate.
// Label:
//   - result: "ok", "missing", "malformed_header" or "rejected"
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of bearer token validations, by result.",
	},
	[]string{"result"},
)

// CatalogCacheTotal counts catalog-cache lookups.
// Label:
//   - result: "hit" or "miss"
var CatalogCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_cache_total",
		Help:      "Total number of catalog cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
