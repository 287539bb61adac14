package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration duración de las peticiones HTTP.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "taxhelper_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// Calculations cálculos tributarios por operación (vat, income, labor, ...).
	Calculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taxhelper_calculations_total",
			Help: "Number of tax calculations served",
		},
		[]string{"operation"},
	)

	// NegativeTaxableIncome cálculos de renta con renta gravable negativa.
	NegativeTaxableIncome = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taxhelper_negative_taxable_income_total",
			Help: "Income tax calculations whose taxable income was negative",
		},
		[]string{"operation"},
	)

	// RegistryRequests llamadas al servicio del NTS por endpoint y resultado.
	RegistryRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taxhelper_registry_requests_total",
			Help: "Number of requests sent to the NTS business registry",
		},
		[]string{"endpoint", "status"},
	)

	// RegistryDuration latencia del servicio del NTS.
	RegistryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "taxhelper_registry_request_duration_seconds",
			Help: "Duration of NTS business registry requests in seconds",
		},
		[]string{"endpoint"},
	)

	// CacheHits aciertos y fallos de la caché de estado.
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taxhelper_cache_hits_total",
			Help: "Number of registry cache lookups by result",
		},
		[]string{"result"},
	)

	// DatabaseOperations operaciones sobre PostgreSQL.
	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taxhelper_database_operations_total",
			Help: "Number of database operations",
		},
		[]string{"operation", "status"},
	)
)

// StatusLabel etiqueta "success"/"error" según err.
func StatusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
