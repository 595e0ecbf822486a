package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBQueryErrors     *prometheus.CounterVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec

	BookingsCreated      prometheus.Counter
	BookingConflicts     prometheus.Counter
	CouponsMinted        prometheus.Counter
	CouponsRedeemed      prometheus.Counter
	NotificationsTotal   *prometheus.CounterVec
	WhatsAppMessagesSent *prometheus.CounterVec
}

// New регистрирует метрики в глобальном registry
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в переданном registry (используется в тестах)
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBQueryErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBOpenConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBInUse: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBIdle: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		BookingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of admitted appointments",
			ConstLabels: constLabels,
		}),

		BookingConflicts: factory.NewCounter(prometheus.CounterOpts{
			Name:        "booking_conflicts_total",
			Help:        "Admissions rejected because the slot was taken at write time",
			ConstLabels: constLabels,
		}),

		CouponsMinted: factory.NewCounter(prometheus.CounterOpts{
			Name:        "loyalty_coupons_minted_total",
			Help:        "Total number of minted loyalty coupons",
			ConstLabels: constLabels,
		}),

		CouponsRedeemed: factory.NewCounter(prometheus.CounterOpts{
			Name:        "loyalty_coupons_redeemed_total",
			Help:        "Total number of redeemed loyalty coupons",
			ConstLabels: constLabels,
		}),

		NotificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "notifications_total",
			Help:        "Notification deliveries by type and outcome",
			ConstLabels: constLabels,
		}, []string{"type", "outcome"}),

		WhatsAppMessagesSent: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "whatsapp_messages_total",
			Help:        "Outbound WhatsApp messages by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
	}
}
