package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик сервиса
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsCreated  prometheus.Counter
	BookingsRejected *prometheus.CounterVec
	BookedHours      prometheus.Counter
	Revenue          prometheus.Counter
	Cancellations    prometheus.Counter
	SlotsReleased    prometheus.Counter
	SweepDuration    prometheus.Histogram
	ReceiptsEmitted  *prometheus.CounterVec
	LedgerSize       prometheus.Gauge
}

// New создает и регистрирует метрики в собственном реестре
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		BookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Successfully reserved slot ranges",
			ConstLabels: constLabels,
		}),

		BookingsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_rejected_total",
			Help:        "Rejected reservation attempts by reason",
			ConstLabels: constLabels,
		}, []string{"reason"}),

		BookedHours: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "booked_hours_total",
			Help:        "Station hours reserved",
			ConstLabels: constLabels,
		}),

		Revenue: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "booking_revenue_total",
			Help:        "Sum of amounts paid for bookings",
			ConstLabels: constLabels,
		}),

		Cancellations: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "slot_cancellations_total",
			Help:        "Slots released by cancellation",
			ConstLabels: constLabels,
		}),

		SlotsReleased: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "slots_expired_total",
			Help:        "Slots released by the expiration sweep",
			ConstLabels: constLabels,
		}),

		SweepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "expiration_sweep_duration_seconds",
			Help:        "Duration of an expiration sweep",
			ConstLabels: constLabels,
			Buckets:     []float64{.00001, .0001, .001, .01, .1},
		}),

		ReceiptsEmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "receipts_emitted_total",
			Help:        "Receipts handed to sinks by result",
			ConstLabels: constLabels,
		}, []string{"result"}),

		LedgerSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "ledger_transactions",
			Help:        "Number of transactions in the ledger",
			ConstLabels: constLabels,
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingsCreated,
		m.BookingsRejected,
		m.BookedHours,
		m.Revenue,
		m.Cancellations,
		m.SlotsReleased,
		m.SweepDuration,
		m.ReceiptsEmitted,
		m.LedgerSize,
	)

	return m
}

// Registry возвращает реестр метрик
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler возвращает HTTP handler для эндпоинта /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
