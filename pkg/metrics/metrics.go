package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	serviceName string
	registerer  prometheus.Registerer

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsTotal        *prometheus.CounterVec
	BookedDaysTotal      *prometheus.CounterVec
	RevenueTotal         *prometheus.CounterVec
	PaymentAttemptsTotal *prometheus.CounterVec
	FleetSize            *prometheus.GaugeVec
}

// New регистрирует метрики в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в указанном registry (используется в тестах)
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		serviceName: serviceName,
		registerer:  reg,

		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		BookingsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rental_bookings_total",
			Help: "Booking attempts by outcome",
		}, []string{"service", "outcome"}),

		BookedDaysTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rental_booked_days_total",
			Help: "Total number of committed rental days",
		}, []string{"service"}),

		RevenueTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rental_revenue_total",
			Help: "Total amount charged for committed bookings",
		}, []string{"service"}),

		PaymentAttemptsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rental_payment_attempts_total",
			Help: "Payment inputs received by the payment gate",
		}, []string{"service", "result"}),

		FleetSize: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "rental_fleet_size",
			Help: "Number of cars in the catalog",
		}, []string{"service"}),
	}
}

// RecordHTTPRequest фиксирует выполненный HTTP запрос
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// RecordBooking фиксирует результат попытки бронирования.
// days и revenue учитываются только для успешных бронирований
func (m *Metrics) RecordBooking(outcome string, days int, revenue int64) {
	m.BookingsTotal.WithLabelValues(m.serviceName, outcome).Inc()
	if days > 0 {
		m.BookedDaysTotal.WithLabelValues(m.serviceName).Add(float64(days))
	}
	if revenue > 0 {
		m.RevenueTotal.WithLabelValues(m.serviceName).Add(float64(revenue))
	}
}

// RecordPaymentAttempt фиксирует ввод суммы оплаты
func (m *Metrics) RecordPaymentAttempt(result string) {
	m.PaymentAttemptsTotal.WithLabelValues(m.serviceName, result).Inc()
}

// SetFleetSize обновляет размер автопарка
func (m *Metrics) SetFleetSize(size int) {
	m.FleetSize.WithLabelValues(m.serviceName).Set(float64(size))
}

// RegisterDBStats регистрирует сборщик статистики пула соединений
func (m *Metrics) RegisterDBStats(db *sql.DB, dbName string) error {
	return m.registerer.Register(collectors.NewDBStatsCollector(db, dbName))
}
