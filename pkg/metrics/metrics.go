package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
// Все методы безопасны для вызова на nil (метрики выключены в конфиге)
type Metrics struct {
	// HTTP
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// База данных
	DBQueryDuration     *prometheus.HistogramVec
	DBOpenConnections   *prometheus.GaugeVec
	DBInUseConnections  *prometheus.GaugeVec
	DBIdleConnections   *prometheus.GaugeVec
	DBWaitCount         *prometheus.GaugeVec
	DBWaitDurationTotal *prometheus.GaugeVec

	// Бизнес-метрики
	BookingsInitiated *prometheus.CounterVec
	BookingsConfirmed *prometheus.CounterVec
	PendingExpired    *prometheus.CounterVec
	ForceBlocks       *prometheus.CounterVec

	serviceName string
}

// New создает и регистрирует метрики в стандартном registry prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в указанном registerer
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		HTTPRequestsInFlight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being served",
		}, []string{"service"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"service", "operation", "status"}),

		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_open_connections",
			Help: "Number of established connections",
		}, []string{"service"}),

		DBInUseConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_in_use_connections",
			Help: "Number of connections currently in use",
		}, []string{"service"}),

		DBIdleConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_idle_connections",
			Help: "Number of idle connections",
		}, []string{"service"}),

		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_wait_count",
			Help: "Total number of connections waited for",
		}, []string{"service"}),

		DBWaitDurationTotal: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_wait_duration_seconds_total",
			Help: "Total time blocked waiting for a new connection",
		}, []string{"service"}),

		BookingsInitiated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "turf_bookings_initiated_total",
			Help: "Reservation rows created in PENDING state",
		}, []string{"service"}),

		BookingsConfirmed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "turf_bookings_confirmed_total",
			Help: "Reservation rows moved from PENDING to CONFIRMED",
		}, []string{"service"}),

		PendingExpired: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "turf_pending_expired_total",
			Help: "Stale PENDING holds cancelled by the sweep",
		}, []string{"service"}),

		ForceBlocks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "turf_force_blocks_total",
			Help: "Admin force block/unblock actions",
		}, []string{"service", "action"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.DBWaitDurationTotal,
		m.BookingsInitiated,
		m.BookingsConfirmed,
		m.PendingExpired,
		m.ForceBlocks,
	)

	return m
}

// ServiceName возвращает имя сервиса, используемое в лейблах
func (m *Metrics) ServiceName() string {
	if m == nil {
		return ""
	}
	return m.serviceName
}

// AddBookingsInitiated увеличивает счетчик созданных PENDING строк
func (m *Metrics) AddBookingsInitiated(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.BookingsInitiated.WithLabelValues(m.serviceName).Add(float64(n))
}

// AddBookingsConfirmed увеличивает счетчик подтвержденных строк
func (m *Metrics) AddBookingsConfirmed(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.BookingsConfirmed.WithLabelValues(m.serviceName).Add(float64(n))
}

// AddPendingExpired увеличивает счетчик просроченных PENDING
func (m *Metrics) AddPendingExpired(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.PendingExpired.WithLabelValues(m.serviceName).Add(float64(n))
}

// IncForceBlock учитывает действие force-block/unblock
func (m *Metrics) IncForceBlock(action string) {
	if m == nil {
		return
	}
	m.ForceBlocks.WithLabelValues(m.serviceName, action).Inc()
}
