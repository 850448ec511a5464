package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Исходы бронирования (label outcome)
const (
	OutcomeCreated      = "created"
	OutcomeInvalidInput = "invalid_input"
	OutcomeCourseFull   = "course_full"
	OutcomeSlotFull     = "slot_full"
	OutcomeError        = "error"
)

// Исходы отмены (label outcome)
const (
	OutcomeCancelled = "cancelled"
	OutcomeNotFound  = "not_found"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsTotal      *prometheus.CounterVec
	CancellationsTotal *prometheus.CounterVec

	CourseBookedSlots *prometheus.GaugeVec
	CourseTotalSlots  *prometheus.GaugeVec
	DateAppointments  *prometheus.GaugeVec
	LedgerSize        prometheus.Gauge
}

// New создает метрики и регистрирует их в стандартном регистре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в указанном регистре (в тестах - отдельный prometheus.NewRegistry())
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

		BookingsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "advising_bookings_total",
			Help:        "Booking attempts by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		CancellationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "advising_cancellations_total",
			Help:        "Cancellation attempts by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		CourseBookedSlots: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "advising_course_booked_slots",
			Help:        "Booked places per course",
			ConstLabels: constLabels,
		}, []string{"course"}),

		CourseTotalSlots: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "advising_course_total_slots",
			Help:        "Total places per course",
			ConstLabels: constLabels,
		}, []string{"course"}),

		DateAppointments: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "advising_date_appointments",
			Help:        "Active appointments per date",
			ConstLabels: constLabels,
		}, []string{"date"}),

		LedgerSize: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "advising_ledger_size",
			Help:        "Number of active appointments in the ledger",
			ConstLabels: constLabels,
		}),
	}
}

// RecordBooking увеличивает счётчик бронирований с указанным исходом
func (m *Metrics) RecordBooking(outcome string) {
	m.BookingsTotal.WithLabelValues(outcome).Inc()
}

// RecordCancellation увеличивает счётчик отмен с указанным исходом
func (m *Metrics) RecordCancellation(outcome string) {
	m.CancellationsTotal.WithLabelValues(outcome).Inc()
}

// Noop заглушка, когда метрики выключены в конфиге
type Noop struct{}

func (Noop) RecordBooking(string)      {}
func (Noop) RecordCancellation(string) {}
