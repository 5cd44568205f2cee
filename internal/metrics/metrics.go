package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resultados de reserva.
const (
	OutcomeCreated  = "created"
	OutcomeConflict = "conflict"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

type Metrics struct {
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	Bookings     *prometheus.CounterVec
	Transitions  *prometheus.CounterVec
	LockWait     prometheus.Histogram
}

// New registra os coletores em reg (prometheus.DefaultRegisterer em produção).
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),

		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),

		Bookings: f.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_attempts_total",
			Help: "Booking attempts by outcome.",
		}, []string{"outcome"}),

		Transitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "appointment_transitions_total",
			Help: "Appointment status transitions.",
		}, []string{"to"}),

		LockWait: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "booking_lock_wait_seconds",
			Help:    "Time spent waiting for the booking lock.",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 3},
		}),
	}
}

// Os métodos abaixo aceitam receiver nil (métricas desligadas).

func (m *Metrics) Booking(outcome string) {
	if m == nil {
		return
	}
	m.Bookings.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Transition(to string) {
	if m == nil {
		return
	}
	m.Transitions.WithLabelValues(to).Inc()
}

func (m *Metrics) ObserveLockWait(seconds float64) {
	if m == nil {
		return
	}
	m.LockWait.Observe(seconds)
}
