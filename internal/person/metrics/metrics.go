package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the person module.
// Tracks creation counts and critical path durations.
type Metrics struct {
	PersonsCreated prometheus.Counter
	CreateDuration prometheus.Histogram
	GetDuration    prometheus.Histogram
	ListDuration   prometheus.Histogram
}

// New creates a new Metrics instance with all person module metrics registered.
func New() *Metrics {
	return &Metrics{
		PersonsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "peopledir_persons_created_total",
			Help: "Total number of persons created",
		}),
		CreateDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "peopledir_create_person_duration_seconds",
			Help:    "Duration of Create operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		GetDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "peopledir_get_person_duration_seconds",
			Help:    "Duration of Get operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		ListDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "peopledir_list_persons_duration_seconds",
			Help:    "Duration of List operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// IncrementPersonsCreated records a successful person creation.
func (m *Metrics) IncrementPersonsCreated() {
	if m == nil {
		return
	}
	m.PersonsCreated.Inc()
}

// ObserveCreate records the duration of a Create operation.
// Call with time.Now() captured at the start of the operation.
func (m *Metrics) ObserveCreate(start time.Time) {
	if m == nil {
		return
	}
	m.CreateDuration.Observe(time.Since(start).Seconds())
}

// ObserveGet records the duration of a Get operation.
func (m *Metrics) ObserveGet(start time.Time) {
	if m == nil {
		return
	}
	m.GetDuration.Observe(time.Since(start).Seconds())
}

// ObserveList records the duration of a List operation.
func (m *Metrics) ObserveList(start time.Time) {
	if m == nil {
		return
	}
	m.ListDuration.Observe(time.Since(start).Seconds())
}
