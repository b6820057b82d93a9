package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"brandcollab/internal/core/domain"
)

const namespace = "brandcollab"

// Lifecycle holds the collectors describing campaign lifecycle activity. A
// nil *Lifecycle is valid and records nothing.
type Lifecycle struct {
	transitions   *prometheus.CounterVec
	sweepPromoted prometheus.Counter
	sweepDeleted  prometheus.Counter
	sweepFailed   *prometheus.CounterVec
	sweepDuration prometheus.Histogram
}

// NewLifecycle creates the collectors and registers them on reg.
func NewLifecycle(reg prometheus.Registerer) *Lifecycle {
	m := &Lifecycle{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "campaign_transitions_total",
			Help:      "Campaign status transitions applied, by target status.",
		}, []string{"status"}),
		sweepPromoted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sweep",
			Name:      "promoted_total",
			Help:      "Campaigns moved to expired by the sweep.",
		}),
		sweepDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sweep",
			Name:      "deleted_total",
			Help:      "Expired campaigns deleted after retention.",
		}),
		sweepFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sweep",
			Name:      "failures_total",
			Help:      "Per-record sweep writes that failed and were skipped.",
		}, []string{"pass"}),
		sweepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "sweep",
			Name:      "duration_seconds",
			Help:      "Wall time of a full expiration sweep.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.transitions, m.sweepPromoted, m.sweepDeleted, m.sweepFailed, m.sweepDuration)
	return m
}

// Transition records a successful transition into status.
func (m *Lifecycle) Transition(status domain.CampaignStatus) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(string(status)).Inc()
}

// Promoted records a campaign expired by the sweep.
func (m *Lifecycle) Promoted() {
	if m == nil {
		return
	}
	m.sweepPromoted.Inc()
	m.transitions.WithLabelValues(string(domain.CampaignExpired)).Inc()
}

// Deleted records a campaign removed after retention.
func (m *Lifecycle) Deleted() {
	if m == nil {
		return
	}
	m.sweepDeleted.Inc()
}

// Failed records a skipped record in the given pass ("promote" or "retain").
func (m *Lifecycle) Failed(pass string) {
	if m == nil {
		return
	}
	m.sweepFailed.WithLabelValues(pass).Inc()
}

// SweepDone observes the duration of a sweep started at start.
func (m *Lifecycle) SweepDone(start time.Time) {
	if m == nil {
		return
	}
	m.sweepDuration.Observe(time.Since(start).Seconds())
}
