package attendance

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts attendance transitions. A nil *Metrics is a no-op.
type Metrics struct {
	checkIns  *prometheus.CounterVec
	checkOuts prometheus.Counter
	rejected  *prometheus.CounterVec
	hours     prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		checkIns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "attendo",
			Subsystem: "attendance",
			Name:      "check_ins_total",
			Help:      "Successful check-ins by resulting status.",
		}, []string{"status"}),
		checkOuts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "attendo",
			Subsystem: "attendance",
			Name:      "check_outs_total",
			Help:      "Successful check-outs.",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "attendo",
			Subsystem: "attendance",
			Name:      "rejected_total",
			Help:      "Check-in and check-out attempts rejected by a state guard.",
		}, []string{"code"}),
		hours: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "attendo",
			Subsystem: "attendance",
			Name:      "worked_hours",
			Help:      "Hours recorded at check-out.",
			Buckets:   []float64{1, 2, 4, 6, 7, 8, 9, 10, 12},
		}),
	}

	if reg != nil {
		reg.MustRegister(m.checkIns, m.checkOuts, m.rejected, m.hours)
	}
	return m
}

func (m *Metrics) observeCheckIn(s Status) {
	if m == nil {
		return
	}
	m.checkIns.WithLabelValues(s.String()).Inc()
}

func (m *Metrics) observeCheckOut(hours float64) {
	if m == nil {
		return
	}
	m.checkOuts.Inc()
	m.hours.Observe(hours)
}

func (m *Metrics) observeRejected(code string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(code).Inc()
}
