package metrics

import "github.com/prometheus/client_golang/prometheus"

// PortalMetrics exposes counters/histograms for the registration and login
// flows of both portals.
type PortalMetrics struct {
	registrationsTotal *prometheus.CounterVec
	loginsTotal        *prometheus.CounterVec
	loginLatency       *prometheus.HistogramVec
}

func NewPortalMetrics(reg prometheus.Registerer) *PortalMetrics {
	m := &PortalMetrics{
		registrationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "healthfirst",
			Subsystem: "registration",
			Name:      "submissions_total",
			Help:      "Total registration submissions",
		}, []string{"portal", "outcome"}),
		loginsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "healthfirst",
			Subsystem: "auth",
			Name:      "logins_total",
			Help:      "Total login attempts",
		}, []string{"portal", "outcome"}),
		loginLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "healthfirst",
			Subsystem: "auth",
			Name:      "login_latency_seconds",
			Help:      "Latency of login attempts including the fixed delay",
			Buckets:   prometheus.DefBuckets,
		}, []string{"portal"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.registrationsTotal, m.loginsTotal, m.loginLatency)
	return m
}

func (m *PortalMetrics) ObserveRegistration(portal, outcome string) {
	if m == nil {
		return
	}
	m.registrationsTotal.WithLabelValues(portal, outcome).Inc()
}

func (m *PortalMetrics) ObserveLogin(portal, outcome string) {
	if m == nil {
		return
	}
	m.loginsTotal.WithLabelValues(portal, outcome).Inc()
}

func (m *PortalMetrics) ObserveLoginLatency(portal string, seconds float64) {
	if m == nil {
		return
	}
	m.loginLatency.WithLabelValues(portal).Observe(seconds)
}
