package metrics

import "github.com/prometheus/client_golang/prometheus"

// IntakeMetrics exposes counters for the form-submission pipeline.
type IntakeMetrics struct {
	submissionsTotal *prometheus.CounterVec
	notifyTotal      *prometheus.CounterVec
}

func NewIntakeMetrics(reg prometheus.Registerer) *IntakeMetrics {
	m := &IntakeMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lawsite",
			Subsystem: "intake",
			Name:      "submissions_total",
			Help:      "Form submissions by form and outcome",
		}, []string{"form", "outcome"}),
		notifyTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lawsite",
			Subsystem: "intake",
			Name:      "notifications_total",
			Help:      "Notification email attempts by form and status",
		}, []string{"form", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.notifyTotal)
	return m
}

func (m *IntakeMetrics) ObserveSubmission(form, outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(form, outcome).Inc()
}

func (m *IntakeMetrics) ObserveNotification(form, status string) {
	if m == nil {
		return
	}
	m.notifyTotal.WithLabelValues(form, status).Inc()
}

// ContentMetrics exposes counters for the CMS read-through cache.
type ContentMetrics struct {
	cacheTotal *prometheus.CounterVec
}

func NewContentMetrics(reg prometheus.Registerer) *ContentMetrics {
	m := &ContentMetrics{
		cacheTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lawsite",
			Subsystem: "content",
			Name:      "cache_total",
			Help:      "Content cache lookups by entity and result",
		}, []string{"entity", "result"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.cacheTotal)
	return m
}

// ObserveCache records a cache lookup. Result is hit, miss, or stale
// (stale means the upstream refetch failed and the expired entry was
// served anyway).
func (m *ContentMetrics) ObserveCache(entity, result string) {
	if m == nil {
		return
	}
	m.cacheTotal.WithLabelValues(entity, result).Inc()
}
