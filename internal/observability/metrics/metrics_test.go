package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestIntakeMetrics_ObserveSubmission(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewIntakeMetrics(reg)

	m.ObserveSubmission("contact", "accepted")
	m.ObserveSubmission("contact", "accepted")
	m.ObserveSubmission("notary", "honeypot")

	if got := testutil.ToFloat64(m.submissionsTotal.WithLabelValues("contact", "accepted")); got != 2 {
		t.Errorf("expected 2 accepted contact submissions, got %v", got)
	}
	if got := testutil.ToFloat64(m.submissionsTotal.WithLabelValues("notary", "honeypot")); got != 1 {
		t.Errorf("expected 1 notary honeypot, got %v", got)
	}
}

func TestIntakeMetrics_NilReceiverIsSafe(t *testing.T) {
	var m *IntakeMetrics
	m.ObserveSubmission("contact", "accepted")
	m.ObserveNotification("contact", "sent")
}

func TestContentMetrics_ObserveCache(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewContentMetrics(reg)

	m.ObserveCache("practice-areas", "hit")
	m.ObserveCache("practice-areas", "miss")
	m.ObserveCache("practice-areas", "hit")

	if got := testutil.ToFloat64(m.cacheTotal.WithLabelValues("practice-areas", "hit")); got != 2 {
		t.Errorf("expected 2 hits, got %v", got)
	}
}
