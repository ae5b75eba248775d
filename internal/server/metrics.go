package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goliatone/go-formcheck/pkg/validation"
)

const metricsNamespace = "formcheck"

// Metrics tracks submissions and validation issues.
type Metrics struct {
	Submissions *prometheus.CounterVec
	FieldIssues *prometheus.CounterVec
	LiveChecks  *prometheus.CounterVec
}

// NewMetrics registers the collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Submissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "submissions_total",
				Help:      "Form submissions by outcome (accepted, rejected) and channel (form, api)",
			},
			[]string{"channel", "outcome"},
		),
		FieldIssues: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "field_issues_total",
				Help:      "Validation issues reported on submit, by field and kind",
			},
			[]string{"field", "kind"},
		),
		LiveChecks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "live_checks_total",
				Help:      "Single-field checks requested while typing, by field and result",
			},
			[]string{"field", "result"},
		),
	}
}

// ObserveReport records one submission through channel.
func (m *Metrics) ObserveReport(channel string, report validation.Report) {
	if m == nil {
		return
	}
	outcome := "accepted"
	if !report.Valid {
		outcome = "rejected"
	}
	m.Submissions.WithLabelValues(channel, outcome).Inc()
	for _, result := range report.Results {
		if !result.Valid {
			m.FieldIssues.WithLabelValues(string(result.Field), string(result.Kind)).Inc()
		}
	}
}

// ObserveLive records live check results.
func (m *Metrics) ObserveLive(results []validation.Result) {
	if m == nil {
		return
	}
	for _, result := range results {
		label := "valid"
		if !result.Valid {
			label = "invalid"
		}
		m.LiveChecks.WithLabelValues(string(result.Field), label).Inc()
	}
}
