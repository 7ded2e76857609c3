// Package telemetry owns the Prometheus collectors exported by the service.
// All recording methods are safe to call on a nil *Metrics.
package telemetry

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "institute_insights"

type Metrics struct {
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	eventsIngested *prometheus.CounterVec
	skippedEvents  prometheus.Counter
	reportRows     prometheus.Gauge
	slotChecks     *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		eventsIngested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_ingested_total",
			Help:      "Activity events received, by outcome (created, duplicate, rejected)",
		}, []string{"outcome"}),
		skippedEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_skipped_events_total",
			Help:      "Events excluded from registration reports because of an unparseable timestamp",
		}),
		reportRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "report_last_rows",
			Help:      "Number of daily rows produced by the last registration report",
		}),
		slotChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slot_checks_total",
			Help:      "Slot availability checks, by result (available, conflict, invalid)",
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.eventsIngested,
		m.skippedEvents,
		m.reportRows,
		m.slotChecks,
	)
	return m
}

// Middleware records request counts and latency per matched route.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if m == nil {
			return err
		}

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		route := c.Route().Path
		m.httpRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

func (m *Metrics) EventIngested(outcome string) {
	if m == nil {
		return
	}
	m.eventsIngested.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ReportBuilt(rows, skipped int) {
	if m == nil {
		return
	}
	m.reportRows.Set(float64(rows))
	m.skippedEvents.Add(float64(skipped))
}

func (m *Metrics) SlotCheck(result string) {
	if m == nil {
		return
	}
	m.slotChecks.WithLabelValues(result).Inc()
}
