package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer(reg, "rental-booking")

	m.IncBookingCreated("public")
	m.IncBookingCreated("public")
	m.IncBookingCreated("admin")
	m.IncBookingConflict("create")
	m.IncBookingTransition("start")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsCreated.WithLabelValues("public")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsCreated.WithLabelValues("admin")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingConflicts.WithLabelValues("create")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingTransitions.WithLabelValues("start")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTP("GET", "/x", "200", 0.1)
		m.ObserveDBQuery("SELECT", "ok", 0.01)
		m.SetDBPoolStats(1, 1, 0, 0)
		m.IncTransactionRetry("serializable")
		m.IncBookingCreated("public")
		m.IncBookingConflict("create")
		m.IncBookingTransition("cancel")
		m.IncCalendarCache("hit")
	})
}
