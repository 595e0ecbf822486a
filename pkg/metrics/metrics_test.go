package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.BookingCreated()
		m.BookingConflict()
		m.CouponMinted()
		m.CouponRedeemed()
		m.NotificationOutcome("system", "sent")
		m.WhatsAppOutcome("failed")
	})
}

func TestRecorder_Counts(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.BookingCreated()
	m.BookingCreated()
	m.CouponMinted()
	m.NotificationOutcome("reminder", "skipped")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.BookingsCreated))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CouponsMinted))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.NotificationsTotal.WithLabelValues("reminder", "skipped")))
}
