package metrics

import "time"

// Методы ниже безопасны для nil-получателя: при выключенных метриках
// в usecase передается (*Metrics)(nil)

func (m *Metrics) BookingCreated() {
	if m == nil {
		return
	}
	m.BookingsCreated.Inc()
}

func (m *Metrics) BookingConflict() {
	if m == nil {
		return
	}
	m.BookingConflicts.Inc()
}

func (m *Metrics) CouponMinted() {
	if m == nil {
		return
	}
	m.CouponsMinted.Inc()
}

func (m *Metrics) CouponRedeemed() {
	if m == nil {
		return
	}
	m.CouponsRedeemed.Inc()
}

// NotificationOutcome outcome: sent, skipped, failed
func (m *Metrics) NotificationOutcome(notificationType, outcome string) {
	if m == nil {
		return
	}
	m.NotificationsTotal.WithLabelValues(notificationType, outcome).Inc()
}

func (m *Metrics) WhatsAppOutcome(outcome string) {
	if m == nil {
		return
	}
	m.WhatsAppMessagesSent.WithLabelValues(outcome).Inc()
}

// ObserveHTTP route шаблон маршрута mux, а не фактический путь
func (m *Metrics) ObserveHTTP(method, route, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
