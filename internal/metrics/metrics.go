package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "og_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "og_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	GymsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "og_gyms_created_total",
			Help: "Total number of gyms created",
		},
	)

	GymPlansCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "og_gym_plans_created_total",
			Help: "Total number of gym plans created",
		},
	)

	UsersProvisionedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "og_users_provisioned_total",
			Help: "Total number of users provisioned",
		},
		[]string{"role"},
	)

	CompensationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "og_provisioning_compensations_total",
			Help: "Total number of compensating principal deletions",
		},
		[]string{"outcome"},
	)

	MemberListingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "og_member_listings_total",
			Help: "Total number of member listing requests",
		},
		[]string{"mode"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "og_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "og_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordGymCreated() {
	GymsCreatedTotal.Inc()
}

func RecordGymPlanCreated() {
	GymPlansCreatedTotal.Inc()
}

func RecordUserProvisioned(role string) {
	if role == "" {
		role = "none"
	}
	UsersProvisionedTotal.WithLabelValues(role).Inc()
}

func RecordCompensation(outcome string) {
	CompensationsTotal.WithLabelValues(outcome).Inc()
}

func RecordMemberListing(mode string) {
	MemberListingsTotal.WithLabelValues(mode).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
