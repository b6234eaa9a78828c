package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "neuronest", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "neuronest", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	StoreWrites = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "neuronest", Name: "store_writes_total", Help: "Number of full-document writes committed to disk."},
	)
	StoreWriteErrors = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "neuronest", Name: "store_write_errors_total", Help: "Number of failed document writes."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(StoreWrites)
	reg.MustRegister(StoreWriteErrors)
}
