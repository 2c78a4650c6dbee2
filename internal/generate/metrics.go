package generate

import "github.com/prometheus/client_golang/prometheus"

var (
	generationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "notegend",
			Subsystem: "generate",
			Name:      "generations_total",
			Help:      "Total generations by output kind and source (remote or fallback)",
		},
		[]string{"kind", "source"},
	)

	remoteFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "notegend",
			Subsystem: "generate",
			Name:      "remote_failures_total",
			Help:      "Total hosted-model call failures absorbed by the fallback path",
		},
	)
)

func init() {
	prometheus.MustRegister(generationsTotal, remoteFailuresTotal)
}
