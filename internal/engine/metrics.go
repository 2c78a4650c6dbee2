package engine

import "github.com/prometheus/client_golang/prometheus"

var transcriptionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "notegend",
		Subsystem: "engine",
		Name:      "transcriptions_total",
		Help:      "Total transcription attempts by outcome",
	},
	[]string{"status"},
)

func init() {
	prometheus.MustRegister(transcriptionsTotal)
}
