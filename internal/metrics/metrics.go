package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	FallbackReads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "portal_store_fallback_reads_total", Help: "Collection reads served by the flat file after a MongoDB error"},
		[]string{"collection"},
	)
	FallbackWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "portal_store_fallback_writes_total", Help: "Collection writes served by the flat file after a MongoDB error"},
		[]string{"collection"},
	)
	BroadcastEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "portal_broadcast_events_total", Help: "Change events fanned out to SSE subscribers"},
		[]string{"event"},
	)
	SSEClients = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "portal_sse_clients", Help: "Currently connected SSE subscribers"},
	)
)

func Register() {
	prometheus.MustRegister(FallbackReads, FallbackWrites, BroadcastEvents, SSEClients)
}
