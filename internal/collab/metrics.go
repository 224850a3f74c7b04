package collab

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the prometheus instruments for the collaboration layer.
type Metrics struct {
	ActiveConnections prometheus.Gauge
	Broadcasts        prometheus.Counter
	JoinsDenied       prometheus.Counter
}

// NewMetrics registers the collaboration metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		ActiveConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "collab_active_connections",
			Help: "Number of live collaboration websocket connections.",
		}),
		Broadcasts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "collab_broadcasts_total",
			Help: "Total number of content updates fanned out to room peers.",
		}),
		JoinsDenied: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "collab_joins_denied_total",
			Help: "Total number of room join attempts denied by the access gate.",
		}),
	}
	for _, c := range []prometheus.Collector{m.ActiveConnections, m.Broadcasts, m.JoinsDenied} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
