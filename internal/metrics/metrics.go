package metrics

import "github.com/prometheus/client_golang/prometheus"

// metrics variables
var (
	QueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_queries_total",
			Help: "Total number of dados queries by outcome (ok, connection_error, query_error)",
		},
		[]string{"outcome"},
	)

	QueryHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dashboard_query_duration_seconds",
			Help:    "Duration of a single dados query including connection acquisition",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0, 5.0},
		},
	)

	PageRenders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_page_renders_total",
			Help: "Total number of dashboard pages rendered",
		},
		[]string{"page"},
	)

	PageHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_page_duration_seconds",
			Help:    "Duration of a dashboard page request",
			Buckets: []float64{0.05, 0.1, 0.2, 0.5, 1.0, 2.0, 5.0, 10.0},
		},
		[]string{"page"},
	)
)

// Query outcomes
const (
	OutcomeOK              = "ok"
	OutcomeConnectionError = "connection_error"
	OutcomeQueryError      = "query_error"
)

func init() {
	prometheus.MustRegister(QueriesTotal)
	prometheus.MustRegister(QueryHistogram)

	prometheus.MustRegister(PageRenders)
	prometheus.MustRegister(PageHistogram)
}
