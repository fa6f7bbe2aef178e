package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/napolitain/solver-cic/internal/models"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Planner Metrics
var (
	PlansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlansTotal,
			Help: HelpTextPlansTotal,
		},
		[]string{LabelResult},
	)

	PlanTicks = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNamePlanTicks,
			Help:    HelpTextPlanTicks,
			Buckets: PlanTickBuckets,
		},
	)

	PlanPurchases = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNamePlanPurchases,
			Help:    HelpTextPlanPurchases,
			Buckets: PurchaseBuckets,
		},
	)

	PlanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNamePlanDuration,
			Help:    HelpTextPlanDuration,
			Buckets: HTTPLatencyBuckets,
		},
	)

	RanksPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRanksPurchased,
			Help: HelpTextRanksPurchased,
		},
		[]string{LabelProduct},
	)

	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCacheHits,
			Help: HelpTextCacheHits,
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCacheMisses,
			Help: HelpTextCacheMisses,
		},
	)
)

// ObservePlan records the outcome of one planning run. result is a short
// error kind such as "ok" or "unreachable".
func ObservePlan(result string, sol *models.Solution, seconds float64) {
	PlansTotal.WithLabelValues(result).Inc()
	PlanDuration.Observe(seconds)
	if sol == nil {
		return
	}

	PlanTicks.Observe(float64(sol.TickCount))
	PlanPurchases.Observe(float64(len(sol.Purchases)))
	for _, p := range sol.Purchases {
		RanksPurchased.WithLabelValues(p.Product).Inc()
	}
}
