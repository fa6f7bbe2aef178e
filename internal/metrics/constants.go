package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "cic_http_requests_total"
	MetricNameHTTPRequestDuration  = "cic_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "cic_http_requests_in_flight"
)

// Planner metric names
const (
	MetricNamePlansTotal     = "cic_plans_total"
	MetricNamePlanTicks      = "cic_plan_ticks"
	MetricNamePlanPurchases  = "cic_plan_purchases"
	MetricNamePlanDuration   = "cic_plan_duration_seconds"
	MetricNameCacheHits      = "cic_plan_cache_hits_total"
	MetricNameCacheMisses    = "cic_plan_cache_misses_total"
	MetricNameRanksPurchased = "cic_ranks_purchased_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being processed"
)

// Planner metric help text
const (
	HelpTextPlansTotal     = "Total number of plans computed, by result"
	HelpTextPlanTicks      = "Ticks required by successful plans"
	HelpTextPlanPurchases  = "Number of rank purchases in successful plans"
	HelpTextPlanDuration   = "Time spent computing a plan in seconds"
	HelpTextCacheHits      = "Plans served from the cache"
	HelpTextCacheMisses    = "Plans not found in the cache"
	HelpTextRanksPurchased = "Ranks bought across all successful plans, by product"
)

// Label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelResult  = "result"
	LabelProduct = "product"
)

// Bucket configurations
var (
	HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}
	PlanTickBuckets    = []float64{0, 10, 100, 1_000, 10_000, 100_000, 1_000_000, 10_000_000}
	PurchaseBuckets    = []float64{1, 10, 50, 100, 500, 1_000, 5_000}
)
