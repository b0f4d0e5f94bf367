package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Registry metric names
const (
	MetricNameItemLookups         = "item_lookups_total"
	MetricNameRegistryDefinitions = "item_registry_definitions"
	MetricNameCatalogSyncItems    = "item_catalog_sync_items_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextItemLookups          = "Item lookups by method and result"
	HelpTextRegistryDefinitions  = "Number of item definitions in the sealed registry"
	HelpTextCatalogSyncItems     = "Items written to the database mirror by sync action"
)

// ============================================================================
// Labels and values
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelResult = "result"
	LabelAction = "action"
)

// Lookup methods
const (
	LookupByID    = "by_id"
	LookupByName  = "by_name"
	LookupResolve = "resolve"
)

// Lookup results
const (
	ResultHit   = "hit"
	ResultMiss  = "miss"
	ResultError = "error"
)

// Sync actions
const (
	ActionInserted = "inserted"
	ActionUpdated  = "updated"
	ActionSkipped  = "skipped"
)

// UnmatchedRoute labels requests that matched no route
const UnmatchedRoute = "unmatched"

// HTTPLatencyBuckets are histogram buckets for request latency in seconds
var HTTPLatencyBuckets = []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1}
