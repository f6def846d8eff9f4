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

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Crafting metric names
const (
	MetricNameCraftAttempts        = "potioncraft_craft_attempts_total"
	MetricNameCraftDuration        = "potioncraft_craft_duration_seconds"
	MetricNamePotionsCrafted       = "potioncraft_potions_crafted_total"
	MetricNameIngredientsConsumed  = "potioncraft_ingredients_consumed_total"
	MetricNameIngredientShortfalls = "potioncraft_ingredient_shortfalls_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Crafting metric help text
const (
	HelpTextCraftAttempts        = "Total number of craft attempts by outcome"
	HelpTextCraftDuration        = "Time spent in a craft attempt in seconds"
	HelpTextPotionsCrafted       = "Total number of potions crafted by recipe and grade"
	HelpTextIngredientsConsumed  = "Total units of each ingredient removed from inventories"
	HelpTextIngredientShortfalls = "Units an ingredient was short when it was consumed"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelType       = "type"
	LabelOutcome    = "outcome"
	LabelRecipe     = "recipe"
	LabelGrade      = "grade"
	LabelIngredient = "ingredient"
)

// UnmatchedRoute labels requests that never hit a registered route
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// CraftLatencyBuckets covers in-memory crafts up to slow database round trips
var CraftLatencyBuckets = []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEventPayloadDecodeFailed = "Failed to decode event payload"
	LogMsgMetricsRecorded          = "Metrics recorded for event"
)

// OutcomeError labels craft attempts that failed with an infrastructure error
const OutcomeError = "error"
