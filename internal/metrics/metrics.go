package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Crafting Metrics
var (
	CraftAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCraftAttempts,
			Help: HelpTextCraftAttempts,
		},
		[]string{LabelOutcome},
	)

	CraftDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameCraftDuration,
			Help:    HelpTextCraftDuration,
			Buckets: CraftLatencyBuckets,
		},
		[]string{LabelOutcome},
	)

	PotionsCrafted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePotionsCrafted,
			Help: HelpTextPotionsCrafted,
		},
		[]string{LabelRecipe, LabelGrade},
	)

	IngredientsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameIngredientsConsumed,
			Help: HelpTextIngredientsConsumed,
		},
		[]string{LabelIngredient},
	)

	IngredientShortfalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameIngredientShortfalls,
			Help: HelpTextIngredientShortfalls,
		},
		[]string{LabelIngredient},
	)
)

// RecordCraft records the outcome and latency of one craft attempt
func RecordCraft(outcome string, started time.Time) {
	CraftAttempts.WithLabelValues(outcome).Inc()
	CraftDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}
