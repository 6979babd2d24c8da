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

// Business metric names
const (
	MetricNamePetsAdopted    = "pets_adopted_total"
	MetricNamePetLevelUps    = "pet_level_ups_total"
	MetricNamePetEvolutions  = "pet_evolutions_total"
	MetricNameItemsPurchased = "items_purchased_total"
	MetricNamePetsFed        = "pets_fed_total"
	MetricNameExplorations   = "explorations_total"
	MetricNameDuels          = "duels_total"
	MetricNameDuelRounds     = "duel_rounds"
	MetricNameMoneyEarned    = "money_earned_total"
	MetricNameMoneySpent     = "money_spent_total"
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

// Business metric help text
const (
	HelpTextPetsAdopted    = "Total number of pets adopted"
	HelpTextPetLevelUps    = "Total number of levels gained by pets"
	HelpTextPetEvolutions  = "Total number of pet evolutions"
	HelpTextItemsPurchased = "Total number of shop items purchased"
	HelpTextPetsFed        = "Total number of feedings"
	HelpTextExplorations   = "Total number of settled explorations"
	HelpTextDuels          = "Total number of settled duels"
	HelpTextDuelRounds     = "Rounds fought per duel"
	HelpTextMoneyEarned    = "Total money earned by pets"
	HelpTextMoneySpent     = "Total money spent in the shop"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelItem    = "item"
	LabelSpecies = "species"
	LabelSource  = "source"
	LabelStage   = "stage"
	LabelOutcome = "outcome"
	LabelResult  = "result"
)

// Label values
const (
	ResultWon  = "won"
	ResultLost = "lost"
	ResultNone = "none"

	SourceExplore = "explore"
	SourceDuel    = "duel"

	UnmatchedRoute = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// DuelRoundBuckets covers quick knockouts through long attrition fights
var DuelRoundBuckets = []float64{1, 2, 3, 5, 8, 13, 21, 34}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload has unexpected type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
