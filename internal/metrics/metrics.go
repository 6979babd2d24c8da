package metrics

import (
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

// Business Metrics
var (
	PetsAdopted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePetsAdopted,
			Help: HelpTextPetsAdopted,
		},
		[]string{LabelSpecies},
	)

	PetLevelUps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePetLevelUps,
			Help: HelpTextPetLevelUps,
		},
		[]string{LabelSource},
	)

	PetEvolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePetEvolutions,
			Help: HelpTextPetEvolutions,
		},
		[]string{LabelStage},
	)

	ItemsPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsPurchased,
			Help: HelpTextItemsPurchased,
		},
		[]string{LabelItem},
	)

	PetsFed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePetsFed,
			Help: HelpTextPetsFed,
		},
		[]string{LabelItem},
	)

	Explorations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameExplorations,
			Help: HelpTextExplorations,
		},
		[]string{LabelOutcome, LabelResult},
	)

	Duels = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDuels,
			Help: HelpTextDuels,
		},
	)

	DuelRounds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameDuelRounds,
			Help:    HelpTextDuelRounds,
			Buckets: DuelRoundBuckets,
		},
	)

	MoneyEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMoneyEarned,
			Help: HelpTextMoneyEarned,
		},
		[]string{LabelSource},
	)

	MoneySpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneySpent,
			Help: HelpTextMoneySpent,
		},
	)
)
