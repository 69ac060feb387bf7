package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameGeocodingRequests = "geocoding_requests"
	NameGeocodingDuration = "geocoding_duration_seconds"
	NameGeocodingRetries  = "geocoding_retries"
	NameGeocodingCache    = "geocoding_cache"
	LabelProvider         = "provider"
	LabelResult           = "result"
)

var GeocodingRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameGeocodingRequests,
		Help:      "Geocoding requests by provider and outcome",
		Namespace: Namespace,
	},
	[]string{LabelProvider, LabelOutcome},
)

var GeocodingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:      NameGeocodingDuration,
		Help:      "Geocoding latency",
		Namespace: Namespace,
		Buckets:   prometheus.DefBuckets,
	},
	[]string{LabelProvider},
)

var GeocodingRetries = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameGeocodingRetries,
		Help:      "Geocoding attempts retried after a provider failure",
		Namespace: Namespace,
	},
)

var GeocodingCache = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameGeocodingCache,
		Help:      "Geocoding cache lookups by result",
		Namespace: Namespace,
	},
	[]string{LabelResult},
)
