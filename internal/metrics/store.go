package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameStoreCache = "store_cache"
	LabelCache     = "cache"
)

const (
	ResultHit  = "hit"
	ResultMiss = "miss"
)

var StoreCache = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameStoreCache,
		Help:      "Store cache lookups by cache and result",
		Namespace: Namespace,
	},
	[]string{LabelCache, LabelResult},
)
