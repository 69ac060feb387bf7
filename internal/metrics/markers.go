package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameMarkerPipelineRuns = "marker_pipeline_runs"
	NameMarkerViews        = "marker_views"
	LabelOperation         = "operation"
	LabelOutcome           = "outcome"
	LabelView              = "view"
)

var MarkerPipelineRuns = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameMarkerPipelineRuns,
		Help:      "Marker pipeline invocations by operation and outcome",
		Namespace: Namespace,
	},
	[]string{LabelOperation, LabelOutcome},
)

var MarkerViews = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameMarkerViews,
		Help:      "Marker directory reads by view",
		Namespace: Namespace,
	},
	[]string{LabelView},
)
