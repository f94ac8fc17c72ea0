package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const prefix = "simqueue_"

var operationDurationHist = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    prefix + "operation_duration_seconds",
		Help:    "Time taken by core operations",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	},
	[]string{"operation", "outcome"},
)

var storeErrorsCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: prefix + "store_errors_total",
		Help: "Number of record store failures",
	},
	[]string{"operation"},
)

var chargedUsageCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: prefix + "charged_usage_total",
		Help: "Resource usage charged to project quotas",
	},
	[]string{"platform"},
)

var quotaExceededCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: prefix + "quota_exceeded_total",
		Help: "Number of charges that left a quota above its limit",
	},
	[]string{"platform"},
)

var unchargedUsageCounter = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: prefix + "uncharged_usage_total",
		Help: "Resource usage of project jobs whose project held no quota for the platform",
	},
	[]string{"platform"},
)

// ObserveOperation records the duration of an operation started at start.
func ObserveOperation(operation string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	operationDurationHist.
		With(prometheus.Labels{"operation": operation, "outcome": outcome}).
		Observe(time.Since(start).Seconds())
}

func RecordStoreError(operation string) {
	storeErrorsCounter.WithLabelValues(operation).Inc()
}

func RecordCharge(platform string, amount float64, exceeded bool) {
	chargedUsageCounter.WithLabelValues(platform).Add(amount)
	if exceeded {
		quotaExceededCounter.WithLabelValues(platform).Inc()
	}
}

func RecordUncharged(platform string, amount float64) {
	unchargedUsageCounter.WithLabelValues(platform).Add(amount)
}
