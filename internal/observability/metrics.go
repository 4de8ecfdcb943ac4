package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	samplesAccepted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "walks_backend",
		Subsystem: "recorder",
		Name:      "samples_accepted_total",
		Help:      "Location samples whose segment distance was added to the accumulator.",
	})
	samplesRejected = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "walks_backend",
		Subsystem: "recorder",
		Name:      "samples_rejected_total",
		Help:      "Location samples excluded from distance accumulation as GPS jumps.",
	})
	walksSaved = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "walks_backend",
		Subsystem: "recorder",
		Name:      "walks_saved_total",
		Help:      "Recording sessions finalized into a stored walk.",
	})
	walksDiscarded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "walks_backend",
		Subsystem: "recorder",
		Name:      "walks_discarded_total",
		Help:      "Recording sessions discarded at stop for being too short.",
	})
	historyRemoves = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "walks_backend",
		Subsystem: "history",
		Name:      "removes_total",
		Help:      "Walks removed from the history store.",
	})
	historySize = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "walks_backend",
		Subsystem: "history",
		Name:      "size",
		Help:      "Walks currently retained in the bounded history.",
	})
)

func init() {
	prometheus.MustRegister(
		samplesAccepted,
		samplesRejected,
		walksSaved,
		walksDiscarded,
		historyRemoves,
		historySize,
	)
}

// RecordSample counts a processed location sample by acceptance outcome.
func RecordSample(accepted bool) {
	if accepted {
		samplesAccepted.Inc()
	} else {
		samplesRejected.Inc()
	}
}

// RecordStop counts a finalized session by whether it produced a walk.
func RecordStop(saved bool) {
	if saved {
		walksSaved.Inc()
	} else {
		walksDiscarded.Inc()
	}
}

// RecordRemove counts a history removal.
func RecordRemove() {
	historyRemoves.Inc()
}

// SetHistorySize updates the retained-history gauge.
func SetHistorySize(n int) {
	historySize.Set(float64(n))
}
