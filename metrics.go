package odbcbatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	batchesFetched = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "odbcbatch",
		Name:      "batches_fetched_total",
		Help:      "Result set batches fetched from the driver.",
	}, []string{"mode"})

	rowsFetched = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "odbcbatch",
		Name:      "rows_fetched_total",
		Help:      "Result set rows fetched from the driver.",
	}, []string{"mode"})

	parameterBatchesExecuted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "odbcbatch",
		Name:      "parameter_batches_executed_total",
		Help:      "Statement executions, one per flushed parameter batch.",
	})

	parameterRowsSent = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "odbcbatch",
		Name:      "parameter_rows_sent_total",
		Help:      "Parameter rows sent to the driver.",
	})

	parameterRebinds = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "odbcbatch",
		Name:      "parameter_rebinds_total",
		Help:      "Parameters rebound with a wider layout because a value did not fit.",
	})

	workerFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "odbcbatch",
		Name:      "fetch_worker_failures_total",
		Help:      "Background fetch failures delivered to the consumer.",
	})
)

const (
	modeBound          = "bound"
	modeDoubleBuffered = "double_buffered"
)
