package console

import (
	"loglib/internal/metrics"
	"sync/atomic"
	"time"
)

type MetricStorage struct {
	LinesPrinted   atomic.Uint64 // lines written to the terminal
	Failures       atomic.Uint64 // color assignment or write failures
	ColorsAssigned atomic.Uint64 // applications given a color
}

func (sink *Sink) CollectMetrics(interval time.Duration) (collection []metrics.Metric) {
	// Read and clear
	lines := sink.metrics.LinesPrinted.Swap(0)
	failures := sink.metrics.Failures.Swap(0)
	colors := sink.metrics.ColorsAssigned.Swap(0)

	// Record read time
	recordTime := time.Now()

	collection = []metrics.Metric{
		metrics.NewCounter("lines_printed", "Lines printed to the console in the interval", sink.Namespace, lines, interval, recordTime),
		metrics.NewCounter("render_failures", "Failed console renders in the interval", sink.Namespace, failures, interval, recordTime),
		metrics.NewCounter("colors_assigned", "Applications assigned a console color in the interval", sink.Namespace, colors, interval, recordTime),
	}
	return
}
