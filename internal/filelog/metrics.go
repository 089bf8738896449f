package filelog

import (
	"loglib/internal/metrics"
	"sync/atomic"
	"time"
)

type MetricStorage struct {
	LinesWritten atomic.Uint64 // entries appended to log files
	Failures     atomic.Uint64 // directory, lock, write or dump failures
	Rotations    atomic.Uint64 // dated file switches
	Dumps        atomic.Uint64 // exception JSON files written
}

func (sink *Sink) CollectMetrics(interval time.Duration) (collection []metrics.Metric) {
	// Read and clear
	lines := sink.metrics.LinesWritten.Swap(0)
	failures := sink.metrics.Failures.Swap(0)
	rotations := sink.metrics.Rotations.Swap(0)
	dumps := sink.metrics.Dumps.Swap(0)
	retries := sink.lockStats.Retries.Swap(0)
	restarts := sink.lockStats.Restarts.Swap(0)

	// Record read time
	recordTime := time.Now()

	collection = []metrics.Metric{
		metrics.NewCounter("lines_written", "Entries appended to log files in the interval", sink.Namespace, lines, interval, recordTime),
		metrics.NewCounter("write_failures", "Failed file writes in the interval", sink.Namespace, failures, interval, recordTime),
		metrics.NewCounter("rotations", "Switches to a newly dated log file in the interval", sink.Namespace, rotations, interval, recordTime),
		metrics.NewCounter("exception_dumps", "Exception JSON files written in the interval", sink.Namespace, dumps, interval, recordTime),
		metrics.NewCounter("lock_retries", "Lock attempts that found the file held in the interval", sink.Namespace, retries, interval, recordTime),
		metrics.NewCounter("lock_restarts", "Lock confirmations that failed and restarted in the interval", sink.Namespace, restarts, interval, recordTime),
	}
	return
}
