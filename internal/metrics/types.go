package metrics

import (
	"sync"
	"time"
)

// Running totals per namespace and metric name
type Registry struct {
	mu      sync.RWMutex
	metrics map[string]map[string]Metric // key0=namespace, key1=name
}

type MetricType string

const (
	Counter MetricType = "counter" // always increasing
	Gauge   MetricType = "gauge"   // can go up/down
)

// Container for a metric and associated data
type Metric struct {
	Name        string // e.g. lines_written, lock_retries
	Description string
	Namespace   []string // e.g. "Loglib/File"
	Value       MetricValue
	Type        MetricType
	Timestamp   time.Time // time when the metric was recorded
}

// Specific value of a metric
type MetricValue struct {
	Raw      uint64
	Unit     string        // e.g., "count", "bytes"
	Interval time.Duration // measurement window of the last sample
}

// JSON version
type JMetric struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Namespace   string       `json:"namespace"`
	Value       JMetricValue `json:"value"`
	Type        string       `json:"type"`
	Timestamp   string       `json:"timestamp"`
}

// Specific value of a metric
type JMetricValue struct {
	Raw      string `json:"raw"`
	Unit     string `json:"unit"`
	Interval string `json:"interval"`
}
