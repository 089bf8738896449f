// Accumulates sink counters collected at intervals
package metrics

import (
	"sort"
	"strings"
	"time"
)

// Creates new metric registry storage
func New() (registry *Registry) {
	registry = &Registry{
		metrics: make(map[string]map[string]Metric),
	}
	return
}

// Builds a counter sample for one collection interval
func NewCounter(name, description string, namespace []string, value uint64, interval time.Duration, recordTime time.Time) (metric Metric) {
	metric = Metric{
		Name:        name,
		Description: description,
		Namespace:   namespace,
		Value: MetricValue{
			Raw:      value,
			Unit:     "count",
			Interval: interval,
		},
		Type:      Counter,
		Timestamp: recordTime,
	}
	return
}

// Folds a batch of samples into the registry.
// Counters accumulate, gauges keep the latest sample.
func (registry *Registry) Add(samples []Metric) {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	for _, sample := range samples {
		namespace := strings.Join(sample.Namespace, "/")

		// Ensure namespace map is initialized
		if registry.metrics[namespace] == nil {
			registry.metrics[namespace] = make(map[string]Metric)
		}

		stored, exists := registry.metrics[namespace][sample.Name]
		if exists && sample.Type == Counter {
			sample.Value.Raw += stored.Value.Raw
		}
		registry.metrics[namespace][sample.Name] = sample
	}
}

// Supports exact match or prefix match. Empty query matches all.
func matchesNamespace(metricNS, queryNS []string) (matches bool) {
	if len(queryNS) == 0 {
		matches = true
		return
	}
	if len(metricNS) < len(queryNS) {
		return
	}
	for i := 0; i < len(queryNS); i++ {
		if metricNS[i] != queryNS[i] {
			return
		}
	}
	matches = true
	return
}

// Returns stored totals matching name (empty = all) under the namespace prefix,
// ordered by namespace then name
func (registry *Registry) Search(name string, namespacePrefix []string) (results []Metric) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	for nsStr, metricsMap := range registry.metrics {
		if !matchesNamespace(strings.Split(nsStr, "/"), namespacePrefix) {
			continue
		}
		for metricName, metric := range metricsMap {
			if name == "" || metricName == name {
				results = append(results, metric)
			}
		}
	}

	sort.Slice(results, func(i, j int) bool {
		nsI := strings.Join(results[i].Namespace, "/")
		nsJ := strings.Join(results[j].Namespace, "/")
		if nsI != nsJ {
			return nsI < nsJ
		}
		return results[i].Name < results[j].Name
	})
	return
}
