package metrics

import (
	"github.com/x-xyz/goclient/base/log"
)

// logClient is the metrics sink used when no dogstatsd agent is configured.
type logClient struct{}

// Gauge measure the value of a particular thing at a particular time,
// like the number of pending transaction lifecycles in flight
func (lc *logClient) Gauge(name string, value float64, tags []string) {
	log.Log().WithFields(log.Fields{"key": name, "val": value, "tags": tags}).Debug("metric gauge")
}

// Count tracks how many times something happened,
// like the number of contract calls or submission failures
func (lc *logClient) Count(name string, value int64, tags []string) {
	log.Log().WithFields(log.Fields{"key": name, "val": value, "tags": tags}).Debug("metric count")
}

// Histogram tracks the statistical distribution of a set of values,
// like the duration of chain reads or the size of aggregation batches
func (lc *logClient) Histogram(name string, value float64, tags []string) {
	log.Log().WithFields(log.Fields{"key": name, "val": value, "tags": tags}).Debug("metric histogram")
}

// TimeInMilliseconds is essentially a special case of histograms,
// so it is treated in the same manner by DogStatsD for backwards compatibility.
func (lc *logClient) TimeInMilliseconds(name string, value float64, tags []string) {
	log.Log().WithFields(log.Fields{"key": name, "time_ms": value, "tags": tags}).Debug("metric time")
}
