package metrics

import (
	"time"

	"github.com/DataDog/datadog-go/statsd"

	"github.com/x-xyz/goclient/base/log"
)

const (
	// rate to pass metrics to the datadog agent. 1 means always
	ddRate = 1
	// buffer this many counters before sending to statsd
	bufferMetrics = 10
)

type statsCli interface {
	Gauge(name string, value float64, tags []string)
	Count(name string, value int64, tags []string)
	Histogram(name string, value float64, tags []string)
	TimeInMilliseconds(name string, value float64, tags []string)
}

type statsdClient struct {
	cli *statsd.Client
}

func newStatsdClient(addr string) (statsCli, error) {
	cli, err := statsd.NewBuffered(addr, bufferMetrics)
	if err != nil {
		return nil, err
	}
	return &statsdClient{cli: cli}, nil
}

func (s *statsdClient) Gauge(name string, value float64, tags []string) {
	if err := s.cli.Gauge(name, value, tags, ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": name}).Error("Bump fail")
	}
}

func (s *statsdClient) Count(name string, value int64, tags []string) {
	if err := s.cli.Count(name, value, tags, ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": name}).Error("Bump fail")
	}
}

func (s *statsdClient) Histogram(name string, value float64, tags []string) {
	if err := s.cli.Histogram(name, value, tags, ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": name}).Error("Bump fail")
	}
}

func (s *statsdClient) TimeInMilliseconds(name string, value float64, tags []string) {
	if err := s.cli.TimeInMilliseconds(name, value, tags, ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": name}).Error("Bump fail")
	}
}

type timeTracker struct {
	start time.Time
	key   string
	tags  []string
}

func newTimeTracker(key string, tags []string) Ender {
	return &timeTracker{
		start: time.Now(),
		key:   key,
		tags:  tags,
	}
}

func (t *timeTracker) End() {
	d := time.Since(t.start)
	msec := d / time.Millisecond
	nsec := d % time.Millisecond
	dur := float64(msec) + float64(nsec)*1e-6
	client.TimeInMilliseconds(t.key, dur, t.tags)
}
