/*Package metrics wraps datadog-go to facilitate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
- Warning: *.warn
*/
package metrics

import (
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/x-xyz/goclient/base/log"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

var (
	clientOnce sync.Once
	client     statsCli
)

// initClient picks the dogstatsd client when an agent address is
// configured, else the log fallback so local runs still show bumps.
func initClient() {
	addr := viper.GetString("datadog.addr")
	if addr == "" {
		client = &logClient{}
		return
	}
	cli, err := newStatsdClient(addr)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Warn("can't talk to datadog agent, falling back to log metrics")
		client = &logClient{}
		return
	}
	client = cli
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	clientOnce.Do(initClient)
	return &metricsImpl{
		pkgName: pkgName,
		tags: []string{
			"env:" + viper.GetString("env_name"),
			"app:" + viper.GetString("app_name"),
		},
	}
}

type metricsImpl struct {
	pkgName string
	tags    []string
}

func (mt *metricsImpl) BumpAvg(key string, val float64, tags ...string) {
	client.Gauge(mt.pkgName+"."+key, val, mt.parseTags(key, tags))
}

func (mt *metricsImpl) BumpSum(key string, val float64, tags ...string) {
	client.Count(mt.pkgName+"."+key, int64(val), mt.parseTags(key, tags))
}

func (mt *metricsImpl) BumpHistogram(key string, val float64, tags ...string) {
	client.Histogram(mt.pkgName+"."+key, val, mt.parseTags(key, tags))
}

// BumpTime starts a timer. Calling End() on the returned value records the
// elapsed duration:
//
//	defer s.BumpTime("my.function.time").End()
func (mt *metricsImpl) BumpTime(key string, tags ...string) Ender {
	return newTimeTracker(mt.pkgName+"."+key, mt.parseTags(key, tags))
}

// parseTags converts key/value pairs to datadog "key:value" tags and
// appends service-level tags. Odd-length tag lists are a programming error.
func (mt *metricsImpl) parseTags(key string, tags []string) []string {
	if len(tags)%2 != 0 {
		log.Log().WithFields(log.Fields{"key": key, "tags": strings.Join(tags, ",")}).Panic("tag length needs to be multiple of 2")
	}
	parsed := make([]string, 0, len(tags)/2+len(mt.tags))
	for i := 0; i < len(tags); i += 2 {
		parsed = append(parsed, tags[i]+":"+tags[i+1])
	}
	return append(parsed, mt.tags...)
}
