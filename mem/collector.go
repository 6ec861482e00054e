package mem

import "github.com/prometheus/client_golang/prometheus"

const namespace = "govec"

var (
	descLiveBuffers = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "mem", "live_buffers"),
		"Number of slot buffers currently owned by containers.",
		nil, nil)
	descLiveSlots = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "mem", "live_slots"),
		"Number of slots across all owned buffers.",
		nil, nil)
	descLiveBytes = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "mem", "live_bytes"),
		"Bytes held by owned buffers, excluding memory referenced by elements.",
		nil, nil)
	descAcquired = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "mem", "buffers_acquired_total"),
		"Slot buffers acquired.",
		nil, nil)
	descReleased = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "mem", "buffers_released_total"),
		"Slot buffers released.",
		nil, nil)
	descReallocations = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "mem", "reallocations_total"),
		"Buffer relocations caused by growth.",
		nil, nil)
)

type collector struct{}

// NewCollector returns a prometheus.Collector exporting the buffer
// accounting counters. Register it once per registry.
func NewCollector() prometheus.Collector {
	return collector{}
}

func (collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- descLiveBuffers
	ch <- descLiveSlots
	ch <- descLiveBytes
	ch <- descAcquired
	ch <- descReleased
	ch <- descReallocations
}

func (collector) Collect(ch chan<- prometheus.Metric) {
	s := Snapshot()
	ch <- prometheus.MustNewConstMetric(descLiveBuffers, prometheus.GaugeValue, float64(s.Buffers))
	ch <- prometheus.MustNewConstMetric(descLiveSlots, prometheus.GaugeValue, float64(s.Slots))
	ch <- prometheus.MustNewConstMetric(descLiveBytes, prometheus.GaugeValue, float64(s.Bytes))
	ch <- prometheus.MustNewConstMetric(descAcquired, prometheus.CounterValue, float64(s.Acquired))
	ch <- prometheus.MustNewConstMetric(descReleased, prometheus.CounterValue, float64(s.Released))
	ch <- prometheus.MustNewConstMetric(descReallocations, prometheus.CounterValue, float64(s.Reallocations))
}
