package pathcache

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector exports Table occupancy as Prometheus gauges.
//
// Gauges are read from the table at scrape time; Collector does no locking,
// so the owner must serialize scrapes with table mutations.
type Collector struct {
	table *Table

	capacity   *prometheus.Desc
	live       *prometheus.Desc
	tombstones *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector for t labelled with cache=name.
func NewCollector(name string, t *Table) *Collector {
	labels := prometheus.Labels{"cache": name}
	return &Collector{
		table: t,
		capacity: prometheus.NewDesc("hroute_pathcache_capacity",
			"Fixed slot count of the path cache.", nil, labels),
		live: prometheus.NewDesc("hroute_pathcache_live_entries",
			"Occupied slots in the path cache.", nil, labels),
		tombstones: prometheus.NewDesc("hroute_pathcache_tombstones",
			"Tombstoned slots in the path cache.", nil, labels),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.capacity
	ch <- c.live
	ch <- c.tombstones
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.table.Stats()
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(st.Capacity))
	ch <- prometheus.MustNewConstMetric(c.live, prometheus.GaugeValue, float64(st.Live))
	ch <- prometheus.MustNewConstMetric(c.tombstones, prometheus.GaugeValue, float64(st.Tombstones))
}
