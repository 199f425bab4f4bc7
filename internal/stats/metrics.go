package stats

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

var comparisonsDesc = prometheus.NewDesc(
	"bag_search_comparisons_total",
	"Key comparisons performed by search operations.",
	[]string{"store", "algorithm"},
	nil,
)

// collector exposes a Counters value as Prometheus metrics.
type collector struct {
	counters *Counters
}

// Collector returns a prometheus.Collector reporting the comparison counters.
// Values are read at collection time, so a reset shows up on the next scrape.
func Collector(c *Counters) prometheus.Collector {
	return &collector{counters: c}
}

// Describe implements prometheus.Collector.
func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- comparisonsDesc
}

// Collect implements prometheus.Collector.
func (c *collector) Collect(ch chan<- prometheus.Metric) {
	s := c.counters.Snapshot()
	ch <- prometheus.MustNewConstMetric(comparisonsDesc, prometheus.CounterValue,
		float64(s.ArraySequential), "array", "sequential")
	ch <- prometheus.MustNewConstMetric(comparisonsDesc, prometheus.CounterValue,
		float64(s.ArrayBinary), "array", "binary")
	ch <- prometheus.MustNewConstMetric(comparisonsDesc, prometheus.CounterValue,
		float64(s.ListSequential), "list", "sequential")
}

// WriteText writes the counters to w in the Prometheus text exposition format.
func WriteText(w io.Writer, c *Counters) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(Collector(c)); err != nil {
		return fmt.Errorf("failed to register collector: %w", err)
	}

	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	return nil
}
