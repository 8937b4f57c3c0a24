// Package metrics provides build metrics via the Null Object pattern: all
// components take a Recorder and default to NoopRecorder, so metrics cost
// nothing unless a real implementation is injected.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Recorder receives build metric events.
type Recorder interface {
	// PageAssembled records one completed page context.
	PageAssembled()
	// AnnotationHits records how many navigation entries were annotated
	// with object info during one page's assembly.
	AnnotationHits(n int)
}

// NoopRecorder discards all metrics.
type NoopRecorder struct{}

func (NoopRecorder) PageAssembled()     {}
func (NoopRecorder) AnnotationHits(int) {}

// PrometheusRecorder exposes build metrics as Prometheus counters.
type PrometheusRecorder struct {
	pages prometheus.Counter
	hits  prometheus.Counter
}

// NewPrometheusRecorder registers the build counters on reg.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	r := &PrometheusRecorder{
		pages: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matnav_pages_assembled_total",
			Help: "Number of page contexts assembled.",
		}),
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "matnav_annotation_hits_total",
			Help: "Number of navigation entries annotated with object info.",
		}),
	}
	reg.MustRegister(r.pages, r.hits)
	return r
}

func (r *PrometheusRecorder) PageAssembled() { r.pages.Inc() }

func (r *PrometheusRecorder) AnnotationHits(n int) { r.hits.Add(float64(n)) }
