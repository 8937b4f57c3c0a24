package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

var (
	_ Recorder = NoopRecorder{}
	_ Recorder = (*PrometheusRecorder)(nil)
)

func TestPrometheusRecorder_CountsEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewPrometheusRecorder(reg)

	r.PageAssembled()
	r.PageAssembled()
	r.AnnotationHits(3)

	families, err := reg.Gather()
	require.NoError(t, err)

	got := map[string]float64{}
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			got[fam.GetName()] += m.GetCounter().GetValue()
		}
	}
	require.Equal(t, 2.0, got["matnav_pages_assembled_total"])
	require.Equal(t, 3.0, got["matnav_annotation_hits_total"])
}

func TestNoopRecorder_DoesNothing(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.PageAssembled()
	r.AnnotationHits(10)
}
