package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, labels ...string) func() float64 {
	t.Helper()
	return func() float64 {
		metric := &dto.Metric{}
		require.NoError(t, signupCounter.WithLabelValues(labels...).Write(metric))
		return metric.GetCounter().GetValue()
	}
}

func TestRecordSignupIncrementsCounter(t *testing.T) {
	read := counterValue(t, "Chess Club")
	before := read()

	RecordSignup("Chess Club")

	require.Equal(t, before+1, read())
}

func TestRecordRejectionLabels(t *testing.T) {
	metric := &dto.Metric{}
	RecordRejection("signup", "capacity_exceeded")
	require.NoError(t, rejectionCounter.WithLabelValues("signup", "capacity_exceeded").Write(metric))
	require.GreaterOrEqual(t, metric.GetCounter().GetValue(), 1.0)
}

func TestSetRosterSize(t *testing.T) {
	SetRosterSize("Drama Club", 7)

	metric := &dto.Metric{}
	require.NoError(t, rosterGauge.WithLabelValues("Drama Club").Write(metric))
	require.Equal(t, 7.0, metric.GetGauge().GetValue())
}

func TestRecordHTTPRequestObservesDuration(t *testing.T) {
	RecordHTTPRequest("POST", "/activities/{name}/signup", 200, 25*time.Millisecond)

	observer, ok := httpDurationHistogram.WithLabelValues("POST", "/activities/{name}/signup").(prometheus.Metric)
	require.True(t, ok)

	metric := &dto.Metric{}
	require.NoError(t, observer.Write(metric))
	hist := metric.GetHistogram()
	require.NotNil(t, hist)
	require.GreaterOrEqual(t, hist.GetSampleCount(), uint64(1))
}

func TestStatusText(t *testing.T) {
	require.Equal(t, "2xx", statusText(200))
	require.Equal(t, "4xx", statusText(404))
	require.Equal(t, "5xx", statusText(503))
}
