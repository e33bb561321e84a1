package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveUpdate(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveUpdate(OutcomeCommitted, time.Now())
	m.ObserveUpdate(OutcomeCommitted, time.Now())
	m.ObserveUpdate(OutcomeDaemonFailed, time.Now())
	m.IncrementDaemonFailure("E_CONN_REFUSED")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.UpdatesTotal.WithLabelValues(OutcomeCommitted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpdatesTotal.WithLabelValues(OutcomeDaemonFailed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DaemonFailures.WithLabelValues("E_CONN_REFUSED")))

	var sample dto.Metric
	require.NoError(t, m.UpdateDuration.Write(&sample))
	assert.Equal(t, uint64(3), sample.GetHistogram().GetSampleCount())
}
