package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestObserveRecordsLatencyAndErrors(t *testing.T) {
	r := New(prometheus.NewRegistry())

	r.Observe(OpQuery, 10*time.Millisecond, nil)
	r.Observe(OpQuery, 20*time.Millisecond, nil)
	r.Observe(OpQuery, 30*time.Millisecond, errors.New("boom"))

	require.InDelta(t, 20*time.Millisecond, r.Mean(OpQuery), float64(2*time.Millisecond))
	require.Greater(t, r.LatencyQuantile(OpQuery, 99), time.Duration(0))

	var count int
	metricCh := make(chan prometheus.Metric, 16)
	r.Errors.Collect(metricCh)
	close(metricCh)
	for range metricCh {
		count++
	}
	require.Equal(t, 1, count, "only OpQuery should have an error counter")
}

func TestTrackWrapsObserve(t *testing.T) {
	r := New(prometheus.NewRegistry())
	var err error
	done := Track(r, OpBuild, &err)
	time.Sleep(time.Millisecond)
	err = errors.New("failed")
	done()

	require.Greater(t, r.Mean(OpBuild), time.Duration(0))
}

func TestOpString(t *testing.T) {
	require.Equal(t, "build", OpBuild.String())
	require.Equal(t, "query", OpQuery.String())
	require.Equal(t, "mutate", OpMutate.String())
}
