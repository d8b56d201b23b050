package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollector_RecordPeriodicTasksPurged(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.RecordPeriodicTasksPurged(4)
	c.RecordPeriodicTasksPurged(0)

	assert.Equal(t, float64(4), testutil.ToFloat64(c.tasksPurged))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.resets))
}

func TestCollector_RecordLookup(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.RecordLookup("active_model", true)
	c.RecordLookup("active_model", false)
	c.RecordLookup("active_model", false)

	assert.Equal(t, float64(1), testutil.ToFloat64(c.lookups.WithLabelValues("active_model", "hit")))
	assert.Equal(t, float64(2), testutil.ToFloat64(c.lookups.WithLabelValues("active_model", "miss")))
}

func TestCollector_RecordRequest(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.RecordRequest(http.MethodGet, "/centers/:id", http.StatusOK, 15*time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(c.requests.WithLabelValues(http.MethodGet, "/centers/:id", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.latency))
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordPeriodicTasksPurged(1)

	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "lx_registry_periodic_tasks_purged_total 1")
}
