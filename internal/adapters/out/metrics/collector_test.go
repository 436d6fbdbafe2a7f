package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"atelier/internal/adapters/out/metrics"
	"atelier/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := metrics.NewCollector()

	c.EventPublished("Cutting")
	c.EventPublished("Cutting")
	c.SyncFinished("monotonic", ports.SyncChanged)
	c.SyncFinished("monotonic", ports.SyncFailed)
	c.ResyncCompleted(1500*time.Millisecond, 12, 2)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `atelier_task_saved_events_total{stage="Cutting"} 2`)
	assert.Contains(t, body, `atelier_status_syncs_total{outcome="changed",policy="monotonic"} 1`)
	assert.Contains(t, body, `atelier_status_syncs_total{outcome="failed",policy="monotonic"} 1`)
	assert.Contains(t, body, "atelier_resync_orders 12")
	assert.Contains(t, body, "atelier_resync_failures_total 2")
	assert.Contains(t, body, "go_goroutines")
}

func TestCollector_SeparateRegistries(t *testing.T) {
	first := metrics.NewCollector()
	second := metrics.NewCollector()

	first.EventPublished("Tailoring")

	rec := httptest.NewRecorder()
	second.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.NotContains(t, rec.Body.String(), `stage="Tailoring"`)
}
