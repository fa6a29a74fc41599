package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RequestStarted()
		m.RequestFinished("GET", "/health", 200, time.Millisecond)
		m.GuardDecision(false, "scope_required")
		m.RankServed(3)
		m.FeedbackAccepted(false)
		m.Degraded("job_lookup")
	})
	assert.Nil(t, m.Registry())
}

func TestCounters(t *testing.T) {
	m := New()

	m.GuardDecision(true, "")
	m.GuardDecision(false, "insufficient_role")
	m.GuardDecision(false, "insufficient_role")
	m.RankServed(4)
	m.FeedbackAccepted(false)
	m.Degraded("feedback_write")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.guardDecisions.WithLabelValues("allow", "none")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.guardDecisions.WithLabelValues("deny", "insufficient_role")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rankRequests))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.feedbackTotal.WithLabelValues("false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.degradedLookups.WithLabelValues("feedback_write")))
}

func TestHandlerExposesHTTPMetrics(t *testing.T) {
	m := New()
	m.RequestStarted()
	m.RequestFinished("POST", "/api/v1/orgs/:orgId/matching/rank", 200, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `http_requests_total{method="POST",path="/api/v1/orgs/:orgId/matching/rank",status="200"} 1`))
	assert.Contains(t, body, "http_in_flight_requests 0")
}
