package prometheus

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutboundRequestTotal(t *testing.T) {
	before := testutil.ToFloat64(OutboundRequestTotal.WithLabelValues("workato", "ok"))
	OutboundRequestTotal.WithLabelValues("workato", "ok").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(OutboundRequestTotal.WithLabelValues("workato", "ok")))
}

func TestHandler_ExposesBridgeMetrics(t *testing.T) {
	Initialize()
	Initialize()
	RequestTotal.WithLabelValues("getAllFolders", "GET", "2xx").Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "bridge_requests_total")
	assert.Contains(t, string(body), `endpoint="getAllFolders"`)
}
