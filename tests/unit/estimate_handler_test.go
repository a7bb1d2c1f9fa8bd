package unit

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ghanabuild/estimator-backend/internal/estimation/domain"
	esthttp "github.com/ghanabuild/estimator-backend/internal/estimation/http"
	"github.com/ghanabuild/estimator-backend/internal/telemetry"
)

func estimateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := esthttp.New(telemetry.Nop(), zap.NewNop())
	h.Register(r.Group("/api"))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest("POST", path, bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestEstimateEndpoint_Success(t *testing.T) {
	r := estimateRouter()

	rr := postJSON(t, r, "/api/estimate", map[string]any{
		"region":            "Greater Accra",
		"projectType":       "residential",
		"totalFloorArea":    2500,
		"numberOfBathrooms": 3,
		"numberOfFloors":    2,
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var est domain.CostEstimate
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &est))
	assert.Equal(t, 144000, est.TotalCost)
	assert.Equal(t, "USD", est.Currency)
	assert.Equal(t, 54000, est.Breakdown["structure"])
	assert.NotContains(t, est.Breakdown, "externalWorks")
	assert.True(t, est.ValidUntil.After(est.EstimatedAt))
}

func TestEstimateEndpoint_ExternalWorks(t *testing.T) {
	r := estimateRouter()

	rr := postJSON(t, r, "/api/estimate", map[string]any{
		"region":               "Greater Accra",
		"projectType":          "residential",
		"totalFloorArea":       2500,
		"numberOfBathrooms":    3,
		"numberOfFloors":       2,
		"includeExternalWorks": true,
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var est domain.CostEstimate
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &est))
	assert.Equal(t, 12000, est.Breakdown["externalWorks"])
	assert.Equal(t, 156000, est.TotalCost)
}

func TestEstimateEndpoint_InvalidSpec(t *testing.T) {
	r := estimateRouter()

	rr := postJSON(t, r, "/api/estimate", map[string]any{
		"region":            "Greater Accra",
		"projectType":       "residential",
		"totalFloorArea":    "2000.5",
		"numberOfBathrooms": 3,
		"numberOfFloors":    2,
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	// single summary string; the itemized list never crosses the wire
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Missing required fields", body["error"])
}

func TestEstimateEndpoint_MalformedBody(t *testing.T) {
	r := estimateRouter()

	req, err := http.NewRequest("POST", "/api/estimate", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
