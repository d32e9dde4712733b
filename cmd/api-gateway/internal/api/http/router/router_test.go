package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/flightforesight/flightforesight/cmd/api-gateway/internal/api/http/handlers"
	"github.com/flightforesight/flightforesight/cmd/api-gateway/internal/api/http/middleware"
	airportv1 "github.com/flightforesight/flightforesight/contracts/airport/v1"
	predictionv1 "github.com/flightforesight/flightforesight/contracts/prediction/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubDirectory struct {
	handlers.AirportDirectory
}

func (stubDirectory) GetAirport(ctx context.Context, iata string) (*airportv1.GetAirportResponse, error) {
	return &airportv1.GetAirportResponse{Airport: &airportv1.Airport{IATA: iata, Name: "Test"}}, nil
}

type stubPredictor struct {
	handlers.Predictor
}

func (stubPredictor) PredictDelay(ctx context.Context, req *predictionv1.PredictDelayRequest) (*predictionv1.PredictDelayResponse, error) {
	return &predictionv1.PredictDelayResponse{PredictionID: "p-1", PredictedDelayMinutes: 12.5}, nil
}

func newTestRouter() http.Handler {
	log := zap.NewNop()
	return New(
		log,
		middleware.NewMetrics(),
		handlers.NewAirportHandler(log, stubDirectory{}),
		handlers.NewPredictionHandler(log, stubPredictor{}),
		Options{AllowedOrigins: []string{"http://localhost:5173"}},
	)
}

func TestRouter_Healthz(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestRouter_PathVariable(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/airports/MEL", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"iata":"MEL"`)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/v1/airports/MEL", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_UnknownPath(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v2/nothing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
}

func TestRouter_CORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/v1/delay/predict", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_MetricsExposeRouteTemplate(t *testing.T) {
	router := newTestRouter()

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/airports/SYD", nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `gateway_http_requests_total{method="GET",route="/v1/airports/{iata}",status="200"} 1`), body)
}

func TestRouter_PredictDelay(t *testing.T) {
	body := `{"origin_iata":"MEL","destination_iata":"SYD","scheduled_departure":"2024-03-15T09:05","scheduled_arrival":"2024-03-15T10:40"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/delay/predict", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"prediction_id":"p-1"`)
	assert.Contains(t, rec.Body.String(), `"predicted_delay_minutes":12.5`)
}
