package router

import (
	"net/http"

	"github.com/flightforesight/flightforesight/cmd/api-gateway/internal/api/http/handlers"
	"github.com/flightforesight/flightforesight/cmd/api-gateway/internal/api/http/middleware"
	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Options struct {
	AllowedOrigins []string
}

func New(log *zap.Logger, metrics *middleware.Metrics, airports *handlers.AirportHandler, predictions *handlers.PredictionHandler, opts Options) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Tracing)
	r.Use(metrics.Middleware)

	r.HandleFunc("/healthz", handlers.Health).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/airports", airports.ListAirports).Methods(http.MethodGet)
	v1.HandleFunc("/airports", airports.CreateAirport).Methods(http.MethodPost)
	v1.HandleFunc("/airports/{iata}", airports.GetAirport).Methods(http.MethodGet)
	v1.HandleFunc("/airports/{iata}", airports.DeleteAirport).Methods(http.MethodDelete)
	v1.HandleFunc("/airlines", airports.ListAirlines).Methods(http.MethodGet)
	v1.HandleFunc("/reference/sync", airports.SyncReferenceData).Methods(http.MethodPost)

	v1.HandleFunc("/delay/predict", predictions.PredictDelay).Methods(http.MethodPost)
	v1.HandleFunc("/fare/predict", predictions.PredictFare).Methods(http.MethodPost)
	v1.HandleFunc("/predictions", predictions.ListPredictions).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeStatus(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeStatus(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	cors := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins(opts.AllowedOrigins),
		gorillahandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type"}),
	)

	var h http.Handler = r
	h = cors(h)
	h = middleware.Logging(log)(h)
	h = gorillahandlers.RecoveryHandler(
		gorillahandlers.RecoveryLogger(zap.NewStdLog(log)),
		gorillahandlers.PrintRecoveryStack(true),
	)(h)
	return h
}

func writeStatus(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + message + `"}`))
}
