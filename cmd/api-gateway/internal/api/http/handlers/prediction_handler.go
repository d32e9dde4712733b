package handlers

import (
	"context"
	"net/http"
	"strings"

	predictionv1 "github.com/flightforesight/flightforesight/contracts/prediction/v1"
	"go.uber.org/zap"
)

type Predictor interface {
	PredictDelay(ctx context.Context, req *predictionv1.PredictDelayRequest) (*predictionv1.PredictDelayResponse, error)
	PredictFare(ctx context.Context, req *predictionv1.PredictFareRequest) (*predictionv1.PredictFareResponse, error)
	ListPredictions(ctx context.Context, kind string, limit int32) (*predictionv1.ListPredictionsResponse, error)
}

type PredictionHandler struct {
	log    *zap.Logger
	client Predictor
}

func NewPredictionHandler(log *zap.Logger, client Predictor) *PredictionHandler {
	return &PredictionHandler{log: log, client: client}
}

func (h *PredictionHandler) PredictDelay(w http.ResponseWriter, r *http.Request) {
	var req predictionv1.PredictDelayRequest
	if msg := decodeJSON(w, r, &req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	resp, err := h.client.PredictDelay(r.Context(), &req)
	if err != nil {
		h.logUpstream("predict delay failed", err, req.OriginIATA, req.DestinationIATA)
		writeError(w, mapHTTPStatus(err), mapGRPCError(err))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *PredictionHandler) PredictFare(w http.ResponseWriter, r *http.Request) {
	var req predictionv1.PredictFareRequest
	if msg := decodeJSON(w, r, &req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	resp, err := h.client.PredictFare(r.Context(), &req)
	if err != nil {
		h.logUpstream("predict fare failed", err, req.OriginIATA, req.DestinationIATA)
		writeError(w, mapHTTPStatus(err), mapGRPCError(err))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *PredictionHandler) ListPredictions(w http.ResponseWriter, r *http.Request) {
	limit, _, errMsg := parsePositiveIntQuery(r, "limit")
	if errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}
	kind := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("kind")))

	resp, err := h.client.ListPredictions(r.Context(), kind, limit)
	if err != nil {
		h.log.Error("list predictions failed", zap.String("kind", kind), zap.Error(err))
		writeError(w, mapHTTPStatus(err), mapGRPCError(err))
		return
	}

	predictions := resp.Predictions
	if predictions == nil {
		predictions = []*predictionv1.PredictionRecord{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"predictions": predictions})
}

// logUpstream keeps client mistakes at Warn so the error log only carries
// upstream failures.
func (h *PredictionHandler) logUpstream(msg string, err error, origin, destination string) {
	fields := []zap.Field{
		zap.String("origin_iata", origin),
		zap.String("destination_iata", destination),
		zap.Error(err),
	}
	if status := mapHTTPStatus(err); status == http.StatusBadRequest || status == http.StatusNotFound {
		h.log.Warn(msg, fields...)
		return
	}
	h.log.Error(msg, fields...)
}
