package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	airportv1 "github.com/flightforesight/flightforesight/contracts/airport/v1"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type AirportDirectory interface {
	GetAirport(ctx context.Context, iata string) (*airportv1.GetAirportResponse, error)
	ListAirports(ctx context.Context, limit int32, query string) (*airportv1.ListAirportsResponse, error)
	UpsertAirport(ctx context.Context, airport *airportv1.Airport) (*airportv1.UpsertAirportResponse, error)
	DeleteAirport(ctx context.Context, iata string) error
	ListAirlines(ctx context.Context) (*airportv1.ListAirlinesResponse, error)
	SyncReferenceData(ctx context.Context) (*airportv1.SyncReferenceDataResponse, error)
}

type AirportHandler struct {
	log    *zap.Logger
	client AirportDirectory
}

func NewAirportHandler(log *zap.Logger, client AirportDirectory) *AirportHandler {
	return &AirportHandler{log: log, client: client}
}

func (h *AirportHandler) ListAirports(w http.ResponseWriter, r *http.Request) {
	limit, _, errMsg := parsePositiveIntQuery(r, "limit")
	if errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}

	resp, err := h.client.ListAirports(r.Context(), limit, r.URL.Query().Get("q"))
	if err != nil {
		h.log.Error("list airports failed", zap.Error(err))
		writeError(w, mapHTTPStatus(err), mapGRPCError(err))
		return
	}

	airports := resp.Airports
	if airports == nil {
		airports = []*airportv1.Airport{}
	}
	writeJSON(w, http.StatusOK, airports)
}

func (h *AirportHandler) GetAirport(w http.ResponseWriter, r *http.Request) {
	iata := strings.TrimSpace(mux.Vars(r)["iata"])
	if iata == "" {
		writeError(w, http.StatusBadRequest, "iata is required")
		return
	}

	resp, err := h.client.GetAirport(r.Context(), iata)
	if err != nil {
		if mapHTTPStatus(err) != http.StatusNotFound {
			h.log.Error("get airport failed", zap.String("iata", iata), zap.Error(err))
		}
		writeError(w, mapHTTPStatus(err), mapGRPCError(err))
		return
	}

	writeJSON(w, http.StatusOK, resp.GetAirport())
}

func (h *AirportHandler) CreateAirport(w http.ResponseWriter, r *http.Request) {
	var airport airportv1.Airport
	if msg := decodeJSON(w, r, &airport); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	resp, err := h.client.UpsertAirport(r.Context(), &airport)
	if err != nil {
		h.log.Warn("upsert airport failed", zap.String("iata", airport.IATA), zap.Error(err))
		writeError(w, mapHTTPStatus(err), mapGRPCError(err))
		return
	}

	writeJSON(w, http.StatusCreated, resp.Airport)
}

func (h *AirportHandler) DeleteAirport(w http.ResponseWriter, r *http.Request) {
	iata := strings.ToUpper(strings.TrimSpace(mux.Vars(r)["iata"]))
	if iata == "" {
		writeError(w, http.StatusBadRequest, "iata is required")
		return
	}

	if err := h.client.DeleteAirport(r.Context(), iata); err != nil {
		if mapHTTPStatus(err) != http.StatusNotFound {
			h.log.Error("delete airport failed", zap.String("iata", iata), zap.Error(err))
		}
		writeError(w, mapHTTPStatus(err), mapGRPCError(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"detail": fmt.Sprintf("Airport %s deleted", iata)})
}

func (h *AirportHandler) ListAirlines(w http.ResponseWriter, r *http.Request) {
	resp, err := h.client.ListAirlines(r.Context())
	if err != nil {
		h.log.Error("list airlines failed", zap.Error(err))
		writeError(w, mapHTTPStatus(err), mapGRPCError(err))
		return
	}

	airlines := resp.Airlines
	if airlines == nil {
		airlines = []*airportv1.Airline{}
	}
	writeJSON(w, http.StatusOK, airlines)
}

func (h *AirportHandler) SyncReferenceData(w http.ResponseWriter, r *http.Request) {
	resp, err := h.client.SyncReferenceData(r.Context())
	if err != nil {
		h.log.Error("reference sync failed", zap.Error(err))
		writeError(w, mapHTTPStatus(err), mapGRPCError(err))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
