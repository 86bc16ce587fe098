package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/rate"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/handler/http/response"
)

type RateHandler interface {
	CreateStyleRate(w http.ResponseWriter, r *http.Request)
	ListStyleRates(w http.ResponseWriter, r *http.Request)
	ResolveRate(w http.ResponseWriter, r *http.Request)
}

type RateHandlerImpl struct {
	rateService rate.RateService
}

func NewRateHandler(rateService rate.RateService) RateHandler {
	return &RateHandlerImpl{rateService: rateService}
}

// CreateStyleRate implements RateHandler.
func (h *RateHandlerImpl) CreateStyleRate(w http.ResponseWriter, r *http.Request) {
	var createReq rate.CreateStyleRateRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create style rate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.StyleID = chi.URLParam(r, "id")

	created, err := h.rateService.CreateStyleRate(r.Context(), createReq)
	if err != nil {
		slog.Error("Create style rate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Style rate created successfully", created)
}

// ListStyleRates implements RateHandler.
func (h *RateHandlerImpl) ListStyleRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.rateService.ListStyleRates(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rates)
}

// ResolveRate implements RateHandler.
func (h *RateHandlerImpl) ResolveRate(w http.ResponseWriter, r *http.Request) {
	resolved, err := h.rateService.ResolveRate(r.Context(), chi.URLParam(r, "id"), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resolved)
}
