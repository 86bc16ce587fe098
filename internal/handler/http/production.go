package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/production"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/handler/http/response"
)

type ProductionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListByWorker(w http.ResponseWriter, r *http.Request)
}

type ProductionHandlerImpl struct {
	productionService production.ProductionService
}

func NewProductionHandler(productionService production.ProductionService) ProductionHandler {
	return &ProductionHandlerImpl{productionService: productionService}
}

// Create implements ProductionHandler.
func (h *ProductionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq production.CreateEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create production entry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.productionService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create production entry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Production entry created successfully", created)
}

// Update implements ProductionHandler.
func (h *ProductionHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq production.UpdateEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update production entry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := h.productionService.Update(r.Context(), updateReq); err != nil {
		slog.Error("Update production entry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Production entry updated successfully", nil)
}

// Delete implements ProductionHandler.
func (h *ProductionHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.productionService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Production entry deleted successfully", nil)
}

// ListByWorker implements ProductionHandler.
func (h *ProductionHandlerImpl) ListByWorker(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	entries, err := h.productionService.ListByWorker(
		r.Context(),
		chi.URLParam(r, "id"),
		query.Get("start_date"),
		query.Get("end_date"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
