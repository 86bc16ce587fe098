package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/section"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/style"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/worker"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/handler/http/response"
)

// MasterHandler serves the master data: sections, workers and styles.
type MasterHandler interface {
	CreateSection(w http.ResponseWriter, r *http.Request)
	GetSection(w http.ResponseWriter, r *http.Request)
	ListSections(w http.ResponseWriter, r *http.Request)
	UpdateSection(w http.ResponseWriter, r *http.Request)
	DeleteSection(w http.ResponseWriter, r *http.Request)

	CreateWorker(w http.ResponseWriter, r *http.Request)
	GetWorker(w http.ResponseWriter, r *http.Request)
	ListWorkers(w http.ResponseWriter, r *http.Request)
	ListSectionWorkers(w http.ResponseWriter, r *http.Request)
	UpdateWorker(w http.ResponseWriter, r *http.Request)
	DeleteWorker(w http.ResponseWriter, r *http.Request)

	CreateStyle(w http.ResponseWriter, r *http.Request)
	GetStyle(w http.ResponseWriter, r *http.Request)
	ListStyles(w http.ResponseWriter, r *http.Request)
	UpdateStyle(w http.ResponseWriter, r *http.Request)
	DeleteStyle(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	sectionService section.SectionService
	workerService  worker.WorkerService
	styleService   style.StyleService
}

func NewMasterHandler(sectionService section.SectionService, workerService worker.WorkerService, styleService style.StyleService) MasterHandler {
	return &MasterHandlerImpl{
		sectionService: sectionService,
		workerService:  workerService,
		styleService:   styleService,
	}
}

// CreateSection implements MasterHandler.
func (h *MasterHandlerImpl) CreateSection(w http.ResponseWriter, r *http.Request) {
	var createReq section.CreateSectionRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create section decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.sectionService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create section service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Section created successfully", created)
}

// GetSection implements MasterHandler.
func (h *MasterHandlerImpl) GetSection(w http.ResponseWriter, r *http.Request) {
	found, err := h.sectionService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListSections implements MasterHandler.
func (h *MasterHandlerImpl) ListSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.sectionService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, sections)
}

// UpdateSection implements MasterHandler.
func (h *MasterHandlerImpl) UpdateSection(w http.ResponseWriter, r *http.Request) {
	var updateReq section.UpdateSectionRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update section decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := h.sectionService.Update(r.Context(), updateReq); err != nil {
		slog.Error("Update section service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Section updated successfully", nil)
}

// DeleteSection implements MasterHandler.
func (h *MasterHandlerImpl) DeleteSection(w http.ResponseWriter, r *http.Request) {
	if err := h.sectionService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Section deleted successfully", nil)
}

// CreateWorker implements MasterHandler.
func (h *MasterHandlerImpl) CreateWorker(w http.ResponseWriter, r *http.Request) {
	var createReq worker.CreateWorkerRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create worker decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.workerService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create worker service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Worker created successfully", created)
}

// GetWorker implements MasterHandler.
func (h *MasterHandlerImpl) GetWorker(w http.ResponseWriter, r *http.Request) {
	found, err := h.workerService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListWorkers implements MasterHandler.
func (h *MasterHandlerImpl) ListWorkers(w http.ResponseWriter, r *http.Request) {
	workers, err := h.workerService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, workers)
}

// ListSectionWorkers implements MasterHandler.
func (h *MasterHandlerImpl) ListSectionWorkers(w http.ResponseWriter, r *http.Request) {
	workers, err := h.workerService.ListBySection(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, workers)
}

// UpdateWorker implements MasterHandler.
func (h *MasterHandlerImpl) UpdateWorker(w http.ResponseWriter, r *http.Request) {
	var updateReq worker.UpdateWorkerRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update worker decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := h.workerService.Update(r.Context(), updateReq); err != nil {
		slog.Error("Update worker service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker updated successfully", nil)
}

// DeleteWorker implements MasterHandler.
func (h *MasterHandlerImpl) DeleteWorker(w http.ResponseWriter, r *http.Request) {
	if err := h.workerService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker deleted successfully", nil)
}

// CreateStyle implements MasterHandler.
func (h *MasterHandlerImpl) CreateStyle(w http.ResponseWriter, r *http.Request) {
	var createReq style.CreateStyleRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create style decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.styleService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create style service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Style created successfully", created)
}

// GetStyle implements MasterHandler.
func (h *MasterHandlerImpl) GetStyle(w http.ResponseWriter, r *http.Request) {
	found, err := h.styleService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListStyles implements MasterHandler.
func (h *MasterHandlerImpl) ListStyles(w http.ResponseWriter, r *http.Request) {
	styles, err := h.styleService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, styles)
}

// UpdateStyle implements MasterHandler.
func (h *MasterHandlerImpl) UpdateStyle(w http.ResponseWriter, r *http.Request) {
	var updateReq style.UpdateStyleRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update style decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := h.styleService.Update(r.Context(), updateReq); err != nil {
		slog.Error("Update style service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Style updated successfully", nil)
}

// DeleteStyle implements MasterHandler.
func (h *MasterHandlerImpl) DeleteStyle(w http.ResponseWriter, r *http.Request) {
	if err := h.styleService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Style deleted successfully", nil)
}
