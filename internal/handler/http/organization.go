package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/organization"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/handler/http/response"
)

type OrganizationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Join(w http.ResponseWriter, r *http.Request)
	GetMine(w http.ResponseWriter, r *http.Request)
	ListMembers(w http.ResponseWriter, r *http.Request)
	UpdateMemberRole(w http.ResponseWriter, r *http.Request)
	CompleteOnboarding(w http.ResponseWriter, r *http.Request)
}

type OrganizationHandlerImpl struct {
	organizationService organization.OrganizationService
}

func NewOrganizationHandler(organizationService organization.OrganizationService) OrganizationHandler {
	return &OrganizationHandlerImpl{organizationService: organizationService}
}

// Create implements OrganizationHandler.
func (h *OrganizationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq organization.CreateOrganizationRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create organization decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.organizationService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create organization service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Organization created successfully", created)
}

// Join implements OrganizationHandler.
func (h *OrganizationHandlerImpl) Join(w http.ResponseWriter, r *http.Request) {
	var joinReq organization.JoinOrganizationRequest

	if err := json.NewDecoder(r.Body).Decode(&joinReq); err != nil {
		slog.Error("Join organization decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	joined, err := h.organizationService.Join(r.Context(), joinReq)
	if err != nil {
		slog.Error("Join organization service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Joined organization successfully", joined)
}

// GetMine implements OrganizationHandler.
func (h *OrganizationHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	org, err := h.organizationService.GetMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, org)
}

// ListMembers implements OrganizationHandler.
func (h *OrganizationHandlerImpl) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.organizationService.ListMembers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, members)
}

// UpdateMemberRole implements OrganizationHandler.
func (h *OrganizationHandlerImpl) UpdateMemberRole(w http.ResponseWriter, r *http.Request) {
	var updateReq organization.UpdateMemberRoleRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update member role decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.UserID = chi.URLParam(r, "userId")

	if err := h.organizationService.UpdateMemberRole(r.Context(), updateReq); err != nil {
		slog.Error("Update member role service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Member role updated successfully", nil)
}

// CompleteOnboarding implements OrganizationHandler.
func (h *OrganizationHandlerImpl) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	if err := h.organizationService.CompleteOnboarding(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Onboarding completed", nil)
}
