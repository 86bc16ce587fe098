package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/invitation"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/handler/http/response"
)

type InvitationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByToken(w http.ResponseWriter, r *http.Request)
}

type InvitationHandlerImpl struct {
	invitationService invitation.InvitationService
}

func NewInvitationHandler(invitationService invitation.InvitationService) InvitationHandler {
	return &InvitationHandlerImpl{invitationService: invitationService}
}

// Create implements InvitationHandler.
func (h *InvitationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq invitation.CreateInvitationRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create invitation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.invitationService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create invitation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Invitation created successfully", created)
}

// List implements InvitationHandler.
func (h *InvitationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	invitations, err := h.invitationService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, invitations)
}

// GetByToken implements InvitationHandler. Public: the invited person has no
// account yet when they open the link.
func (h *InvitationHandlerImpl) GetByToken(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	inv, err := h.invitationService.GetByToken(r.Context(), token)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, inv)
}
