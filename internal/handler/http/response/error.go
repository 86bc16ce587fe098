package response

import (
	"errors"
	"net/http"

	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/auth"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/invitation"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/organization"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/production"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/rate"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/section"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/style"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/user"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/worker"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrPasswordLoginUnset):
		BadRequest(w, "This account uses Google sign-in", nil)
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Organization domain errors
	case errors.Is(err, organization.ErrOrganizationNotFound):
		NotFound(w, "Organization not found")
	case errors.Is(err, organization.ErrInvalidInviteCode):
		NotFound(w, "Invalid invite code")
	case errors.Is(err, organization.ErrInviteCodeTaken):
		Conflict(w, "Invite code already taken")
	case errors.Is(err, organization.ErrAlreadyMember):
		Conflict(w, "Already a member of an organization")
	case errors.Is(err, organization.ErrNotMember):
		Forbidden(w, "Join or create an organization first")

	// Invitation domain errors
	case errors.Is(err, invitation.ErrInvitationNotFound):
		NotFound(w, "Invitation not found")
	case errors.Is(err, invitation.ErrInvitationExpired):
		Conflict(w, "Invitation expired")
	case errors.Is(err, invitation.ErrAlreadyInvited):
		Conflict(w, "Email already has a pending invitation")

	// Master data errors
	case errors.Is(err, section.ErrSectionNotFound), errors.Is(err, worker.ErrSectionNotFound):
		NotFound(w, "Section not found")
	case errors.Is(err, section.ErrManagerNotFound):
		NotFound(w, "Manager not found in this organization")
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrManualIDExists):
		Conflict(w, "A worker with this manual ID already exists")
	case errors.Is(err, style.ErrStyleNotFound):
		NotFound(w, "Style not found")

	// Rate and production errors
	case errors.Is(err, rate.ErrNoApplicableRate):
		NotFound(w, "No rate in force for this style on this date")
	case errors.Is(err, production.ErrEntryNotFound):
		NotFound(w, "Production entry not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
