package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/auth"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/organization"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/handler/http/response"
)

// OrganizationRequired rejects callers whose token carries no organization.
// Freshly registered users pass AuthRequired but stay locked out of org data
// until they create or join an organization and log in again.
func OrganizationRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		organizationID, ok := claims["organization_id"].(string)
		if !ok || organizationID == "" {
			response.HandleError(w, organization.ErrNotMember)
			return
		}

		next.ServeHTTP(w, r)
	})
}
