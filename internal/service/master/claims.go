package master

import (
	"context"

	"github.com/go-chi/jwtauth/v5"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/organization"
)

func organizationIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", err
	}
	organizationID, ok := claims["organization_id"].(string)
	if !ok || organizationID == "" {
		return "", organization.ErrNotMember
	}
	return organizationID, nil
}
