package user

import "time"

type UserResponse struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"name"`
	Email                  string    `json:"email"`
	OrganizationID         *string   `json:"organization_id,omitempty"`
	Role                   Role      `json:"role"`
	HasCompletedOnboarding bool      `json:"has_completed_onboarding"`
	CreatedAt              time.Time `json:"created_at"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:                     u.ID,
		Name:                   u.Name,
		Email:                  u.Email,
		OrganizationID:         u.OrganizationID,
		Role:                   u.Role,
		HasCompletedOnboarding: u.HasCompletedOnboarding,
		CreatedAt:              u.CreatedAt,
	}
}
