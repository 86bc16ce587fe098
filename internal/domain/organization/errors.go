package organization

import "errors"

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrInvalidInviteCode    = errors.New("invalid invite code")
	ErrInviteCodeTaken      = errors.New("invite code already taken")
	ErrAlreadyMember        = errors.New("user already belongs to an organization")
	ErrNotMember            = errors.New("user does not belong to an organization")
)
