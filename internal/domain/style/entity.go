package style

type Style struct {
	ID             string
	Name           string
	Description    *string
	OrganizationID string
}
