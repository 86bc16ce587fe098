package section

type Section struct {
	ID             string
	Name           string
	OrganizationID string
	ManagerID      string
}

// SectionWithManager carries the joined manager name for listings. The manager
// may have been removed; aggregation must tolerate the absence.
type SectionWithManager struct {
	Section
	ManagerName *string
}
