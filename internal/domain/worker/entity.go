package worker

type Worker struct {
	ID             string
	Name           string
	OrganizationID string
	SectionID      string
	// ManualID is the optional human-assigned badge/payroll number. Unique
	// within the organization when set.
	ManualID *string
}

type WorkerWithSection struct {
	Worker
	SectionName *string
}
