package production

// Entry is one worker's logged output of one style on one calendar date.
// Entries are immutable except by explicit correction: Update replaces every
// field, Delete removes the record.
type Entry struct {
	ID             string
	WorkerID       string
	StyleID        string
	OrganizationID string
	Quantity       int64
	// ProductionDate is a zero-padded "YYYY-MM-DD" calendar date.
	ProductionDate string
}

// EntryWithDetails enriches an entry with joined display names. Any of the
// joins may be missing when the referenced record has been deleted; listings
// surface the absence as nil rather than failing.
type EntryWithDetails struct {
	Entry
	WorkerName  *string
	StyleName   *string
	SectionID   *string
	SectionName *string
}
