package rate

// ResolveOptions controls rate resolution behavior.
type ResolveOptions struct {
	// EnforceEndDate excludes rates whose end date precedes the target date.
	// Off by default: historically an entry dated after a rate's end date but
	// before the next rate's effective date still resolved to that rate, and
	// recomputing old payrolls must keep producing the same totals.
	EnforceEndDate bool
}

// Resolve picks the single rate in force for onDate from the style's rate
// records: the candidate with the greatest effective date not after onDate.
// When several candidates share that effective date, the one with the
// lexically greatest ID wins. IDs are UUIDv7, which sort by creation time, so
// the tie-break is "most recently inserted wins" and is stable across calls
// because IDs never change.
//
// Dates are compared as strings; callers must pass zero-padded "YYYY-MM-DD".
func Resolve(rates []StyleRate, onDate string, opts ResolveOptions) (StyleRate, error) {
	var (
		best  StyleRate
		found bool
	)

	for _, r := range rates {
		if r.EffectiveDate > onDate {
			continue
		}
		if opts.EnforceEndDate && r.EndDate != nil && *r.EndDate < onDate {
			continue
		}
		if !found {
			best, found = r, true
			continue
		}
		if r.EffectiveDate > best.EffectiveDate ||
			(r.EffectiveDate == best.EffectiveDate && r.ID > best.ID) {
			best = r
		}
	}

	if !found {
		return StyleRate{}, ErrNoApplicableRate
	}
	return best, nil
}
