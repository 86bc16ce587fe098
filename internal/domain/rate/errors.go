package rate

import "errors"

var (
	// ErrNoApplicableRate means no rate record has an effective date on or
	// before the target date. Recoverable: payroll and reports skip the
	// affected entries instead of failing.
	ErrNoApplicableRate = errors.New("no applicable rate for style on date")
)
