package payroll

import "github.com/shopspring/decimal"

// PayrollDetail is one production entry priced at the rate in force on its
// own production date.
type PayrollDetail struct {
	EntryID        string          `json:"entry_id"`
	StyleID        string          `json:"style_id"`
	StyleName      *string         `json:"style_name,omitempty"`
	ProductionDate string          `json:"production_date"`
	Quantity       int64           `json:"quantity"`
	Rate           decimal.Decimal `json:"rate"`
	Pay            decimal.Decimal `json:"pay"`
}

type WorkerPayrollResponse struct {
	WorkerID  string          `json:"worker_id"`
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	TotalPay  decimal.Decimal `json:"total_pay"`
	// Details excludes entries for which no rate was in force on the
	// production date; those contribute nothing to TotalPay either.
	Details []PayrollDetail `json:"details"`
}
