package payroll

import "context"

type PayrollService interface {
	// CalculateWorkerPayroll prices every entry the worker logged in the
	// inclusive date range and sums the pay in exact decimal arithmetic.
	// Deterministic: the same entry and rate snapshots always produce the
	// same result.
	CalculateWorkerPayroll(ctx context.Context, workerID string, startDate, endDate string) (WorkerPayrollResponse, error)
}
