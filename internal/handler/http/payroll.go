package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/payroll"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GetWorkerPayroll(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// GetWorkerPayroll implements PayrollHandler.
func (h *PayrollHandlerImpl) GetWorkerPayroll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	result, err := h.payrollService.CalculateWorkerPayroll(
		r.Context(),
		chi.URLParam(r, "id"),
		query.Get("start_date"),
		query.Get("end_date"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
