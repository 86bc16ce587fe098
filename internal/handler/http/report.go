package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/domain/report"
	"github.com/nomandhoni-cs/ratesheet-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	SectionSummary(w http.ResponseWriter, r *http.Request)
	StyleSummaryForSection(w http.ResponseWriter, r *http.Request)
	DailyProduction(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// SectionSummary implements ReportHandler.
func (h *ReportHandlerImpl) SectionSummary(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	summary, err := h.reportService.SectionSummary(
		r.Context(),
		chi.URLParam(r, "id"),
		query.Get("start_date"),
		query.Get("end_date"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// StyleSummaryForSection implements ReportHandler.
func (h *ReportHandlerImpl) StyleSummaryForSection(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	summary, err := h.reportService.StyleSummaryForSection(
		r.Context(),
		chi.URLParam(r, "id"),
		chi.URLParam(r, "styleId"),
		query.Get("start_date"),
		query.Get("end_date"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// DailyProduction implements ReportHandler.
func (h *ReportHandlerImpl) DailyProduction(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.OrganizationDailyProduction(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}
