package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oredipendenti/backend-go/internal/domain/auth"
	"github.com/oredipendenti/backend-go/internal/domain/report"
	"github.com/oredipendenti/backend-go/internal/domain/timesheet"
	"github.com/oredipendenti/backend-go/internal/handler/http/middleware"
	"github.com/oredipendenti/backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	SaveDay(w http.ResponseWriter, r *http.Request)
	GetDay(w http.ResponseWriter, r *http.Request)
	GetMonth(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)

	// Admin
	ReplaceEmployeeDay(w http.ResponseWriter, r *http.Request)
	GetEmployeeDay(w http.ResponseWriter, r *http.Request)
	GetEmployeeMonth(w http.ResponseWriter, r *http.Request)
	GetAllSummaries(w http.ResponseWriter, r *http.Request)
	GetMonthlyReport(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
	reportService    report.ReportService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService, reportService report.ReportService) TimesheetHandler {
	return &TimesheetHandlerImpl{
		timesheetService: timesheetService,
		reportService:    reportService,
	}
}

// SaveDay implements TimesheetHandler. Submissions merge into the stored day.
func (h *TimesheetHandlerImpl) SaveDay(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}
	date := chi.URLParam(r, "date")

	var req timesheet.SaveDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SaveDay decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	day, err := h.timesheetService.SaveDay(r.Context(), employeeID, date, req)
	if err != nil {
		slog.Error("SaveDay service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Day saved", day)
}

// GetDay implements TimesheetHandler.
func (h *TimesheetHandlerImpl) GetDay(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	day, err := h.timesheetService.GetDay(r.Context(), employeeID, chi.URLParam(r, "date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, day)
}

// GetMonth implements TimesheetHandler.
func (h *TimesheetHandlerImpl) GetMonth(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	month, err := h.timesheetService.GetMonth(r.Context(), employeeID, chi.URLParam(r, "month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, month)
}

// GetSummary implements TimesheetHandler.
func (h *TimesheetHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	summary, err := h.timesheetService.GetMonthlySummary(r.Context(), employeeID, chi.URLParam(r, "month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// ReplaceEmployeeDay implements TimesheetHandler. Unlike SaveDay this
// overwrites the stored day wholesale; it is the admin correction path.
func (h *TimesheetHandlerImpl) ReplaceEmployeeDay(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	date := chi.URLParam(r, "date")

	var req timesheet.SaveDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ReplaceEmployeeDay decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	day, err := h.timesheetService.ReplaceDay(r.Context(), employeeID, date, req)
	if err != nil {
		slog.Error("ReplaceEmployeeDay service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Day replaced", day)
}

// GetEmployeeDay implements TimesheetHandler.
func (h *TimesheetHandlerImpl) GetEmployeeDay(w http.ResponseWriter, r *http.Request) {
	day, err := h.timesheetService.GetDay(r.Context(), chi.URLParam(r, "employeeID"), chi.URLParam(r, "date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, day)
}

// GetEmployeeMonth implements TimesheetHandler.
func (h *TimesheetHandlerImpl) GetEmployeeMonth(w http.ResponseWriter, r *http.Request) {
	month, err := h.timesheetService.GetMonth(r.Context(), chi.URLParam(r, "employeeID"), chi.URLParam(r, "month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, month)
}

// GetAllSummaries implements TimesheetHandler.
func (h *TimesheetHandlerImpl) GetAllSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.timesheetService.GetAllMonthlySummaries(r.Context(), chi.URLParam(r, "month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summaries)
}

// GetMonthlyReport implements TimesheetHandler.
func (h *TimesheetHandlerImpl) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	parsed, err := time.Parse("2006-01", chi.URLParam(r, "month"))
	if err != nil {
		response.HandleError(w, timesheet.ErrInvalidMonth)
		return
	}

	rep, err := h.reportService.GenerateMonthlyReport(r.Context(), report.MonthlyReportRequest{
		Year:  parsed.Year(),
		Month: int(parsed.Month()),
	})
	if err != nil {
		slog.Error("GetMonthlyReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rep)
}
