package report

import (
	"github.com/oredipendenti/backend-go/internal/domain/timesheet"
	"github.com/oredipendenti/backend-go/internal/pkg/validator"
)

// MonthlyReportRequest selects the reporting period.
type MonthlyReportRequest struct {
	Year  int
	Month int
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DayCell is one calendar cell of the export grid.
type DayCell struct {
	Hours   float64 `json:"hours"`
	DayType string  `json:"day_type"`
}

// EmployeeMonthlyReport is one employee's row group in the export: every
// recorded day plus the monthly summary.
type EmployeeMonthlyReport struct {
	EmployeeID   string                    `json:"employee_id"`
	EmployeeName string                    `json:"employee_name"`
	Days         map[string]DayCell        `json:"days"` // keyed by ISO date
	Summary      timesheet.SummaryResponse `json:"summary"`
}

// MonthlyReport is the spreadsheet-shaped structure the export front-end
// consumes: employee -> date -> {hours, dayType}.
type MonthlyReport struct {
	PeriodMonth int                     `json:"period_month"`
	PeriodYear  int                     `json:"period_year"`
	PeriodStart string                  `json:"period_start"`
	PeriodEnd   string                  `json:"period_end"`
	GeneratedAt string                  `json:"generated_at"`
	Employees   []EmployeeMonthlyReport `json:"employees"`
}
