package timesheet

import (
	"github.com/oredipendenti/backend-go/internal/pkg/validator"
)

// ========================================
// TIMESHEET DTOs
// ========================================

// ActivityInput is one activity as submitted by a client. Numeric fields are
// typed as any because the legacy entry screens send them interchangeably as
// JSON numbers or strings; the normalizer coerces them, it never rejects.
type ActivityInput struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Minutes    any    `json:"minutes"`
	Headcount  any    `json:"headcount"`
	Multiplier any    `json:"multiplier"`
}

// SaveDayRequest is the body of a day submission. The three flags mirror the
// legacy boolean triple; conflicting combinations are accepted and resolved
// by classification precedence, never rejected.
type SaveDayRequest struct {
	Rest       bool            `json:"rest"`
	Vacation   bool            `json:"vacation"`
	Sick       bool            `json:"sick"`
	Activities []ActivityInput `json:"activities"`
}

func (r *SaveDayRequest) Validate() error {
	var errs validator.ValidationErrors

	// A plain working day must carry at least one named activity. Activities
	// submitted alongside a rest/vacation/sick flag are tolerated (the
	// aggregator ignores them), matching the permissive legacy write path.
	if !r.Rest && !r.Vacation && !r.Sick {
		named := 0
		for _, a := range r.Activities {
			if !validator.IsEmpty(a.Name) {
				named++
			}
		}
		if named == 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "activities",
				Message: "at least one activity with a name is required on a working day",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ActivityResponse is one stored activity plus its display value. The
// per-row effective minutes are rounded for display and may disagree
// slightly with the day total, which is summed unrounded first.
type ActivityResponse struct {
	Name             string `json:"name"`
	Category         string `json:"category"`
	Minutes          int    `json:"minutes"`
	Headcount        int    `json:"headcount"`
	Multiplier       int    `json:"multiplier"`
	EffectiveMinutes int    `json:"effective_minutes"`
}

// DayResponse is the state of one employee day.
type DayResponse struct {
	EmployeeID   string             `json:"employee_id"`
	EmployeeName string             `json:"employee_name,omitempty"`
	Date         string             `json:"date"`
	DayType      string             `json:"day_type"`
	Activities   []ActivityResponse `json:"activities"`
	TotalMinutes float64            `json:"total_minutes"`
	DecimalHours float64            `json:"decimal_hours"`
}

// MonthResponse is one employee's month of days plus its summary.
type MonthResponse struct {
	EmployeeID string                 `json:"employee_id"`
	Month      string                 `json:"month"` // YYYY-MM
	Days       map[string]DayResponse `json:"days"`  // keyed by ISO date
	Summary    SummaryResponse        `json:"summary"`
}

// SummaryResponse is the serialized MonthlySummary.
type SummaryResponse struct {
	TotalEffectiveMinutes float64 `json:"total_effective_minutes"`
	DecimalHours          float64 `json:"decimal_hours"`
	WorkedDays            int     `json:"worked_days"`
	RestCount             int     `json:"rest_count"`
	VacationCount         int     `json:"vacation_count"`
	SickCount             int     `json:"sick_count"`
}

// EmployeeSummaryResponse pairs an employee with their monthly summary, used
// by the admin all-employees view.
type EmployeeSummaryResponse struct {
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Summary      SummaryResponse `json:"summary"`
}
