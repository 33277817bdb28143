package timesheet

import (
	"context"
)

// TimesheetService defines business logic for time entry and aggregation.
type TimesheetService interface {
	// SaveDay merges a submission into the stored day for employeeID+date.
	// Activities accumulate minutes per (name, category); headcount and
	// multiplier are overwritten by the newest submission.
	SaveDay(ctx context.Context, employeeID string, date string, req SaveDayRequest) (DayResponse, error)

	// ReplaceDay overwrites the stored day wholesale (admin correction).
	ReplaceDay(ctx context.Context, employeeID string, date string, req SaveDayRequest) (DayResponse, error)

	// GetDay retrieves one day. An absent day is returned as an empty
	// normal day with zero minutes.
	GetDay(ctx context.Context, employeeID string, date string) (DayResponse, error)

	// GetMonth retrieves an employee's month of days plus its summary.
	GetMonth(ctx context.Context, employeeID string, month string) (MonthResponse, error)

	// GetMonthlySummary computes the summary for one employee month.
	GetMonthlySummary(ctx context.Context, employeeID string, month string) (SummaryResponse, error)

	// GetAllMonthlySummaries computes summaries for every employee (admin).
	GetAllMonthlySummaries(ctx context.Context, month string) ([]EmployeeSummaryResponse, error)
}
