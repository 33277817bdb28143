package timesheet

import (
	"context"
)

// DayRepository defines data access for employee day documents. A day row is
// always written whole (replace, not patch); merge semantics are computed by
// the service before the write.
type DayRepository interface {
	// GetDay retrieves one employee day. Returns nil when no row exists:
	// absence is a valid zero-activity state, not an error.
	GetDay(ctx context.Context, employeeID string, date string) (*Day, error)

	// GetMonth retrieves all recorded days for an employee within a calendar
	// month, keyed by ISO date. Missing dates are simply absent from the map.
	GetMonth(ctx context.Context, employeeID string, year int, month int) (map[string]Day, error)

	// GetMonthAll retrieves every employee's recorded days for a month,
	// keyed by employee ID. Employees with no rows still appear with an
	// empty day map so the admin summary lists the whole roster.
	GetMonthAll(ctx context.Context, year int, month int) (map[string]map[string]Day, error)

	// SaveDay upserts the whole day row for (day.EmployeeID, day.Date).
	SaveDay(ctx context.Context, day Day) error
}
