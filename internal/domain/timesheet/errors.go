package timesheet

import "errors"

// Timesheet domain errors
var (
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidMonth     = errors.New("month must be in YYYY-MM format")
	ErrDayNotFound      = errors.New("no record for this date")
	ErrEmployeeNotFound = errors.New("employee not found")
)
