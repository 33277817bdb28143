package employee

import "time"

// Employee is a login principal. The business is small enough that the
// employee's display name doubles as the login identifier, as it did in the
// legacy store.
type Employee struct {
	ID           string
	Name         string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
