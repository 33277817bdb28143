package employee

import "context"

// EmployeeRepository defines data access for employees.
type EmployeeRepository interface {
	// Create creates a new employee
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByName retrieves an employee by login name
	GetByName(ctx context.Context, name string) (Employee, error)

	// List retrieves all employees ordered by name
	List(ctx context.Context) ([]Employee, error)
}
