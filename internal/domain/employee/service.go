package employee

import "context"

// EmployeeService defines roster management (admin only).
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
}
