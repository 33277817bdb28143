package employee

import (
	"context"

	"github.com/google/uuid"
	"github.com/oredipendenti/backend-go/internal/domain/employee"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		ID:           uuid.New().String(),
		Name:         req.Name,
		PasswordHash: string(hash),
		IsAdmin:      req.IsAdmin,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(created), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}
	return responses, nil
}

func toResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:      e.ID,
		Name:    e.Name,
		IsAdmin: e.IsAdmin,
	}
}
