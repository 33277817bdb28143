package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/oredipendenti/backend-go/internal/domain/employee"
	"github.com/oredipendenti/backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (id, name, password_hash, is_admin)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, password_hash, is_admin, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.Name, newEmployee.PasswordHash, newEmployee.IsAdmin,
	).Scan(
		&created.ID, &created.Name, &created.PasswordHash, &created.IsAdmin,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrNameExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, name, password_hash, is_admin, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.Name, &emp.PasswordHash, &emp.IsAdmin,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return emp, nil
}

// GetByName implements employee.EmployeeRepository. Name matching is case
// insensitive; logins come from a hand-typed form.
func (e *employeeRepositoryImpl) GetByName(ctx context.Context, name string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, name, password_hash, is_admin, created_at, updated_at
		FROM employees
		WHERE LOWER(name) = LOWER($1)
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, name).Scan(
		&emp.ID, &emp.Name, &emp.PasswordHash, &emp.IsAdmin,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by name: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, name, password_hash, is_admin, created_at, updated_at
		FROM employees
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.Name, &emp.PasswordHash, &emp.IsAdmin,
			&emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
