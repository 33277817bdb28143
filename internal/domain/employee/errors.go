package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrNameExists       = errors.New("an employee with this name already exists")
)
