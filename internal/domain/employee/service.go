package employee

import (
	"context"
)

// EmployeeService handles console-side employee management. Kiosk-side
// credential changes live in the attendance service.
type EmployeeService interface {
	// CreateEmployee registers an employee with the shared default
	// credential; the first kiosk clock-in forces personalization.
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves one employee by ID.
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// ListEmployees retrieves all employees ordered by name.
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// ResetCredential puts an employee back on the default credential, for
	// example after a forgotten password.
	ResetCredential(ctx context.Context, id string) (EmployeeResponse, error)

	// DeleteEmployee removes an employee and their attendance history.
	DeleteEmployee(ctx context.Context, id string) error
}
