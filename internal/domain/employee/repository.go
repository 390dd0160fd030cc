package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	// Create inserts a new employee. The caller supplies the password hash.
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by ID. Returns pgx.ErrNoRows (wrapped)
	// when the employee does not exist.
	GetByID(ctx context.Context, id string) (Employee, error)

	// List retrieves all employees ordered by name.
	List(ctx context.Context) ([]Employee, error)

	// UpdateCredential replaces the password hash and default-credential flag.
	UpdateCredential(ctx context.Context, id string, passwordHash string, usesDefault bool) error

	// Delete removes an employee; attendance records cascade.
	Delete(ctx context.Context, id string) error
}
