package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/clinika/kiosk-backend-go/internal/domain/employee"
	"github.com/clinika/kiosk-backend-go/internal/pkg/mirror"
	"github.com/clinika/kiosk-backend-go/internal/pkg/password"
	"github.com/jackc/pgx/v5"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	mirror mirror.Store
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, mirrorStore mirror.Store) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		mirror:             mirrorStore,
	}
}

// CreateEmployee implements employee.EmployeeService. New employees start on
// the shared default credential; the hash is computed fresh each time so the
// bcrypt salt differs per employee.
func (e *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := password.Hash(employee.DefaultCredential)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash default credential: %w", err)
	}

	created, err := e.EmployeeRepository.Create(ctx, employee.Employee{
		FullName:              req.FullName,
		PasswordHash:          hash,
		UsesDefaultCredential: true,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	e.mirrorEmployee(ctx, created)

	return employee.ToResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee.ToResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (e *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := e.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

// ResetCredential implements employee.EmployeeService.
func (e *EmployeeServiceImpl) ResetCredential(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	hash, err := password.Hash(employee.DefaultCredential)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash default credential: %w", err)
	}

	if err := e.EmployeeRepository.UpdateCredential(ctx, emp.ID, hash, true); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to reset credential: %w", err)
	}

	emp.PasswordHash = hash
	emp.UsesDefaultCredential = true
	e.mirrorEmployee(ctx, emp)

	return employee.ToResponse(emp), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return e.EmployeeRepository.Delete(ctx, id)
}

func (e *EmployeeServiceImpl) mirrorEmployee(ctx context.Context, emp employee.Employee) {
	if err := e.mirror.UpsertEmployee(ctx, emp); err != nil {
		slog.Error("Failed to mirror employee", "employee_id", emp.ID, "error", err)
	}
}
