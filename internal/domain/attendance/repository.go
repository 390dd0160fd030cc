package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new record.
	Create(ctx context.Context, record Attendance) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record for an employee on a working
	// day, or nil when none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Update writes clock-out, total hours and status for an existing record.
	Update(ctx context.Context, record Attendance) error

	// ListByDate retrieves all records for one working day, ordered by
	// employee name.
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)

	// ListBetween retrieves all records with from <= date <= to.
	ListBetween(ctx context.Context, from, to time.Time) ([]Attendance, error)
}
