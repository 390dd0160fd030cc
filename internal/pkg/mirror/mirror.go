package mirror

import (
	"context"

	"github.com/clinika/kiosk-backend-go/internal/domain/attendance"
	"github.com/clinika/kiosk-backend-go/internal/domain/employee"
)

// Store is the best-effort cloud replica of the local database. It is never
// authoritative: callers log upsert failures and move on.
type Store interface {
	UpsertEmployee(ctx context.Context, emp employee.Employee) error
	UpsertAttendance(ctx context.Context, record attendance.Attendance) error
}
