package mirror

import (
	"context"

	"github.com/clinika/kiosk-backend-go/internal/domain/attendance"
	"github.com/clinika/kiosk-backend-go/internal/domain/employee"
)

type noopStore struct{}

// NewNoopStore is used when no mirror endpoint is configured.
func NewNoopStore() Store {
	return noopStore{}
}

func (noopStore) UpsertEmployee(_ context.Context, _ employee.Employee) error {
	return nil
}

func (noopStore) UpsertAttendance(_ context.Context, _ attendance.Attendance) error {
	return nil
}
