package attendance

import (
	"context"

	"github.com/clinika/kiosk-backend-go/internal/domain/employee"
)

// AttendanceService bridges the decision engine to persistence.
type AttendanceService interface {
	// ClockIn resolves a clock-in attempt. On success the record is
	// persisted; a RequiresSetup outcome leaves the record pending and must
	// be followed by CompleteSetupAndClockIn.
	ClockIn(ctx context.Context, req ClockInRequest) (ClockInOutcome, error)

	// CompleteSetupAndClockIn commits a pending proposal: personalizes the
	// employee's credential and persists the held record as one unit.
	CompleteSetupAndClockIn(ctx context.Context, emp employee.Employee, pending Attendance, newPassword string) (Attendance, error)

	// ClockOut resolves a clock-out attempt and persists on success.
	ClockOut(ctx context.Context, req ClockOutRequest) (ClockOutOutcome, error)
}
