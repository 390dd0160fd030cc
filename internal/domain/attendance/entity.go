package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	// StatusOpen marks a record with a clock-in but no clock-out yet.
	StatusOpen Status = "open"
	// StatusComplete marks a record whose clock-out and total hours are set.
	StatusComplete Status = "complete"
	// StatusAbsent marks an administratively recorded absence.
	StatusAbsent Status = "absent"
)

// Label renders the status the way the exported report shows it.
func (s Status) Label() string {
	switch s {
	case StatusOpen:
		return "Missing Clock-Out"
	case StatusComplete:
		return "Complete"
	case StatusAbsent:
		return "Absent"
	default:
		return string(s)
	}
}

type Attendance struct {
	ID           string
	EmployeeID   string
	EmployeeName string

	// Date is the working day, truncated to midnight; ClockIn/ClockOut are
	// absolute timestamps.
	Date       time.Time
	ClockIn    time.Time
	ClockOut   *time.Time
	TotalHours *decimal.Decimal
	Status     Status

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Open reports whether the record still misses a clock-out.
func (a Attendance) Open() bool {
	return a.ClockOut == nil
}
