package attendance

import (
	"github.com/clinika/kiosk-backend-go/internal/domain/employee"
)

// Clock-in and clock-out attempts resolve to exactly one of the outcome
// values below. Outcomes are values, never errors: a wrong password or a
// blocked state is a normal result of using the kiosk.

// ClockInOutcome is a closed union; only the types in this file implement it.
type ClockInOutcome interface {
	clockInOutcome()
}

// ClockInSuccess carries the newly persisted record.
type ClockInSuccess struct {
	Record Attendance
}

// ClockInRequiresSetup is returned when the employee still uses the default
// credential. Pending is the proposed record for today; it has NOT been
// persisted and must be committed together with the new password.
type ClockInRequiresSetup struct {
	Employee employee.Employee
	Pending  Attendance
}

// ClockInWrongPassword is returned for a failed verification. It is also
// what a lookup miss maps to, so employee IDs cannot be enumerated.
type ClockInWrongPassword struct{}

// ClockInAlreadyOpen is returned when today's record is still open. It wins
// over password verification so a probe against a blocked state learns
// nothing about credential validity.
type ClockInAlreadyOpen struct {
	Existing Attendance
}

func (ClockInSuccess) clockInOutcome()       {}
func (ClockInRequiresSetup) clockInOutcome() {}
func (ClockInWrongPassword) clockInOutcome() {}
func (ClockInAlreadyOpen) clockInOutcome()   {}

// ClockOutOutcome is a closed union over clock-out results.
type ClockOutOutcome interface {
	clockOutOutcome()
}

// ClockOutSuccess carries a copy of the record with clock-out time, total
// hours and the complete status filled in.
type ClockOutSuccess struct {
	Record Attendance
}

type ClockOutWrongPassword struct{}

// ClockOutAlreadyCompleted is returned when the record already has a
// clock-out, regardless of the supplied password.
type ClockOutAlreadyCompleted struct{}

func (ClockOutSuccess) clockOutOutcome()          {}
func (ClockOutWrongPassword) clockOutOutcome()    {}
func (ClockOutAlreadyCompleted) clockOutOutcome() {}
