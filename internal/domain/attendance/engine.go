package attendance

import (
	"time"

	"github.com/clinika/kiosk-backend-go/internal/domain/employee"
	"github.com/clinika/kiosk-backend-go/internal/pkg/password"
	"github.com/shopspring/decimal"
)

// The decision engine is pure: the caller supplies "now" and the persisted
// state, the engine returns an outcome and never touches storage.

// DecideClockIn resolves a clock-in attempt.
//
// Guard order matters: an open record for today blocks the attempt before
// the password is even looked at, and a fresh record is only proposed after
// verification. A proposed record is never persisted here; when the employee
// still uses the default credential the caller must hold the pending record
// until a personal password has been committed.
func DecideClockIn(emp employee.Employee, plaintext string, existing *Attendance, now time.Time) ClockInOutcome {
	if existing != nil && existing.Open() {
		return ClockInAlreadyOpen{Existing: *existing}
	}

	if !password.Verify(plaintext, emp.PasswordHash) {
		return ClockInWrongPassword{}
	}

	record := Attendance{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName,
		Date:         DateOf(now),
		ClockIn:      now,
		Status:       StatusOpen,
	}

	if emp.UsesDefaultCredential {
		return ClockInRequiresSetup{Employee: emp, Pending: record}
	}

	return ClockInSuccess{Record: record}
}

// DecideClockOut resolves a clock-out attempt against today's record.
//
// A completed record wins over password verification, mirroring the clock-in
// guard. Total hours are the elapsed time in hours rounded to two decimals;
// a clock-out preceding the clock-in (clock skew, manual date changes)
// yields a negative value and is surfaced as-is.
func DecideClockOut(emp employee.Employee, record Attendance, plaintext string, now time.Time) ClockOutOutcome {
	if record.ClockOut != nil {
		return ClockOutAlreadyCompleted{}
	}

	if !password.Verify(plaintext, emp.PasswordHash) {
		return ClockOutWrongPassword{}
	}

	hours := TotalHours(record.ClockIn, now)

	completed := record
	completed.ClockOut = &now
	completed.TotalHours = &hours
	completed.Status = StatusComplete

	return ClockOutSuccess{Record: completed}
}

// TotalHours computes the worked duration between in and out in hours,
// rounded to two decimal places.
func TotalHours(in, out time.Time) decimal.Decimal {
	seconds := decimal.NewFromFloat(out.Sub(in).Seconds())
	return seconds.Div(decimal.NewFromInt(3600)).Round(2)
}

// DateOf truncates a timestamp to its calendar date in the timestamp's own
// location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
