package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/clinika/kiosk-backend-go/internal/domain/attendance"
	"github.com/clinika/kiosk-backend-go/internal/domain/employee"
	"github.com/clinika/kiosk-backend-go/internal/pkg/database"
	"github.com/clinika/kiosk-backend-go/internal/pkg/mirror"
	"github.com/clinika/kiosk-backend-go/internal/pkg/password"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"
)

// AttendanceServiceImpl bridges the decision engine to persistence. The
// engine stays pure; this layer loads state, runs the decision and persists
// only on Success outcomes. Mirroring to the cloud replica is fire-and-forget.
type AttendanceServiceImpl struct {
	tx database.TxManager
	attendance.AttendanceRepository
	employee.EmployeeRepository
	mirror mirror.Store
	loc    *time.Location

	now func() time.Time

	// Per-employee locks close the load-then-decide race: two simultaneous
	// requests for one employee serialize, requests for different employees
	// do not contend.
	mu       sync.Mutex
	empLocks map[string]*sync.Mutex
}

func NewAttendanceService(
	tx database.TxManager,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	mirrorStore mirror.Store,
	loc *time.Location,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		tx:                   tx,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		mirror:               mirrorStore,
		loc:                  loc,
		now:                  time.Now,
		empLocks:             make(map[string]*sync.Mutex),
	}
}

func (a *AttendanceServiceImpl) lockEmployee(id string) func() {
	a.mu.Lock()
	lock, ok := a.empLocks[id]
	if !ok {
		lock = &sync.Mutex{}
		a.empLocks[id] = lock
	}
	a.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.ClockInOutcome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	unlock := a.lockEmployee(req.EmployeeID)
	defer unlock()

	now := a.now().In(a.loc)

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		// An unknown employee ID reads as a wrong password so the kiosk
		// cannot be used to enumerate IDs.
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ClockInWrongPassword{}, nil
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, attendance.DateOf(now))
	if err != nil {
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	outcome := attendance.DecideClockIn(emp, req.Password, existing, now)

	success, ok := outcome.(attendance.ClockInSuccess)
	if !ok {
		// Wrong password, open record, or pending setup: nothing persisted.
		return outcome, nil
	}

	record, err := a.AttendanceRepository.Create(ctx, success.Record)
	if err != nil {
		return nil, fmt.Errorf("failed to create attendance record: %w", err)
	}

	a.mirrorAttendance(ctx, record)

	return attendance.ClockInSuccess{Record: record}, nil
}

// CompleteSetupAndClockIn implements attendance.AttendanceService. It commits
// a proposal produced by ClockIn's RequiresSetup outcome: the credential
// update and the record insert succeed or fail as one transaction, so a
// half-personalized employee can never exist.
func (a *AttendanceServiceImpl) CompleteSetupAndClockIn(ctx context.Context, emp employee.Employee, pending attendance.Attendance, newPassword string) (attendance.Attendance, error) {
	if pending.EmployeeID == "" || pending.EmployeeID != emp.ID {
		return attendance.Attendance{}, attendance.ErrNoPendingRecord
	}

	// The kiosk UI validates before submitting; a violation here is a
	// caller contract breach and fails loudly.
	if err := employee.ValidatePersonalPassword(newPassword); err != nil {
		return attendance.Attendance{}, err
	}

	unlock := a.lockEmployee(emp.ID)
	defer unlock()

	// Re-check under the lock: a concurrent setup for the same employee may
	// have committed between the proposal and this call. A stale proposal
	// must not overwrite the password that commit chose, nor double-book
	// the day.
	current, err := a.EmployeeRepository.GetByID(ctx, emp.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrNoPendingRecord
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if !current.UsesDefaultCredential {
		return attendance.Attendance{}, attendance.ErrNoPendingRecord
	}
	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, pending.Date)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if existing != nil && existing.Open() {
		return attendance.Attendance{}, attendance.ErrNoPendingRecord
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		return attendance.Attendance{}, err
	}

	var record attendance.Attendance
	err = a.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := a.EmployeeRepository.UpdateCredential(txCtx, emp.ID, hash, false); err != nil {
			return err
		}
		created, err := a.AttendanceRepository.Create(txCtx, pending)
		if err != nil {
			return err
		}
		record = created
		return nil
	})
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to commit password setup: %w", err)
	}

	current.PasswordHash = hash
	current.UsesDefaultCredential = false
	a.mirrorSetup(ctx, current, record)

	return record, nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.ClockOutOutcome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	unlock := a.lockEmployee(req.EmployeeID)
	defer unlock()

	now := a.now().In(a.loc)

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ClockOutWrongPassword{}, nil
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, attendance.DateOf(now))
	if err != nil {
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil {
		// The UI never offers clock-out without an open record; treat the
		// defensive case like a failed verification.
		return attendance.ClockOutWrongPassword{}, nil
	}

	outcome := attendance.DecideClockOut(emp, *record, req.Password, now)

	success, ok := outcome.(attendance.ClockOutSuccess)
	if !ok {
		return outcome, nil
	}

	if err := a.AttendanceRepository.Update(ctx, success.Record); err != nil {
		return nil, fmt.Errorf("failed to update attendance record: %w", err)
	}

	a.mirrorAttendance(ctx, success.Record)

	return success, nil
}

// mirrorAttendance pushes one record to the replica. Failures are logged and
// swallowed: local storage is the system of record.
func (a *AttendanceServiceImpl) mirrorAttendance(ctx context.Context, record attendance.Attendance) {
	if err := a.mirror.UpsertAttendance(ctx, record); err != nil {
		slog.Error("Failed to mirror attendance record", "record_id", record.ID, "error", err)
	}
}

// mirrorSetup pushes the personalized employee and the committed record.
func (a *AttendanceServiceImpl) mirrorSetup(ctx context.Context, emp employee.Employee, record attendance.Attendance) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.mirror.UpsertEmployee(gctx, emp) })
	g.Go(func() error { return a.mirror.UpsertAttendance(gctx, record) })
	if err := g.Wait(); err != nil {
		slog.Error("Failed to mirror password setup", "employee_id", emp.ID, "error", err)
	}
}
