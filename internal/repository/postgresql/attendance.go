package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clinika/kiosk-backend-go/internal/domain/attendance"
	"github.com/clinika/kiosk-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendance_records (
			id, employee_id, employee_name, date, clock_in, clock_out, total_hours, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.EmployeeName,
		record.Date,
		record.ClockIn,
		record.ClockOut,
		record.TotalHours,
		record.Status,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, employee_name, date, clock_in, clock_out, total_hours, status,
			   created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1 AND date = $2
		ORDER BY clock_in DESC
		LIMIT 1
	`

	var record attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&record.ID, &record.EmployeeID, &record.EmployeeName, &record.Date,
		&record.ClockIn, &record.ClockOut, &record.TotalHours, &record.Status,
		&record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &record, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Update(ctx context.Context, record attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET clock_out = $1, total_hours = $2, status = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		record.ClockOut,
		record.TotalHours,
		record.Status,
		record.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to update attendance record %s: %w", record.ID, err)
	}

	return nil
}

// ListByDate implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	return a.ListBetween(ctx, date, date)
}

// ListBetween implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListBetween(ctx context.Context, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, employee_name, date, clock_in, clock_out, total_hours, status,
			   created_at, updated_at
		FROM attendance_records
		WHERE date >= $1 AND date <= $2
		ORDER BY date, employee_name
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var record attendance.Attendance
		if err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.EmployeeName, &record.Date,
			&record.ClockIn, &record.ClockOut, &record.TotalHours, &record.Status,
			&record.CreatedAt, &record.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}
