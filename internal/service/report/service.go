package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"time"

	"github.com/clinika/kiosk-backend-go/internal/domain/attendance"
	"github.com/clinika/kiosk-backend-go/internal/domain/report"
)

// clockFormat is the 12-hour display used in the exported report, for
// example "05:30 PM".
const clockFormat = "03:04 PM"

var csvHeader = []string{"Employee Name", "Date", "Clock In", "Clock Out", "Total Hours", "Status"}

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	dispatcher     report.Dispatcher
}

func NewReportService(attendanceRepo attendance.AttendanceRepository, dispatcher report.Dispatcher) report.ReportService {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		dispatcher:     dispatcher,
	}
}

// BuildCSV implements report.ReportService. Rows are ordered by date then
// employee name so repeated exports of the same range are byte-identical.
func (r *ReportServiceImpl) BuildCSV(ctx context.Context, from, to time.Time) ([]byte, error) {
	records, err := r.attendanceRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	sort.Slice(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.Before(records[j].Date)
		}
		return records[i].EmployeeName < records[j].EmployeeName
	})

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, record := range records {
		clockOut := ""
		if record.ClockOut != nil {
			clockOut = record.ClockOut.Format(clockFormat)
		}
		totalHours := ""
		if record.TotalHours != nil {
			totalHours = record.TotalHours.StringFixed(2)
		}

		row := []string{
			record.EmployeeName,
			record.Date.Format("2006-01-02"),
			record.ClockIn.Format(clockFormat),
			clockOut,
			totalHours,
			record.Status.Label(),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

// DispatchDaily implements report.ReportService.
func (r *ReportServiceImpl) DispatchDaily(ctx context.Context, date time.Time) error {
	day := attendance.DateOf(date)

	payload, err := r.BuildCSV(ctx, day, day)
	if err != nil {
		return err
	}

	if err := r.dispatcher.Send(ctx, day, day, payload); err != nil {
		return fmt.Errorf("failed to dispatch daily report: %w", err)
	}

	return nil
}
