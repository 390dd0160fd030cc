package report

import (
	"context"
	"time"
)

// Dispatcher transmits a rendered attendance report over an external
// channel. Delivery failure is the caller's problem to log; the dispatcher
// never retries across days.
type Dispatcher interface {
	Send(ctx context.Context, from, to time.Time, csvPayload []byte) error
}

// ReportService renders and dispatches attendance reports.
type ReportService interface {
	// BuildCSV renders all records with from <= date <= to into the exported
	// CSV shape.
	BuildCSV(ctx context.Context, from, to time.Time) ([]byte, error)

	// DispatchDaily renders the report for a single working day and hands it
	// to the dispatcher.
	DispatchDaily(ctx context.Context, date time.Time) error
}
