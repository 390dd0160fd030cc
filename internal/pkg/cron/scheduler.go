package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/clinika/kiosk-backend-go/internal/domain/report"
)

// dispatchTimeout bounds one firing: record fetch, CSV render and the SMTP
// conversation including its retries.
const dispatchTimeout = 5 * time.Minute

// ReportScheduler owns a single outstanding one-shot timer. Each firing
// dispatches the report for the current working day and synchronously rearms
// for the next eligible day, so firings never overlap. Dispatch failure is
// logged and not retried within the day; tomorrow's firing is the retry.
type ReportScheduler struct {
	calendar *Calendar
	reports  report.ReportService
	loc      *time.Location

	now func() time.Time

	mu      sync.Mutex
	timer   *time.Timer
	running bool
}

func NewReportScheduler(calendar *Calendar, reports report.ReportService, loc *time.Location) *ReportScheduler {
	return &ReportScheduler{
		calendar: calendar,
		reports:  reports,
		loc:      loc,
		now:      time.Now,
	}
}

// Start arms the timer for the next fire time. Calling Start while armed
// cancels the outstanding timer and replaces it.
func (s *ReportScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.running = true
	s.arm()
}

// Stop cancels the outstanding timer. Safe to call when already idle; a
// dispatch already in flight runs to completion.
func (s *ReportScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.running = false
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	slog.Info("Report scheduler stopped")
}

// arm must be called with the lock held.
func (s *ReportScheduler) arm() {
	if s.timer != nil {
		s.timer.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := s.now().In(s.loc)
	fireAt := s.calendar.NextFireTime(ctx, now)

	s.timer = time.AfterFunc(fireAt.Sub(now), s.fire)
	slog.Info("Report scheduler armed", "fire_at", fireAt.Format(time.RFC3339))
}

func (s *ReportScheduler) fire() {
	date := dateOf(s.now().In(s.loc))

	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	start := time.Now()
	if err := s.reports.DispatchDaily(ctx, date); err != nil {
		// Swallowed: the next day's firing is the de-facto retry.
		slog.Error("Daily report dispatch failed",
			"date", date.Format("2006-01-02"),
			"duration", time.Since(start),
			"error", err,
		)
	} else {
		slog.Info("Daily report dispatched",
			"date", date.Format("2006-01-02"),
			"duration", time.Since(start),
		)
	}

	// Reschedule unconditionally, unless Stop won the race mid-dispatch.
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		s.arm()
	}
}
