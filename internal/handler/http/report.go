package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/clinika/kiosk-backend-go/internal/domain/report"
	"github.com/clinika/kiosk-backend-go/internal/handler/http/response"
	"github.com/clinika/kiosk-backend-go/internal/pkg/validator"
)

type ReportHandler interface {
	Download(w http.ResponseWriter, r *http.Request)
	Dispatch(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
	loc           *time.Location

	now func() time.Time
}

func NewReportHandler(reportService report.ReportService, loc *time.Location) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
		loc:           loc,
		now:           time.Now,
	}
}

// Download implements ReportHandler. It streams the CSV export for
// ?from=YYYY-MM-DD&to=YYYY-MM-DD; a missing "to" collapses to a one-day
// range.
func (h *ReportHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	from, ok := validator.IsValidDate(r.URL.Query().Get("from"))
	if !ok {
		response.BadRequest(w, "from must be in YYYY-MM-DD format", nil)
		return
	}

	to := from
	if raw := r.URL.Query().Get("to"); raw != "" {
		to, ok = validator.IsValidDate(raw)
		if !ok {
			response.BadRequest(w, "to must be in YYYY-MM-DD format", nil)
			return
		}
	}
	if to.Before(from) {
		response.BadRequest(w, "to must not precede from", nil)
		return
	}

	payload, err := h.reportService.BuildCSV(r.Context(), from, to)
	if err != nil {
		slog.Error("Report download error", "error", err)
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance_%s_%s.csv", from.Format("2006-01-02"), to.Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

type dispatchRequest struct {
	Date string `json:"date"`
}

// Dispatch implements ReportHandler. It triggers the daily email report on
// demand, outside the scheduler's calendar. An empty body means today.
func (h *ReportHandlerImpl) Dispatch(w http.ResponseWriter, r *http.Request) {
	// An empty body is fine and means "dispatch for today".
	var dispatchReq dispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&dispatchReq); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// "Today" is the clinic's working day, not the server's.
	date := h.now().In(h.loc)
	if dispatchReq.Date != "" {
		parsed, ok := validator.IsValidDate(dispatchReq.Date)
		if !ok {
			response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
			return
		}
		date = parsed
	}

	if err := h.reportService.DispatchDaily(r.Context(), date); err != nil {
		slog.Error("Report dispatch error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Report dispatched", nil)
}
