package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/clinika/kiosk-backend-go/internal/domain/attendance"
	"github.com/clinika/kiosk-backend-go/internal/handler/http/response"
)

// KioskHandler serves the unauthenticated tablet endpoints. The kiosk
// identifies employees by ID plus password; there is no session.
type KioskHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Setup(w http.ResponseWriter, r *http.Request)
}

type KioskHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewKioskHandler(attendanceService attendance.AttendanceService) KioskHandler {
	return &KioskHandlerImpl{attendanceService: attendanceService}
}

type setupRequiredResponse struct {
	RequiresPasswordSetup bool                      `json:"requires_password_setup"`
	EmployeeID            string                    `json:"employee_id"`
	EmployeeName          string                    `json:"employee_name"`
	PendingRecord         attendance.RecordResponse `json:"pending_record"`
}

// ClockIn implements KioskHandler.
func (k *KioskHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var clockInReq attendance.ClockInRequest

	if err := json.NewDecoder(r.Body).Decode(&clockInReq); err != nil {
		slog.Error("ClockIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	outcome, err := k.attendanceService.ClockIn(r.Context(), clockInReq)
	if err != nil {
		slog.Error("ClockIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	switch o := outcome.(type) {
	case attendance.ClockInSuccess:
		response.Created(w, "Clocked in", attendance.ToRecordResponse(o.Record))
	case attendance.ClockInRequiresSetup:
		response.SuccessWithMessage(w, "Password setup required", setupRequiredResponse{
			RequiresPasswordSetup: true,
			EmployeeID:            o.Employee.ID,
			EmployeeName:          o.Employee.FullName,
			PendingRecord:         attendance.ToRecordResponse(o.Pending),
		})
	case attendance.ClockInWrongPassword:
		response.Unauthorized(w, "Wrong password")
	case attendance.ClockInAlreadyOpen:
		response.Conflict(w, "Already clocked in today")
	default:
		response.InternalServerError(w, "An unexpected error occurred")
	}
}

// Setup implements KioskHandler. The tablet calls this after a clock-in came
// back with requires_password_setup. The attempt is re-verified with the submitted
// current password, so a credential personalized in between simply fails
// verification instead of being overwritten.
func (k *KioskHandlerImpl) Setup(w http.ResponseWriter, r *http.Request) {
	var setupReq attendance.SetupRequest

	if err := json.NewDecoder(r.Body).Decode(&setupReq); err != nil {
		slog.Error("Setup decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := setupReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	outcome, err := k.attendanceService.ClockIn(r.Context(), attendance.ClockInRequest{
		EmployeeID: setupReq.EmployeeID,
		Password:   setupReq.Password,
	})
	if err != nil {
		slog.Error("Setup service error", "error", err)
		response.HandleError(w, err)
		return
	}

	switch o := outcome.(type) {
	case attendance.ClockInRequiresSetup:
		record, err := k.attendanceService.CompleteSetupAndClockIn(r.Context(), o.Employee, o.Pending, setupReq.NewPassword)
		if err != nil {
			slog.Error("Setup commit error", "error", err)
			response.HandleError(w, err)
			return
		}
		response.Created(w, "Password set and clocked in", attendance.ToRecordResponse(record))
	case attendance.ClockInSuccess:
		// The credential was already personal; the clock-in stands on its own.
		response.Created(w, "Clocked in", attendance.ToRecordResponse(o.Record))
	case attendance.ClockInWrongPassword:
		response.Unauthorized(w, "Wrong password")
	case attendance.ClockInAlreadyOpen:
		response.Conflict(w, "Already clocked in today")
	default:
		response.InternalServerError(w, "An unexpected error occurred")
	}
}

// ClockOut implements KioskHandler.
func (k *KioskHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var clockOutReq attendance.ClockOutRequest

	if err := json.NewDecoder(r.Body).Decode(&clockOutReq); err != nil {
		slog.Error("ClockOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	outcome, err := k.attendanceService.ClockOut(r.Context(), clockOutReq)
	if err != nil {
		slog.Error("ClockOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	switch o := outcome.(type) {
	case attendance.ClockOutSuccess:
		response.SuccessWithMessage(w, "Clocked out", attendance.ToRecordResponse(o.Record))
	case attendance.ClockOutWrongPassword:
		response.Unauthorized(w, "Wrong password")
	case attendance.ClockOutAlreadyCompleted:
		response.Conflict(w, "Already clocked out today")
	default:
		response.InternalServerError(w, "An unexpected error occurred")
	}
}
