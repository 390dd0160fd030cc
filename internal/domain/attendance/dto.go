package attendance

import (
	"github.com/clinika/kiosk-backend-go/internal/pkg/validator"
)

// ========================================
// KIOSK DTOs
// ========================================

type ClockInRequest struct {
	EmployeeID string `json:"employee_id"`
	Password   string `json:"password"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Password == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClockOutRequest struct {
	EmployeeID string `json:"employee_id"`
	Password   string `json:"password"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Password == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetupRequest struct {
	EmployeeID  string `json:"employee_id"`
	Password    string `json:"password"`
	NewPassword string `json:"new_password"`
}

func (r *SetupRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Password == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if !validator.IsValidPasswordLength(r.NewPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new_password must be 6-12 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Date         string  `json:"date"`
	ClockInTime  string  `json:"clock_in_time"`
	ClockOutTime *string `json:"clock_out_time,omitempty"`
	TotalHours   *string `json:"total_hours,omitempty"`
	Status       string  `json:"status"`
}

func ToRecordResponse(record Attendance) RecordResponse {
	resp := RecordResponse{
		ID:           record.ID,
		EmployeeID:   record.EmployeeID,
		EmployeeName: record.EmployeeName,
		Date:         record.Date.Format("2006-01-02"),
		ClockInTime:  record.ClockIn.Format("2006-01-02T15:04:05Z07:00"),
		Status:       string(record.Status),
	}
	if record.ClockOut != nil {
		out := record.ClockOut.Format("2006-01-02T15:04:05Z07:00")
		resp.ClockOutTime = &out
	}
	if record.TotalHours != nil {
		hours := record.TotalHours.StringFixed(2)
		resp.TotalHours = &hours
	}
	return resp
}
