package employee

import (
	"github.com/clinika/kiosk-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	FullName string `json:"full_name"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	} else if len(r.FullName) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                    string `json:"id"`
	FullName              string `json:"full_name"`
	UsesDefaultCredential bool   `json:"uses_default_credential"`
	CreatedAt             string `json:"created_at"`
}

func ToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                    emp.ID,
		FullName:              emp.FullName,
		UsesDefaultCredential: emp.UsesDefaultCredential,
		CreatedAt:             emp.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
