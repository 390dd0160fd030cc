package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clinika/kiosk-backend-go/internal/domain/attendance"
	"github.com/clinika/kiosk-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAttendanceService returns canned outcomes so the handler's status
// mapping can be tested without a database.
type stubAttendanceService struct {
	clockInOutcome  attendance.ClockInOutcome
	clockOutOutcome attendance.ClockOutOutcome
	committed       attendance.Attendance
	commitErr       error
	commitCalls     int
}

func (s *stubAttendanceService) ClockIn(_ context.Context, req attendance.ClockInRequest) (attendance.ClockInOutcome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.clockInOutcome, nil
}

func (s *stubAttendanceService) CompleteSetupAndClockIn(_ context.Context, _ employee.Employee, _ attendance.Attendance, _ string) (attendance.Attendance, error) {
	s.commitCalls++
	if s.commitErr != nil {
		return attendance.Attendance{}, s.commitErr
	}
	return s.committed, nil
}

func (s *stubAttendanceService) ClockOut(_ context.Context, req attendance.ClockOutRequest) (attendance.ClockOutOutcome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.clockOutOutcome, nil
}

func postJSON(t *testing.T, handler http.HandlerFunc, body map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func sampleRecord() attendance.Attendance {
	return attendance.Attendance{
		ID:           "att-1",
		EmployeeID:   "emp-1",
		EmployeeName: "Sari Dewi",
		Date:         time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
		ClockIn:      time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC),
		Status:       attendance.StatusOpen,
	}
}

func TestKioskClockIn_StatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		outcome    attendance.ClockInOutcome
		wantStatus int
	}{
		{"success", attendance.ClockInSuccess{Record: sampleRecord()}, http.StatusCreated},
		{"requires setup", attendance.ClockInRequiresSetup{Employee: employee.Employee{ID: "emp-1", FullName: "Sari Dewi"}}, http.StatusOK},
		{"wrong password", attendance.ClockInWrongPassword{}, http.StatusUnauthorized},
		{"already open", attendance.ClockInAlreadyOpen{Existing: sampleRecord()}, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewKioskHandler(&stubAttendanceService{clockInOutcome: tc.outcome})
			rec := postJSON(t, handler.ClockIn, map[string]string{
				"employee_id": "emp-1",
				"password":    "whatever",
			})
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestKioskClockIn_RequiresSetupBody(t *testing.T) {
	handler := NewKioskHandler(&stubAttendanceService{
		clockInOutcome: attendance.ClockInRequiresSetup{
			Employee: employee.Employee{ID: "emp-1", FullName: "Sari Dewi"},
			Pending:  sampleRecord(),
		},
	})

	rec := postJSON(t, handler.ClockIn, map[string]string{
		"employee_id": "emp-1",
		"password":    employee.DefaultCredential,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			RequiresPasswordSetup bool   `json:"requires_password_setup"`
			EmployeeName          string `json:"employee_name"`
			PendingRecord         struct {
				Date   string `json:"date"`
				Status string `json:"status"`
			} `json:"pending_record"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Data.RequiresPasswordSetup)
	assert.Equal(t, "Sari Dewi", body.Data.EmployeeName)
	assert.Equal(t, "2024-03-06", body.Data.PendingRecord.Date)
	assert.Equal(t, "open", body.Data.PendingRecord.Status)
}

func TestKioskClockIn_MissingFieldsFailValidation(t *testing.T) {
	handler := NewKioskHandler(&stubAttendanceService{})

	rec := postJSON(t, handler.ClockIn, map[string]string{"employee_id": "emp-1"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestKioskSetup_CommitsPendingProposal(t *testing.T) {
	stub := &stubAttendanceService{
		clockInOutcome: attendance.ClockInRequiresSetup{
			Employee: employee.Employee{ID: "emp-1", FullName: "Sari Dewi"},
			Pending:  sampleRecord(),
		},
		committed: sampleRecord(),
	}
	handler := NewKioskHandler(stub)

	rec := postJSON(t, handler.Setup, map[string]string{
		"employee_id":  "emp-1",
		"password":     employee.DefaultCredential,
		"new_password": "mySecret9",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, stub.commitCalls)
}

func TestKioskSetup_PolicyViolationMapsTo422(t *testing.T) {
	stub := &stubAttendanceService{
		clockInOutcome: attendance.ClockInRequiresSetup{
			Employee: employee.Employee{ID: "emp-1"},
			Pending:  sampleRecord(),
		},
		commitErr: employee.ErrPasswordIsDefault,
	}
	handler := NewKioskHandler(stub)

	rec := postJSON(t, handler.Setup, map[string]string{
		"employee_id":  "emp-1",
		"password":     employee.DefaultCredential,
		"new_password": "12345678",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestKioskSetup_WrongPasswordDoesNotCommit(t *testing.T) {
	stub := &stubAttendanceService{clockInOutcome: attendance.ClockInWrongPassword{}}
	handler := NewKioskHandler(stub)

	rec := postJSON(t, handler.Setup, map[string]string{
		"employee_id":  "emp-1",
		"password":     "stale-pw",
		"new_password": "mySecret9",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, stub.commitCalls)
}

func TestKioskClockOut_StatusMapping(t *testing.T) {
	completed := sampleRecord()
	out := time.Date(2024, 3, 6, 17, 0, 0, 0, time.UTC)
	completed.ClockOut = &out
	completed.Status = attendance.StatusComplete

	cases := []struct {
		name       string
		outcome    attendance.ClockOutOutcome
		wantStatus int
	}{
		{"success", attendance.ClockOutSuccess{Record: completed}, http.StatusOK},
		{"wrong password", attendance.ClockOutWrongPassword{}, http.StatusUnauthorized},
		{"already completed", attendance.ClockOutAlreadyCompleted{}, http.StatusConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewKioskHandler(&stubAttendanceService{clockOutOutcome: tc.outcome})
			rec := postJSON(t, handler.ClockOut, map[string]string{
				"employee_id": "emp-1",
				"password":    "whatever",
			})
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
