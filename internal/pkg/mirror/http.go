package mirror

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/clinika/kiosk-backend-go/internal/domain/attendance"
	"github.com/clinika/kiosk-backend-go/internal/domain/employee"
)

type httpStore struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPStore mirrors records into a remote document store over its REST
// API. Documents are keyed by entity ID, so repeated upserts are idempotent.
func NewHTTPStore(baseURL, apiKey string) Store {
	return &httpStore{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type employeeDocument struct {
	FullName              string `json:"full_name"`
	UsesDefaultCredential bool   `json:"uses_default_credential"`
	CreatedAt             string `json:"created_at"`
}

type attendanceDocument struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Date         string  `json:"date"`
	ClockIn      string  `json:"clock_in"`
	ClockOut     *string `json:"clock_out,omitempty"`
	TotalHours   *string `json:"total_hours,omitempty"`
	Status       string  `json:"status"`
}

// UpsertEmployee implements Store. The password hash deliberately stays out
// of the replica.
func (s *httpStore) UpsertEmployee(ctx context.Context, emp employee.Employee) error {
	doc := employeeDocument{
		FullName:              emp.FullName,
		UsesDefaultCredential: emp.UsesDefaultCredential,
		CreatedAt:             emp.CreatedAt.Format(time.RFC3339),
	}
	return s.put(ctx, fmt.Sprintf("%s/employees/%s", s.baseURL, emp.ID), doc)
}

// UpsertAttendance implements Store.
func (s *httpStore) UpsertAttendance(ctx context.Context, record attendance.Attendance) error {
	doc := attendanceDocument{
		EmployeeID:   record.EmployeeID,
		EmployeeName: record.EmployeeName,
		Date:         record.Date.Format("2006-01-02"),
		ClockIn:      record.ClockIn.Format(time.RFC3339),
		Status:       string(record.Status),
	}
	if record.ClockOut != nil {
		out := record.ClockOut.Format(time.RFC3339)
		doc.ClockOut = &out
	}
	if record.TotalHours != nil {
		hours := record.TotalHours.StringFixed(2)
		doc.TotalHours = &hours
	}
	return s.put(ctx, fmt.Sprintf("%s/attendance/%s", s.baseURL, record.ID), doc)
}

func (s *httpStore) put(ctx context.Context, url string, doc interface{}) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode mirror document: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build mirror request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("mirror request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("mirror responded with status %d", resp.StatusCode)
	}

	return nil
}
