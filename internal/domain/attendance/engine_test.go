package attendance

import (
	"testing"
	"time"

	"github.com/clinika/kiosk-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func hashFor(t *testing.T, plaintext string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func testEmployee(t *testing.T, plaintext string, usesDefault bool) employee.Employee {
	t.Helper()
	return employee.Employee{
		ID:                    "emp-1",
		FullName:              "Rina Kusuma",
		PasswordHash:          hashFor(t, plaintext),
		UsesDefaultCredential: usesDefault,
		CreatedAt:             time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
	}
}

func openRecord(clockIn time.Time) Attendance {
	return Attendance{
		ID:           "att-1",
		EmployeeID:   "emp-1",
		EmployeeName: "Rina Kusuma",
		Date:         DateOf(clockIn),
		ClockIn:      clockIn,
		Status:       StatusOpen,
	}
}

func TestDecideClockIn_AlreadyOpenWinsOverPassword(t *testing.T) {
	emp := testEmployee(t, "mySecret9", false)
	now := time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC)
	existing := openRecord(now.Add(-2 * time.Hour))

	// Even a wrong password must not leak credential validity here.
	for _, pw := range []string{"mySecret9", "totally-wrong"} {
		outcome := DecideClockIn(emp, pw, &existing, now)
		blocked, ok := outcome.(ClockInAlreadyOpen)
		require.True(t, ok, "password %q", pw)
		assert.Equal(t, existing.ID, blocked.Existing.ID)
	}
}

func TestDecideClockIn_CompletedRecordDoesNotBlock(t *testing.T) {
	emp := testEmployee(t, "mySecret9", false)
	now := time.Date(2024, 3, 6, 18, 0, 0, 0, time.UTC)

	out := now.Add(-time.Hour)
	completed := openRecord(now.Add(-9 * time.Hour))
	completed.ClockOut = &out
	completed.Status = StatusComplete

	outcome := DecideClockIn(emp, "mySecret9", &completed, now)
	_, ok := outcome.(ClockInAlreadyOpen)
	assert.False(t, ok)
}

func TestDecideClockIn_WrongPassword(t *testing.T) {
	emp := testEmployee(t, "mySecret9", false)
	now := time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC)

	outcome := DecideClockIn(emp, "guess", nil, now)
	assert.IsType(t, ClockInWrongPassword{}, outcome)
}

func TestDecideClockIn_DefaultCredentialRequiresSetup(t *testing.T) {
	emp := testEmployee(t, employee.DefaultCredential, true)
	now := time.Date(2024, 3, 6, 8, 30, 0, 0, time.UTC)

	outcome := DecideClockIn(emp, employee.DefaultCredential, nil, now)
	setup, ok := outcome.(ClockInRequiresSetup)
	require.True(t, ok)

	assert.Equal(t, emp.ID, setup.Employee.ID)
	assert.Equal(t, emp.ID, setup.Pending.EmployeeID)
	assert.Equal(t, emp.FullName, setup.Pending.EmployeeName)
	assert.Equal(t, DateOf(now), setup.Pending.Date)
	assert.Equal(t, now, setup.Pending.ClockIn)
	assert.Nil(t, setup.Pending.ClockOut)
	assert.Equal(t, StatusOpen, setup.Pending.Status)
}

func TestDecideClockIn_Success(t *testing.T) {
	emp := testEmployee(t, "mySecret9", false)
	now := time.Date(2024, 3, 6, 8, 30, 0, 0, time.UTC)

	outcome := DecideClockIn(emp, "mySecret9", nil, now)
	success, ok := outcome.(ClockInSuccess)
	require.True(t, ok)

	assert.Equal(t, StatusOpen, success.Record.Status)
	assert.Nil(t, success.Record.ClockOut)
	assert.Nil(t, success.Record.TotalHours)
	assert.Equal(t, now, success.Record.ClockIn)
}

func TestDecideClockOut_AlreadyCompletedWinsOverPassword(t *testing.T) {
	emp := testEmployee(t, "mySecret9", false)
	now := time.Date(2024, 3, 6, 18, 0, 0, 0, time.UTC)

	out := now.Add(-time.Hour)
	record := openRecord(now.Add(-9 * time.Hour))
	record.ClockOut = &out
	record.Status = StatusComplete

	for _, pw := range []string{"mySecret9", "totally-wrong"} {
		outcome := DecideClockOut(emp, record, pw, now)
		assert.IsType(t, ClockOutAlreadyCompleted{}, outcome, "password %q", pw)
	}
}

func TestDecideClockOut_WrongPassword(t *testing.T) {
	emp := testEmployee(t, "mySecret9", false)
	now := time.Date(2024, 3, 6, 17, 0, 0, 0, time.UTC)
	record := openRecord(now.Add(-8 * time.Hour))

	outcome := DecideClockOut(emp, record, "guess", now)
	assert.IsType(t, ClockOutWrongPassword{}, outcome)
}

func TestDecideClockOut_TotalHours(t *testing.T) {
	emp := testEmployee(t, "mySecret9", false)

	cases := []struct {
		name     string
		clockIn  time.Time
		clockOut time.Time
		want     string
	}{
		{
			name:     "full day",
			clockIn:  time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC),
			clockOut: time.Date(2024, 3, 6, 17, 30, 0, 0, time.UTC),
			want:     "8.5",
		},
		{
			name:     "half day",
			clockIn:  time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC),
			clockOut: time.Date(2024, 3, 6, 13, 15, 0, 0, time.UTC),
			want:     "4.25",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record := openRecord(tc.clockIn)
			outcome := DecideClockOut(emp, record, "mySecret9", tc.clockOut)
			success, ok := outcome.(ClockOutSuccess)
			require.True(t, ok)

			require.NotNil(t, success.Record.TotalHours)
			assert.Equal(t, tc.want, success.Record.TotalHours.String())
			assert.Equal(t, StatusComplete, success.Record.Status)
			require.NotNil(t, success.Record.ClockOut)
			assert.Equal(t, tc.clockOut, *success.Record.ClockOut)
		})
	}
}

func TestDecideClockOut_ClockSkewSurfacesNegativeHours(t *testing.T) {
	emp := testEmployee(t, "mySecret9", false)
	clockIn := time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC)
	record := openRecord(clockIn)

	// Device clock moved backwards; the engine does not clamp.
	outcome := DecideClockOut(emp, record, "mySecret9", clockIn.Add(-30*time.Minute))
	success, ok := outcome.(ClockOutSuccess)
	require.True(t, ok)
	assert.Equal(t, "-0.5", success.Record.TotalHours.String())
}

func TestTotalHours_Rounding(t *testing.T) {
	in := time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC)
	out := in.Add(7*time.Hour + 59*time.Minute + 59*time.Second)
	assert.Equal(t, "8", TotalHours(in, out).String())
}
