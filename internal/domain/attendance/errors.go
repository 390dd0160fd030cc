package attendance

import "errors"

var (
	ErrRecordNotFound = errors.New("attendance record not found")
	// ErrNoPendingRecord signals a setup commit without a matching proposal.
	ErrNoPendingRecord = errors.New("no pending attendance record to commit")
)
