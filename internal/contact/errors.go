package contact

import "errors"

var (
	// ErrSubmissionNotFound is returned when a submission is not found.
	ErrSubmissionNotFound = errors.New("submission not found")
)
