package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrTickerNotFound is returned when a ticker is absent from the EDGAR ticker map.
	ErrTickerNotFound = errors.New("ticker not found")
	// ErrUnexpectedStatus is matched by every StatusError.
	ErrUnexpectedStatus = errors.New("unexpected http status")
)

// StatusError reports a non-200 answer from EDGAR.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.URL, e.Code)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// Retryable reports whether EDGAR may answer differently on a later attempt.
// 403 is how EDGAR signals request-rate throttling.
func (e *StatusError) Retryable() bool {
	return e.Code == 403 || e.Code == 429 || e.Code >= 500
}
