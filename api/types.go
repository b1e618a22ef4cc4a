package api

import "time"

// APIError is the standard error payload.
type APIError struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"` // RFC3339
}

// TimeNow abstracts time for tests; overridden in tests.
var TimeNow = func() time.Time { return time.Now() }

func newAPIError(msg string) APIError {
	return APIError{
		Error:     msg,
		Timestamp: TimeNow().UTC().Format(time.RFC3339),
	}
}
