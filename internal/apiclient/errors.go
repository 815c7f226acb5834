package apiclient

import "fmt"

// TransportError covers network failures and non-success service responses.
// The draft and wizard state are never touched by a failed call; the caller
// may retry the same action without limit.
type TransportError struct {
	Operation  string
	StatusCode int // 0 when the request never reached the server
	Message    string
	Cause      error
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s failed with status %d: %s", e.Operation, e.StatusCode, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s failed: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}
