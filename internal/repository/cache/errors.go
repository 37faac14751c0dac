package cache

import "fmt"

// ErrorHandler carries the HTTP status a cache miss or a corrupt entry
// should be reported with.
type ErrorHandler struct {
	Err        error
	StatusCode int
}

func NewErrorHandler(err error, status int) ErrorHandler {
	return ErrorHandler{Err: err, StatusCode: status}
}

func (e ErrorHandler) Error() string {
	return fmt.Sprintf("%v", e.Err)
}

func (e ErrorHandler) Unwrap() error { return e.Err }
