package types

import "fmt"

// CustomError is a request error that already carries its HTTP status
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// NewBadRequest creates a 400 CustomError of the given type
func NewBadRequest(errorType, format string, args ...any) *CustomError {
	return &CustomError{Code: 400, Message: fmt.Sprintf(format, args...), Type: errorType}
}
