package app

import "fmt"

type DomainError struct {
	Status  int
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func domainError(status int, code, message string) *DomainError {
	return &DomainError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

// backingError wraps a persistence or storage failure with the store's
// own message so the admin sees what actually went wrong. No retries.
func backingError(err error) *DomainError {
	return domainError(500, "BACKING_STORE", err.Error())
}
