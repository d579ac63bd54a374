// Package businessflow contains the core business logic and use cases for the accounting workflows
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Directory errors
	ErrCountryNotFound       = errors.New("country not found")
	ErrCountryAlreadyExists  = errors.New("country already exists")
	ErrTemplateNotFound      = errors.New("template not found")
	ErrTemplateAlreadyExists = errors.New("template already exists")
	ErrBookmakerNotFound     = errors.New("bookmaker not found")
	ErrWalletNotFound        = errors.New("wallet not found")
	ErrSourceNotFound        = errors.New("source not found")
	ErrSourceAlreadyExists   = errors.New("source already exists")

	// Employee errors
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrWaitingUserNotFound = errors.New("waiting user not found")
	ErrNotAdmin            = errors.New("employee is not an admin")

	// Transaction errors
	ErrTransactionNotFound   = errors.New("transaction not found")
	ErrTransactionNoEndpoint = errors.New("transaction must have a sender or a receiver")
	ErrAmountNotPositive     = errors.New("amount must be positive")
	ErrCommissionNegative    = errors.New("commission cannot exceed amount or be negative")

	// Report errors
	ErrReportNotFound = errors.New("report not found")
	ErrEmptyBatch     = errors.New("import batch contains no rows")

	// Filter errors
	ErrStartDateAfterEndDate = errors.New("start date cannot be after end date")
	ErrUnknownScope          = errors.New("unknown aggregation scope")

	// Workflow errors
	ErrSessionNotFound = errors.New("browse session not found")
	ErrSessionExpired  = errors.New("browse session expired")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewBusinessErrorf(code, message string, err error, args ...any) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: fmt.Sprintf(message, args...),
		Err:     err,
	}
}

func IsCountryNotFound(err error) bool {
	return errors.Is(err, ErrCountryNotFound)
}

func IsBookmakerNotFound(err error) bool {
	return errors.Is(err, ErrBookmakerNotFound)
}

func IsEmployeeNotFound(err error) bool {
	return errors.Is(err, ErrEmployeeNotFound)
}

func IsReportNotFound(err error) bool {
	return errors.Is(err, ErrReportNotFound)
}

func IsSessionExpired(err error) bool {
	return errors.Is(err, ErrSessionExpired) || errors.Is(err, ErrSessionNotFound)
}
