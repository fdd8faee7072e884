// Package error defines domain-specific errors for the PocketLedger backend.
package error

import "errors"

// Report domain errors.
var (
	// ErrMissingStartDate is returned when start_date is not provided.
	ErrMissingStartDate = errors.New("start_date is required")

	// ErrMissingEndDate is returned when end_date is not provided.
	ErrMissingEndDate = errors.New("end_date is required")

	// ErrInvalidDateRange is returned when end_date is before start_date.
	ErrInvalidDateRange = errors.New("end_date must be after start_date")

	// ErrInvalidGranularity is returned when granularity is not valid.
	ErrInvalidGranularity = errors.New("granularity must be: daily, weekly, or monthly")

	// ErrInvalidDateFormat is returned when date format is invalid.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidTransactionType is returned when a report is requested for a
	// type other than income or expense.
	ErrInvalidTransactionType = errors.New("type must be: income or expense")

	// ErrInvalidDays is returned when a day count parameter is not positive.
	ErrInvalidDays = errors.New("days must be a positive integer")

	// ErrInvalidMonths is returned when a month count parameter is not positive.
	ErrInvalidMonths = errors.New("months must be a positive integer")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingStartDate       ReportErrorCode = "RPT-010001"
	ErrCodeMissingEndDate         ReportErrorCode = "RPT-010002"
	ErrCodeInvalidDateRange       ReportErrorCode = "RPT-010003"
	ErrCodeInvalidGranularity     ReportErrorCode = "RPT-010004"
	ErrCodeInvalidDateFormat      ReportErrorCode = "RPT-010005"
	ErrCodeInvalidTransactionType ReportErrorCode = "RPT-010006"
	ErrCodeInvalidDays            ReportErrorCode = "RPT-010007"
	ErrCodeInvalidMonths          ReportErrorCode = "RPT-010008"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
