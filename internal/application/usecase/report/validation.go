package report

import (
	"time"

	"github.com/pocketledger/backend/internal/domain/analytics"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

// validateDateRange checks the common start/end pair every ranged report
// takes.
func validateDateRange(startDate, endDate time.Time) error {
	if startDate.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}
	if endDate.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}
	if endDate.Before(startDate) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must be after start_date",
			domainerror.ErrInvalidDateRange,
		)
	}
	return nil
}

func validateGranularity(granularity analytics.Granularity) error {
	if !granularity.Valid() {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidGranularity,
			"granularity must be: daily, weekly, or monthly",
			domainerror.ErrInvalidGranularity,
		)
	}
	return nil
}

// resolveAsOf defaults a zero asOf to the current UTC time.
func resolveAsOf(asOf time.Time) time.Time {
	if asOf.IsZero() {
		return time.Now().UTC()
	}
	return asOf
}
