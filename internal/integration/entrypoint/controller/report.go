// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocketledger/backend/internal/application/usecase/report"
	"github.com/pocketledger/backend/internal/domain/analytics"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/domain/entity"
	"github.com/pocketledger/backend/internal/integration/entrypoint/dto"
)

// ReportController handles report endpoints.
type ReportController struct {
	getSpendingBreakdownUseCase *report.GetSpendingBreakdownUseCase
	getTrendsUseCase            *report.GetTrendsUseCase
	getVelocityUseCase          *report.GetVelocityUseCase
	getPerformanceUseCase       *report.GetPerformanceUseCase
	getComparisonUseCase        *report.GetComparisonUseCase
	getBalanceTrendUseCase      *report.GetBalanceTrendUseCase
	getCategoryTrendsUseCase    *report.GetCategoryTrendsUseCase
	getForecastUseCase          *report.GetForecastUseCase
	getInsightsUseCase          *report.GetInsightsUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	getSpendingBreakdownUseCase *report.GetSpendingBreakdownUseCase,
	getTrendsUseCase *report.GetTrendsUseCase,
	getVelocityUseCase *report.GetVelocityUseCase,
	getPerformanceUseCase *report.GetPerformanceUseCase,
	getComparisonUseCase *report.GetComparisonUseCase,
	getBalanceTrendUseCase *report.GetBalanceTrendUseCase,
	getCategoryTrendsUseCase *report.GetCategoryTrendsUseCase,
	getForecastUseCase *report.GetForecastUseCase,
	getInsightsUseCase *report.GetInsightsUseCase,
) *ReportController {
	return &ReportController{
		getSpendingBreakdownUseCase: getSpendingBreakdownUseCase,
		getTrendsUseCase:            getTrendsUseCase,
		getVelocityUseCase:          getVelocityUseCase,
		getPerformanceUseCase:       getPerformanceUseCase,
		getComparisonUseCase:        getComparisonUseCase,
		getBalanceTrendUseCase:      getBalanceTrendUseCase,
		getCategoryTrendsUseCase:    getCategoryTrendsUseCase,
		getForecastUseCase:          getForecastUseCase,
		getInsightsUseCase:          getInsightsUseCase,
	}
}

// parseDateRange parses the start_date and end_date query parameters. It
// writes the error response and returns false when either is malformed.
// Missing parameters are left as zero values for the use case to validate.
func (c *ReportController) parseDateRange(ctx *gin.Context) (time.Time, time.Time, bool) {
	var startDate, endDate time.Time

	if startDateStr := ctx.Query("start_date"); startDateStr != "" {
		parsed, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return time.Time{}, time.Time{}, false
		}
		startDate = parsed
	}

	if endDateStr := ctx.Query("end_date"); endDateStr != "" {
		parsed, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end_date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return time.Time{}, time.Time{}, false
		}
		endDate = parsed
	}

	return startDate, endDate, true
}

// parseAsOf parses the optional as_of query parameter. A zero time means the
// use case should anchor the report at the current date.
func (c *ReportController) parseAsOf(ctx *gin.Context) (time.Time, bool) {
	asOfStr := ctx.Query("as_of")
	if asOfStr == "" {
		return time.Time{}, true
	}

	asOf, err := time.Parse("2006-01-02", asOfStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid as_of format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return time.Time{}, false
	}

	return asOf, true
}

// GetSpendingBreakdown handles GET /reports/spending requests.
func (c *ReportController) GetSpendingBreakdown(ctx *gin.Context) {
	startDate, endDate, ok := c.parseDateRange(ctx)
	if !ok {
		return
	}

	// Parse optional ID filters, comma-separated
	var accountIDs []uuid.UUID
	if accountIDsStr := ctx.Query("account_ids"); accountIDsStr != "" {
		for _, raw := range strings.Split(accountIDsStr, ",") {
			id, err := uuid.Parse(strings.TrimSpace(raw))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
					Error: "Invalid account_ids format",
				})
				return
			}
			accountIDs = append(accountIDs, id)
		}
	}

	var categoryIDs []uuid.UUID
	if categoryIDsStr := ctx.Query("category_ids"); categoryIDsStr != "" {
		for _, raw := range strings.Split(categoryIDsStr, ",") {
			id, err := uuid.Parse(strings.TrimSpace(raw))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
					Error: "Invalid category_ids format",
				})
				return
			}
			categoryIDs = append(categoryIDs, id)
		}
	}

	// Parse optional amount bounds
	var minAmount, maxAmount *decimal.Decimal
	if minAmountStr := ctx.Query("min_amount"); minAmountStr != "" {
		parsed, err := decimal.NewFromString(minAmountStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid min_amount format",
			})
			return
		}
		minAmount = &parsed
	}
	if maxAmountStr := ctx.Query("max_amount"); maxAmountStr != "" {
		parsed, err := decimal.NewFromString(maxAmountStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid max_amount format",
			})
			return
		}
		maxAmount = &parsed
	}

	input := report.GetSpendingBreakdownInput{
		StartDate:   startDate,
		EndDate:     endDate,
		Type:        entity.TransactionType(ctx.Query("type")),
		AccountIDs:  accountIDs,
		CategoryIDs: categoryIDs,
		MinAmount:   minAmount,
		MaxAmount:   maxAmount,
		SearchQuery: ctx.Query("q"),
	}

	output, err := c.getSpendingBreakdownUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSpendingBreakdownResponse(output))
}

// GetTrends handles GET /reports/trends requests.
func (c *ReportController) GetTrends(ctx *gin.Context) {
	startDate, endDate, ok := c.parseDateRange(ctx)
	if !ok {
		return
	}

	input := report.GetTrendsInput{
		StartDate:   startDate,
		EndDate:     endDate,
		Granularity: analytics.Granularity(ctx.DefaultQuery("granularity", "monthly")),
	}

	output, err := c.getTrendsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrendsResponse(output))
}

// GetVelocity handles GET /reports/velocity requests.
func (c *ReportController) GetVelocity(ctx *gin.Context) {
	startDate, endDate, ok := c.parseDateRange(ctx)
	if !ok {
		return
	}

	input := report.GetVelocityInput{
		StartDate: startDate,
		EndDate:   endDate,
	}

	output, err := c.getVelocityUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVelocityResponse(output))
}

// GetPerformance handles GET /reports/performance requests.
func (c *ReportController) GetPerformance(ctx *gin.Context) {
	startDate, endDate, ok := c.parseDateRange(ctx)
	if !ok {
		return
	}

	input := report.GetPerformanceInput{
		StartDate: startDate,
		EndDate:   endDate,
	}

	output, err := c.getPerformanceUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPerformanceResponse(output))
}

// GetComparison handles GET /reports/comparison requests.
func (c *ReportController) GetComparison(ctx *gin.Context) {
	startDate, endDate, ok := c.parseDateRange(ctx)
	if !ok {
		return
	}

	input := report.GetComparisonInput{
		StartDate: startDate,
		EndDate:   endDate,
	}

	output, err := c.getComparisonUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToComparisonResponse(output))
}

// GetBalanceTrend handles GET /reports/balance-trend requests.
func (c *ReportController) GetBalanceTrend(ctx *gin.Context) {
	daysStr := ctx.DefaultQuery("days", strconv.Itoa(report.DefaultBalanceTrendDays))
	days, err := strconv.Atoi(daysStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "days must be a positive integer",
			Code:  string(domainerror.ErrCodeInvalidDays),
		})
		return
	}

	asOf, ok := c.parseAsOf(ctx)
	if !ok {
		return
	}

	input := report.GetBalanceTrendInput{
		Days: days,
		AsOf: asOf,
	}

	output, err := c.getBalanceTrendUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBalanceTrendResponse(output))
}

// GetCategoryTrends handles GET /reports/category-trends requests.
func (c *ReportController) GetCategoryTrends(ctx *gin.Context) {
	startDate, endDate, ok := c.parseDateRange(ctx)
	if !ok {
		return
	}

	topCategoriesStr := ctx.DefaultQuery("top_categories", strconv.Itoa(report.DefaultTopCategories))
	topCategories, err := strconv.Atoi(topCategoriesStr)
	if err != nil || topCategories <= 0 {
		topCategories = report.DefaultTopCategories
	}

	input := report.GetCategoryTrendsInput{
		StartDate:     startDate,
		EndDate:       endDate,
		Granularity:   analytics.Granularity(ctx.DefaultQuery("granularity", "monthly")),
		TopCategories: topCategories,
	}

	output, err := c.getCategoryTrendsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryTrendsResponse(output))
}

// GetForecast handles GET /reports/forecast requests.
func (c *ReportController) GetForecast(ctx *gin.Context) {
	monthsStr := ctx.DefaultQuery("months", strconv.Itoa(report.DefaultForecastMonths))
	months, err := strconv.Atoi(monthsStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "months must be a positive integer",
			Code:  string(domainerror.ErrCodeInvalidMonths),
		})
		return
	}

	asOf, ok := c.parseAsOf(ctx)
	if !ok {
		return
	}

	input := report.GetForecastInput{
		Months: months,
		AsOf:   asOf,
	}

	output, err := c.getForecastUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToForecastResponse(output))
}

// GetInsights handles GET /reports/insights requests.
func (c *ReportController) GetInsights(ctx *gin.Context) {
	startDate, endDate, ok := c.parseDateRange(ctx)
	if !ok {
		return
	}

	input := report.GetInsightsInput{
		StartDate: startDate,
		EndDate:   endDate,
	}

	output, err := c.getInsightsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightsResponse(output))
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		statusCode := c.getStatusCodeForReportError(reportErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForReportError maps report error codes to HTTP status codes.
func (c *ReportController) getStatusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingStartDate,
		domainerror.ErrCodeMissingEndDate,
		domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeInvalidGranularity,
		domainerror.ErrCodeInvalidDateFormat,
		domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidDays,
		domainerror.ErrCodeInvalidMonths:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
