package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pocketledger/backend/internal/application/usecase/report"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/integration/entrypoint/dto"
)

// PlannedController handles planned transaction endpoints.
type PlannedController struct {
	getUpcomingPlannedUseCase *report.GetUpcomingPlannedUseCase
}

// NewPlannedController creates a new planned transaction controller instance.
func NewPlannedController(getUpcomingPlannedUseCase *report.GetUpcomingPlannedUseCase) *PlannedController {
	return &PlannedController{
		getUpcomingPlannedUseCase: getUpcomingPlannedUseCase,
	}
}

// GetUpcoming handles GET /planned/upcoming requests.
func (c *PlannedController) GetUpcoming(ctx *gin.Context) {
	daysStr := ctx.DefaultQuery("days", strconv.Itoa(report.DefaultUpcomingDays))
	days, err := strconv.Atoi(daysStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "days must be a positive integer",
			Code:  string(domainerror.ErrCodeInvalidDays),
		})
		return
	}

	var asOf time.Time
	if asOfStr := ctx.Query("as_of"); asOfStr != "" {
		parsed, err := time.Parse("2006-01-02", asOfStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid as_of format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return
		}
		asOf = parsed
	}

	input := report.GetUpcomingPlannedInput{
		Days: days,
		AsOf: asOf,
	}

	output, err := c.getUpcomingPlannedUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePlannedError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUpcomingPlannedResponse(output))
}

// handlePlannedError handles planned transaction errors and returns
// appropriate HTTP responses.
func (c *PlannedController) handlePlannedError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		statusCode := http.StatusInternalServerError
		if reportErr.Code == domainerror.ErrCodeInvalidDays ||
			reportErr.Code == domainerror.ErrCodeInvalidDateFormat {
			statusCode = http.StatusBadRequest
		}
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
