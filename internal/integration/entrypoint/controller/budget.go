package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pocketledger/backend/internal/application/usecase/report"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
	"github.com/pocketledger/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	getBudgetProgressUseCase *report.GetBudgetProgressUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(getBudgetProgressUseCase *report.GetBudgetProgressUseCase) *BudgetController {
	return &BudgetController{
		getBudgetProgressUseCase: getBudgetProgressUseCase,
	}
}

// GetProgress handles GET /budgets/progress requests.
func (c *BudgetController) GetProgress(ctx *gin.Context) {
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

	input := report.GetBudgetProgressInput{
		AsOf: asOf,
	}

	output, err := c.getBudgetProgressUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetProgressListResponse(output))
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		statusCode := http.StatusInternalServerError
		if reportErr.Code == domainerror.ErrCodeInvalidDateFormat {
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
