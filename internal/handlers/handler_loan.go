package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/peoplenest/payroll-backend/internal/core/ports/services"
	"github.com/peoplenest/payroll-backend/internal/dto"
	"github.com/peoplenest/payroll-backend/internal/middleware"
)

// loanHandler handles the standalone loan listing and lookup routes.
type loanHandler struct {
	loanService portssvc.LoanSvcFacade
}

func newLoanHandler(ls portssvc.LoanSvcFacade) *loanHandler {
	return &loanHandler{loanService: ls}
}

func registerLoanRoutes(rg *gin.RouterGroup, loanService portssvc.LoanSvcFacade) {
	h := newLoanHandler(loanService)

	loans := rg.Group("/loans")
	{
		loans.GET("", h.listLoans)
		loans.GET("/:id", h.getLoanByID)
	}
}

// listLoans godoc
// @Summary List loans
// @Description Returns one page of loan summaries ordered by payback date descending, optionally filtered by status and payback date range.
// @Tags loans
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param page query int false "Page number" default(1)
// @Param status query []string false "Lifecycle states to include" collectionFormat(multi)
// @Param startDate query string false "Payback date range start (inclusive)"
// @Param endDate query string false "Payback date range end (inclusive)"
// @Success 200 {array} domain.LoanSummary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans [get]
func (h *loanHandler) listLoans(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListLoansParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	summaries, err := h.loanService.ListLoans(c.Request.Context(), params.Limit, params.Page, params.ToFilter())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list loans")
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// getLoanByID godoc
// @Summary Get a loan
// @Tags loans
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} domain.Loan
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans/{id} [get]
func (h *loanHandler) getLoanByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	loan, err := h.loanService.GetLoanByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to fetch loan")
		return
	}

	c.JSON(http.StatusOK, loan)
}
