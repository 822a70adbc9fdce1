package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peoplenest/payroll-backend/internal/core/domain"
	portssvc "github.com/peoplenest/payroll-backend/internal/core/ports/services"
	"github.com/peoplenest/payroll-backend/internal/dto"
	"github.com/peoplenest/payroll-backend/internal/middleware"
)

// employeeHandler handles HTTP requests for the employee aggregate, including
// the loan operations addressed through employee routes.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
	loanService     portssvc.LoanSvcFacade
}

func newEmployeeHandler(es portssvc.EmployeeSvcFacade, ls portssvc.LoanSvcFacade) *employeeHandler {
	return &employeeHandler{
		employeeService: es,
		loanService:     ls,
	}
}

// registerEmployeeRoutes registers the employee aggregate routes. Path
// shapes, including /proviousJob, are kept stable for existing clients.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade, loanService portssvc.LoanSvcFacade) {
	h := newEmployeeHandler(employeeService, loanService)

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/:id", h.getEmployeeByID)
		employees.PATCH("/status/:id", h.changeStatus)
		employees.DELETE("/:id", h.deleteEmployee)
		employees.PATCH("/general/:id", h.editGeneral)
		employees.POST("/general/login-details/:id", h.addLoginDetails)
		employees.PATCH("/general/login-details/:id", h.editLoginDetails)
		employees.PATCH("/professional/:id", h.editProfessional)
		employees.POST("/bank/:id", h.addBankDetails)
		employees.PATCH("/bank/:id", h.editBankDetails)
		employees.GET("/all/:code", h.getCompleteDetailsByCode)
		employees.POST("/loan/:id", h.createLoan)
		employees.POST("/approvedLoan/:id", h.approveLoan)
		employees.POST("/cancelLoan/:id", h.cancelLoan)
		employees.PATCH("/loan/:id", h.editLoan)
		employees.POST("/proviousJob/:id", h.addPreviousJob)
		employees.PATCH("/proviousJob/:id", h.editPreviousJob)
	}
}

// createEmployee godoc
// @Summary Onboard a new employee
// @Description Allocates the next department employee code and creates the general, professional and index documents atomically.
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeRootResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	general, professional := req.ToDomain()
	index, createdGeneral, err := h.employeeService.CreateEmployee(c.Request.Context(), general, professional)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create employee")
		return
	}

	logger.Info("Employee created", slog.String("emp_code", createdGeneral.EmpCode))
	c.JSON(http.StatusCreated, dto.ToEmployeeRootResponse(index, createdGeneral))
}

// listEmployees godoc
// @Summary List employees
// @Description Returns one page of employee summaries ordered by employee id.
// @Tags employees
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param page query int false "Page number" default(1)
// @Success 200 {array} domain.EmployeeSummary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListEmployeesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or missing 'limit' or 'page' query parameters"})
		return
	}

	summaries, err := h.employeeService.ListEmployees(c.Request.Context(), params.Limit, params.Page)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list employees")
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// getEmployeeByID godoc
// @Summary Get the employee aggregate root
// @Description Returns the index document holding the ids of every linked record.
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} domain.EmployeeIndex
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *employeeHandler) getEmployeeByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	index, err := h.employeeService.GetEmployeeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to fetch employee")
		return
	}

	c.JSON(http.StatusOK, index)
}

// changeStatus godoc
// @Summary Change employee lifecycle status
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param status body dto.ChangeStatusRequest true "New status"
// @Success 200 {object} domain.EmployeeSummary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/status/{id} [patch]
func (h *employeeHandler) changeStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	summary, err := h.employeeService.ChangeStatus(c.Request.Context(), c.Param("id"), domain.Status(req.Status))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to change status")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// deleteEmployee godoc
// @Summary Soft-delete an employee
// @Description Flips the deletion flag on the employee and every resource assignment carrying its code.
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resourcesDeleted, err := h.employeeService.DeleteEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to delete employee")
		return
	}

	logger.Info("Employee soft-deleted", slog.Int("resources_deleted", resourcesDeleted))
	c.JSON(http.StatusOK, gin.H{
		"message":          "Employee deleted successfully",
		"resourcesDeleted": resourcesDeleted,
	})
}

// editGeneral godoc
// @Summary Edit general info
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "General record ID"
// @Param general body dto.EditGeneralRequest true "Fields to update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/general/{id} [patch]
func (h *employeeHandler) editGeneral(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EditGeneralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	if err := h.employeeService.EditGeneral(c.Request.Context(), c.Param("id"), req.ToPatch()); err != nil {
		respondServiceError(c, logger, err, "Failed to update general info")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "General info updated successfully"})
}

// addLoginDetails godoc
// @Summary Provision portal credentials
// @Description Merges credentials into the general record and creates the provider identity. Returns the role from the professional record.
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "General record ID"
// @Param login body dto.AddLoginDetailsRequest true "Credentials"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/general/login-details/{id} [post]
func (h *employeeHandler) addLoginDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddLoginDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	role, err := h.employeeService.AddLoginDetails(c.Request.Context(), c.Param("id"), req.ToDomain())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to add login details")
		return
	}

	logger.Info("Login details provisioned", slog.String("role", role))
	c.JSON(http.StatusOK, gin.H{"message": "Login details added successfully", "role": role})
}

// editLoginDetails godoc
// @Summary Edit portal credentials
// @Description Updates the credential sub-object and mirrors the change onto the identity record when one exists.
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "General record ID"
// @Param login body dto.EditLoginDetailsRequest true "Fields to update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/general/login-details/{id} [patch]
func (h *employeeHandler) editLoginDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EditLoginDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	if err := h.employeeService.EditLoginDetails(c.Request.Context(), c.Param("id"), req.ToPatch()); err != nil {
		respondServiceError(c, logger, err, "Failed to update login details")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login details updated successfully"})
}

// editProfessional godoc
// @Summary Edit professional info
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Professional record ID"
// @Param professional body dto.EditProfessionalRequest true "Fields to update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/professional/{id} [patch]
func (h *employeeHandler) editProfessional(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EditProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	if err := h.employeeService.EditProfessional(c.Request.Context(), c.Param("id"), req.ToPatch()); err != nil {
		respondServiceError(c, logger, err, "Failed to update professional info")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Professional info updated successfully"})
}

// addBankDetails godoc
// @Summary Add bank details
// @Description Creates the bank record and links it into the employee index. Idempotent: returns the existing record's id when one is already linked.
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param bank body dto.AddBankDetailsRequest true "Bank details"
// @Success 200 {object} map[string]string "Already linked"
// @Success 201 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/bank/{id} [post]
func (h *employeeHandler) addBankDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddBankDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	bankDetailID, existed, err := h.employeeService.AddBankDetails(c.Request.Context(), c.Param("id"), req.ToDomain())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to add bank details")
		return
	}

	if existed {
		c.JSON(http.StatusOK, gin.H{"message": "Bank details already exist for this employee", "bankDetailId": bankDetailID})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Bank details added successfully", "bankDetailId": bankDetailID})
}

// editBankDetails godoc
// @Summary Edit bank details
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Bank record ID"
// @Param bank body dto.EditBankDetailsRequest true "Fields to update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/bank/{id} [patch]
func (h *employeeHandler) editBankDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EditBankDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	if err := h.employeeService.EditBankDetails(c.Request.Context(), c.Param("id"), req.ToPatch()); err != nil {
		respondServiceError(c, logger, err, "Failed to update bank details")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bank details updated successfully"})
}

// getCompleteDetailsByCode godoc
// @Summary Get the complete employee view
// @Description Assembles every linked record for the employee code, reading the referenced collections concurrently.
// @Tags employees
// @Produce json
// @Param code path string true "Employee code"
// @Success 200 {object} dto.CompleteEmployeeResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/all/{code} [get]
func (h *employeeHandler) getCompleteDetailsByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	emp, err := h.employeeService.GetCompleteDetailsByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to fetch employee details")
		return
	}

	c.JSON(http.StatusOK, dto.ToCompleteEmployeeResponse(emp))
}

// createLoan godoc
// @Summary Request a loan for an employee
// @Tags loans
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param loan body dto.CreateLoanRequest true "Loan request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/loan/{id} [post]
func (h *employeeHandler) createLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	loanID, err := h.loanService.CreateLoan(c.Request.Context(), c.Param("id"), req.ToDomain())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create loan request")
		return
	}

	logger.Info("Loan requested", slog.String("loan_id", loanID))
	c.JSON(http.StatusCreated, gin.H{"message": "Loan request created successfully", "loanId": loanID})
}

// approveLoan godoc
// @Summary Approve a loan
// @Description Validates the approval amounts and moves the loan to APPROVED with its payback term.
// @Tags loans
// @Accept json
// @Produce json
// @Param id path string true "Loan ID"
// @Param approval body dto.ApproveLoanRequest true "Approval details"
// @Success 201 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/approvedLoan/{id} [post]
func (h *employeeHandler) approveLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ApproveLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	if err := h.loanService.ApproveLoan(c.Request.Context(), c.Param("id"), req.ToDomain()); err != nil {
		respondServiceError(c, logger, err, "Failed to approve loan")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Loan approved successfully"})
}

// cancelLoan godoc
// @Summary Cancel a loan
// @Tags loans
// @Accept json
// @Produce json
// @Param id path string true "Loan ID"
// @Param cancellation body dto.CancelLoanRequest true "Cancellation reason"
// @Success 201 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/cancelLoan/{id} [post]
func (h *employeeHandler) cancelLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CancelLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	if err := h.loanService.CancelLoan(c.Request.Context(), c.Param("id"), req.Reason); err != nil {
		respondServiceError(c, logger, err, "Failed to cancel loan")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Loan cancelled successfully"})
}

// editLoan godoc
// @Summary Edit a loan
// @Tags loans
// @Accept json
// @Produce json
// @Param id path string true "Loan ID"
// @Param loan body dto.EditLoanRequest true "Fields to update"
// @Success 201 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/loan/{id} [patch]
func (h *employeeHandler) editLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EditLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	if err := h.loanService.EditLoan(c.Request.Context(), c.Param("id"), req.ToPatch()); err != nil {
		respondServiceError(c, logger, err, "Failed to edit loan")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Loan info updated successfully"})
}

// addPreviousJob godoc
// @Summary Add a prior employment record
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param job body dto.AddPreviousJobRequest true "Previous job"
// @Success 201 {object} domain.PreviousJob
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/proviousJob/{id} [post]
func (h *employeeHandler) addPreviousJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddPreviousJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	job, err := h.employeeService.AddPreviousJob(c.Request.Context(), c.Param("id"), req.ToDomain())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to add previous job")
		return
	}

	c.JSON(http.StatusCreated, job)
}

// editPreviousJob godoc
// @Summary Edit a prior employment record
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Previous job ID"
// @Param job body dto.EditPreviousJobRequest true "Fields to update"
// @Success 201 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/proviousJob/{id} [patch]
func (h *employeeHandler) editPreviousJob(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EditPreviousJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	if err := h.employeeService.EditPreviousJob(c.Request.Context(), c.Param("id"), req.ToPatch()); err != nil {
		respondServiceError(c, logger, err, "Failed to edit previous job")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Previous job updated successfully"})
}
