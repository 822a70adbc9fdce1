package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/peoplenest/payroll-backend/internal/core/ports/services"
	"github.com/peoplenest/payroll-backend/internal/dto"
	"github.com/peoplenest/payroll-backend/internal/middleware"
)

// sequenceHandler handles the numbering-scheme registry routes.
type sequenceHandler struct {
	sequenceService portssvc.SequenceSvcFacade
}

func newSequenceHandler(ss portssvc.SequenceSvcFacade) *sequenceHandler {
	return &sequenceHandler{sequenceService: ss}
}

func registerSequenceRoutes(rg *gin.RouterGroup, sequenceService portssvc.SequenceSvcFacade) {
	h := newSequenceHandler(sequenceService)

	sequences := rg.Group("/api/sequenceNumber")
	{
		sequences.POST("/create", h.createSequence)
		sequences.GET("/get", h.listSequences)
	}
}

// createSequence godoc
// @Summary Register a numbering scheme
// @Tags sequences
// @Accept json
// @Produce json
// @Param sequence body dto.CreateSequenceRequest true "Sequence details"
// @Success 201 {object} dto.CreateSequenceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/sequenceNumber/create [post]
func (h *sequenceHandler) createSequence(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSequenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	seq := req.ToDomain()
	if seq.CreatedBy == "" {
		if uid, ok := middleware.GetUserIDFromContext(c); ok {
			seq.CreatedBy = uid
		}
	}

	id, err := h.sequenceService.CreateSequence(c.Request.Context(), seq)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create sequence")
		return
	}

	c.JSON(http.StatusCreated, dto.CreateSequenceResponse{Message: "Sequence created", ID: id})
}

// listSequences godoc
// @Summary List registered numbering schemes
// @Tags sequences
// @Produce json
// @Success 200 {array} domain.SequenceNumber
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/sequenceNumber/get [get]
func (h *sequenceHandler) listSequences(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	seqs, err := h.sequenceService.ListSequences(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list sequences")
		return
	}

	c.JSON(http.StatusOK, seqs)
}
