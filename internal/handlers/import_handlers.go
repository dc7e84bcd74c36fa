package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jcoelho/carteira/internal/models"
	"github.com/jcoelho/carteira/internal/services"
)

// ImportHandler accepts brokerage statement uploads.
type ImportHandler struct {
	importSvc *services.ImportService
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importSvc *services.ImportService) *ImportHandler {
	return &ImportHandler{
		importSvc: importSvc,
	}
}

// ImportTransactions handles POST /portfolios/:id/transactions/import
//
//	@Summary	Import transactions from a statement CSV
//	@Accept		mpfd
//	@Produce	json
//	@Param		id		path		int		true	"Portfolio ID"
//	@Param		file	formData	file	true	"Statement CSV"
//	@Success	201	{object}	models.ImportTransactionsResponse
//	@Failure	400	{object}	models.ErrorResponse
//	@Router		/portfolios/{id}/transactions/import [post]
func (h *ImportHandler) ImportTransactions(c *gin.Context) {
	portfolioID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "invalid portfolio ID",
		})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "file field is required",
		})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "failed to open uploaded file",
		})
		return
	}
	defer file.Close()

	rows, err := ParseStatementCSV(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	ctx, wc := services.NewWarningContext(c.Request.Context())
	resp, err := h.importSvc.ImportStatement(ctx, portfolioID, rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}
	resp.Warnings = wc.GetWarnings()

	c.JSON(http.StatusCreated, resp)
}
