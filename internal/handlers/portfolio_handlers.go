package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jcoelho/carteira/internal/models"
	"github.com/jcoelho/carteira/internal/services"
)

// PortfolioHandler serves reconciled positions and trade history.
type PortfolioHandler struct {
	reconSvc *services.ReconciliationService
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(reconSvc *services.ReconciliationService) *PortfolioHandler {
	return &PortfolioHandler{
		reconSvc: reconSvc,
	}
}

// Positions handles GET /portfolios/:id/positions
//
//	@Summary	Reconciled positions for a portfolio
//	@Produce	json
//	@Param		id		path	int		true	"Portfolio ID"
//	@Param		as_of	query	string	false	"Valuation date (YYYY-MM-DD, default today)"
//	@Success	200	{object}	models.PortfolioPositionsResponse
//	@Failure	400	{object}	models.ErrorResponse
//	@Router		/portfolios/{id}/positions [get]
func (h *PortfolioHandler) Positions(c *gin.Context) {
	portfolioID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "invalid portfolio ID",
		})
		return
	}

	asOf := time.Now()
	if raw := c.Query("as_of"); raw != "" {
		asOf, err = time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "bad_request",
				Message: "as_of must be YYYY-MM-DD",
			})
			return
		}
	}

	ctx, wc := services.NewWarningContext(c.Request.Context())
	resp, err := h.reconSvc.PortfolioPositions(ctx, portfolioID, asOf)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}
	resp.Warnings = wc.GetWarnings()

	c.JSON(http.StatusOK, resp)
}

// History handles GET /portfolios/:id/assets/:asset_id/history
//
//	@Summary	Ordered trade history for one asset
//	@Produce	json
//	@Param		id			path	int	true	"Portfolio ID"
//	@Param		asset_id	path	int	true	"Asset ID"
//	@Success	200	{object}	models.TradeHistoryResponse
//	@Failure	404	{object}	models.ErrorResponse
//	@Router		/portfolios/{id}/assets/{asset_id}/history [get]
func (h *PortfolioHandler) History(c *gin.Context) {
	portfolioID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "invalid portfolio ID",
		})
		return
	}
	assetID, err := strconv.ParseInt(c.Param("asset_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "invalid asset ID",
		})
		return
	}

	resp, err := h.reconSvc.AssetHistory(c.Request.Context(), portfolioID, assetID)
	if err != nil {
		if errors.Is(err, services.ErrAssetNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "asset not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
