package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/wallet_api/internal/core/ports/services"
	"github.com/SscSPs/wallet_api/internal/dto"
	"github.com/SscSPs/wallet_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// summaryHandler serves the category catalog and the income/expense reports.
type summaryHandler struct {
	summaryService portssvc.SummarySvc
}

func registerSummaryRoutes(rg *gin.RouterGroup, summaryService portssvc.SummarySvc) {
	h := &summaryHandler{summaryService: summaryService}

	categories := rg.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.GET("/totals", h.getTotals)
		categories.GET("/:month/:year", h.getTotalsByPeriod)
	}
}

// listCategories godoc
// @Summary List transaction categories
// @Description Returns the expense categories in report order, followed by "Income".
// @Tags categories
// @Produce json
// @Success 200 {object} dto.Response[[]dto.CategoryResponse]
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /transactions/categories [get]
func (h *summaryHandler) listCategories(c *gin.Context) {
	respond(c, http.StatusOK, "Category list", dto.ToCategoryResponses(h.summaryService.Categories()))
}

// getTotals godoc
// @Summary All-time totals
// @Description Total income, total expenses, balance and the per-category breakdown of every transaction of the caller.
// @Tags categories
// @Produce json
// @Success 200 {object} dto.Response[dto.SummaryResponse]
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /transactions/categories/totals [get]
func (h *summaryHandler) getTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	summary, err := h.summaryService.Summarize(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "")
		return
	}
	respond(c, http.StatusOK, "Transaction totals", dto.ToSummaryResponse(summary))
}

// getTotalsByPeriod godoc
// @Summary Monthly totals
// @Description Same as the all-time totals, restricted to transactions dated in month/year.
// @Tags categories
// @Produce json
// @Param month path int true "Month (1-12)"
// @Param year path int true "Year (YYYY)"
// @Success 200 {object} dto.Response[dto.SummaryResponse]
// @Failure 400 {object} dto.ErrorResponse "Invalid month or year"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /transactions/categories/{month}/{year} [get]
func (h *summaryHandler) getTotalsByPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var period dto.PeriodURI
	if err := c.ShouldBindUri(&period); err != nil {
		respondBindError(c, logger, err, "period")
		return
	}

	summary, err := h.summaryService.SummarizeByPeriod(c.Request.Context(), userID, period.Month, period.Year)
	if err != nil {
		respondError(c, logger, err, "")
		return
	}
	respond(c, http.StatusOK, "Transaction totals", dto.ToSummaryResponse(summary))
}
