package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/wallet_api/internal/core/ports/services"
	"github.com/SscSPs/wallet_api/internal/dto"
	"github.com/SscSPs/wallet_api/internal/middleware"
	"github.com/SscSPs/wallet_api/internal/utils"
	"github.com/gin-gonic/gin"
)

const transactionNotFoundMessage = "Transaction not found"

// transactionHandler handles HTTP requests related to wallet transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	analytics          *utils.PosthogClientWrapper
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade, analytics *utils.PosthogClientWrapper) *transactionHandler {
	return &transactionHandler{transactionService: ts, analytics: analytics}
}

// registerTransactionRoutes registers the CRUD and windowed listing routes on an authenticated group.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, analytics *utils.PosthogClientWrapper) {
	h := newTransactionHandler(transactionService, analytics)

	rg.GET("", h.listTransactions)
	rg.POST("", h.createTransaction)
	rg.PATCH("/:transactionId", h.updateTransaction)
	rg.DELETE("/:transactionId", h.deleteTransaction)
	rg.GET("/:month/:year", h.listTransactionsByPeriod)
}

// requireUserID reads the caller set by AuthMiddleware, answering 401 when absent.
func requireUserID(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}

// listTransactions godoc
// @Summary List the caller's transactions
// @Description Returns every transaction owned by the authenticated user, newest date first.
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.Response[[]dto.TransactionResponse]
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "")
		return
	}

	logger.Debug("Transactions listed", slog.Int("count", len(txns)))
	respond(c, http.StatusOK, "All transaction list", dto.ToTransactionResponses(txns))
}

// listTransactionsByPeriod godoc
// @Summary List the caller's transactions of one month
// @Description Returns the transactions dated in the given month and year.
// @Tags transactions
// @Produce json
// @Param month path int true "Month (1-12)"
// @Param year path int true "Year (YYYY)"
// @Success 200 {object} dto.Response[[]dto.TransactionResponse]
// @Failure 400 {object} dto.ErrorResponse "Invalid month or year"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /transactions/{month}/{year} [get]
func (h *transactionHandler) listTransactionsByPeriod(c *gin.Context) {
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

	txns, err := h.transactionService.ListTransactionsByPeriod(c.Request.Context(), userID, period.Month, period.Year)
	if err != nil {
		respondError(c, logger, err, "")
		return
	}

	respond(c, http.StatusOK, "Transaction list", dto.ToTransactionResponses(txns))
}

// createTransaction godoc
// @Summary Add a transaction
// @Description Creates an income or expense owned by the authenticated user. Income is always filed under the "Income" category.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.Response[dto.TransactionResponse]
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "request format")
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "")
		return
	}

	middleware.PosthogEvent(c, h.analytics, "transaction_created", map[string]any{
		"category":  txn.Category,
		"is_income": txn.IsIncome,
	})
	respond(c, http.StatusCreated, "Added new transaction", dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Applies a partial update to a transaction owned by the authenticated user.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transactionId path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} dto.Response[dto.TransactionResponse]
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Transaction belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Transaction not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /transactions/{transactionId} [patch]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var uri dto.TransactionIDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindError(c, logger, err, "transaction id")
		return
	}
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "request format")
		return
	}

	logger = logger.With(slog.String("transaction_id", uri.TransactionID))
	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), uri.TransactionID, userID, req)
	if err != nil {
		respondError(c, logger, err, transactionNotFoundMessage)
		return
	}

	respond(c, http.StatusOK, "Transaction updated", dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes a transaction owned by the authenticated user.
// @Tags transactions
// @Produce json
// @Param transactionId path string true "Transaction ID"
// @Success 200 {object} dto.Response[dto.DeleteTransactionResponse]
// @Failure 400 {object} dto.ErrorResponse "Malformed transaction id"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Transaction belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Transaction not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /transactions/{transactionId} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	var uri dto.TransactionIDURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindError(c, logger, err, "transaction id")
		return
	}

	logger = logger.With(slog.String("transaction_id", uri.TransactionID))
	if err := h.transactionService.DeleteTransaction(c.Request.Context(), uri.TransactionID, userID); err != nil {
		respondError(c, logger, err, transactionNotFoundMessage)
		return
	}

	respond(c, http.StatusOK, "Transaction deleted", dto.DeleteTransactionResponse{TransactionID: uri.TransactionID})
}
